// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil provides common test helpers for pullstat
package testutil

import (
	"fmt"
	"time"
)

// SearchPR describes one pull request node in a canned search response.
type SearchPR struct {
	Number    int
	Title     string
	State     string
	Repo      string
	Author    string
	CreatedAt time.Time
	MergedAt  *time.Time
	Labels    []string
}

// GenerateSearchResponse builds a GraphQL search response body in the
// shape the client expects, suitable for json.NewEncoder().Encode.
func GenerateSearchResponse(hasNextPage bool, endCursor string, prs ...SearchPR) map[string]interface{} {
	nodes := make([]interface{}, 0, len(prs))
	for _, pr := range prs {
		labels := make([]interface{}, 0, len(pr.Labels))
		for _, name := range pr.Labels {
			labels = append(labels, map[string]interface{}{"name": name})
		}

		var mergedAt interface{}
		if pr.MergedAt != nil {
			mergedAt = pr.MergedAt.Format(time.RFC3339)
		}

		nodes = append(nodes, map[string]interface{}{
			"number":    pr.Number,
			"title":     pr.Title,
			"state":     pr.State,
			"url":       fmt.Sprintf("https://github.com/%s/pull/%d", pr.Repo, pr.Number),
			"createdAt": pr.CreatedAt.Format(time.RFC3339),
			"mergedAt":  mergedAt,
			"author": map[string]interface{}{
				"login": pr.Author,
			},
			"repository": map[string]interface{}{
				"nameWithOwner": pr.Repo,
				"url":           "https://github.com/" + pr.Repo,
			},
			"labels": map[string]interface{}{
				"nodes": labels,
			},
		})
	}

	return map[string]interface{}{
		"data": map[string]interface{}{
			"search": map[string]interface{}{
				"pageInfo": map[string]interface{}{
					"hasNextPage": hasNextPage,
					"endCursor":   endCursor,
				},
				"nodes": nodes,
			},
		},
	}
}

// GenerateGraphQLError builds a GraphQL error response body with the
// given message, as returned with HTTP 200 by the real API.
func GenerateGraphQLError(message string) map[string]interface{} {
	return map[string]interface{}{
		"errors": []interface{}{
			map[string]interface{}{"message": message},
		},
	}
}
