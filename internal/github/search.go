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

package github

import (
	"fmt"
	"strings"
)

// buildSearchQuery constructs a GitHub search query for pull requests
// authored by a user. It uses GitHub's search syntax to enable
// server-side filtering by creation date and label.
func buildSearchQuery(user string, opts FetchOptions) string {
	// Base query: author:user is:pr
	parts := []string{
		fmt.Sprintf("author:%s", user),
		"is:pr",
	}

	// Add date filters if provided
	switch {
	case opts.Since != nil && opts.Until != nil:
		// Range query: created:YYYY-MM-DD..YYYY-MM-DD
		parts = append(parts, fmt.Sprintf("created:%s..%s",
			opts.Since.Format("2006-01-02"),
			opts.Until.Format("2006-01-02")))
	case opts.Since != nil:
		// After query: created:>=YYYY-MM-DD
		parts = append(parts, fmt.Sprintf("created:>=%s", opts.Since.Format("2006-01-02")))
	case opts.Until != nil:
		// Before query: created:<=YYYY-MM-DD
		parts = append(parts, fmt.Sprintf("created:<=%s", opts.Until.Format("2006-01-02")))
	}

	// Add label filter if provided. Labels with spaces must be quoted.
	if opts.Label != "" {
		if strings.ContainsAny(opts.Label, " \t") {
			parts = append(parts, fmt.Sprintf("label:%q", opts.Label))
		} else {
			parts = append(parts, fmt.Sprintf("label:%s", opts.Label))
		}
	}

	// Always sort by created date ascending for consistent ordering
	parts = append(parts, "sort:created-asc")

	return strings.Join(parts, " ")
}
