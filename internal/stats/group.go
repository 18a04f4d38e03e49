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

package stats

import (
	"github.com/sirseerhq/pullstat/internal/github"
)

// RepoGroup is the ordered set of pull requests for one repository.
// PullRequests keeps the insertion (fetch) order.
type RepoGroup struct {
	Name         string
	URL          string
	PullRequests []github.PullRequest
}

// GroupByRepository groups pull requests by repository, preserving the
// order in which each repository was first seen. All pull requests for
// a repository appear contiguously within its group.
func GroupByRepository(prs []github.PullRequest) []RepoGroup {
	groups := make([]RepoGroup, 0)
	index := make(map[string]int)

	for _, pr := range prs {
		name := pr.Repository.NameWithOwner
		i, seen := index[name]
		if !seen {
			i = len(groups)
			index[name] = i
			groups = append(groups, RepoGroup{
				Name: name,
				URL:  pr.Repository.URL,
			})
		}
		groups[i].PullRequests = append(groups[i].PullRequests, pr)
	}

	return groups
}
