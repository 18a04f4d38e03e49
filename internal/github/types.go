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
	"strings"
	"time"
)

// PullRequest represents a GitHub pull request with the metadata pullstat
// reports on. Records are immutable once fetched: the fetcher creates them,
// the filter and the renderers only read them.
type PullRequest struct {
	Number     int        `json:"number"`
	Title      string     `json:"title"`
	State      string     `json:"state"`
	URL        string     `json:"url"`
	CreatedAt  time.Time  `json:"created_at"`
	MergedAt   *time.Time `json:"merged_at,omitempty"`
	Author     Author     `json:"author"`
	Repository Repository `json:"repository"`
	Labels     []string   `json:"labels,omitempty"`
}

// Merged reports whether the pull request has been merged.
func (pr *PullRequest) Merged() bool {
	return pr.MergedAt != nil
}

// HasLabel reports whether the pull request carries the given label.
// GitHub treats label names case-insensitively, so the comparison does too.
func (pr *PullRequest) HasLabel(name string) bool {
	for _, l := range pr.Labels {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}

// Author represents the author of a pull request.
type Author struct {
	Login string `json:"login"`
}

// Repository identifies the repository a pull request belongs to.
type Repository struct {
	NameWithOwner string `json:"name_with_owner"`
	URL           string `json:"url"`
}

// PullRequestPage represents a page of search results. It includes the
// pull requests for the current page and pagination information to
// support fetching subsequent pages.
type PullRequestPage struct {
	PullRequests []PullRequest
	HasNextPage  bool
	EndCursor    string
}

// FetchOptions configures how pull requests are searched.
type FetchOptions struct {
	// Since restricts results to PRs created on or after this date.
	Since *time.Time

	// Until restricts results to PRs created on or before this date.
	Until *time.Time

	// Label restricts results to PRs carrying this label.
	// Empty means no label filter.
	Label string

	// PageSize controls how many PRs to fetch per page.
	// Defaults to 50 if not specified. Maximum is 100 per GitHub's API limits.
	PageSize int

	// After is the cursor for pagination.
	// Empty string fetches from the beginning.
	// Use PullRequestPage.EndCursor from previous response for next page.
	After string
}

// Default values for fetch operations
const (
	defaultPageSize = 50
	maxPageSize     = 100
)
