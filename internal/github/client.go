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

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// SearchPullRequests retrieves a page of pull requests authored by the
	// given user. Date range and label filters come from opts; cursor-based
	// pagination is supported through opts.After. The page size can be
	// configured via opts.PageSize.
	SearchPullRequests(ctx context.Context, user string, opts FetchOptions) (*PullRequestPage, error)
}
