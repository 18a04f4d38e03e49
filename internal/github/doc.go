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

// Package github provides a client for querying GitHub's GraphQL search
// API for pull requests authored by a user. It abstracts the GraphQL
// query construction and provides a simple interface with support for
// cursor pagination, error classification, and retries.
//
// The package includes:
//   - A Client interface for searching pull requests
//   - A GraphQL implementation using the shurcooL/graphql library
//   - A RetryClient wrapper with exponential backoff
//   - Mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql")
//	page, err := client.SearchPullRequests(ctx, "alice", github.FetchOptions{
//	    PageSize: 50,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, pr := range page.PullRequests {
//	    // Process pull request
//	}
package github
