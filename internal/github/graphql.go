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
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shurcooL/graphql"
	pserrors "github.com/sirseerhq/pullstat/internal/errors"
	"github.com/sirseerhq/pullstat/internal/giterror"
	"github.com/sirseerhq/pullstat/pkg/version"
)

// GraphQLClient implements the GitHub Client interface using the GraphQL
// search API. It is configured with authentication, a User-Agent header,
// connection pooling, and a response size limit.
type GraphQLClient struct {
	client    *graphql.Client
	token     string
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided
// token and endpoint. A custom endpoint supports GitHub Enterprise
// deployments; for github.com use https://api.github.com/graphql.
func NewGraphQLClient(token string, endpoint string) *GraphQLClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		token:     token,
		inspector: giterror.NewInspector(),
	}
}

// searchNode mirrors the fields requested for each search result.
// Search returns a union of issues and pull requests; the inline
// fragment narrows each node to its pull request fields.
type searchNode struct {
	PullRequest struct {
		Number    graphql.Int
		Title     graphql.String
		State     graphql.String
		URL       graphql.String `graphql:"url"`
		CreatedAt time.Time
		MergedAt  *time.Time
		Author    struct {
			Login graphql.String
		} `graphql:"author"`
		Repository struct {
			NameWithOwner graphql.String
			URL           graphql.String `graphql:"url"`
		} `graphql:"repository"`
		Labels struct {
			Nodes []struct {
				Name graphql.String
			}
		} `graphql:"labels(first: 100)"`
	} `graphql:"... on PullRequest"`
}

// SearchPullRequests fetches a page of pull requests authored by the given
// user via GitHub's search API. Results are ordered by creation date
// ascending. Cursor pagination is supported through opts.After.
func (c *GraphQLClient) SearchPullRequests(ctx context.Context, user string, opts FetchOptions) (*PullRequestPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	searchQuery := buildSearchQuery(user, opts)

	var query struct {
		Search struct {
			PageInfo struct {
				HasNextPage graphql.Boolean
				EndCursor   graphql.String
			}
			Nodes []searchNode
		} `graphql:"search(query: $query, type: ISSUE, first: $first, after: $after)"`
	}

	variables := map[string]interface{}{
		"query": graphql.String(searchQuery),
		"first": graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 100
		"after": (*graphql.String)(nil),
	}
	if opts.After != "" {
		after := graphql.String(opts.After)
		variables["after"] = &after
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, user)
	}

	page := &PullRequestPage{
		HasNextPage:  bool(query.Search.PageInfo.HasNextPage),
		EndCursor:    string(query.Search.PageInfo.EndCursor),
		PullRequests: make([]PullRequest, 0, len(query.Search.Nodes)),
	}

	for i := range query.Search.Nodes {
		page.PullRequests = append(page.PullRequests, convertSearchNode(&query.Search.Nodes[i]))
	}

	return page, nil
}

// convertSearchNode converts a GraphQL search node to the domain model.
func convertSearchNode(node *searchNode) PullRequest {
	n := &node.PullRequest

	pr := PullRequest{
		Number:    int(n.Number),
		Title:     string(n.Title),
		State:     string(n.State),
		URL:       string(n.URL),
		CreatedAt: n.CreatedAt,
		MergedAt:  n.MergedAt,
		Author: Author{
			Login: string(n.Author.Login),
		},
		Repository: Repository{
			NameWithOwner: string(n.Repository.NameWithOwner),
			URL:           string(n.Repository.URL),
		},
	}

	pr.Labels = make([]string, 0, len(n.Labels.Nodes))
	for _, label := range n.Labels.Nodes {
		pr.Labels = append(pr.Labels, string(label.Name))
	}

	return pr
}

// mapError maps GraphQL errors to our domain errors with actionable messages
func (c *GraphQLClient) mapError(err error, user string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", pserrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", pserrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("user '%s' not found. Please check the login and your access permissions: %w", user, pserrors.ErrUserNotFound)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w", pserrors.ErrNetworkFailure)
	}

	// Generic error
	return fmt.Errorf("failed to search pull requests: %w", err)
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds authentication header and safety limits to HTTP requests
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("User-Agent", fmt.Sprintf("pullstat/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Apply response size limit (10MB)
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      10 * 1024 * 1024,
		}
	}

	return resp, nil
}
