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
	"time"

	pserrors "github.com/sirseerhq/pullstat/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Pages to return in order; one page per call. When exhausted, the
	// last page is returned again.
	Pages []*PullRequestPage

	// Error to return
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount int
	LastUser  string
	LastOpts  FetchOptions
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Pages: []*PullRequestPage{{PullRequests: generateTestPRs()}},
	}
}

// SearchPullRequests implements the Client interface
func (m *MockClient) SearchPullRequests(ctx context.Context, user string, opts FetchOptions) (*PullRequestPage, error) {
	m.CallCount++
	m.LastUser = user
	m.LastOpts = opts

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Simulate various error conditions
	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", pserrors.ErrInvalidToken)
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("network timeout: %w", pserrors.ErrNetworkFailure)
	}

	if m.ShouldFailNotFound || user == "nonexistent" {
		return nil, fmt.Errorf("user not found: %w", pserrors.ErrUserNotFound)
	}

	if m.Error != nil {
		return nil, m.Error
	}

	if len(m.Pages) == 0 {
		return &PullRequestPage{}, nil
	}

	idx := m.CallCount - 1
	if idx >= len(m.Pages) {
		idx = len(m.Pages) - 1
	}
	return m.Pages[idx], nil
}

// generateTestPRs creates sample pull request data for testing
func generateTestPRs() []PullRequest {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	merged := yesterday

	return []PullRequest{
		{
			Number:    1234,
			Title:     "Add new feature for data processing",
			State:     "OPEN",
			URL:       "https://github.com/acme/widgets/pull/1234",
			CreatedAt: lastWeek,
			Author:    Author{Login: "alice"},
			Repository: Repository{
				NameWithOwner: "acme/widgets",
				URL:           "https://github.com/acme/widgets",
			},
			Labels: []string{"enhancement"},
		},
		{
			Number:    1233,
			Title:     "Fix memory leak in parser",
			State:     "MERGED",
			URL:       "https://github.com/acme/widgets/pull/1233",
			CreatedAt: lastWeek,
			MergedAt:  &merged,
			Author:    Author{Login: "alice"},
			Repository: Repository{
				NameWithOwner: "acme/widgets",
				URL:           "https://github.com/acme/widgets",
			},
			Labels: []string{"bug"},
		},
		{
			Number:    17,
			Title:     "Update documentation",
			State:     "OPEN",
			URL:       "https://github.com/acme/docs/pull/17",
			CreatedAt: yesterday,
			Author:    Author{Login: "alice"},
			Repository: Repository{
				NameWithOwner: "acme/docs",
				URL:           "https://github.com/acme/docs",
			},
		},
	}
}
