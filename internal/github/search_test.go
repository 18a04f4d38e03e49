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
	"testing"
	"time"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		opts     FetchOptions
		expected string
	}{
		{
			name:     "basic query without dates",
			user:     "alice",
			opts:     FetchOptions{},
			expected: "author:alice is:pr sort:created-asc",
		},
		{
			name: "query with since date",
			user: "alice",
			opts: FetchOptions{
				Since: timePtr(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
			},
			expected: "author:alice is:pr created:>=2025-01-15 sort:created-asc",
		},
		{
			name: "query with until date",
			user: "alice",
			opts: FetchOptions{
				Until: timePtr(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)),
			},
			expected: "author:alice is:pr created:<=2025-06-30 sort:created-asc",
		},
		{
			name: "query with date range",
			user: "alice",
			opts: FetchOptions{
				Since: timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
				Until: timePtr(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)),
			},
			expected: "author:alice is:pr created:2025-01-01..2025-01-31 sort:created-asc",
		},
		{
			name: "query with label",
			user: "alice",
			opts: FetchOptions{
				Since: timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
				Until: timePtr(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)),
				Label: "bug",
			},
			expected: "author:alice is:pr created:2025-01-01..2025-01-31 label:bug sort:created-asc",
		},
		{
			name: "label with spaces is quoted",
			user: "alice",
			opts: FetchOptions{
				Label: "help wanted",
			},
			expected: `author:alice is:pr label:"help wanted" sort:created-asc`,
		},
		{
			name:     "login with dash",
			user:     "some-bot",
			opts:     FetchOptions{},
			expected: "author:some-bot is:pr sort:created-asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := buildSearchQuery(tt.user, tt.opts)
			if result != tt.expected {
				t.Errorf("buildSearchQuery() = %q, want %q", result, tt.expected)
			}
		})
	}
}

// timePtr is a helper function to create a pointer to a time.Time
func timePtr(t time.Time) *time.Time {
	return &t
}
