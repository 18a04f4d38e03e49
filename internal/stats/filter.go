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
	"time"

	"github.com/sirseerhq/pullstat/internal/github"
)

// Criteria is the immutable filter supplied once at startup.
// Start and End bound the creation date inclusively; Label, when
// non-empty, requires membership in the PR's label set.
type Criteria struct {
	User  string
	Start time.Time
	End   time.Time
	Label string
}

// Filter returns the subsequence of prs whose creation date falls within
// [Start, End] and which carry the requested label, if one was given.
// The input order is preserved. Filter never mutates its input.
func Filter(prs []github.PullRequest, c Criteria) []github.PullRequest {
	matched := make([]github.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if !inRange(pr.CreatedAt, c.Start, c.End) {
			continue
		}
		if c.Label != "" && !pr.HasLabel(c.Label) {
			continue
		}
		matched = append(matched, pr)
	}
	return matched
}

// inRange reports whether t falls within [start, end] inclusive.
func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
