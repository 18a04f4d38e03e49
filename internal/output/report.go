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

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirseerhq/pullstat/internal/github"
	"github.com/sirseerhq/pullstat/internal/stats"
)

const reportRule = 60

// TextReport renders pull requests grouped by repository as a
// plain-text report. Records are accumulated on Write and the report is
// rendered once, when Close is called, since grouping needs the full
// sequence.
type TextReport struct {
	w        io.Writer
	user     string
	label    string
	prs      []github.PullRequest
	rendered bool
}

// NewTextReport creates a text report writer. The user and optional
// label appear in the report header.
func NewTextReport(w io.Writer, user, label string) *TextReport {
	return &TextReport{
		w:     w,
		user:  user,
		label: label,
	}
}

// Write buffers a single pull request for the report.
func (r *TextReport) Write(pr github.PullRequest) error {
	r.prs = append(r.prs, pr)
	return nil
}

// Close renders the grouped report. Repositories appear in first-seen
// order; pull requests keep their fetch order within each group.
func (r *TextReport) Close() error {
	if r.rendered {
		return nil
	}
	r.rendered = true

	header := fmt.Sprintf("GitHub PR stats for user: %s", r.user)
	if r.label != "" {
		header += fmt.Sprintf(" | Label: %s", r.label)
	}

	rule := strings.Repeat("-", reportRule)

	if _, err := fmt.Fprintf(r.w, "%s\n%s\n", header, rule); err != nil {
		return err
	}

	for _, group := range stats.GroupByRepository(r.prs) {
		if err := r.renderGroup(group); err != nil {
			return err
		}
	}

	return nil
}

func (r *TextReport) renderGroup(group stats.RepoGroup) error {
	if _, err := fmt.Fprintf(r.w, "Repository: %s (%s)\n", group.Name, group.URL); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "  Total PRs: %d\n", len(group.PullRequests)); err != nil {
		return err
	}

	for i, pr := range group.PullRequests {
		merged := "Not merged yet"
		if pr.MergedAt != nil {
			merged = pr.MergedAt.Format("2006-01-02")
		}

		_, err := fmt.Fprintf(r.w, "  %d. %s\n     Raised: %s\n     Merged: %s\n     PR: %s\n",
			i+1, pr.Title, pr.CreatedAt.Format("2006-01-02"), merged, pr.URL)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.w, strings.Repeat("-", reportRule))
	return err
}
