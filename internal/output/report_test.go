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
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTextReport_GroupedOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReport(&buf, "alice", "")

	merged := time.Date(2025, 1, 12, 15, 4, 5, 0, time.UTC)
	prs := []struct {
		num  int
		repo string
	}{
		{1, "acme/widgets"},
		{2, "acme/docs"},
		{3, "acme/widgets"},
	}
	for i, p := range prs {
		pr := samplePR(p.num, p.repo, nil)
		if i == 0 {
			pr.MergedAt = &merged
		}
		if err := r.Write(pr); err != nil {
			t.Fatalf("Write() unexpected error: %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "GitHub PR stats for user: alice") {
		t.Errorf("missing header, got:\n%s", out)
	}

	// Repository first seen first; every repository header exactly once.
	widgets := strings.Index(out, "Repository: acme/widgets (https://github.com/acme/widgets)")
	docs := strings.Index(out, "Repository: acme/docs (https://github.com/acme/docs)")
	if widgets == -1 || docs == -1 {
		t.Fatalf("missing repository headers, got:\n%s", out)
	}
	if widgets > docs {
		t.Errorf("acme/widgets was seen first and must be printed first:\n%s", out)
	}
	if strings.Count(out, "Repository: acme/widgets") != 1 {
		t.Errorf("repository header repeated, PRs are not contiguous:\n%s", out)
	}

	if !strings.Contains(out, "Total PRs: 2") {
		t.Errorf("missing per-repo count, got:\n%s", out)
	}
	if !strings.Contains(out, "Merged: 2025-01-12") {
		t.Errorf("missing merge date, got:\n%s", out)
	}
	if !strings.Contains(out, "Merged: Not merged yet") {
		t.Errorf("missing 'Not merged yet' for open PRs, got:\n%s", out)
	}
	if !strings.Contains(out, "Raised: 2025-01-10") {
		t.Errorf("missing creation date, got:\n%s", out)
	}
}

func TestTextReport_LabelInHeader(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReport(&buf, "alice", "bug")

	if err := r.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "GitHub PR stats for user: alice | Label: bug") {
		t.Errorf("missing label in header, got:\n%s", buf.String())
	}
}

func TestTextReport_CloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReport(&buf, "alice", "")

	if err := r.Write(samplePR(1, "acme/widgets", nil)); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	first := buf.String()

	if err := r.Close(); err != nil {
		t.Fatalf("second Close() unexpected error: %v", err)
	}
	if buf.String() != first {
		t.Error("second Close() rendered the report again")
	}
}
