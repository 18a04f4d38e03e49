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
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirseerhq/pullstat/internal/github"
)

func samplePR(num int, repo string, mergedAt *time.Time) github.PullRequest {
	return github.PullRequest{
		Number:    num,
		Title:     "sample",
		State:     "OPEN",
		URL:       "https://github.com/" + repo + "/pull/1",
		CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		MergedAt:  mergedAt,
		Author:    github.Author{Login: "alice"},
		Repository: github.Repository{
			NameWithOwner: repo,
			URL:           "https://github.com/" + repo,
		},
	}
}

func TestWriter_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	merged := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	prs := []github.PullRequest{
		samplePR(1, "acme/widgets", &merged),
		samplePR(2, "acme/docs", nil),
	}

	for _, pr := range prs {
		if err := w.Write(pr); err != nil {
			t.Fatalf("Write() unexpected error: %v", err)
		}
	}
	if w.Count() != 2 {
		t.Errorf("Count() = %d, want 2", w.Count())
	}

	// Each line must be a standalone JSON object.
	scanner := bufio.NewScanner(&buf)
	var lines int
	for scanner.Scan() {
		lines++
		var decoded github.PullRequest
		if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
		if decoded.Author.Login != "alice" {
			t.Errorf("line %d author = %q, want alice", lines, decoded.Author.Login)
		}
	}
	if lines != 2 {
		t.Errorf("got %d NDJSON lines, want 2", lines)
	}
}

func TestWriter_OmitsNullMergedAt(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Write(samplePR(1, "acme/widgets", nil)); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	if bytes.Contains(buf.Bytes(), []byte("merged_at")) {
		t.Errorf("unmerged PR should omit merged_at, got %s", buf.String())
	}
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")

	w, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("NewFileWriter() unexpected error: %v", err)
	}

	if err := w.Write(samplePR(1, "acme/widgets", nil)); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}

	// Double close must be safe.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if len(data) == 0 {
		t.Error("output file is empty")
	}
}
