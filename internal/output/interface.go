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

import "github.com/sirseerhq/pullstat/internal/github"

// OutputWriter defines the interface for rendering pull requests.
// This abstraction lets the text report and NDJSON output share the
// same pipeline, and leaves room for other formats (CSV, etc.).
type OutputWriter interface {
	// Write adds a single pull request to the output.
	Write(pr github.PullRequest) error

	// Close finalizes the output and releases any resources.
	// For renderers that need the complete sequence, Close performs
	// the actual rendering. Close is idempotent.
	Close() error
}
