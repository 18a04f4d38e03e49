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

// Package main implements the pullstat command-line interface.
// The tool fetches pull requests authored by a GitHub user within a
// date range, optionally filtered by label, and prints them grouped
// by repository.
//
// The CLI supports:
//   - Date-range queries against GitHub's search API (all pages)
//   - Optional label filtering
//   - Plain-text report on stdout or NDJSON output to a file
//   - GitHub token authentication via flag or environment variable
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	pullstat --user <login> --start <YYYY-MM-DD> --end <YYYY-MM-DD> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	pullstat --user alice --start 2025-01-01 --end 2025-01-31 --label bug
//
// Exit codes:
//   - 0: Success (including an empty result)
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
package main
