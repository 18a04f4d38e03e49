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

// Package output renders the filtered pull requests. Two renderers are
// provided behind the OutputWriter interface: a grouped plain-text
// report for the terminal and an NDJSON (Newline Delimited JSON) writer
// for machine consumption.
//
// The NDJSON writer streams each record as it arrives. The text report
// accumulates records and renders the grouped report when Close is
// called, because grouping needs the complete sequence.
//
// Example usage:
//
//	w, err := output.NewFileWriter("prs.ndjson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for _, pr := range prs {
//	    if err := w.Write(pr); err != nil {
//	        log.Printf("Failed to write record: %v", err)
//	    }
//	}
package output
