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

package main

import (
	"errors"
	"fmt"
	"os"

	pserrors "github.com/sirseerhq/pullstat/internal/errors"
	"github.com/sirseerhq/pullstat/pkg/version"
)

func main() {
	rootCmd := newStatsCommand()
	rootCmd.Version = version.Version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, pserrors.ErrInvalidToken) ||
		errors.Is(err, pserrors.ErrUserNotFound) ||
		errors.Is(err, pserrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, pserrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
