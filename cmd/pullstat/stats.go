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
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirseerhq/pullstat/internal/config"
	"github.com/sirseerhq/pullstat/internal/github"
	"github.com/sirseerhq/pullstat/internal/output"
	"github.com/sirseerhq/pullstat/internal/stats"
	"github.com/spf13/cobra"
)

// statsOptions holds the raw flag values before validation.
type statsOptions struct {
	User       string
	Start      string
	End        string
	Label      string
	Token      string
	OutputFile string
	ConfigFile string
}

// newStatsCommand builds the root command. pullstat has a single
// operation, so all flags live on the root rather than a subcommand.
func newStatsCommand() *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:   "pullstat",
		Short: "Summarize a GitHub user's pull requests grouped by repository",
		Long: `pullstat fetches pull requests authored by a GitHub user within a date
range and prints them grouped by repository, with creation and merge dates.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			// Create context with timeout
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			return runStats(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "GitHub login to fetch pull requests for (required)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Start of created-at range, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.End, "end", "", "End of created-at range, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.Label, "label", "", "Only include pull requests carrying this label")
	cmd.Flags().StringVar(&opts.Token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&opts.OutputFile, "output", "", "Write NDJSON records to this file instead of the text report")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "Path to config file")

	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// runStats executes the full pipeline: parse criteria, fetch, filter, render.
func runStats(ctx context.Context, opts statsOptions) error {
	criteria, err := parseCriteria(opts)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.ConfigFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	token := getToken(opts.Token, cfg.GitHub.TokenEnv)
	if token == "" {
		return fmt.Errorf("GitHub token not found. Set %s or use --token flag", cfg.GitHub.TokenEnv)
	}

	// Create GitHub client with retry on rate-limit and network errors
	client := github.NewRetryClient(
		github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint),
		github.DefaultRetryConfig(),
	)

	prs, err := fetchAllPullRequests(ctx, client, criteria, cfg.Defaults.PageSize)
	if err != nil {
		return err
	}

	// The search query already narrows server-side; the client-side
	// filter is the authority for range and label membership.
	matched := stats.Filter(prs, criteria)
	if len(matched) == 0 {
		fmt.Fprintln(os.Stdout, "No pull requests found for the given user and filters.")
		return nil
	}

	// Create output writer
	var writer output.OutputWriter
	if opts.OutputFile == "" {
		writer = output.NewTextReport(os.Stdout, criteria.User, criteria.Label)
	} else {
		fileWriter, fErr := output.NewFileWriter(opts.OutputFile)
		if fErr != nil {
			return fmt.Errorf("failed to create output file: %w", fErr)
		}
		writer = fileWriter
	}
	defer writer.Close()

	for _, pr := range matched {
		if err := writer.Write(pr); err != nil {
			return fmt.Errorf("failed to write pull request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Fetched %d pull requests for %s\n", len(matched), criteria.User)
	return nil
}

// fetchAllPullRequests walks the search results page by page until the
// cursor is exhausted. Progress goes to stderr so stdout stays clean
// for the report.
func fetchAllPullRequests(ctx context.Context, client github.Client, criteria stats.Criteria, pageSize int) ([]github.PullRequest, error) {
	var (
		all     []github.PullRequest
		cursor  = ""
		hasMore = true
	)

	fmt.Fprintf(os.Stderr, "Fetching pull requests for %s...", criteria.User)

	for hasMore {
		opts := github.FetchOptions{
			Since:    &criteria.Start,
			Until:    &criteria.End,
			Label:    criteria.Label,
			PageSize: pageSize,
			After:    cursor,
		}

		page, err := client.SearchPullRequests(ctx, criteria.User, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
			return nil, err
		}

		all = append(all, page.PullRequests...)
		fmt.Fprintf(os.Stderr, "\rFetching pull requests for %s... %d fetched", criteria.User, len(all))

		cursor = page.EndCursor
		hasMore = page.HasNextPage
	}

	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	return all, nil
}

// parseCriteria validates the raw flags and builds the filter criteria.
// The end date is expanded to the last second of the day so the range
// is inclusive on both ends.
func parseCriteria(opts statsOptions) (stats.Criteria, error) {
	user := strings.TrimSpace(opts.User)
	if user == "" {
		return stats.Criteria{}, fmt.Errorf("--user must not be empty")
	}

	start, err := parseDate(opts.Start)
	if err != nil {
		return stats.Criteria{}, fmt.Errorf("invalid --start date: %w", err)
	}

	end, err := parseDate(opts.End)
	if err != nil {
		return stats.Criteria{}, fmt.Errorf("invalid --end date: %w", err)
	}

	if end.Before(start) {
		return stats.Criteria{}, fmt.Errorf("--end date %s is before --start date %s", opts.End, opts.Start)
	}

	return stats.Criteria{
		User:  user,
		Start: start,
		End:   end.Add(24*time.Hour - time.Second),
		Label: strings.TrimSpace(opts.Label),
	}, nil
}

// parseDate parses a YYYY-MM-DD string into a UTC midnight timestamp.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return t.UTC(), nil
}

// getToken returns the GitHub token from flag or environment variable
func getToken(flagToken, tokenEnv string) string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv(tokenEnv)
}
