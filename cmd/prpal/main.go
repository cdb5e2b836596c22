// Command prpal fetches GitHub pull request conversations and saves them as
// JSON, Markdown, or HTML documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/prpal/internal/adapter/driven/document"
	githubadapter "github.com/ericfisherdev/prpal/internal/adapter/driven/github"
	"github.com/ericfisherdev/prpal/internal/application"
	"github.com/ericfisherdev/prpal/internal/config"
	"github.com/ericfisherdev/prpal/internal/domain/model"
)

type options struct {
	pr         int
	prs        string
	latest     int
	owner      string
	repo       string
	outputDir  string
	outputFile string
	format     string
	token      string
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "prpal",
		Short: "Fetch GitHub pull request conversations",
		Long: "prpal retrieves the full conversation of one or more pull requests\n" +
			"(metadata, comments, reviews, inline review comments) and saves each\n" +
			"as a JSON, Markdown, or HTML document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&opts.pr, "pr", 0, "single pull request number to fetch")
	cmd.Flags().StringVar(&opts.prs, "prs", "", "comma-separated list of PR numbers to fetch (e.g. '1,2,3')")
	cmd.Flags().IntVar(&opts.latest, "latest", 0, "fetch the N most recently updated pull requests")
	cmd.Flags().StringVar(&opts.owner, "owner", "", "repository owner (default from PRPAL_OWNER)")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "repository name (default from PRPAL_REPO)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "output directory for conversation files")
	cmd.Flags().StringVar(&opts.outputFile, "output-file", "", "output file path (single PR only)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: json, md, or html (default md)")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.MarkFlagsOneRequired("pr", "prs", "latest")
	cmd.MarkFlagsMutuallyExclusive("pr", "prs", "latest")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	setupLogger(opts.verbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override environment-sourced values.
	if opts.token != "" {
		cfg.GitHubToken = opts.token
	}
	if opts.owner != "" {
		cfg.Owner = opts.owner
	}
	if opts.repo != "" {
		cfg.Repo = opts.repo
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}

	// Fail on configuration problems before any network call.
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := model.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	ghClient := githubadapter.NewClient(cfg.GitHubToken)
	conversations := application.NewConversationService(ghClient)
	exporter := application.NewExportService(conversations, ghClient, document.NewStore())

	repoFullName := cfg.RepoFullName()

	numbers, single, err := resolveNumbers(ctx, exporter, repoFullName, opts)
	if err != nil {
		return err
	}
	if opts.outputFile != "" && !single {
		return errors.New("--output-file is only valid together with --pr")
	}

	exportOpts := application.ExportOptions{Dir: cfg.OutputDir, Format: format}
	if single && opts.outputFile != "" {
		exportOpts.File = opts.outputFile
	} else if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %q: %w", cfg.OutputDir, err)
	}

	if single {
		return exporter.ProcessOne(ctx, repoFullName, numbers[0], exportOpts)
	}

	result, err := exporter.ProcessAll(ctx, repoFullName, numbers, exportOpts)
	if err != nil {
		return err
	}
	if result.Requested > 0 && result.Succeeded == 0 {
		return fmt.Errorf("all %d pull requests failed", result.Requested)
	}

	return nil
}

// resolveNumbers turns the selection flags into a concrete list of PR
// numbers. The second return value reports single-PR mode, where errors are
// fatal instead of isolated per item.
func resolveNumbers(ctx context.Context, exporter *application.ExportService, repoFullName string, opts *options) ([]int, bool, error) {
	switch {
	case opts.pr > 0:
		return []int{opts.pr}, true, nil
	case opts.prs != "":
		numbers, err := parsePRList(opts.prs)
		return numbers, false, err
	case opts.latest > 0:
		numbers, err := exporter.LatestNumbers(ctx, repoFullName, opts.latest)
		if err != nil {
			return nil, false, err
		}
		slog.Info("resolved latest pull requests", "repo", repoFullName, "count", len(numbers), "numbers", numbers)
		return numbers, false, nil
	}
	return nil, false, errors.New("one of --pr, --prs, or --latest is required")
}

// parsePRList parses a comma-separated list of PR numbers.
func parsePRList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PR number %q in --prs list", strings.TrimSpace(part))
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}
