package application

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ericfisherdev/prpal/internal/domain/model"
	"github.com/ericfisherdev/prpal/internal/domain/port/driven"
)

// ExportOptions controls where and how conversations are written.
type ExportOptions struct {
	// Dir is the output directory for generated documents.
	Dir string
	// File, when non-empty, overrides the default file name. Only valid when
	// exporting a single pull request.
	File string
	// Format selects the output encoding.
	Format model.Format
}

// BatchResult summarizes a batch export run.
type BatchResult struct {
	Requested int
	Succeeded int
	Failed    []int
}

// ExportService drives the fetch-and-save workflow for one or more pull
// requests. Failures inside a batch are isolated per pull request: the
// offending number is logged and the batch continues.
type ExportService struct {
	conversations *ConversationService
	ghClient      driven.GitHubClient
	docs          driven.DocumentStore
}

// NewExportService creates a new ExportService.
func NewExportService(conversations *ConversationService, ghClient driven.GitHubClient, docs driven.DocumentStore) *ExportService {
	return &ExportService{
		conversations: conversations,
		ghClient:      ghClient,
		docs:          docs,
	}
}

// LatestNumbers returns the numbers of the count most recently updated pull
// requests in the repository, in API order.
func (s *ExportService) LatestNumbers(ctx context.Context, repoFullName string, count int) ([]int, error) {
	return s.ghClient.FetchLatestPRNumbers(ctx, repoFullName, count)
}

// ProcessOne fetches a single pull request conversation and saves it. Any
// fetch or write error propagates to the caller.
func (s *ExportService) ProcessOne(ctx context.Context, repoFullName string, number int, opts ExportOptions) error {
	slog.Info("fetching pull request conversation", "repo", repoFullName, "pr", number)

	conv, err := s.conversations.Fetch(ctx, repoFullName, number)
	if err != nil {
		return err
	}

	path := opts.File
	if path == "" {
		path = s.outputPath(repoFullName, number, opts)
	}

	if err := s.docs.Save(conv, path, opts.Format); err != nil {
		return err
	}

	slog.Info("conversation saved", "repo", repoFullName, "pr", number, "path", path)
	return nil
}

// ProcessAll exports each of the given pull requests in order. A failure for
// one number is logged and does not abort the rest; the returned result
// counts only the numbers that were fetched and saved successfully. The loop
// stops between items once ctx is canceled, never mid-item.
func (s *ExportService) ProcessAll(ctx context.Context, repoFullName string, numbers []int, opts ExportOptions) (BatchResult, error) {
	start := time.Now()
	result := BatchResult{Requested: len(numbers)}

	for _, number := range numbers {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.ProcessOne(ctx, repoFullName, number, opts); err != nil {
			slog.Error("pull request export failed", "repo", repoFullName, "pr", number, "error", err)
			result.Failed = append(result.Failed, number)
			continue
		}
		result.Succeeded++
	}

	slog.Info("batch export complete",
		"repo", repoFullName,
		"requested", result.Requested,
		"succeeded", result.Succeeded,
		"failed", len(result.Failed),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return result, nil
}

// outputPath builds the default document path: {dir}/{repo}-{number}{ext}.
func (s *ExportService) outputPath(repoFullName string, number int, opts ExportOptions) string {
	repo := repoFullName
	if i := strings.LastIndex(repoFullName, "/"); i >= 0 {
		repo = repoFullName[i+1:]
	}
	return filepath.Join(opts.Dir, fmt.Sprintf("%s-%d%s", repo, number, opts.Format.Ext()))
}
