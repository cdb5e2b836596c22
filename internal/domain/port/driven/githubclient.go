package driven

import (
	"context"

	"github.com/ericfisherdev/prpal/internal/domain/model"
)

// GitHubClient defines the driven port for reading pull request conversation
// data from the GitHub API. All list results preserve the order returned by
// the API across concatenated pages.
type GitHubClient interface {
	// FetchPRDetails returns the metadata of a single pull request.
	FetchPRDetails(ctx context.Context, repoFullName string, number int) (*model.PullRequest, error)
	// FetchReviewComments returns all inline diff comments on a pull request.
	FetchReviewComments(ctx context.Context, repoFullName string, number int) ([]model.ReviewComment, error)
	// FetchIssueComments returns all PR-level comments (from the Issues API).
	FetchIssueComments(ctx context.Context, repoFullName string, number int) ([]model.IssueComment, error)
	// FetchReviews returns all review verdicts submitted on a pull request.
	FetchReviews(ctx context.Context, repoFullName string, number int) ([]model.Review, error)
	// FetchLatestPRNumbers returns the numbers of the most recently updated
	// pull requests, in the order the API lists them (descending by update
	// time). At most count numbers are returned.
	FetchLatestPRNumbers(ctx context.Context, repoFullName string, count int) ([]int, error)
}
