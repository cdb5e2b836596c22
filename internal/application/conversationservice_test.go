package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/prpal/internal/application"
	"github.com/ericfisherdev/prpal/internal/domain/model"
)

// --- Mock implementations ---

// mockGitHubClient implements driven.GitHubClient with per-method hooks.
// Unset hooks return empty results.
type mockGitHubClient struct {
	details        func(ctx context.Context, repoFullName string, number int) (*model.PullRequest, error)
	reviewComments func(ctx context.Context, repoFullName string, number int) ([]model.ReviewComment, error)
	issueComments  func(ctx context.Context, repoFullName string, number int) ([]model.IssueComment, error)
	reviews        func(ctx context.Context, repoFullName string, number int) ([]model.Review, error)
	latest         func(ctx context.Context, repoFullName string, count int) ([]int, error)
}

func (m *mockGitHubClient) FetchPRDetails(ctx context.Context, repoFullName string, number int) (*model.PullRequest, error) {
	if m.details == nil {
		return &model.PullRequest{Number: number}, nil
	}
	return m.details(ctx, repoFullName, number)
}

func (m *mockGitHubClient) FetchReviewComments(ctx context.Context, repoFullName string, number int) ([]model.ReviewComment, error) {
	if m.reviewComments == nil {
		return []model.ReviewComment{}, nil
	}
	return m.reviewComments(ctx, repoFullName, number)
}

func (m *mockGitHubClient) FetchIssueComments(ctx context.Context, repoFullName string, number int) ([]model.IssueComment, error) {
	if m.issueComments == nil {
		return []model.IssueComment{}, nil
	}
	return m.issueComments(ctx, repoFullName, number)
}

func (m *mockGitHubClient) FetchReviews(ctx context.Context, repoFullName string, number int) ([]model.Review, error) {
	if m.reviews == nil {
		return []model.Review{}, nil
	}
	return m.reviews(ctx, repoFullName, number)
}

func (m *mockGitHubClient) FetchLatestPRNumbers(ctx context.Context, repoFullName string, count int) ([]int, error) {
	if m.latest == nil {
		return []int{}, nil
	}
	return m.latest(ctx, repoFullName, count)
}

// --- Tests ---

func TestConversationService_Fetch(t *testing.T) {
	submitted := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)

	gh := &mockGitHubClient{
		details: func(_ context.Context, repoFullName string, number int) (*model.PullRequest, error) {
			assert.Equal(t, "owner/repo", repoFullName)
			assert.Equal(t, 123, number)
			return &model.PullRequest{Number: 123, Title: "Fix bug", User: model.User{Login: "octocat"}}, nil
		},
		reviewComments: func(_ context.Context, _ string, _ int) ([]model.ReviewComment, error) {
			return []model.ReviewComment{{Path: "file.py", Line: 42, Body: "inline"}}, nil
		},
		issueComments: func(_ context.Context, _ string, _ int) ([]model.IssueComment, error) {
			return []model.IssueComment{{Body: "general"}}, nil
		},
		reviews: func(_ context.Context, _ string, _ int) ([]model.Review, error) {
			return []model.Review{{State: "APPROVED", Body: "LGTM", SubmittedAt: submitted}}, nil
		},
	}

	svc := application.NewConversationService(gh)
	conv, err := svc.Fetch(context.Background(), "owner/repo", 123)

	require.NoError(t, err)
	require.NotNil(t, conv)
	assert.Equal(t, 123, conv.PRDetails.Number)
	assert.Equal(t, "octocat", conv.PRDetails.User.Login)
	require.Len(t, conv.ReviewComments, 1)
	assert.Equal(t, "file.py", conv.ReviewComments[0].Path)
	require.Len(t, conv.IssueComments, 1)
	assert.Equal(t, "general", conv.IssueComments[0].Body)
	require.Len(t, conv.Reviews, 1)
	assert.Equal(t, "APPROVED", conv.Reviews[0].State)
}

func TestConversationService_Fetch_SubFetchFailure(t *testing.T) {
	fetchErr := errors.New("boom")

	tests := []struct {
		name string
		gh   *mockGitHubClient
	}{
		{
			name: "pr details",
			gh: &mockGitHubClient{details: func(_ context.Context, _ string, _ int) (*model.PullRequest, error) {
				return nil, fetchErr
			}},
		},
		{
			name: "review comments",
			gh: &mockGitHubClient{reviewComments: func(_ context.Context, _ string, _ int) ([]model.ReviewComment, error) {
				return nil, fetchErr
			}},
		},
		{
			name: "issue comments",
			gh: &mockGitHubClient{issueComments: func(_ context.Context, _ string, _ int) ([]model.IssueComment, error) {
				return nil, fetchErr
			}},
		},
		{
			name: "reviews",
			gh: &mockGitHubClient{reviews: func(_ context.Context, _ string, _ int) ([]model.Review, error) {
				return nil, fetchErr
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := application.NewConversationService(tc.gh)
			conv, err := svc.Fetch(context.Background(), "owner/repo", 1)

			require.ErrorIs(t, err, fetchErr)
			assert.Nil(t, conv, "no partial record on sub-fetch failure")
		})
	}
}
