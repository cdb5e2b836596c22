// Package application contains use-case orchestration services.
package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/prpal/internal/domain/model"
	"github.com/ericfisherdev/prpal/internal/domain/port/driven"
)

// ConversationService assembles the full conversation record of a pull
// request from the four independent GitHub fetches.
type ConversationService struct {
	ghClient driven.GitHubClient
}

// NewConversationService creates a new ConversationService.
func NewConversationService(ghClient driven.GitHubClient) *ConversationService {
	return &ConversationService{ghClient: ghClient}
}

// Fetch retrieves PR metadata, review comments, issue comments, and reviews
// for the given pull request and assembles them into one Conversation. The
// four sub-fetches run sequentially and are independent of each other; if any
// of them fails the whole fetch fails and no partial record is returned.
func (s *ConversationService) Fetch(ctx context.Context, repoFullName string, number int) (*model.Conversation, error) {
	details, err := s.ghClient.FetchPRDetails(ctx, repoFullName, number)
	if err != nil {
		return nil, err
	}

	reviewComments, err := s.ghClient.FetchReviewComments(ctx, repoFullName, number)
	if err != nil {
		return nil, err
	}

	issueComments, err := s.ghClient.FetchIssueComments(ctx, repoFullName, number)
	if err != nil {
		return nil, err
	}

	reviews, err := s.ghClient.FetchReviews(ctx, repoFullName, number)
	if err != nil {
		return nil, err
	}

	slog.Debug("conversation fetched",
		"repo", repoFullName,
		"pr", number,
		"review_comments", len(reviewComments),
		"issue_comments", len(issueComments),
		"reviews", len(reviews),
	)

	return &model.Conversation{
		PRDetails:      *details,
		ReviewComments: reviewComments,
		IssueComments:  issueComments,
		Reviews:        reviews,
	}, nil
}
