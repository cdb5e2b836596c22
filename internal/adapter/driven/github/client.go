// Package github implements the GitHubClient port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/prpal/internal/domain/model"
	"github.com/ericfisherdev/prpal/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// maxPages bounds any paginated fetch. A well-behaved API terminates by
// omitting the "next" Link header on the final page; the cap guards against
// a misbehaving server that keeps advertising one.
const maxPages = 1000

// Client implements the driven.GitHubClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  2. httpcache (ETag-based conditional request caching, in-memory only)
//  3. authTransport (token Authorization + v3 Accept headers on every call)
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	cacheTransport.Transport = &authTransport{token: token}
	httpClient := github_ratelimit.NewClient(cacheTransport)

	return &Client{gh: gh.NewClient(httpClient)}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest
// server. The auth transport is still applied so tests observe real headers.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, token string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	authed := &http.Client{
		Transport: &authTransport{token: token, base: httpClient.Transport},
		Timeout:   httpClient.Timeout,
	}

	client := gh.NewClient(authed)
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchPRDetails retrieves the metadata of a single pull request. This is a
// single GET with no pagination; a non-success status propagates as an error.
func (c *Client) FetchPRDetails(ctx context.Context, repoFullName string, number int) (*model.PullRequest, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	pr, resp, err := c.gh.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching PR details for %s#%d: %w", repoFullName, number, err)
	}

	logRateLimit(resp, repoFullName+"/pr-details", 0, 1)

	details := mapPullRequest(pr)
	return &details, nil
}

// FetchReviewComments retrieves all inline diff comments for a pull request.
// It follows the "next" pagination links and preserves API item order.
func (c *Client) FetchReviewComments(ctx context.Context, repoFullName string, number int) ([]model.ReviewComment, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.PullRequestListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	allComments := []model.ReviewComment{}

	for page := 1; ; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("listing review comments for %s#%d: pagination exceeded %d pages", repoFullName, number, maxPages)
		}

		comments, resp, err := c.gh.PullRequests.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing review comments for %s#%d (page %d): %w", repoFullName, number, opts.Page, err)
		}

		logRateLimit(resp, repoFullName+"/review-comments", opts.Page, len(comments))

		for _, comment := range comments {
			allComments = append(allComments, mapReviewComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}

// FetchIssueComments retrieves all general PR-level comments (from the Issues
// API) for a pull request. It follows the "next" pagination links and
// preserves API item order.
func (c *Client) FetchIssueComments(ctx context.Context, repoFullName string, number int) ([]model.IssueComment, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	allComments := []model.IssueComment{}

	for page := 1; ; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("listing issue comments for %s#%d: pagination exceeded %d pages", repoFullName, number, maxPages)
		}

		comments, resp, err := c.gh.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing issue comments for %s#%d (page %d): %w", repoFullName, number, opts.Page, err)
		}

		logRateLimit(resp, repoFullName+"/issue-comments", opts.Page, len(comments))

		for _, comment := range comments {
			allComments = append(allComments, mapIssueComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}

// FetchReviews retrieves all review verdicts for a pull request. It follows
// the "next" pagination links and preserves API item order.
func (c *Client) FetchReviews(ctx context.Context, repoFullName string, number int) ([]model.Review, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.ListOptions{PerPage: 100}
	allReviews := []model.Review{}

	for page := 1; ; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("listing reviews for %s#%d: pagination exceeded %d pages", repoFullName, number, maxPages)
		}

		reviews, resp, err := c.gh.PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing reviews for %s#%d (page %d): %w", repoFullName, number, opts.Page, err)
		}

		logRateLimit(resp, repoFullName+"/reviews", opts.Page, len(reviews))

		for _, r := range reviews {
			allReviews = append(allReviews, mapReview(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allReviews, nil
}

// FetchLatestPRNumbers returns the numbers of the count most recently updated
// pull requests across all states, in the exact order the API lists them.
// Fewer than count numbers are returned when the repository has fewer PRs.
func (c *Client) FetchLatestPRNumbers(ctx context.Context, repoFullName string, count int) ([]int, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return []int{}, nil
	}

	opts := &gh.PullRequestListOptions{
		State:     "all",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: count,
		},
	}

	prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("listing latest %d pull requests for %s: %w", count, repoFullName, err)
	}

	logRateLimit(resp, repoFullName+"/latest", 0, len(prs))

	numbers := make([]int, 0, len(prs))
	for _, pr := range prs {
		if len(numbers) == count {
			break
		}
		numbers = append(numbers, pr.GetNumber())
	}

	return numbers, nil
}

// mapPullRequest converts a go-github PullRequest to a domain model PullRequest.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapPullRequest(pr *gh.PullRequest) model.PullRequest {
	return model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		User:      model.User{Login: pr.GetUser().GetLogin()},
		State:     pr.GetState(),
		Body:      pr.GetBody(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
	}
}

// mapReviewComment converts a go-github PullRequestComment to a domain model
// ReviewComment.
func mapReviewComment(c *gh.PullRequestComment) model.ReviewComment {
	return model.ReviewComment{
		User:      model.User{Login: c.GetUser().GetLogin()},
		Body:      c.GetBody(),
		Path:      c.GetPath(),
		Line:      c.GetLine(),
		CreatedAt: c.GetCreatedAt().Time,
	}
}

// mapIssueComment converts a go-github IssueComment to a domain model IssueComment.
func mapIssueComment(c *gh.IssueComment) model.IssueComment {
	return model.IssueComment{
		User:      model.User{Login: c.GetUser().GetLogin()},
		Body:      c.GetBody(),
		CreatedAt: c.GetCreatedAt().Time,
	}
}

// mapReview converts a go-github PullRequestReview to a domain model Review.
func mapReview(r *gh.PullRequestReview) model.Review {
	return model.Review{
		User:        model.User{Login: r.GetUser().GetLogin()},
		State:       r.GetState(),
		Body:        r.GetBody(),
		SubmittedAt: r.GetSubmittedAt().Time,
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// splitRepo splits a "owner/repo" string into its two components.
func splitRepo(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo name %q: expected owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
