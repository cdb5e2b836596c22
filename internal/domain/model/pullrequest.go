package model

import "time"

// PullRequest holds the metadata of a pull request. The JSON field names
// mirror the GitHub REST API response so the structured output preserves the
// wire shape for the consumed subset; unknown API fields are ignored.
type PullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	User      User      `json:"user"`
	State     string    `json:"state"`
	Body      string    `json:"body,omitempty"` // Optional; empty when the PR has no description.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
