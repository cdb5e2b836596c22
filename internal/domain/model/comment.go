package model

import "time"

// IssueComment is a comment on the PR's overall discussion thread (served by
// the GitHub Issues API, not tied to a code line).
type IssueComment struct {
	User      User      `json:"user"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewComment is an inline comment attached to a specific file and line in
// the PR's diff.
type ReviewComment struct {
	User      User      `json:"user"`
	Body      string    `json:"body"`
	Path      string    `json:"path"`
	Line      int       `json:"line"`
	CreatedAt time.Time `json:"created_at"`
}
