// Package model contains the domain types for pull request conversations.
package model

// Conversation is the unified record of a single pull request's discussion
// history. The four fields are fetched independently and assembled once; a
// Conversation is never mutated after assembly and is owned exclusively by
// the caller that requested it.
//
// JSON field names match the keys of the structured output document.
type Conversation struct {
	PRDetails      PullRequest     `json:"pr_details"`
	ReviewComments []ReviewComment `json:"review_comments"`
	IssueComments  []IssueComment  `json:"issue_comments"`
	Reviews        []Review        `json:"reviews"`
}
