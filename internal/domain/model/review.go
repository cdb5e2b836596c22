package model

import "time"

// Review is a review verdict submitted on a pull request (approval, change
// request, or plain comment), optionally accompanied by a body.
type Review struct {
	User        User      `json:"user"`
	State       string    `json:"state"`
	Body        string    `json:"body,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
