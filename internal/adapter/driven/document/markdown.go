// Package document implements the DocumentStore port: it renders a
// conversation into one of the supported encodings and writes it to disk.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/prpal/internal/domain/model"
)

// RenderMarkdown renders the conversation as a narrative Markdown document.
// The output is deterministic and order-preserving: sections appear only when
// their source sequence (or the PR description) is non-empty, and items keep
// the order they were fetched in. Missing optional fields render as empty
// tokens; rendering itself never fails.
func RenderMarkdown(conv *model.Conversation) string {
	var b strings.Builder
	pr := conv.PRDetails

	fmt.Fprintf(&b, "# PR #%d: %s\n\n", pr.Number, pr.Title)
	fmt.Fprintf(&b, "**Author:** %s\n", pr.User.Login)
	fmt.Fprintf(&b, "**Created:** %s\n", formatTime(pr.CreatedAt))
	fmt.Fprintf(&b, "**Updated:** %s\n", formatTime(pr.UpdatedAt))
	fmt.Fprintf(&b, "**State:** %s\n", pr.State)

	if pr.Body != "" {
		b.WriteString("\n## Description\n\n")
		b.WriteString(pr.Body)
		b.WriteString("\n")
	}

	if len(conv.IssueComments) > 0 {
		b.WriteString("\n## Comments\n")
		for _, c := range conv.IssueComments {
			fmt.Fprintf(&b, "\n### %s - %s\n\n", c.User.Login, formatTime(c.CreatedAt))
			b.WriteString(c.Body)
			b.WriteString("\n")
		}
	}

	if len(conv.Reviews) > 0 {
		b.WriteString("\n## Reviews\n")
		for _, r := range conv.Reviews {
			fmt.Fprintf(&b, "\n### %s - %s\n\n", r.User.Login, formatTime(r.SubmittedAt))
			fmt.Fprintf(&b, "**State:** %s\n", r.State)
			if r.Body != "" {
				b.WriteString("\n")
				b.WriteString(r.Body)
				b.WriteString("\n")
			}
		}
	}

	if len(conv.ReviewComments) > 0 {
		b.WriteString("\n## Review Comments\n")
		for _, c := range conv.ReviewComments {
			fmt.Fprintf(&b, "\n### %s - %s\n\n", c.User.Login, formatTime(c.CreatedAt))
			fmt.Fprintf(&b, "**Path:** %s\n", c.Path)
			fmt.Fprintf(&b, "**Line:** %d\n\n", c.Line)
			b.WriteString(c.Body)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// formatTime renders a timestamp as RFC 3339 UTC, or an empty token when the
// field was absent from the API response.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
