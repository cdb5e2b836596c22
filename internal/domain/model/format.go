package model

import "fmt"

// Format selects the output encoding for a saved conversation.
type Format string

const (
	FormatJSON     Format = "json" // Structured encoding, round-trippable.
	FormatMarkdown Format = "md"   // Narrative encoding.
	FormatHTML     Format = "html" // Sanitized HTML rendering of the narrative.
)

// ParseFormat converts a user-supplied format string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatMarkdown, FormatHTML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q: expected json, md, or html", s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}
