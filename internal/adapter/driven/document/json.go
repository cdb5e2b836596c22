package document

import (
	"encoding/json"
	"fmt"

	"github.com/ericfisherdev/prpal/internal/domain/model"
)

// RenderJSON renders the conversation as an indented JSON document with the
// four top-level keys pr_details, review_comments, issue_comments, and
// reviews. The encoding is lossless for the typed fields: decoding it yields
// a record equal to the original.
func RenderJSON(conv *model.Conversation) ([]byte, error) {
	data, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding conversation for PR #%d: %w", conv.PRDetails.Number, err)
	}
	return data, nil
}
