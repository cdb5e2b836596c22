package document

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"

	"github.com/ericfisherdev/prpal/internal/domain/model"
	"github.com/ericfisherdev/prpal/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DocumentStore = (*Store)(nil)

// Store implements the driven.DocumentStore port by rendering conversations
// and writing them to the filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Save renders conv in the given format and writes it to path, replacing any
// existing file. The write is atomic: a partially written document is never
// left behind on failure.
func (s *Store) Save(conv *model.Conversation, path string, format model.Format) error {
	if conv == nil {
		return fmt.Errorf("saving %s: nil conversation", path)
	}

	var data []byte
	switch format {
	case model.FormatJSON:
		encoded, err := RenderJSON(conv)
		if err != nil {
			return err
		}
		data = encoded
	case model.FormatMarkdown:
		data = []byte(RenderMarkdown(conv))
	case model.FormatHTML:
		data = []byte(RenderHTML(conv))
	default:
		return fmt.Errorf("saving %s: unknown format %q", path, format)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
