package driven

import (
	"github.com/ericfisherdev/prpal/internal/domain/model"
)

// DocumentStore defines the driven port for rendering a conversation and
// writing it to a destination path, overwriting any existing content.
type DocumentStore interface {
	Save(conv *model.Conversation, path string, format model.Format) error
}
