package events

import (
	"context"

	"github.com/grainbill/brewdex/internal/mapping"
)

// Event topic constants
const (
	TopicImportCompleted = "brewdex.import.completed"
	TopicEntityDeleted   = "brewdex.entity.deleted"
	TopicExportCompleted = "brewdex.export.completed"
)

// ImportCompleted reports the outcome of one import job, successful or not.
type ImportCompleted struct {
	JobID   string        `json:"job_id"`
	OK      bool          `json:"ok"`
	Message string        `json:"message"`
	Stats   mapping.Stats `json:"stats"`
}

// EntityDeleted reports an entity removed through the API. Owned children
// go with it via the store's cascade and are not announced individually.
type EntityDeleted struct {
	EntityType string `json:"entity_type"`
	ID         int64  `json:"id"`
}

// ExportCompleted reports a finished document export.
type ExportCompleted struct {
	JobID string `json:"job_id"`
	Bytes int    `json:"bytes"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
