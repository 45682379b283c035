// Package server exposes the brewdex HTTP API: document import/export
// plus read and delete access to the stored collections.
package server

import (
	"context"
	"log/slog"

	"github.com/grainbill/brewdex/internal/events"
	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/store"
)

// Server carries the shared state of the HTTP handlers: the store, the
// document dialect, and the event publisher.
type Server struct {
	store     store.Store
	coding    *mapping.Coding
	publisher events.Publisher

	// collections maps URL collection segments ("fermentables",
	// "recipes", …) to the entity type they list. Derived from the
	// dialect's root arrays, so the API surface follows the document
	// format.
	collections map[string]string
}

// New returns a Server backed by the given store, dialect, and publisher.
func New(s store.Store, coding *mapping.Coding, p events.Publisher) *Server {
	srv := &Server{
		store:       s,
		coding:      coding,
		publisher:   p,
		collections: make(map[string]string),
	}
	for _, f := range coding.Root().Fields {
		if f.Type == mapping.FieldArray {
			name := f.Path.String()
			srv.collections[name] = coding.Definition(name).EntityType
		}
	}
	return srv
}

// publish sends an event. Best-effort; failures are logged but do not
// block the caller.
func (s *Server) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}
