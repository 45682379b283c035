package server

import (
	"net/http"
	"strconv"

	"github.com/grainbill/brewdex/internal/events"
)

// entitySummary is one row of a collection listing.
type entitySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// handleListCollection handles GET /v1/{collection}.
func (s *Server) handleListCollection(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	entityType, ok := s.collections[collection]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown collection "+collection)
		return
	}

	entities, err := s.store.List(r.Context(), entityType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list "+collection)
		return
	}

	items := make([]entitySummary, 0, len(entities))
	for _, e := range entities {
		items = append(items, entitySummary{ID: e.GetID(), Name: e.GetName()})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": len(items),
	})
}

// handleGetEntity handles GET /v1/{collection}/{id}. The response is the
// entity's document fragment: the same shape it has as an item of the
// collection's array in a full export, nested children included.
func (s *Server) handleGetEntity(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := s.resolveEntity(w, r)
	if !ok {
		return
	}

	e, err := s.store.Find(r.Context(), entityType, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get entity")
		return
	}
	if e == nil {
		writeError(w, http.StatusNotFound, "entity not found")
		return
	}

	fragment, err := s.coding.WriteEntityDocument(r.Context(), s.store, e)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render entity")
		return
	}

	writeJSON(w, http.StatusOK, fragment)
}

// handleDeleteEntity handles DELETE /v1/{collection}/{id}. Owned children
// (mash steps, recipe additions) go away with their owner.
func (s *Server) handleDeleteEntity(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := s.resolveEntity(w, r)
	if !ok {
		return
	}

	e, err := s.store.Find(r.Context(), entityType, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get entity")
		return
	}
	if e == nil {
		writeError(w, http.StatusNotFound, "entity not found")
		return
	}

	if err := s.store.Delete(r.Context(), entityType, id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete entity")
		return
	}

	s.publish(r.Context(), events.TopicEntityDeleted, events.EntityDeleted{
		EntityType: entityType,
		ID:         id,
	})

	w.WriteHeader(http.StatusNoContent)
}

// resolveEntity maps the {collection}/{id} path segments to an entity type
// and identity, writing the error response itself when either is invalid.
func (s *Server) resolveEntity(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	collection := r.PathValue("collection")
	entityType, ok := s.collections[collection]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown collection "+collection)
		return "", 0, false
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return "", 0, false
	}

	return entityType, id, true
}
