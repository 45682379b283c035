package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/grainbill/brewdex/internal/events"
	"github.com/grainbill/brewdex/internal/idgen"
	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/store"
)

// importResponse is the POST /v1/import body: the dialect's import result
// plus the job ID correlating logs and events.
type importResponse struct {
	JobID string `json:"job_id"`
	mapping.ImportResult
}

// handleImport handles POST /v1/import. The body is one BeerJSON document;
// the response reports per-collection stored/skipped tallies. A rejected
// document (schema, decode, or storage failure) answers 422 with the same
// body shape.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if len(doc) == 0 {
		writeError(w, http.StatusBadRequest, "empty body")
		return
	}

	jobID, err := idgen.Generate()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate job id")
		return
	}

	start := time.Now()
	res := s.coding.ValidateAndStore(r.Context(), s.store, doc)
	slog.Info("import completed",
		"job", jobID,
		"ok", res.OK,
		"stored", res.Stats.TotalStored(),
		"skipped", res.Stats.TotalSkipped(),
		"duration", time.Since(start),
	)

	s.publish(r.Context(), events.TopicImportCompleted, events.ImportCompleted{
		JobID:   jobID,
		OK:      res.OK,
		Message: res.Message,
		Stats:   res.Stats,
	})

	status := http.StatusOK
	if !res.OK {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, importResponse{JobID: jobID, ImportResult: res})
}

// handleExport handles GET /v1/export: the whole store as one BeerJSON
// document, read in a single transaction.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	jobID, err := idgen.Generate()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate job id")
		return
	}

	var doc map[string]any
	err = s.store.RunInTransaction(r.Context(), func(tx store.Store) error {
		var err error
		doc, err = s.coding.WriteDocument(r.Context(), tx)
		return err
	})
	if err != nil {
		slog.Error("export failed", "job", jobID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export document")
		return
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode document")
		return
	}

	s.publish(r.Context(), events.TopicExportCompleted, events.ExportCompleted{
		JobID: jobID,
		Bytes: buf.Len(),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
