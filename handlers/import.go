package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/hawkeyemusic/hawkeyebackend/workers"
)

type ImportHandler struct {
	Runner *workers.ImportRunner

	// fallback source when the request omits csvUrl
	DefaultSourceURL string
}

// StartImport fires the catalog import in the background and acknowledges
// immediately; completion is observable only through GetImportRun and logs
func (ih *ImportHandler) StartImport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CSVURL string `json:"csvUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}

	sourceURL := req.CSVURL
	if sourceURL == "" {
		sourceURL = ih.DefaultSourceURL
	}
	if sourceURL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "CSV URL is required"})
		return
	}
	if _, err := url.ParseRequestURI(sourceURL); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid CSV URL"})
		return
	}

	runID, ok := ih.Runner.QueueImport(sourceURL)
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Import queue is full, try again later"})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "CSV import started",
		"status":  "processing",
		"run_id":  runID,
	})
}

func (ih *ImportHandler) GetImportRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "run_id")

	run, ok := ih.Runner.GetRun(runID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Import run not found"})
		return
	}
	writeJSON(w, http.StatusOK, run)
}
