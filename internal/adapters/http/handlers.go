package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// detailPayload is the client-facing failure body.
type detailPayload struct {
	Detail string `json:"detail"`
}

// writeDetail sends a failure response with a human-readable detail message.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailPayload{Detail: detail})
}

// internalError logs the real error and returns a generic message to the
// client, preventing internal detail leakage.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	writeDetail(w, http.StatusInternalServerError, "internal server error")
}

// pathKey extracts the item key from a subtree path, e.g.
// "/atletas/Joao" with prefix "/atletas" yields "Joao"; collection
// requests yield "".
func pathKey(path, prefix string) string {
	return strings.Trim(strings.TrimPrefix(path, prefix), "/")
}

// handleHealth handles GET /healthz.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePerfSnapshot handles GET /perf, a diagnostics endpoint exposing
// aggregated request and query timings from the ring collector.
func handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		writeDetail(w, http.StatusNotFound, "perf collector disabled")
		return
	}
	snap := perfCollector.Snapshot(timeNow().Add(-15*time.Minute), 10)
	writeJSON(w, http.StatusOK, snap)
}
