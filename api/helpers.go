package api

import (
	"encoding/json"
	"net/http"

	"go.vocdoni.io/dvote/log"
)

// httpWriteJSON writes the response envelope with the given status code.
func httpWriteJSON(w http.ResponseWriter, status int, message string, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Warnw("failed to write on response", "error", err)
	}
}

// httpWriteOK writes a 200 envelope with the given message and data.
func httpWriteOK(w http.ResponseWriter, message string, data map[string]any) {
	httpWriteJSON(w, http.StatusOK, message, data)
}

// httpWriteCreated writes a 201 envelope with the given message and data.
func httpWriteCreated(w http.ResponseWriter, message string, data map[string]any) {
	httpWriteJSON(w, http.StatusCreated, message, data)
}
