package app

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// apiError writes the protocol error shape: a flat message plus the status.
// Secret values never pass through here.
func apiError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]any{
		"error":  message,
		"status": status,
	})
}
