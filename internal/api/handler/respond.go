package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body with the given status.
// Encoding errors are dropped: the status line is already on the wire.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
