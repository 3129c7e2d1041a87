// Package data serves the fixed data payload as an HTTP Cloud Function.
package data

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

func init() {
	functions.HTTP("Data", dataHandler)
}

// Response is the function payload. The message spelling is fixed.
type Response struct {
	Message string `json:"message"`
}

func dataHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":  http.StatusText(http.StatusMethodNotAllowed),
			"status": http.StatusMethodNotAllowed,
			"detail": "method " + r.Method + " not allowed",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{Message: "helllo"})
}
