package handle

import (
	"encoding/json"
	"net/http"

	"emotion-detector/api/internal/emotion"
)

type Handle struct {
	clf emotion.Classifier
}

func New(clf emotion.Classifier) *Handle {
	return &Handle{
		clf: clf,
	}
}

// MessageResponse is the only body shape the API writes.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, MessageResponse{Message: msg})
}
