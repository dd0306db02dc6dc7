package httpserver

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

type errorEnvelope struct {
	Status int    `json:"status"`
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Status: status, Data: data})
}

func writeError(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, errorEnvelope{Status: status, Reason: reason})
}
