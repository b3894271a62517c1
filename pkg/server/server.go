// Package server exposes the assistant over a small local HTTP surface:
// typed commands in, turns out, plus the synthesized audio files.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"lyra/pkg/assistant"
	"lyra/pkg/config"
	"lyra/pkg/models"
)

type commandRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// StartServer blocks serving the HTTP API on the configured port.
func StartServer(engine *assistant.Assistant, cfg *models.Config) {
	mux := NewMux(engine, cfg)

	port := cfg.ServerPort
	if port == "" {
		port = config.SERVER_PORT
	}
	log.Printf("SERVER: listening at http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatalf("SERVER: failed to start: %v", err)
	}
}

// NewMux builds the HTTP routes: POST /command, GET /history, and the
// synthesized audio files under /temp_audio/.
func NewMux(engine *assistant.Assistant, cfg *models.Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/command", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req commandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		lang := req.Lang
		if lang == "" {
			lang = cfg.Language
		}
		turn := engine.RespondToText(req.Text, lang)
		writeJSON(w, turn)
	})

	mux.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, engine.History().Snapshot())
	})

	tempAudioDir := config.TempAudioPath()
	mux.Handle("/temp_audio/", http.StripPrefix("/temp_audio/", http.FileServer(http.Dir(tempAudioDir))))

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("SERVER: response encode failed: %v", err)
	}
}
