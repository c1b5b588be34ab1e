package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"droneseek/internal/record"
)

func newMux(sim *Simulation, cfg Config, logger zerolog.Logger, index *record.Index) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(sim, cfg, logger, w, r)
	})

	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, snapshotDTO(sim.Snapshot()))
	})

	mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		if index == nil {
			writeJSON(w, []record.SessionRow{})
			return
		}
		rows, err := index.List()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if rows == nil {
			rows = []record.SessionRow{}
		}
		writeJSON(w, rows)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
