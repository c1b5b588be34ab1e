package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"droneseek/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type respawnPayload struct {
	Preset string `json:"preset"`
}

type ackDTO struct {
	Type  string `json:"type"`
	Of    string `json:"of"`
	Error string `json:"error,omitempty"`
}

// serveWS upgrades the connection, streams state snapshots at the
// configured push rate, and handles control commands (start, stop,
// respawn) from the client.
func serveWS(sim *Simulation, cfg Config, logger zerolog.Logger, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	writes := make(chan any, 16)
	done := make(chan struct{})

	// Writer goroutine: snapshots at the push rate plus command acks.
	go func() {
		ticker := time.NewTicker(time.Duration(float64(time.Second) / cfg.PushRateHz))
		defer ticker.Stop()
		var last *game.SessionSnapshot
		for {
			select {
			case <-done:
				return
			case msg := <-writes:
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			case <-ticker.C:
				snap := sim.Snapshot()
				if snap == last {
					continue
				}
				last = snap
				if err := conn.WriteJSON(snapshotDTO(snap)); err != nil {
					return
				}
			}
		}
	}()
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			writes <- ackDTO{Type: "error", Error: "malformed message"}
			continue
		}
		writes <- handleCommand(sim, msg)
	}
}

func handleCommand(sim *Simulation, msg inboundMessage) ackDTO {
	switch msg.Type {
	case "start":
		if err := sim.StartSession(); err != nil {
			return ackDTO{Type: "error", Of: msg.Type, Error: err.Error()}
		}
	case "stop":
		sim.StopSession()
	case "respawn":
		var p respawnPayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				return ackDTO{Type: "error", Of: msg.Type, Error: "malformed payload"}
			}
		}
		if err := sim.Respawn(p.Preset); err != nil {
			return ackDTO{Type: "error", Of: msg.Type, Error: err.Error()}
		}
	default:
		return ackDTO{Type: "error", Of: msg.Type, Error: "unknown command"}
	}
	return ackDTO{Type: "ack", Of: msg.Type}
}
