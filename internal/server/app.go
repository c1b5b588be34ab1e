package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"droneseek/internal/record"
)

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// StartApp wires the simulation, the recorder, and the HTTP surface, then
// blocks serving until the listener fails.
func StartApp(cfg Config) error {
	logger := newLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return err
	}

	var index *record.Index
	if cfg.Record.Enabled {
		ix, err := record.OpenIndex(filepath.Join(cfg.Record.Dir, "sessions.db"))
		if err != nil {
			return err
		}
		defer ix.Close()
		index = ix
	}

	sim, err := NewSimulation(cfg, logger, index)
	if err != nil {
		return err
	}
	go sim.Run()
	defer sim.Shutdown()

	logger.Info().
		Str("addr", cfg.Addr).
		Int("seekers", cfg.Game.SeekerCount).
		Int("hiders", cfg.Game.HiderCount).
		Int64("seed", cfg.Game.ObstacleSeed).
		Msg("starting hide-and-seek server")

	return http.ListenAndServe(cfg.Addr, newMux(sim, cfg, logger, index))
}
