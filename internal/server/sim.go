package server

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"droneseek/internal/game"
	"droneseek/internal/record"
)

// Simulation couples the rules engine to the motion model and drives both
// from a single loop goroutine. All mutation happens under mu inside
// stepLocked; everything outward-facing reads the published snapshot.
type Simulation struct {
	mu       sync.Mutex
	director *game.Director
	fleet    *game.Fleet
	rng      *rand.Rand
	cfg      Config
	log      zerolog.Logger

	sessionID  string
	startedAt  time.Time
	frames     *record.FrameWriter
	index      *record.Index
	lastCaught int

	stop chan struct{}
	done chan struct{}
}

// NewSimulation builds the director and fleet from cfg. index may be nil
// when recording is disabled.
func NewSimulation(cfg Config, logger zerolog.Logger, index *record.Index) (*Simulation, error) {
	director, err := game.NewDirector(cfg.Game)
	if err != nil {
		return nil, err
	}
	if n := director.Environment().PlacementShortfalls(); n > 0 {
		logger.Warn().Int("obstacles", n).Msg("obstacle placement accepted best-effort overlap")
	}

	rng := rand.New(rand.NewSource(cfg.Game.ObstacleSeed + 1))
	total := cfg.Game.SeekerCount + cfg.Game.HiderCount
	positions := game.SpawnPositions(total, cfg.SpawnPreset, cfg.SpawnSpacing, cfg.SpawnAltitude, rng)

	return &Simulation{
		director: director,
		fleet:    game.NewFleet(positions),
		rng:      rng,
		cfg:      cfg,
		log:      logger,
		index:    index,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Run drives the fixed-rate simulation loop until Shutdown.
func (s *Simulation) Run() {
	defer close(s.done)
	hz := float64(game.SimHz)
	ticker := time.NewTicker(time.Duration(float64(time.Second) / hz))
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.stepLocked()
			s.mu.Unlock()
		}
	}
}

// Shutdown stops the loop, ends any active session, and flushes the
// recorder.
func (s *Simulation) Shutdown() {
	close(s.stop)
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.director.Phase() == game.PhaseActive {
		s.director.Stop()
	}
	s.finishRecordingLocked(s.director.Snapshot())
}

// stepLocked advances motion and rules by one tick and feeds the resulting
// targets back to the fleet.
func (s *Simulation) stepLocked() *game.SessionSnapshot {
	s.fleet.Update(game.Dt)
	wasActive := s.director.Phase() == game.PhaseActive
	snap := s.director.Tick(game.Dt, s.fleet.Positions())
	if !wasActive {
		return snap
	}

	for _, a := range snap.Agents {
		s.fleet.SetTarget(a.ID, a.Target)
	}
	if snap.CaughtCount > s.lastCaught {
		s.log.Info().
			Int("caught", snap.CaughtCount).
			Int("total", snap.TotalHiders).
			Msg("hider caught")
		s.lastCaught = snap.CaughtCount
	}
	if s.frames != nil {
		if err := s.frames.Write(snapshotDTO(snap)); err != nil {
			s.log.Error().Err(err).Msg("frame write failed, disabling recorder")
			_ = s.frames.Close()
			s.frames = nil
		}
	}
	if snap.Phase == game.PhaseEnded {
		s.log.Info().
			Str("winner", snap.Winner.String()).
			Float64("elapsed", snap.Elapsed).
			Int("caught", snap.CaughtCount).
			Msg("session ended")
		s.finishRecordingLocked(snap)
	}
	return snap
}

// StartSession resets and starts a new session, opening a fresh frame log
// when recording is enabled.
func (s *Simulation) StartSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.director.Start(); err != nil {
		return err
	}
	s.sessionID = newSessionID(s.rng)
	s.startedAt = time.Now()
	s.lastCaught = 0

	if s.cfg.Record.Enabled {
		fw, err := record.NewFrameWriter(s.cfg.Record.Dir, s.sessionID)
		if err != nil {
			// Recording failure must not block the game.
			s.log.Error().Err(err).Msg("cannot open frame log, session will not be recorded")
		} else {
			s.frames = fw
		}
	}
	s.log.Info().
		Str("session", s.sessionID).
		Float64("duration", s.cfg.Game.GameDuration).
		Int("seekers", s.cfg.Game.SeekerCount).
		Int("hiders", s.cfg.Game.HiderCount).
		Msg("session started")
	return nil
}

// StopSession forces the session to end with no winner.
func (s *Simulation) StopSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.director.Phase() != game.PhaseActive {
		return
	}
	s.director.Stop()
	s.log.Info().Str("session", s.sessionID).Msg("session stopped early")
	s.finishRecordingLocked(s.director.Snapshot())
}

// Respawn teleports the fleet into a fresh formation. Valid any time; the
// next tick reads the new positions.
func (s *Simulation) Respawn(preset string) error {
	if preset == "" {
		preset = s.cfg.SpawnPreset
	}
	found := false
	for _, p := range game.SpawnPresets() {
		if p == preset {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown spawn preset %q", preset)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	positions := game.SpawnPositions(len(s.fleet.Drones), preset, s.cfg.SpawnSpacing, s.cfg.SpawnAltitude, s.rng)
	s.fleet.Reposition(positions)
	s.log.Info().Str("preset", preset).Msg("fleet respawned")
	return nil
}

// Snapshot returns the latest published snapshot.
func (s *Simulation) Snapshot() *game.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.director.Snapshot()
}

func (s *Simulation) finishRecordingLocked(snap *game.SessionSnapshot) {
	if s.frames != nil {
		path := s.frames.Path()
		if err := s.frames.Close(); err != nil {
			s.log.Error().Err(err).Msg("frame log close failed")
		}
		s.frames = nil
		if s.index != nil {
			row := record.SessionRow{
				ID:          s.sessionID,
				StartedAt:   s.startedAt,
				Duration:    snap.Elapsed,
				Winner:      snap.Winner.String(),
				CaughtCount: snap.CaughtCount,
				TotalHiders: snap.TotalHiders,
				FramePath:   path,
			}
			if err := s.index.Put(row); err != nil {
				s.log.Error().Err(err).Str("session", s.sessionID).Msg("session index write failed")
			}
		}
	}
}

func newSessionID(rng *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return "session-" + string(b)
}
