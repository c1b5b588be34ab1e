package game

import (
	"errors"
	"testing"
)

func directorConfig(seekers, hiders int) Config {
	cfg := DefaultConfig()
	cfg.SeekerCount = seekers
	cfg.HiderCount = hiders
	cfg.NumObstacles = 0 // open arena: every pair has line of sight
	return cfg
}

func mustDirector(t *testing.T, cfg Config) *Director {
	t.Helper()
	d, err := NewDirector(cfg)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	return d
}

func startedDirector(t *testing.T, cfg Config) *Director {
	t.Helper()
	d := mustDirector(t, cfg)
	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return d
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero seekers", func(c *Config) { c.SeekerCount = 0 }},
		{"negative hiders", func(c *Config) { c.HiderCount = -1 }},
		{"zero duration", func(c *Config) { c.GameDuration = 0 }},
		{"catch beyond detection", func(c *Config) { c.CatchRadius = c.DetectionRadius + 1 }},
		{"vision below detection", func(c *Config) { c.SeekerVisionRange = c.DetectionRadius - 1 }},
		{"negative obstacles", func(c *Config) { c.NumObstacles = -3 }},
		{"zero play area", func(c *Config) { c.PlayAreaSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := NewDirector(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestStartLifecycle(t *testing.T) {
	d := mustDirector(t, directorConfig(1, 2))
	if d.Phase() != PhaseWaiting {
		t.Fatalf("new session should be waiting, got %v", d.Phase())
	}
	if err := d.Start(); err != nil {
		t.Fatalf("Start from waiting: %v", err)
	}
	if d.Phase() != PhaseActive {
		t.Fatalf("expected active, got %v", d.Phase())
	}
	if err := d.Start(); err == nil {
		t.Fatal("Start while active should fail")
	}

	d.Stop()
	if d.Phase() != PhaseEnded || d.Winner() != WinnerNone {
		t.Fatalf("Stop should end with no winner, got %v/%v", d.Phase(), d.Winner())
	}

	// Restart from Ended resets everything.
	if err := d.Start(); err != nil {
		t.Fatalf("Start from ended: %v", err)
	}
	snap := d.Snapshot()
	if snap.CaughtCount != 0 || snap.Elapsed != 0 || snap.Winner != WinnerNone {
		t.Fatalf("restart did not reset session state: %+v", snap)
	}
	for _, a := range snap.Agents {
		if a.Caught || a.Detected {
			t.Fatalf("agent %d flags not cleared on restart", a.ID)
		}
	}
}

func TestTickNoopOutsideActive(t *testing.T) {
	d := mustDirector(t, directorConfig(1, 2))
	before := d.Snapshot()
	after := d.Tick(Dt, map[int]Vec3{0: {}, 1: {X: 1}, 2: {X: 2}})
	if after != before {
		t.Fatal("tick before start should be a no-op")
	}
}

func TestCapturePrecedesDetection(t *testing.T) {
	// Hider at 1.0m with catch_radius 1.5 and detection_radius 5: this must
	// resolve as a catch, not a detection.
	d := startedDirector(t, directorConfig(1, 2))
	snap := d.Tick(Dt, map[int]Vec3{
		0: {X: 0, Y: 5, Z: 0},  // seeker
		1: {X: 1, Y: 5, Z: 0},  // hider in catch range
		2: {X: 20, Y: 5, Z: 0}, // hider far away
	})

	caught := snap.Agents[1]
	if !caught.Caught {
		t.Fatal("hider inside catch radius should be caught")
	}
	if caught.State != StateCaught {
		t.Fatalf("caught hider state should be caught, got %v", caught.State)
	}
	if snap.CaughtCount != 1 {
		t.Fatalf("expected caught count 1, got %d", snap.CaughtCount)
	}
	if snap.Phase != PhaseActive {
		t.Fatalf("session should remain active with one hider free, got %v", snap.Phase)
	}
	if snap.Remaining > d.Config().GameDuration || snap.Remaining < d.Config().GameDuration-1 {
		t.Fatalf("remaining time should be near the full duration, got %g", snap.Remaining)
	}
}

func TestDetectionRequiresLineOfSight(t *testing.T) {
	cfg := directorConfig(1, 1)
	d := startedDirector(t, cfg)
	// Wall between the pair blocks detection.
	d.env = envWithBoxes(cfg.PlayAreaSize, Box{Center: Vec3{X: 2, Y: 2.5}, Size: Vec3{X: 1, Y: 5, Z: 4}})

	positions := map[int]Vec3{
		0: {X: 0, Y: 2, Z: 0},
		1: {X: 4, Y: 2, Z: 0}, // distance 4.0 < detection_radius 5.0
	}
	snap := d.Tick(Dt, positions)
	if snap.Agents[1].Detected {
		t.Fatal("occluded hider must not be detected")
	}

	// Same geometry without the wall: detection fires.
	d.env = envWithBoxes(cfg.PlayAreaSize)
	snap = d.Tick(Dt, positions)
	if !snap.Agents[1].Detected {
		t.Fatal("hider in range with clear line of sight should be detected")
	}
}

func TestDetectionIsSticky(t *testing.T) {
	d := startedDirector(t, directorConfig(1, 1))
	positions := map[int]Vec3{
		0: {X: 0, Y: 5, Z: 0},
		1: {X: 4, Y: 5, Z: 0},
	}
	snap := d.Tick(Dt, positions)
	if !snap.Agents[1].Detected {
		t.Fatal("expected detection at 4m in the open")
	}

	// Move the hider far out of range: the flag stays set.
	positions[1] = Vec3{X: 20, Y: 5, Z: 0}
	snap = d.Tick(Dt, positions)
	if !snap.Agents[1].Detected {
		t.Fatal("detection must be sticky for the rest of the session")
	}
}

func TestSeekersWinWhenAllCaught(t *testing.T) {
	d := startedDirector(t, directorConfig(1, 3))
	// Park every hider on top of the seeker.
	positions := map[int]Vec3{
		0: {Y: 5},
		1: {X: 0.5, Y: 5},
		2: {X: -0.5, Y: 5},
		3: {Z: 0.5, Y: 5},
	}
	snap := d.Tick(Dt, positions)
	if snap.CaughtCount != 3 {
		t.Fatalf("expected all 3 hiders caught, got %d", snap.CaughtCount)
	}
	if snap.Phase != PhaseEnded || snap.Winner != WinnerSeekers {
		t.Fatalf("expected seekers win on the capture tick, got %v/%v", snap.Phase, snap.Winner)
	}
}

func TestHidersWinOnTimeout(t *testing.T) {
	cfg := directorConfig(1, 2)
	cfg.GameDuration = 1.0
	d := startedDirector(t, cfg)
	positions := map[int]Vec3{
		0: {X: -20, Y: 5},
		1: {X: 20, Y: 5},
		2: {X: 20, Y: 5, Z: 10},
	}

	ticks := 0
	for d.Phase() == PhaseActive {
		d.Tick(Dt, positions)
		ticks++
		if ticks > int(3*SimHz) {
			t.Fatal("session never ended")
		}
	}
	snap := d.Snapshot()
	if snap.Winner != WinnerHiders {
		t.Fatalf("expected hiders win on timeout, got %v", snap.Winner)
	}
	if ticks < int(SimHz) || ticks > int(SimHz)+1 {
		t.Fatalf("expected the session to end when the clock ran out, got %d ticks", ticks)
	}
}

func TestEndedSessionIsFrozen(t *testing.T) {
	cfg := directorConfig(1, 1)
	cfg.GameDuration = 0.5
	d := startedDirector(t, cfg)
	positions := map[int]Vec3{0: {X: -20, Y: 5}, 1: {X: 20, Y: 5}}

	for d.Phase() == PhaseActive {
		d.Tick(Dt, positions)
	}
	ended := d.Snapshot()

	// Even a catch-range position change must not mutate anything now.
	positions[1] = Vec3{X: -20, Y: 5}
	for i := 0; i < 10; i++ {
		after := d.Tick(Dt, positions)
		if after.CaughtCount != ended.CaughtCount || after.Winner != ended.Winner {
			t.Fatal("ended session state changed on tick")
		}
		if after.Agents[1].Caught {
			t.Fatal("agent caught flag changed after session end")
		}
	}
}

func TestMissingPositionSkipsAgent(t *testing.T) {
	d := startedDirector(t, directorConfig(1, 2))
	// Hider 1 has no position this tick; it must not be caught even though
	// its last known position would be in range.
	snap := d.Tick(Dt, map[int]Vec3{
		0: {Y: 5},
		2: {X: 20, Y: 5},
	})
	if snap.Agents[1].Caught || snap.Agents[1].Detected {
		t.Fatal("agent with missing position should be skipped")
	}
	if snap.Phase != PhaseActive {
		t.Fatalf("missing position must not end the session, got %v", snap.Phase)
	}

	// Position shows up next tick and normal rules resume.
	snap = d.Tick(Dt, map[int]Vec3{
		0: {Y: 5},
		1: {X: 1, Y: 5},
		2: {X: 20, Y: 5},
	})
	if !snap.Agents[1].Caught {
		t.Fatal("hider should be caught once its position is supplied")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// 2 seekers, 7 hiders, 120s: one hider spawns inside catch range and is
	// caught on the first tick; the session stays active.
	cfg := directorConfig(2, 7)
	d := startedDirector(t, cfg)

	positions := map[int]Vec3{
		0: {X: 0, Y: 5, Z: 0},
		1: {X: 15, Y: 5, Z: 15},
		2: {X: 1, Y: 5, Z: 0}, // inside catch_radius of seeker 0
	}
	for id := 3; id <= 8; id++ {
		positions[id] = Vec3{X: -15 + float64(id), Y: 5, Z: -18}
	}

	snap := d.Tick(Dt, positions)
	if snap.CaughtCount != 1 {
		t.Fatalf("expected 1 catch on the first tick, got %d", snap.CaughtCount)
	}
	if snap.Phase != PhaseActive {
		t.Fatalf("expected session to remain active, got %v", snap.Phase)
	}
	if snap.Remaining < 119 || snap.Remaining > 120 {
		t.Fatalf("expected remaining near 120s, got %g", snap.Remaining)
	}
	if snap.TotalHiders != 7 {
		t.Fatalf("expected 7 hiders, got %d", snap.TotalHiders)
	}

	// Every free agent received a target from its controller.
	for _, a := range snap.Agents {
		if a.Caught {
			continue
		}
		if a.Target == (Vec3{}) && a.Pos != (Vec3{}) {
			t.Fatalf("agent %d has no target", a.ID)
		}
	}
}
