package game

import (
	"fmt"
	"math/rand"
	"sort"
)

// Phase is the session lifecycle: Waiting until the first start command,
// Active while the clock runs, Ended terminally.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseActive
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Winner is the session outcome. WinnerNone covers both a session that has
// not ended and one stopped early.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerSeekers
	WinnerHiders
)

func (w Winner) String() string {
	switch w {
	case WinnerSeekers:
		return "seekers"
	case WinnerHiders:
		return "hiders"
	}
	return "none"
}

// Director owns the hide-and-seek session: the environment, the agents and
// their controllers, the clock, and the detection/capture rules. All
// mutation happens synchronously inside Start, Stop, and Tick, which must
// be called from a single owning goroutine. Everything external reads the
// snapshot published at the end of each tick.
type Director struct {
	cfg Config
	env *Environment

	agents  []*Agent // ascending id, seekers first
	seekers []*Agent
	hiders  []*Agent
	ctrls   []Controller // parallel to agents

	phase       Phase
	elapsed     float64
	caughtCount int
	winner      Winner

	obstacleSnaps []ObstacleSnapshot
	snap          *SessionSnapshot
}

// NewDirector validates cfg, builds the environment from the configured
// seed, and creates one agent per drone: ids [0, SeekerCount) are seekers,
// the rest hiders. The session starts in PhaseWaiting.
func NewDirector(cfg Config) (*Director, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.ObstacleSeed))
	env := NewEnvironment(cfg.PlayAreaSize, cfg.NumObstacles, rng)

	d := &Director{
		cfg:   cfg,
		env:   env,
		phase: PhaseWaiting,
	}
	total := cfg.SeekerCount + cfg.HiderCount
	for id := 0; id < total; id++ {
		role := RoleHider
		if id < cfg.SeekerCount {
			role = RoleSeeker
		}
		a := &Agent{ID: id, Role: role, State: initialState(role)}
		d.agents = append(d.agents, a)
		d.ctrls = append(d.ctrls, NewController(role, env, cfg))
		if role == RoleSeeker {
			d.seekers = append(d.seekers, a)
		} else {
			d.hiders = append(d.hiders, a)
		}
	}

	for _, b := range env.Obstacles() {
		min, max := b.Bounds()
		d.obstacleSnaps = append(d.obstacleSnaps, ObstacleSnapshot{Min: min, Max: max, Height: b.Size.Y})
	}
	d.snap = d.buildSnapshot(cfg.GameDuration)
	return d, nil
}

func (d *Director) Config() Config            { return d.cfg }
func (d *Director) Environment() *Environment { return d.env }
func (d *Director) Phase() Phase              { return d.phase }
func (d *Director) Winner() Winner            { return d.winner }

// Agents returns the agents in ascending id order. The slice is owned by
// the director; external readers should use Snapshot instead.
func (d *Director) Agents() []*Agent { return d.agents }

// Start begins a session from Waiting or Ended: the clock, the caught
// count, and every agent's flags and behavior state are reset, then the
// phase moves to Active. Starting an already active session is an error.
func (d *Director) Start() error {
	if d.phase == PhaseActive {
		return fmt.Errorf("session already active")
	}
	if len(d.hiders) == 0 {
		return fmt.Errorf("%w: cannot start with zero hiders", ErrInvalidConfig)
	}
	d.elapsed = 0
	d.caughtCount = 0
	d.winner = WinnerNone
	for i, a := range d.agents {
		a.reset()
		d.ctrls[i].Reset()
	}
	d.phase = PhaseActive
	d.snap = d.buildSnapshot(d.cfg.GameDuration)
	return nil
}

// Stop forces the session to Ended with no winner. Stopping a session that
// already ended is a no-op.
func (d *Director) Stop() {
	if d.phase == PhaseEnded {
		return
	}
	d.phase = PhaseEnded
	d.winner = WinnerNone
	d.snap = d.buildSnapshot(d.remaining())
}

func (d *Director) remaining() float64 {
	return maxf(0, d.cfg.GameDuration-d.elapsed)
}

// Tick advances the session by dt. positions maps agent id to the current
// position owned by the motion module; an agent with no entry is skipped
// for this tick. Processing order is fixed: positions are read, the clock
// advances, every seeker/hider pair is checked for capture then detection
// in ascending id order, controllers run in ascending id order, the win
// condition is evaluated, and the new snapshot is published and returned.
// Tick is a no-op outside PhaseActive.
func (d *Director) Tick(dt float64, positions map[int]Vec3) *SessionSnapshot {
	if d.phase != PhaseActive {
		return d.snap
	}

	present := make(map[int]bool, len(d.agents))
	for _, a := range d.agents {
		if pos, ok := positions[a.ID]; ok {
			a.Pos = pos
			present[a.ID] = true
		}
	}

	d.elapsed += dt

	// Capture beats detection: a pair inside both radii resolves as a
	// catch. Capture ignores occlusion, detection requires line of sight.
	for _, s := range d.seekers {
		if !present[s.ID] {
			continue
		}
		for _, h := range d.hiders {
			if h.Caught || !present[h.ID] {
				continue
			}
			dist := s.Pos.DistTo(h.Pos)
			if dist <= d.cfg.CatchRadius {
				h.Caught = true
				h.Detected = true
				h.State = StateCaught
				d.caughtCount++
				continue
			}
			if dist <= d.cfg.DetectionRadius && d.env.IsLineOfSightClear(s.Pos, h.Pos) {
				// Sticky: detection is never revoked for the
				// rest of the session.
				h.Detected = true
			}
		}
	}

	for i, a := range d.agents {
		if !present[a.ID] {
			continue
		}
		target, state := d.ctrls[i].Update(a, d.env, d.enemyViews(a, present), dt)
		a.Target = target
		if !a.Caught {
			a.State = state
		}
	}

	if d.caughtCount == len(d.hiders) {
		d.winner = WinnerSeekers
		d.phase = PhaseEnded
	} else if d.remaining() <= 0 {
		d.winner = WinnerHiders
		d.phase = PhaseEnded
	}

	d.snap = d.buildSnapshot(d.remaining())
	return d.snap
}

// enemyViews builds the opposing-agent views for one controller update.
// Seekers see uncaught hiders inside SeekerVisionRange with clear line of
// sight; hiders see every present seeker. Views are sorted by distance,
// then id, so closest-enemy selection is reproducible.
func (d *Director) enemyViews(a *Agent, present map[int]bool) []EnemyView {
	var views []EnemyView
	if a.Role == RoleSeeker {
		for _, h := range d.hiders {
			if h.Caught || !present[h.ID] {
				continue
			}
			dist := a.Pos.DistTo(h.Pos)
			if dist <= d.cfg.SeekerVisionRange && d.env.IsLineOfSightClear(a.Pos, h.Pos) {
				views = append(views, EnemyView{ID: h.ID, Pos: h.Pos, Dist: dist})
			}
		}
	} else {
		for _, s := range d.seekers {
			if !present[s.ID] {
				continue
			}
			views = append(views, EnemyView{ID: s.ID, Pos: s.Pos, Dist: a.Pos.DistTo(s.Pos)})
		}
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Dist != views[j].Dist {
			return views[i].Dist < views[j].Dist
		}
		return views[i].ID < views[j].ID
	})
	return views
}

// Snapshot returns the most recently published snapshot. It is never nil
// and safe to hand to other goroutines.
func (d *Director) Snapshot() *SessionSnapshot { return d.snap }

func (d *Director) buildSnapshot(remaining float64) *SessionSnapshot {
	snap := &SessionSnapshot{
		Phase:       d.phase,
		Elapsed:     d.elapsed,
		Remaining:   remaining,
		CaughtCount: d.caughtCount,
		TotalHiders: len(d.hiders),
		Winner:      d.winner,
		Agents:      make([]AgentSnapshot, 0, len(d.agents)),
		Obstacles:   d.obstacleSnaps,
	}
	for _, a := range d.agents {
		snap.Agents = append(snap.Agents, AgentSnapshot{
			ID:       a.ID,
			Role:     a.Role,
			Pos:      a.Pos,
			Target:   a.Target,
			State:    a.State,
			Detected: a.Detected,
			Caught:   a.Caught,
		})
	}
	return snap
}
