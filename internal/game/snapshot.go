package game

// AgentSnapshot is one agent's state frozen at the end of a tick.
type AgentSnapshot struct {
	ID       int
	Role     Role
	Pos      Vec3
	Target   Vec3
	State    BehaviorState
	Detected bool
	Caught   bool
}

// ObstacleSnapshot mirrors one obstacle for external readers.
type ObstacleSnapshot struct {
	Min    Vec3
	Max    Vec3
	Height float64
}

// SessionSnapshot is the immutable view published at the end of every tick.
// External consumers (renderer, telemetry, recorder) read snapshots instead
// of the live session state, so no locking is needed on the tick path.
type SessionSnapshot struct {
	Phase       Phase
	Elapsed     float64
	Remaining   float64
	CaughtCount int
	TotalHiders int
	Winner      Winner
	Agents      []AgentSnapshot
	Obstacles   []ObstacleSnapshot
}
