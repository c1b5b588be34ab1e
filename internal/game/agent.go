package game

// Role fixes which side an agent plays for the whole session.
type Role int

const (
	RoleSeeker Role = iota
	RoleHider
)

func (r Role) String() string {
	switch r {
	case RoleSeeker:
		return "seeker"
	case RoleHider:
		return "hider"
	}
	return "unknown"
}

// BehaviorState labels what an agent's controller is currently doing.
// StateCaught is absorbing: once a hider is caught it never leaves it until
// the session is restarted.
type BehaviorState int

const (
	StatePatrol BehaviorState = iota
	StateChase
	StateHide
	StateFlee
	StateCaught
)

func (s BehaviorState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateHide:
		return "hide"
	case StateFlee:
		return "flee"
	case StateCaught:
		return "caught"
	}
	return "unknown"
}

func initialState(r Role) BehaviorState {
	if r == RoleSeeker {
		return StatePatrol
	}
	return StateHide
}

// Agent is one drone as the rules engine sees it. Position is written by
// the motion side each tick and only read here; behavior state and the
// detected/caught flags are owned by the director.
type Agent struct {
	ID   int
	Role Role

	Pos    Vec3
	Target Vec3

	State    BehaviorState
	Detected bool
	Caught   bool
}

func (a *Agent) reset() {
	a.State = initialState(a.Role)
	a.Detected = false
	a.Caught = false
	a.Target = a.Pos
}
