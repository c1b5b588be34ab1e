package game

import "math"

// EnemyView is what a controller gets to know about an opposing agent for
// one update: identity, position, and distance from the controlled agent.
// For seekers the director filters the list down to hiders that are in
// vision range with clear line of sight; hiders see every seeker.
type EnemyView struct {
	ID   int
	Pos  Vec3
	Dist float64
}

// Controller is one agent's behavior state machine. Update consumes the
// current tick's facts and returns the desired target position and state;
// it never mutates the agent or the environment. Controllers keep private
// throttling state, which Reset clears when a session restarts.
type Controller interface {
	Update(a *Agent, env *Environment, enemies []EnemyView, dt float64) (Vec3, BehaviorState)
	Reset()
}

// NewController builds the role-appropriate controller for an agent.
func NewController(role Role, env *Environment, cfg Config) Controller {
	if role == RoleSeeker {
		return newSeekerController(env, cfg)
	}
	return newHiderController(cfg)
}

// closestEnemy picks the nearest view, breaking distance ties by lowest id
// so the choice is reproducible.
func closestEnemy(views []EnemyView) (EnemyView, bool) {
	if len(views) == 0 {
		return EnemyView{}, false
	}
	best := views[0]
	for _, v := range views[1:] {
		if v.Dist < best.Dist || (v.Dist == best.Dist && v.ID < best.ID) {
			best = v
		}
	}
	return best, true
}

// patrolWaypoints lays a grid of waypoints over the play area, the same
// coverage the seekers patrol regardless of obstacle layout.
func patrolWaypoints(playAreaSize float64) []Vec3 {
	side := int(math.Sqrt(patrolPointCount))
	if side < 2 {
		side = 2
	}
	half := playAreaSize / 2.0
	span := playAreaSize - 2*patrolMargin
	if span <= 0 {
		return []Vec3{{X: 0, Y: patrolAltitude, Z: 0}}
	}
	points := make([]Vec3, 0, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			points = append(points, Vec3{
				X: -half + patrolMargin + float64(i)/float64(side-1)*span,
				Y: patrolAltitude,
				Z: -half + patrolMargin + float64(j)/float64(side-1)*span,
			})
		}
	}
	return points
}
