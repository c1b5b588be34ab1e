package game

// seekerController implements Patrol <-> Chase. While any hider is visible
// the seeker chases the closest one, re-targeting every tick so pursuit
// tracks a moving target. With nothing visible it cycles through the fixed
// patrol grid, advancing at most once per patrolUpdateInterval.
type seekerController struct {
	interval  float64
	waypoints []Vec3

	wpIndex     int
	sinceChange float64
	haveTarget  bool
	target      Vec3
}

func newSeekerController(env *Environment, cfg Config) *seekerController {
	return &seekerController{
		interval:  cfg.PatrolUpdateInterval,
		waypoints: patrolWaypoints(env.PlayAreaSize),
	}
}

func (c *seekerController) Reset() {
	c.wpIndex = 0
	c.sinceChange = 0
	c.haveTarget = false
	c.target = Vec3{}
}

func (c *seekerController) Update(a *Agent, env *Environment, visible []EnemyView, dt float64) (Vec3, BehaviorState) {
	c.sinceChange += dt

	if quarry, ok := closestEnemy(visible); ok {
		c.target = quarry.Pos
		c.haveTarget = true
		return c.target, StateChase
	}

	if !c.haveTarget {
		c.target = c.waypoints[c.wpIndex]
		c.haveTarget = true
		c.sinceChange = 0
	} else if c.sinceChange > c.interval {
		c.wpIndex = (c.wpIndex + 1) % len(c.waypoints)
		c.target = c.waypoints[c.wpIndex]
		c.sinceChange = 0
	}
	return c.target, StatePatrol
}
