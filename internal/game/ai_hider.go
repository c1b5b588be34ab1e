package game

// hiderController implements Hide <-> Flee -> Caught. A hider flees when it
// has been formally detected or any seeker closes inside
// seekerProximityThreat; otherwise it settles on the best-scoring hiding
// spot, re-choosing at most once per hiderUpdateInterval. Caught is
// absorbing: the controller pins the target to the agent's position.
type hiderController struct {
	interval     float64
	fleeDistance float64

	sinceChoice float64
	haveTarget  bool
	target      Vec3
}

func newHiderController(cfg Config) *hiderController {
	return &hiderController{
		interval:     cfg.HiderUpdateInterval,
		fleeDistance: cfg.FleeDistance,
	}
}

func (c *hiderController) Reset() {
	c.sinceChoice = 0
	c.haveTarget = false
	c.target = Vec3{}
}

func (c *hiderController) Update(a *Agent, env *Environment, seekers []EnemyView, dt float64) (Vec3, BehaviorState) {
	if a.Caught {
		return a.Pos, StateCaught
	}
	c.sinceChoice += dt

	nearest, hasSeeker := closestEnemy(seekers)
	if hasSeeker && (a.Detected || nearest.Dist <= seekerProximityThreat) {
		away := unitOrZero(a.Pos.Sub(nearest.Pos))
		if away.Len() == 0 {
			away = Vec3{X: 1}
		}
		c.target = env.ClampToBounds(a.Pos.Add(away.Scale(c.fleeDistance)))
		c.haveTarget = true
		c.sinceChoice = 0
		return c.target, StateFlee
	}

	if !c.haveTarget || c.sinceChoice > c.interval {
		if spot, ok := c.bestSpot(a, env, seekers); ok {
			c.target = spot
		} else {
			c.target = a.Pos
		}
		c.haveTarget = true
		c.sinceChoice = 0
	}
	return c.target, StateHide
}

// bestSpot scores every hiding spot as its quality minus a travel penalty
// and a penalty for seekers already near the spot, and returns the best.
func (c *hiderController) bestSpot(a *Agent, env *Environment, seekers []EnemyView) (Vec3, bool) {
	spots := env.HidingSpots()
	if len(spots) == 0 {
		return Vec3{}, false
	}
	bestScore := 0.0
	bestIdx := -1
	for i := range spots {
		score := spots[i].Quality - hideSpotDistanceWeight*a.Pos.DistTo(spots[i].Pos)
		for _, s := range seekers {
			d := s.Pos.DistTo(spots[i].Pos)
			if d < hideSpotThreatRange {
				score -= hideSpotThreatWeight * (1 - d/hideSpotThreatRange)
			}
		}
		if bestIdx == -1 || score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return spots[bestIdx].Pos, true
}
