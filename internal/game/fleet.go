package game

// Drone is the motion side of one agent: a proportional controller that
// steers toward its target under speed and acceleration limits. The rules
// engine never moves agents itself; it reads positions from here and writes
// targets back after each tick.
type Drone struct {
	ID      int
	Pos     Vec3
	Vel     Vec3
	Target  Vec3
	Battery float64
	Settled bool

	MaxSpeed float64
	MaxAccel float64
}

func NewDrone(id int, pos Vec3) *Drone {
	return &Drone{
		ID:       id,
		Pos:      pos,
		Target:   pos,
		Battery:  100.0,
		MaxSpeed: DroneMaxSpeed,
		MaxAccel: DroneMaxAcceleration,
	}
}

func (d *Drone) SetTarget(t Vec3) {
	d.Target = t
	d.Settled = false
}

// Update advances the drone by dt. Speed is proportional to the remaining
// distance up to MaxSpeed, velocity changes are capped by MaxAccel, and the
// drone snaps onto the target once within droneSettleEps. A drained battery
// grounds the drone where it is.
func (d *Drone) Update(dt float64) {
	if d.Battery <= 0 || dt <= 0 {
		return
	}
	toTarget := d.Target.Sub(d.Pos)
	dist := toTarget.Len()
	if dist < droneSettleEps {
		d.Pos = d.Target
		d.Vel = Vec3{}
		d.Settled = true
		return
	}

	desired := unitOrZero(toTarget).Scale(minf(d.MaxSpeed, droneProportionalK*dist))
	change := desired.Sub(d.Vel)
	if accel := change.Len() / dt; accel > d.MaxAccel {
		d.Vel = d.Vel.Add(unitOrZero(change).Scale(d.MaxAccel * dt))
	} else {
		d.Vel = desired
	}

	d.Pos = d.Pos.Add(d.Vel.Scale(dt))
	d.Battery = maxf(0, d.Battery-d.Vel.Len()*batteryDrainPerMeter*dt)
	d.Settled = false
}

// Fleet owns the motion state of every drone in the session, indexed by the
// same ids the director uses.
type Fleet struct {
	Drones []*Drone
}

// NewFleet creates drones with ids 0..len(positions)-1 at the given spawn
// positions.
func NewFleet(positions []Vec3) *Fleet {
	f := &Fleet{}
	for i, pos := range positions {
		f.Drones = append(f.Drones, NewDrone(i, pos))
	}
	return f
}

func (f *Fleet) Update(dt float64) {
	for _, d := range f.Drones {
		d.Update(dt)
	}
}

// Positions snapshots every drone's current position, keyed by id, in the
// shape Director.Tick consumes.
func (f *Fleet) Positions() map[int]Vec3 {
	out := make(map[int]Vec3, len(f.Drones))
	for _, d := range f.Drones {
		out[d.ID] = d.Pos
	}
	return out
}

// SetTarget forwards a new target to the drone with the given id, reporting
// whether it exists.
func (f *Fleet) SetTarget(id int, t Vec3) bool {
	for _, d := range f.Drones {
		if d.ID == id {
			d.SetTarget(t)
			return true
		}
	}
	return false
}

// Reposition teleports every drone to a fresh spawn position and clears its
// motion state. Extra positions are ignored; missing ones leave the
// remaining drones in place.
func (f *Fleet) Reposition(positions []Vec3) {
	for i, d := range f.Drones {
		if i >= len(positions) {
			break
		}
		d.Pos = positions[i]
		d.Vel = Vec3{}
		d.Target = positions[i]
		d.Settled = false
	}
}
