package game

import (
	"math"
	"math/rand"
)

// HidingSpot is a precomputed candidate position near an obstacle. Quality
// is higher for better cover. The Obstacle pointer refers into the owning
// Environment's obstacle slice and is never nil.
type HidingSpot struct {
	Pos      Vec3
	Quality  float64
	Obstacle *Box
}

// Environment owns the static geometry of one session: play-area bounds,
// obstacles, and precomputed hiding spots. It is built once from a seeded
// random source and is immutable afterwards, so it may be read from any
// goroutine without locking.
type Environment struct {
	PlayAreaSize float64

	obstacles []Box
	spots     []HidingSpot

	// placementShortfalls counts boxes accepted with residual overlap
	// because rejection sampling ran out of attempts. Best-effort
	// placement is a degradation, not an error.
	placementShortfalls int
}

// NewEnvironment generates numObstacles boxes inside the play area using the
// supplied random source, then precomputes hiding spots around them. The
// same seed yields the same environment.
func NewEnvironment(playAreaSize float64, numObstacles int, rng *rand.Rand) *Environment {
	e := &Environment{PlayAreaSize: playAreaSize}
	e.generateObstacles(numObstacles, rng)
	e.generateHidingSpots(HidingSpotCount)
	return e
}

// generateObstacles places boxes by rejection sampling: a candidate is
// accepted when it lies fully inside the play bounds and keeps
// obstacleSeparation of clearance from every box placed before it. After
// obstaclePlaceAttempts failed proposals the least-overlapping candidate is
// accepted anyway so generation always terminates.
func (e *Environment) generateObstacles(numObstacles int, rng *rand.Rand) {
	half := e.PlayAreaSize / 2.0
	for i := 0; i < numObstacles; i++ {
		var best Box
		bestOverlap := math.Inf(1)
		for attempt := 0; attempt < obstaclePlaceAttempts; attempt++ {
			width := obstacleMinExtent + rng.Float64()*(obstacleMaxExtent-obstacleMinExtent)
			depth := obstacleMinExtent + rng.Float64()*(obstacleMaxExtent-obstacleMinExtent)
			height := obstacleMinHeight + rng.Float64()*(obstacleMaxHeight-obstacleMinHeight)

			lo := -half + obstacleEdgeMargin
			hi := half - obstacleEdgeMargin
			x := lo + rng.Float64()*(hi-lo)
			z := lo + rng.Float64()*(hi-lo)

			candidate := Box{
				Center: Vec3{X: x, Y: height / 2.0, Z: z},
				Size:   Vec3{X: width, Y: height, Z: depth},
			}
			if !e.boxInBounds(candidate) {
				continue
			}
			overlap := 0.0
			for j := range e.obstacles {
				overlap = maxf(overlap, horizontalOverlap(candidate, e.obstacles[j], obstacleSeparation))
			}
			if overlap == 0 {
				best = candidate
				bestOverlap = 0
				break
			}
			if overlap < bestOverlap {
				best = candidate
				bestOverlap = overlap
			}
		}
		if math.IsInf(bestOverlap, 1) {
			continue
		}
		if bestOverlap > 0 {
			e.placementShortfalls++
		}
		e.obstacles = append(e.obstacles, best)
	}
}

func (e *Environment) boxInBounds(b Box) bool {
	half := e.PlayAreaSize / 2.0
	min, max := b.Bounds()
	return min.X >= -half && max.X <= half && min.Z >= -half && max.Z <= half
}

// Obstacles returns the obstacle set. Callers must not mutate it.
func (e *Environment) Obstacles() []Box { return e.obstacles }

// PlacementShortfalls reports how many obstacles were placed with residual
// overlap after exhausting their retry budget.
func (e *Environment) PlacementShortfalls() int { return e.placementShortfalls }

// CheckCollision reports whether a sphere of the given radius at pos touches
// any obstacle. A sphere exactly on an obstacle surface collides.
func (e *Environment) CheckCollision(pos Vec3, radius float64) bool {
	for i := range e.obstacles {
		if e.obstacles[i].IntersectsSphere(pos, radius) {
			return true
		}
	}
	return false
}

// InPlayArea reports whether pos lies inside the play volume.
func (e *Environment) InPlayArea(pos Vec3) bool {
	half := e.PlayAreaSize / 2.0
	return math.Abs(pos.X) <= half && math.Abs(pos.Z) <= half &&
		pos.Y >= 0 && pos.Y <= MaxAltitude
}

// IsLineOfSightClear samples LOSSamples evenly spaced points on the segment
// from a to b, endpoints included, and reports whether none of them touches
// an obstacle. The discrete sampling can miss obstacles thinner than the
// sampling interval.
func (e *Environment) IsLineOfSightClear(a, b Vec3) bool {
	return e.lineOfSightClear(a, b, LOSSamples)
}

func (e *Environment) lineOfSightClear(a, b Vec3, samples int) bool {
	if samples < 2 {
		samples = 2
	}
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		if e.CheckCollision(lerpVec(a, b, t), LOSSampleRadius) {
			return false
		}
	}
	return true
}

// generateHidingSpots walks the obstacles in placement order and offsets a
// candidate point from each side at a fixed standoff, keeping candidates
// that are in bounds and collision free, until count spots are collected or
// the obstacles are exhausted.
func (e *Environment) generateHidingSpots(count int) {
	for i := range e.obstacles {
		obstacle := &e.obstacles[i]
		h := obstacle.halfSize()
		standoff := (h.X+h.Z)/2.0 + hidingSpotStandoff
		for k := 0; k < hidingSpotDirections; k++ {
			angle := 2 * math.Pi * float64(k) / hidingSpotDirections
			pos := Vec3{
				X: obstacle.Center.X + standoff*math.Cos(angle),
				Y: obstacle.Center.Y,
				Z: obstacle.Center.Z + standoff*math.Sin(angle),
			}
			if !e.InPlayArea(pos) || e.CheckCollision(pos, DroneRadius) {
				continue
			}
			e.spots = append(e.spots, HidingSpot{
				Pos:      pos,
				Quality:  e.spotQuality(obstacle, pos),
				Obstacle: obstacle,
			})
			if len(e.spots) >= count {
				return
			}
		}
	}
}

// spotQuality scores cover: bigger obstacles and spots farther from the
// open arena center are better. The absolute scale is arbitrary; only the
// ordering matters to the hider AI.
func (e *Environment) spotQuality(obstacle *Box, pos Vec3) float64 {
	footprint := obstacle.Size.X * obstacle.Size.Z
	maxFootprint := obstacleMaxExtent * obstacleMaxExtent
	half := e.PlayAreaSize / 2.0
	centerDist := math.Hypot(pos.X, pos.Z)
	return footprint/maxFootprint + Clamp(centerDist/half, 0, 1)
}

// HidingSpots returns the precomputed hiding spots. Callers must not mutate
// the slice.
func (e *Environment) HidingSpots() []HidingSpot { return e.spots }

// SampleSafePosition rejection-samples a position inside the play bounds
// with at least minClearance of distance to every obstacle. After
// safePositionAttempts failures it falls back to a point above the arena
// center rather than looping forever.
func (e *Environment) SampleSafePosition(rng *rand.Rand, minClearance float64) Vec3 {
	half := e.PlayAreaSize / 2.0
	lo := -half + boundsMargin
	hi := half - boundsMargin
	for attempt := 0; attempt < safePositionAttempts; attempt++ {
		pos := Vec3{
			X: lo + rng.Float64()*(hi-lo),
			Y: spawnAltitudeMin + rng.Float64()*(spawnAltitudeMax-spawnAltitudeMin),
			Z: lo + rng.Float64()*(hi-lo),
		}
		if !e.CheckCollision(pos, minClearance) {
			return pos
		}
	}
	return Vec3{X: 0, Y: patrolAltitude, Z: 0}
}

// ClampToBounds pulls pos back inside the play area, keeping boundsMargin of
// clearance from the edges and a sane altitude band.
func (e *Environment) ClampToBounds(pos Vec3) Vec3 {
	half := e.PlayAreaSize / 2.0
	return Vec3{
		X: Clamp(pos.X, -half+boundsMargin, half-boundsMargin),
		Y: Clamp(pos.Y, fleeAltitudeMin, fleeAltitudeMax),
		Z: Clamp(pos.Z, -half+boundsMargin, half-boundsMargin),
	}
}
