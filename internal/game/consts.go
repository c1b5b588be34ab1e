package game

const (
	SimHz = 60.0 // simulation tick rate
	Dt    = 1.0 / SimHz

	MaxAltitude = 20.0 // ceiling of the play volume

	// Line-of-sight sampling. A segment is checked at LOSSamples evenly
	// spaced points including both endpoints; obstacles narrower than the
	// sampling interval can slip between samples. That is an accepted
	// property of the query, not something callers should compensate for.
	LOSSamples      = 20
	LOSSampleRadius = 0.1

	DroneRadius = 0.5

	// Obstacle generation.
	obstacleEdgeMargin    = 5.0 // keep boxes away from the arena edge
	obstacleMinExtent     = 2.0
	obstacleMaxExtent     = 5.0
	obstacleMinHeight     = 3.0
	obstacleMaxHeight     = 8.0
	obstacleSeparation    = 1.0 // minimum gap between accepted boxes
	obstaclePlaceAttempts = 40  // per box; best candidate wins on exhaustion

	// Hiding spots.
	HidingSpotCount      = 20
	hidingSpotStandoff   = 1.5
	hidingSpotDirections = 4

	// Safe-position sampling.
	safePositionAttempts = 100
	spawnAltitudeMin     = 2.0
	spawnAltitudeMax     = 10.0

	// AI tuning.
	patrolPointCount       = 12
	patrolAltitude         = 5.0
	patrolMargin           = 10.0
	seekerProximityThreat  = 10.0 // hider flees inside this radius
	boundsMargin           = 5.0  // flee targets keep this far from the edge
	hideSpotDistanceWeight = 0.35 // score penalty per meter of travel
	hideSpotThreatWeight   = 4.0  // score penalty for a seeker on top of the spot
	hideSpotThreatRange    = 12.0 // seekers farther than this don't penalize
	fleeAltitudeMin        = 2.0
	fleeAltitudeMax        = 10.0

	// Drone motion (proportional controller).
	DroneMaxSpeed        = 10.0
	DroneMaxAcceleration = 5.0
	droneProportionalK   = 1.2
	droneSettleEps       = 0.1
	batteryDrainPerMeter = 0.01
)
