package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every configuration validation failure so callers
// can distinguish bad setup from runtime errors.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds every tunable the rules engine takes at construction.
// Distances are meters, times are seconds.
type Config struct {
	SeekerCount int `yaml:"seeker_count"`
	HiderCount  int `yaml:"hider_count"`

	GameDuration float64 `yaml:"game_duration"`

	DetectionRadius   float64 `yaml:"detection_radius"`
	CatchRadius       float64 `yaml:"catch_radius"`
	SeekerVisionRange float64 `yaml:"seeker_vision_range"`

	PatrolUpdateInterval float64 `yaml:"patrol_update_interval"`
	HiderUpdateInterval  float64 `yaml:"hider_update_interval"`
	FleeDistance         float64 `yaml:"flee_distance"`

	PlayAreaSize float64 `yaml:"play_area_size"`
	NumObstacles int     `yaml:"num_obstacles"`
	ObstacleSeed int64   `yaml:"obstacle_seed"`
}

func DefaultConfig() Config {
	return Config{
		SeekerCount:          2,
		HiderCount:           7,
		GameDuration:         120.0,
		DetectionRadius:      5.0,
		CatchRadius:          1.5,
		SeekerVisionRange:    15.0,
		PatrolUpdateInterval: 5.0,
		HiderUpdateInterval:  8.0,
		FleeDistance:         15.0,
		PlayAreaSize:         50.0,
		NumObstacles:         8,
		ObstacleSeed:         42,
	}
}

// Validate fails fast on degenerate configurations; the session must not
// silently run with them.
func (c Config) Validate() error {
	switch {
	case c.SeekerCount <= 0:
		return fmt.Errorf("%w: seeker_count must be positive, got %d", ErrInvalidConfig, c.SeekerCount)
	case c.HiderCount <= 0:
		return fmt.Errorf("%w: hider_count must be positive, got %d", ErrInvalidConfig, c.HiderCount)
	case c.GameDuration <= 0:
		return fmt.Errorf("%w: game_duration must be positive, got %g", ErrInvalidConfig, c.GameDuration)
	case c.CatchRadius <= 0:
		return fmt.Errorf("%w: catch_radius must be positive, got %g", ErrInvalidConfig, c.CatchRadius)
	case c.CatchRadius > c.DetectionRadius:
		return fmt.Errorf("%w: catch_radius %g exceeds detection_radius %g", ErrInvalidConfig, c.CatchRadius, c.DetectionRadius)
	case c.SeekerVisionRange < c.DetectionRadius:
		return fmt.Errorf("%w: seeker_vision_range %g below detection_radius %g", ErrInvalidConfig, c.SeekerVisionRange, c.DetectionRadius)
	case c.PatrolUpdateInterval <= 0:
		return fmt.Errorf("%w: patrol_update_interval must be positive, got %g", ErrInvalidConfig, c.PatrolUpdateInterval)
	case c.HiderUpdateInterval <= 0:
		return fmt.Errorf("%w: hider_update_interval must be positive, got %g", ErrInvalidConfig, c.HiderUpdateInterval)
	case c.FleeDistance <= 0:
		return fmt.Errorf("%w: flee_distance must be positive, got %g", ErrInvalidConfig, c.FleeDistance)
	case c.PlayAreaSize <= 0:
		return fmt.Errorf("%w: play_area_size must be positive, got %g", ErrInvalidConfig, c.PlayAreaSize)
	case c.NumObstacles < 0:
		return fmt.Errorf("%w: num_obstacles must not be negative, got %d", ErrInvalidConfig, c.NumObstacles)
	}
	return nil
}
