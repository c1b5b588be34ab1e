package server

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"droneseek/internal/game"
)

// RecordConfig controls session recording.
type RecordConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Config is the full server configuration: the game rules plus the outer
// surface (listen address, snapshot push rate, spawn layout, recording,
// logging).
type Config struct {
	Addr       string  `yaml:"addr"`
	PushRateHz float64 `yaml:"push_rate_hz"`
	LogLevel   string  `yaml:"log_level"`

	SpawnPreset   string  `yaml:"spawn_preset"`
	SpawnSpacing  float64 `yaml:"spawn_spacing"`
	SpawnAltitude float64 `yaml:"spawn_altitude"`

	Record RecordConfig `yaml:"record"`
	Game   game.Config  `yaml:"game"`
}

func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		PushRateHz:    10.0,
		LogLevel:      "info",
		SpawnPreset:   game.SpawnGrid,
		SpawnSpacing:  3.0,
		SpawnAltitude: 5.0,
		Record: RecordConfig{
			Enabled: true,
			Dir:     "sessions",
		},
		Game: game.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Overrides are optional command-line overrides layered on top of the file
// config. Nil fields leave the base value alone.
type Overrides struct {
	Addr         *string
	SeekerCount  *int
	HiderCount   *int
	GameDuration *float64
	ObstacleSeed *int64
	SpawnPreset  *string
	RecordDir    *string
	LogLevel     *string
}

func (o Overrides) Apply(base Config) Config {
	if o.Addr != nil {
		base.Addr = *o.Addr
	}
	if o.SeekerCount != nil {
		base.Game.SeekerCount = *o.SeekerCount
	}
	if o.HiderCount != nil {
		base.Game.HiderCount = *o.HiderCount
	}
	if o.GameDuration != nil {
		base.Game.GameDuration = *o.GameDuration
	}
	if o.ObstacleSeed != nil {
		base.Game.ObstacleSeed = *o.ObstacleSeed
	}
	if o.SpawnPreset != nil {
		base.SpawnPreset = *o.SpawnPreset
	}
	if o.RecordDir != nil {
		base.Record.Dir = *o.RecordDir
	}
	if o.LogLevel != nil {
		base.LogLevel = *o.LogLevel
	}
	return base
}

// Validate checks the server-side settings and delegates the game rules to
// game.Config.Validate.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.PushRateHz <= 0 {
		return fmt.Errorf("push_rate_hz must be positive, got %g", c.PushRateHz)
	}
	if c.Record.Enabled && c.Record.Dir == "" {
		return fmt.Errorf("record.dir must be set when recording is enabled")
	}
	return c.Game.Validate()
}
