package main

import (
	"flag"
	"log"
	"math"

	"droneseek/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	addr := flag.String("addr", "", "listen address override (e.g. 127.0.0.1:8080)")
	seekers := flag.Int("seekers", -1, "override seeker count")
	hiders := flag.Int("hiders", -1, "override hider count")
	duration := flag.Float64("duration", math.NaN(), "override game duration in seconds")
	seed := flag.Int64("seed", math.MinInt64, "override obstacle seed")
	spawnPreset := flag.String("spawn", "", "override spawn preset (v, line, circle, grid, random)")
	recordDir := flag.String("record-dir", "", "override session recording directory")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var overrides server.Overrides
	if *addr != "" {
		overrides.Addr = addr
	}
	if *seekers >= 0 {
		overrides.SeekerCount = seekers
	}
	if *hiders >= 0 {
		overrides.HiderCount = hiders
	}
	if !math.IsNaN(*duration) {
		overrides.GameDuration = duration
	}
	if *seed != math.MinInt64 {
		overrides.ObstacleSeed = seed
	}
	if *spawnPreset != "" {
		overrides.SpawnPreset = spawnPreset
	}
	if *recordDir != "" {
		overrides.RecordDir = recordDir
	}
	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if err := server.StartApp(overrides.Apply(cfg)); err != nil {
		log.Fatalf("server: %v", err)
	}
}
