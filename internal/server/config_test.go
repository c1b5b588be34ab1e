package server

import (
	"os"
	"path/filepath"
	"testing"

	"droneseek/internal/game"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
addr: "127.0.0.1:9090"
spawn_preset: circle
record:
  enabled: false
game:
  seeker_count: 3
  game_duration: 60
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9090" {
		t.Errorf("addr not applied: %q", cfg.Addr)
	}
	if cfg.SpawnPreset != game.SpawnCircle {
		t.Errorf("spawn preset not applied: %q", cfg.SpawnPreset)
	}
	if cfg.Record.Enabled {
		t.Error("record.enabled override not applied")
	}
	if cfg.Game.SeekerCount != 3 || cfg.Game.GameDuration != 60 {
		t.Errorf("game overrides not applied: %+v", cfg.Game)
	}
	// Untouched fields keep their defaults.
	def := DefaultConfig()
	if cfg.PushRateHz != def.PushRateHz || cfg.Game.HiderCount != def.Game.HiderCount {
		t.Errorf("defaults lost on partial file: %+v", cfg)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [not, a, string"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed YAML should be an error")
	}
}

func TestOverridesApply(t *testing.T) {
	base := DefaultConfig()
	addr := "127.0.0.1:7000"
	seekers := 4
	duration := 30.0
	seed := int64(999)
	preset := game.SpawnLine

	o := Overrides{
		Addr:         &addr,
		SeekerCount:  &seekers,
		GameDuration: &duration,
		ObstacleSeed: &seed,
		SpawnPreset:  &preset,
	}
	got := o.Apply(base)
	if got.Addr != addr || got.Game.SeekerCount != 4 || got.Game.GameDuration != 30 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.Game.ObstacleSeed != 999 || got.SpawnPreset != game.SpawnLine {
		t.Fatalf("overrides not applied: %+v", got)
	}
	// Nil fields leave the base untouched.
	if got.Game.HiderCount != base.Game.HiderCount || got.LogLevel != base.LogLevel {
		t.Fatalf("nil overrides changed base values: %+v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Addr = ""
	if cfg.Validate() == nil {
		t.Error("empty addr should fail validation")
	}

	cfg = DefaultConfig()
	cfg.PushRateHz = 0
	if cfg.Validate() == nil {
		t.Error("zero push rate should fail validation")
	}

	cfg = DefaultConfig()
	cfg.Record.Dir = ""
	if cfg.Validate() == nil {
		t.Error("recording enabled without a dir should fail validation")
	}

	cfg = DefaultConfig()
	cfg.Game.SeekerCount = 0
	if cfg.Validate() == nil {
		t.Error("invalid game config should fail validation")
	}
}
