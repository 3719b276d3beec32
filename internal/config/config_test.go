package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
world:
  tiles_w: 32
  tiles_h: 16
zombie_ai:
  aggro_distance: 300
timing:
  tick_ms: 20
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.World.TilesW != 32 || cfg.World.TilesH != 16 {
		t.Errorf("grid = %dx%d, want 32x16", cfg.World.TilesW, cfg.World.TilesH)
	}
	if cfg.ZombieAI.AggroDistance != 300 {
		t.Errorf("aggro distance = %v, want 300", cfg.ZombieAI.AggroDistance)
	}
	// Untouched keys keep their defaults.
	if cfg.ZombieAI.RunSpeedMultiplier != 2.4 {
		t.Errorf("run multiplier = %v, want default 2.4", cfg.ZombieAI.RunSpeedMultiplier)
	}
	if cfg.GetTickInterval() != 20*time.Millisecond {
		t.Errorf("tick interval = %v, want 20ms", cfg.GetTickInterval())
	}
	if GlobalConfig != cfg {
		t.Errorf("GlobalConfig was not set")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world:\n  tiles_w: 1\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("expected validation error for 1-wide grid")
	}
}

func TestRepoConfigLoads(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("config.yaml: %v", err)
	}
	def := Default()
	if cfg.World != def.World {
		t.Errorf("config.yaml world section drifted from Default(): %+v vs %+v", cfg.World, def.World)
	}
	if cfg.ZombieAI != def.ZombieAI {
		t.Errorf("config.yaml zombie_ai section drifted from Default(): %+v vs %+v", cfg.ZombieAI, def.ZombieAI)
	}
}

func TestGetterFallbacks(t *testing.T) {
	cfg := &Config{}
	if cfg.GetTPS() != 60 {
		t.Errorf("GetTPS fallback = %d, want 60", cfg.GetTPS())
	}
	if cfg.GetDecisionInterval() != 2 {
		t.Errorf("GetDecisionInterval fallback = %d, want 2", cfg.GetDecisionInterval())
	}
	if cfg.GetZombieCycle() != 20*time.Millisecond {
		t.Errorf("GetZombieCycle fallback = %v", cfg.GetZombieCycle())
	}
	if cfg.GetAspect() != 1 {
		t.Errorf("GetAspect fallback = %v", cfg.GetAspect())
	}

	def := Default()
	if got := def.ClampCameraDistance(10); got != def.Camera.MinDistance {
		t.Errorf("clamp low = %v", got)
	}
	if got := def.ClampCameraDistance(10000); got != def.Camera.MaxDistance {
		t.Errorf("clamp high = %v", got)
	}
}
