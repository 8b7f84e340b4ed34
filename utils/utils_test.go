package utils

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

// TestReadTOML reads a known test config, checking overridden keys and that
// untouched keys keep their defaults.
func TestReadTOML(t *testing.T) {
	cfg, err := ReadTOML(filepath.Join("testdata", "config.toml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.UI.Title != "test" {
		t.Fatalf(`UI.Title = %q, want "test"`, cfg.UI.Title)
	}
	if !cfg.UI.Debug {
		t.Fatalf("UI.Debug = false, want true")
	}
	if cfg.UI.Resolution.X != 1600 || cfg.UI.Resolution.Y != 800 {
		t.Fatalf("UI.Resolution = %+v, want {1600 800}", cfg.UI.Resolution)
	}
	if cfg.UI.Viewport.X != 800 || cfg.UI.Viewport.Y != 400 {
		t.Fatalf("UI.Viewport = %+v, want default {800 400}", cfg.UI.Viewport)
	}
	if cfg.Player.Speed != 6.5 {
		t.Fatalf("Player.Speed = %v, want 6.5", cfg.Player.Speed)
	}
	if cfg.Player.JumpHoldMax != 12 {
		t.Fatalf("Player.JumpHoldMax = %v, want 12", cfg.Player.JumpHoldMax)
	}
	if cfg.Player.JumpBufferMax != 10 {
		t.Fatalf("Player.JumpBufferMax = %v, want default 10", cfg.Player.JumpBufferMax)
	}
	if cfg.Player.Spawn.X != 80 || cfg.Player.Spawn.Y != 10 {
		t.Fatalf("Player.Spawn = %+v, want {80 10}", cfg.Player.Spawn)
	}
	if !AlmostEqual(cfg.Physics.Gravity, 0.6, cfg.Math.Float64EqualityThreshold) {
		t.Fatalf("Physics.Gravity = %v, want 0.6", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpForce != -12 {
		t.Fatalf("Physics.JumpForce = %v, want default -12", cfg.Physics.JumpForce)
	}
	if cfg.Physics.ViewportHeight != 400 {
		t.Fatalf("Physics.ViewportHeight = %v, want 400 from the viewport", cfg.Physics.ViewportHeight)
	}
	if cfg.Level.Length != 2000 {
		t.Fatalf("Level.Length = %v, want 2000", cfg.Level.Length)
	}
	if len(cfg.Level.Floating) != 1 {
		t.Fatalf("len(Level.Floating) = %d, want 1", len(cfg.Level.Floating))
	}
	if got := cfg.Level.Floating[0]; got.X != 400 || got.Y != 250 || got.W != 120 || got.H != 12 {
		t.Fatalf("Level.Floating[0] = %+v, want {400 250 120 12}", got)
	}
	if cfg.Audio.Enabled {
		t.Fatalf("Audio.Enabled = true, want false")
	}
	if cfg.Game.Seed != 7 {
		t.Fatalf("Game.Seed = %d, want 7", cfg.Game.Seed)
	}
}

func TestReadTOMLInvalid(t *testing.T) {
	if _, err := ReadTOML(filepath.Join("testdata", "invalid.toml")); err == nil {
		t.Fatal("expected an error for an inverted ground range")
	}
}

func TestReadTOMLMissing(t *testing.T) {
	_, err := ReadTOML(filepath.Join("testdata", "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	cfg, loaded, err := LoadConfig(filepath.Join("testdata", "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if loaded {
		t.Fatal("loaded = true for a missing file")
	}
	if cfg.Physics.Gravity != 0.8 || cfg.Physics.JumpForce != -12 {
		t.Fatalf("Physics = %+v, want gravity 0.8 and jump force -12", cfg.Physics)
	}
	if cfg.Physics.DeathLine() != 500 {
		t.Fatalf("DeathLine() = %v, want 500", cfg.Physics.DeathLine())
	}
	if len(cfg.Level.Floating) != 5 {
		t.Fatalf("len(Level.Floating) = %d, want 5", len(cfg.Level.Floating))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"viewport", func(c *Config) { c.UI.Viewport.X = 0 }},
		{"resolution", func(c *Config) { c.UI.Resolution.Y = -1 }},
		{"player", func(c *Config) { c.Player.Width = 0 }},
		{"ground", func(c *Config) { c.Level.GroundMin = 0 }},
		{"gap", func(c *Config) { c.Level.GapMax = c.Level.GapMin - 1 }},
		{"volume", func(c *Config) { c.Audio.Volume = 2 }},
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestAlmostEqual(t *testing.T) {
	if !AlmostEqual(0.1+0.2, 0.3, 1e-9) {
		t.Fatal("0.1+0.2 should be almost 0.3")
	}
	if AlmostEqual(1, 1.1, 1e-9) {
		t.Fatal("1 and 1.1 should differ")
	}
}
