package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/ConnorK747/RetroGame/world"
	"github.com/pelletier/go-toml/v2"
)

type ResolutionConfig struct {
	X, Y int
}

type UIConfig struct {
	Title      string
	Resolution ResolutionConfig
	// Viewport is the logical size the game draws at.
	Viewport ResolutionConfig
	Debug    bool
}

type GameConfig struct {
	// Seed fixes the level layout. Zero picks a new layout every run.
	Seed int64
}

type AudioConfig struct {
	Enabled bool
	Volume  float64
}

type MathConfig struct {
	Float64EqualityThreshold float64
}

type Config struct {
	Player  world.PlayerConfig
	Physics world.Physics
	Level   world.LevelConfig
	Game    GameConfig
	UI      UIConfig
	Audio   AudioConfig
	Math    MathConfig
}

func DefaultConfig() *Config {
	return &Config{
		Player:  world.DefaultPlayerConfig(),
		Physics: world.DefaultPhysics(),
		Level:   world.DefaultLevelConfig(),
		UI: UIConfig{
			Title:      "Retro Platformer",
			Resolution: ResolutionConfig{X: 800, Y: 400},
			Viewport:   ResolutionConfig{X: 800, Y: 400},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.35,
		},
		Math: MathConfig{
			Float64EqualityThreshold: 1e-9,
		},
	}
}

// ReadTOML reads fileName on top of the defaults.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", fileName, err)
	}

	// Arrays of tables replace the default platform list instead of extending it.
	var floating struct {
		Level struct {
			Floating []world.Rect
		}
	}
	if err := toml.Unmarshal(file, &floating); err != nil {
		return nil, fmt.Errorf("parse %s: %w", fileName, err)
	}
	if floating.Level.Floating != nil {
		config.Level.Floating = floating.Level.Floating
	}

	config.sync()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return config, nil
}

// LoadConfig is ReadTOML that falls back to the defaults when the file does
// not exist. The bool reports whether the file was read.
func LoadConfig(fileName string) (*Config, bool, error) {
	config, err := ReadTOML(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		config = DefaultConfig()
		config.sync()
		return config, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return config, true, nil
}

// sync copies the values shared between sections.
func (c *Config) sync() {
	c.Physics.ViewportHeight = float64(c.UI.Viewport.Y)
}

func (c *Config) Validate() error {
	switch {
	case c.UI.Viewport.X <= 0 || c.UI.Viewport.Y <= 0:
		return fmt.Errorf("ui.viewport must be positive, got %dx%d", c.UI.Viewport.X, c.UI.Viewport.Y)
	case c.UI.Resolution.X <= 0 || c.UI.Resolution.Y <= 0:
		return fmt.Errorf("ui.resolution must be positive, got %dx%d", c.UI.Resolution.X, c.UI.Resolution.Y)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("player size must be positive")
	case c.Level.GroundMin <= 0 || c.Level.GroundMax < c.Level.GroundMin:
		return fmt.Errorf("level ground range [%v, %v] is invalid", c.Level.GroundMin, c.Level.GroundMax)
	case c.Level.GapMin < 0 || c.Level.GapMax < c.Level.GapMin:
		return fmt.Errorf("level gap range [%v, %v] is invalid", c.Level.GapMin, c.Level.GapMax)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume %v is outside [0, 1]", c.Audio.Volume)
	}
	return nil
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
