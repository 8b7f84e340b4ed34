package world

// RandomSource is the slice of *rand.Rand level generation needs.
type RandomSource interface {
	Float64() float64
}

type LevelConfig struct {
	Length          float64 `toml:"length"`
	GroundMin       float64 `toml:"ground_min"`
	GroundMax       float64 `toml:"ground_max"`
	GapMin          float64 `toml:"gap_min"`
	GapMax          float64 `toml:"gap_max"`
	GroundThickness float64 `toml:"ground_thickness"`
	Floating        []Rect  `toml:"floating"`
	FlagInset       float64 `toml:"flag_inset"`
	FlagRise        float64 `toml:"flag_rise"`
	FlagWidth       float64 `toml:"flag_width"`
	FlagHeight      float64 `toml:"flag_height"`
}

func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Length:          5000,
		GroundMin:       200,
		GroundMax:       400,
		GapMin:          60,
		GapMax:          120,
		GroundThickness: 20,
		Floating: []Rect{
			{X: 600, Y: 280, W: 100, H: 10},
			{X: 1000, Y: 240, W: 100, H: 10},
			{X: 1600, Y: 200, W: 100, H: 10},
			{X: 2200, Y: 160, W: 100, H: 10},
			{X: 3000, Y: 300, W: 100, H: 10},
		},
		FlagInset:  100,
		FlagRise:   100,
		FlagWidth:  20,
		FlagHeight: 80,
	}
}

type Level struct {
	Ground   []Platform
	Floating []Platform
	Flag     Flag
	// End is where the generation cursor stopped, past the last hole.
	End float64

	platforms []Platform
}

func between(rng RandomSource, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// GenerateLevel lays ground sections with holes between them until the level
// length is covered, then adds the floating platforms and the flag.
func GenerateLevel(rng RandomSource, cfg LevelConfig, viewportHeight float64) *Level {
	l := &Level{}

	groundY := viewportHeight - cfg.GroundThickness
	x := 0.0
	for x < cfg.Length {
		groundWidth := between(rng, cfg.GroundMin, cfg.GroundMax)
		holeWidth := between(rng, cfg.GapMin, cfg.GapMax)
		l.Ground = append(l.Ground, NewPlatform(x, groundY, groundWidth, cfg.GroundThickness))
		x += groundWidth + holeWidth
	}
	l.End = x

	for _, r := range cfg.Floating {
		l.Floating = append(l.Floating, Platform{r})
	}

	l.Flag = NewFlag(x-cfg.FlagInset, viewportHeight-cfg.FlagRise, cfg.FlagWidth, cfg.FlagHeight)
	l.index()
	return l
}

func NewLevel(ground, floating []Platform, flag Flag, end float64) *Level {
	l := &Level{
		Ground:   ground,
		Floating: floating,
		Flag:     flag,
		End:      end,
	}
	l.index()
	return l
}

func (l *Level) index() {
	l.platforms = make([]Platform, 0, len(l.Ground)+len(l.Floating))
	l.platforms = append(l.platforms, l.Ground...)
	l.platforms = append(l.platforms, l.Floating...)
}

// Platforms returns ground sections followed by floating platforms. The
// slice is shared; callers must not modify it.
func (l *Level) Platforms() []Platform {
	return l.platforms
}
