package world

// PlayerConfig is the tuning a Player is built from.
type PlayerConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	Speed         float64 `toml:"speed"`
	Spawn         Vector  `toml:"spawn"`
	JumpHoldMax   int     `toml:"jump_hold_max"`
	JumpBoost     float64 `toml:"jump_boost"`
	JumpBufferMax int     `toml:"jump_buffer_max"`
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Width:         30,
		Height:        30,
		Speed:         5,
		Spawn:         Vector{X: 50, Y: 0},
		JumpHoldMax:   10,
		JumpBoost:     -0.5,
		JumpBufferMax: 10,
	}
}

type Player struct {
	ID       string
	Coords   Vector
	Velocity Vector
	W, H     float64
	Speed    float64
	Spawn    Vector
	OnGround bool
	JumpState

	// FrameCounter only drives the walk animation.
	FrameCounter int64
}

type JumpState struct {
	JumpPressed    bool
	JumpHoldTime   int
	JumpHoldMax    int
	JumpBoost      float64
	JumpBufferTime int
	JumpBufferMax  int
}

// Contact summarizes what a collision pass did to the player.
type Contact struct {
	Landed       bool
	BufferedJump bool
	HitHead      bool
	HitWall      bool
}

func NewPlayer(ID string, cfg PlayerConfig) *Player {
	p := &Player{
		ID:    ID,
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: cfg.Speed,
		Spawn: cfg.Spawn,
		JumpState: JumpState{
			JumpHoldMax:   cfg.JumpHoldMax,
			JumpBoost:     cfg.JumpBoost,
			JumpBufferMax: cfg.JumpBufferMax,
		},
	}
	p.Reset()
	return p
}

func (p *Player) Bounds() Rect {
	return Rect{X: p.Coords.X, Y: p.Coords.Y, W: p.W, H: p.H}
}

// Reset puts the player back at spawn at rest. Jump input state survives so a
// held button keeps behaving as held.
func (p *Player) Reset() {
	p.Coords = p.Spawn
	p.Velocity = Vector{}
}

func (p *Player) Move(dir int) {
	p.Velocity.X = float64(dir) * p.Speed
}

func (p *Player) Stop() {
	p.Velocity.X = 0
}

// PressJump handles the jump key going down. It reports whether a jump
// started immediately.
func (p *Player) PressJump(phys *Physics) bool {
	p.JumpPressed = true
	return p.Jump(phys)
}

// Jump jumps off the ground, or arms the buffer when airborne so a press made
// just before landing still counts.
func (p *Player) Jump(phys *Physics) bool {
	if p.OnGround {
		p.Velocity.Y = phys.JumpForce
		p.JumpHoldTime = 0
		return true
	}
	p.JumpBufferTime = p.JumpBufferMax
	return false
}

func (p *Player) ReleaseJump() {
	p.JumpPressed = false
	p.JumpHoldTime = 0
	p.JumpBufferTime = 0
}

// Update integrates one frame. It reports whether the player fell past the
// death line and was sent back to spawn.
func (p *Player) Update(phys *Physics) bool {
	p.FrameCounter++

	if p.JumpPressed && p.Velocity.Y < 0 && p.JumpHoldTime < p.JumpHoldMax {
		p.Velocity.Y += p.JumpBoost
		p.JumpHoldTime++
	}

	if p.JumpPressed {
		p.JumpBufferTime = p.JumpBufferMax
	} else if p.JumpBufferTime > 0 {
		p.JumpBufferTime--
	}

	p.Velocity.Y += phys.Gravity
	p.Coords = p.Coords.Add(p.Velocity)

	fell := false
	if p.Coords.Y > phys.DeathLine() {
		p.Reset()
		fell = true
	}

	p.OnGround = false
	return fell
}

// ResolveCollisions pushes the player out of every overlapping platform along
// its shallowest axis. Platforms are handled one at a time in order, so an
// earlier push changes what later platforms see.
func (p *Player) ResolveCollisions(phys *Physics, platforms []Platform) Contact {
	var c Contact
	for _, plat := range platforms {
		bounds := p.Bounds()
		if !bounds.Overlaps(plat.Rect) {
			continue
		}

		switch bounds.Penetration(plat.Rect).Side() {
		case SideTop:
			p.Coords.Y = plat.Y - p.H
			p.Velocity.Y = 0

			if !p.OnGround && p.JumpBufferTime > 0 {
				p.Velocity.Y = phys.JumpForce
				p.JumpHoldTime = 0
				if !p.JumpPressed {
					p.JumpBufferTime = 0
				}
				c.BufferedJump = true
			}

			p.OnGround = true
			c.Landed = true
		case SideBottom:
			p.Coords.Y = plat.Bottom()
			p.Velocity.Y = 0
			c.HitHead = true
		case SideLeft:
			p.Coords.X = plat.X - p.W
			c.HitWall = true
		case SideRight:
			p.Coords.X = plat.Right()
			c.HitWall = true
		}
	}
	return c
}

// Walking reports whether the walk cycle should play.
func (p *Player) Walking() bool {
	return p.OnGround && p.Velocity.X != 0
}
