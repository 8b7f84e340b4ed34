package world

// Physics is the per-session simulation context shared by every update.
type Physics struct {
	Gravity        float64 `toml:"gravity"`
	JumpForce      float64 `toml:"jump_force"`
	ViewportHeight float64 `toml:"-"`
	DeathMargin    float64 `toml:"death_margin"`
}

func DefaultPhysics() Physics {
	return Physics{
		Gravity:        0.8,
		JumpForce:      -12,
		ViewportHeight: 400,
		DeathMargin:    100,
	}
}

// DeathLine is the y below which the player counts as fallen into a hole.
func (p *Physics) DeathLine() float64 {
	return p.ViewportHeight + p.DeathMargin
}
