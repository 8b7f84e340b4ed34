package world

// Camera scrolls horizontally only and keeps the player centered. It is not
// clamped to the level, so it can show past either end.
type Camera struct {
	ViewportWidth float64
	Offset        float64
}

func (c *Camera) Follow(x float64) {
	c.Offset = x - c.ViewportWidth/2
}

// ToScreen converts world coordinates to screen coordinates.
func (c *Camera) ToScreen(v Vector) Vector {
	return Vector{X: v.X - c.Offset, Y: v.Y}
}
