package world

const pennantSize = 20

// Flag is the goal pole at the end of the level.
type Flag struct {
	Rect
}

func NewFlag(x, y, w, h float64) Flag {
	return Flag{Rect{X: x, Y: y, W: w, H: h}}
}

// Pennant returns the triangle hanging off the top right of the pole.
func (f Flag) Pennant() [3]Vector {
	return [3]Vector{
		{X: f.Right(), Y: f.Y},
		{X: f.Right() + pennantSize, Y: f.Y + pennantSize/2},
		{X: f.Right(), Y: f.Y + pennantSize},
	}
}

func (f Flag) Touches(r Rect) bool {
	return r.Overlaps(f.Rect)
}
