package world

// Rect is an axis-aligned box. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and o share interior area. Touching edges do not
// count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// Penetration holds how far r sinks into o from each side of o. Top is the
// depth measured from o's top edge, so a small Top means r is resting on o.
type Penetration struct {
	Top, Bottom, Left, Right float64
}

func (r Rect) Penetration(o Rect) Penetration {
	return Penetration{
		Top:    r.Bottom() - o.Y,
		Bottom: o.Bottom() - r.Y,
		Left:   r.Right() - o.X,
		Right:  o.Right() - r.X,
	}
}

func (p Penetration) Min() float64 {
	m := p.Top
	for _, d := range []float64{p.Bottom, p.Left, p.Right} {
		if d < m {
			m = d
		}
	}
	return m
}

type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Side picks the axis of least penetration. Ties resolve in the order
// top, bottom, left, right.
func (p Penetration) Side() Side {
	switch m := p.Min(); m {
	case p.Top:
		return SideTop
	case p.Bottom:
		return SideBottom
	case p.Left:
		return SideLeft
	default:
		return SideRight
	}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}
