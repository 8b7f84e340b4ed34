package world

type Platform struct {
	Rect
}

func NewPlatform(x, y, w, h float64) Platform {
	return Platform{Rect{X: x, Y: y, W: w, H: h}}
}
