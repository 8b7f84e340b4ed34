package client

import (
	"image/color"
	"math"

	"github.com/ConnorK747/RetroGame/world"
)

var (
	shoeColor    = color.RGBA{139, 69, 19, 255}
	legColor     = color.RGBA{0, 51, 153, 255}
	skinColor    = color.RGBA{255, 224, 189, 255}
	overallColor = color.RGBA{0, 102, 204, 255}
	capColor     = color.RGBA{200, 0, 0, 255}
)

// spritePart is one layer of the player sprite, relative to the player's top
// left corner.
type spritePart struct {
	world.Rect
	Color color.RGBA
}

func armSwing(frame int64) float64 {
	return math.Sin(float64(frame)*0.2) * 2
}

// playerParts lists the sprite layers back to front. Arms go up in the air,
// swing while walking and hang otherwise.
func playerParts(p *world.Player) []spritePart {
	part := func(x, y, w, h float64, c color.RGBA) spritePart {
		return spritePart{world.Rect{X: x, Y: y, W: w, H: h}, c}
	}

	parts := []spritePart{
		part(4, p.H-5, 6, 5, shoeColor),
		part(20, p.H-5, 6, 5, shoeColor),
		part(6, 22, 6, 8, legColor),
		part(18, 22, 6, 8, legColor),
	}

	switch {
	case !p.OnGround:
		parts = append(parts,
			part(2, -2, 4, 10, skinColor),
			part(24, -2, 4, 10, skinColor),
		)
	case p.Velocity.X != 0:
		swing := armSwing(p.FrameCounter)
		parts = append(parts,
			part(2, 14+swing, 4, 10, skinColor),
			part(24, 14-swing, 4, 10, skinColor),
		)
	default:
		parts = append(parts,
			part(2, 14, 4, 10, skinColor),
			part(24, 14, 4, 10, skinColor),
		)
	}

	return append(parts,
		// overalls
		part(6, 15, 18, 8, overallColor),
		part(6, 10, 5, 5, overallColor),
		part(19, 10, 5, 5, overallColor),
		// face
		part(8, 0, 14, 10, skinColor),
		// cap
		part(6, -3, 18, 5, capColor),
		part(8, -6, 14, 3, capColor),
	)
}
