package client

import (
	"image"
	"image/color"

	"github.com/ConnorK747/RetroGame/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor      = color.RGBA{110, 180, 255, 255}
	platformColor = color.RGBA{0, 200, 0, 255}
	poleColor     = color.RGBA{255, 255, 0, 255}
	pennantColor  = color.RGBA{255, 0, 0, 255}
)

type Renderer struct {
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
}

func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Render draws the world back to front: ground, floating
// platforms, flag, player. Everything is shifted by the camera on x only.
func (r *Renderer) Render(screen *ebiten.Image, w *world.World) {
	screen.Fill(skyColor)
	w.ForEachPlatform(func(p world.Platform) {
		r.fillRect(screen, &w.Camera, p.Rect, platformColor)
	})
	r.RenderFlag(screen, &w.Camera, w.Level.Flag)
	r.RenderPlayer(screen, &w.Camera, w.Player)
}

func (r *Renderer) RenderFlag(screen *ebiten.Image, cam *world.Camera, f world.Flag) {
	r.fillRect(screen, cam, f.Rect, poleColor)

	var path vector.Path
	for i, v := range f.Pennant() {
		v = cam.ToScreen(v)
		if i == 0 {
			path.MoveTo(float32(v.X), float32(v.Y))
			continue
		}
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(pennantColor.R) / 255
		r.vertices[i].ColorG = float32(pennantColor.G) / 255
		r.vertices[i].ColorB = float32(pennantColor.B) / 255
		r.vertices[i].ColorA = float32(pennantColor.A) / 255
	}
	screen.DrawTriangles(r.vertices, r.indices, r.whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (r *Renderer) RenderPlayer(screen *ebiten.Image, cam *world.Camera, p *world.Player) {
	for _, part := range playerParts(p) {
		part.X += p.Coords.X
		part.Y += p.Coords.Y
		r.fillRect(screen, cam, part.Rect, part.Color)
	}
}

func (r *Renderer) fillRect(screen *ebiten.Image, cam *world.Camera, rect world.Rect, c color.Color) {
	pos := cam.ToScreen(world.Vector{X: rect.X, Y: rect.Y})
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(rect.W), float32(rect.H), c, false)
}
