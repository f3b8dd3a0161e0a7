//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"tile-automata/internal/core"
	"tile-automata/internal/mapgen"
	"tile-automata/internal/tiles"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Inspectable is the view of a session the inspector needs.
type Inspectable interface {
	Size() core.Size
	Bounds() tiles.Bounds
	Inspect(p core.Position) mapgen.Inspection
}

// Inspector highlights the tile under the cursor and labels it with its
// resolved identity and coordinates. G toggles a tile grid, I toggles the
// inspector itself.
type Inspector struct {
	src     Inspectable
	scale   int
	enabled bool
	grid    bool

	hover   mapgen.Inspection
	hovered bool

	pixel *ebiten.Image
}

// NewInspector constructs an inspector for a map drawn at scale pixels per
// tile from the top-left corner of the screen.
func NewInspector(src Inspectable, scale int) *Inspector {
	if scale <= 0 {
		scale = 1
	}
	o := &Inspector{src: src, scale: scale, enabled: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the cursor and the toggle keys.
func (o *Inspector) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.enabled = !o.enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.grid = !o.grid
	}
	o.hovered = false
	if !o.enabled {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := o.src.Size()
	if mx < 0 || my < 0 || mx >= size.W*o.scale || my >= size.H*o.scale {
		return
	}
	min := o.src.Bounds().Min
	o.hover = o.src.Inspect(core.Position{X: min.X + mx/o.scale, Y: min.Y + my/o.scale})
	o.hovered = true
}

// Draw renders the grid and the hover highlight.
func (o *Inspector) Draw(screen *ebiten.Image) {
	size := o.src.Size()
	if o.grid {
		o.drawGrid(screen, size)
	}
	if !o.hovered {
		return
	}
	min := o.src.Bounds().Min
	sx := (o.hover.Position.X - min.X) * o.scale
	sy := (o.hover.Position.Y - min.Y) * o.scale
	o.drawOutline(screen, sx, sy, o.scale, color.RGBA{R: 255, G: 230, B: 80, A: 230})

	label := fmt.Sprintf("(%d,%d) cell %d,%d %s", o.hover.Position.X, o.hover.Position.Y,
		o.hover.GridX, o.hover.GridY, identityLabel(o.hover.Identity))
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	pad := 4
	boxW := bounds.Dx() + 2*pad
	boxH := face.Height + 2*pad
	bx := 0
	by := size.H*o.scale - boxH
	if sy+o.scale > by {
		by = 0
	}
	o.fillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 0, G: 0, B: 0, A: 180})
	text.Draw(screen, label, face, bx+pad, by+pad+face.Ascent, brightText)
}

func identityLabel(id tiles.Identity) string {
	if id == tiles.None {
		return "empty"
	}
	return string(id)
}

func (o *Inspector) drawGrid(screen *ebiten.Image, size core.Size) {
	if o.scale < 4 {
		return
	}
	col := color.RGBA{R: 255, G: 255, B: 255, A: 24}
	w, h := size.W*o.scale, size.H*o.scale
	for x := 0; x <= size.W; x++ {
		o.fillRect(screen, x*o.scale, 0, 1, h, col)
	}
	for y := 0; y <= size.H; y++ {
		o.fillRect(screen, 0, y*o.scale, w, 1, col)
	}
}

func (o *Inspector) drawOutline(screen *ebiten.Image, x, y, side int, col color.RGBA) {
	o.fillRect(screen, x, y, side, 1, col)
	o.fillRect(screen, x, y+side-1, side, 1, col)
	o.fillRect(screen, x, y, 1, side, col)
	o.fillRect(screen, x+side-1, y, 1, side, col)
}

func (o *Inspector) fillRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
