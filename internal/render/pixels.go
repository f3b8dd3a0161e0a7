package render

import (
	"hash/fnv"
	"image"
	"image/color"

	"tile-automata/internal/core"
	"tile-automata/internal/tiles"
)

// Palette maps tile identities to colors.
type Palette struct {
	Empty     color.RGBA
	Plain     color.RGBA
	Corner    color.RGBA
	Edge      color.RGBA
	Resources map[tiles.ResourceTag]color.RGBA
}

// DefaultPalette returns the standard terrain colors.
func DefaultPalette() Palette {
	return Palette{
		Empty:  color.RGBA{R: 20, G: 34, B: 58, A: 255},
		Plain:  color.RGBA{R: 96, G: 160, B: 72, A: 255},
		Corner: color.RGBA{R: 78, G: 132, B: 60, A: 255},
		Edge:   color.RGBA{R: 194, G: 178, B: 128, A: 255},
		Resources: map[tiles.ResourceTag]color.RGBA{
			"stone": {R: 128, G: 128, B: 136, A: 255},
			"wood":  {R: 110, G: 72, B: 36, A: 255},
			"gold":  {R: 240, G: 200, B: 40, A: 255},
			"fish":  {R: 70, G: 150, B: 220, A: 255},
		},
	}
}

// Color returns the color for id. Unknown resource tags get a stable color
// derived from the tag name.
func (p Palette) Color(id tiles.Identity) color.RGBA {
	switch {
	case id == tiles.None:
		return p.Empty
	case id == tiles.PlainGround:
		return p.Plain
	case id == tiles.GroundCorner:
		return p.Corner
	case id.IsGround():
		return p.Edge
	}
	if tag, ok := id.Resource(); ok {
		if c, ok := p.Resources[tag]; ok {
			return c
		}
		return hashedColor(string(tag))
	}
	return p.Empty
}

func hashedColor(s string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(s))
	v := h.Sum32()
	return color.RGBA{R: 64 + uint8(v)%160, G: 64 + uint8(v>>8)%160, B: 64 + uint8(v>>16)%160, A: 255}
}

// fillSurfaceRGBA writes one RGBA pixel per position of b into buf in
// row-major order. buf must hold 4*W*H bytes.
func fillSurfaceRGBA(buf []byte, s tiles.Surface, b tiles.Bounds, pal Palette) {
	size := b.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			col := pal.Color(s.ResolvedIdentity(core.Position{X: b.Min.X + x, Y: b.Min.Y + y}))
			base := (y*size.W + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// Image renders region b of s at one pixel per tile.
func Image(s tiles.Surface, b tiles.Bounds, pal Palette) *image.RGBA {
	size := b.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillSurfaceRGBA(img.Pix, s, b, pal)
	return img
}
