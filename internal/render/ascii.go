package render

import (
	"image"
	"image/png"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"tile-automata/internal/core"
	"tile-automata/internal/tiles"
)

// Glyph returns the character used for id in text renderings: '.' for plain
// ground, '#' for edges and corners, the upper-cased first letter of a
// resource tag, and ' ' for empty positions.
func Glyph(id tiles.Identity) rune {
	switch {
	case id == tiles.None:
		return ' '
	case id == tiles.PlainGround:
		return '.'
	case id.IsGround():
		return '#'
	}
	if tag, ok := id.Resource(); ok && tag != "" {
		r, _ := utf8.DecodeRuneInString(string(tag))
		return unicode.ToUpper(r)
	}
	return '?'
}

// ASCII renders region b of s, one line per row.
func ASCII(s tiles.Surface, b tiles.Bounds) string {
	size := b.Size()
	var sb strings.Builder
	sb.Grow((size.W + 1) * size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			sb.WriteRune(Glyph(s.ResolvedIdentity(core.Position{X: b.Min.X + x, Y: b.Min.Y + y})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WritePNG encodes region b of s as a PNG, each tile scaled to scale×scale
// pixels.
func WritePNG(w io.Writer, s tiles.Surface, b tiles.Bounds, pal Palette, scale int) error {
	return png.Encode(w, Scale(Image(s, b, pal), scale))
}

// Scale enlarges img by an integer factor using nearest-neighbor sampling.
func Scale(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	src := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, src.Dx()*scale, src.Dy()*scale))
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			si := img.PixOffset(src.Min.X+x/scale, src.Min.Y+y/scale)
			di := out.PixOffset(x, y)
			copy(out.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return out
}
