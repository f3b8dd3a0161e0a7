//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tile-automata/internal/tiles"
)

// SurfacePainter keeps a single RGBA image in sync with a tile surface.
type SurfacePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  Palette
}

// NewSurfacePainter allocates a painter for a w×h tile region.
func NewSurfacePainter(w, h int, pal Palette) *SurfacePainter {
	return &SurfacePainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		pal: pal,
	}
}

// Blit uploads region b of s and draws it scaled onto dst.
func (sp *SurfacePainter) Blit(dst *ebiten.Image, s tiles.Surface, b tiles.Bounds, scale int) {
	size := b.Size()
	if size.W != sp.w || size.H != sp.h {
		return
	}
	fillSurfaceRGBA(sp.buf, s, b, sp.pal)
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Size returns the dimensions of the underlying image in tiles.
func (sp *SurfacePainter) Size() (int, int) { return sp.w, sp.h }
