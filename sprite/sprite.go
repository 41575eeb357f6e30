/*
Package sprite implements a decoder for the run-length encoded, palette
indexed sprites stored in the game's graphics archives.

Each sprite starts with an 8 byte little-endian header; the unsigned width and
height followed by the signed x and y offset of the anchor point within the
sprite. The rest of the record is a series of scanlines. Each scanline starts
with a byte count for the line, followed by pairs of spans; a number of
transparent pixels to skip, then a count of opaque pixels and that many
palette indices. Pixels never written stay transparent.
*/
package sprite

import (
	"image"

	"github.com/bodgit/jy/palette"
)

const headerSize = 8

// Config holds the dimensions and placement of a sprite
type Config struct {
	Width   int
	Height  int
	XOffset int
	YOffset int
}

// Sprite is a decoded sprite. Pix holds Width*Height packed colours in
// row-major order, in the same 0xAABBGGRR layout as a palette.Palette.
type Sprite struct {
	Config
	Pix []uint32
}

// Image returns the sprite as an *image.RGBA
func (s *Sprite) Image() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for i, c := range s.Pix {
		rgba := palette.Unpack(c)
		m.Pix[i*4+0] = rgba.R
		m.Pix[i*4+1] = rgba.G
		m.Pix[i*4+2] = rgba.B
		m.Pix[i*4+3] = rgba.A
	}
	return m
}

// Anchor returns the point within the sprite that should line up with the
// logical position it's drawn at
func (c Config) Anchor() image.Point {
	return image.Pt(c.XOffset, c.YOffset)
}
