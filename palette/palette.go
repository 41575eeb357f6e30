/*
Package palette implements the colour table used by the game sprites.

The source file is a headerless run of 3-byte entries holding 6-bit red,
green and blue components. Each entry is expanded into a packed 32-bit value
laid out as 0xAABBGGRR, so that written out little-endian it is an RGBA pixel.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
)

const entrySize = 3

// ErrIndexOutOfRange is returned when looking up a colour beyond the end of
// the palette
var ErrIndexOutOfRange = errors.New("palette: index out of range")

// Palette is an ordered list of packed, fully opaque colours
type Palette []uint32

func pack(c1, c2, c3 byte) uint32 {
	rgb := uint32(c1)<<18 + uint32(c2)<<10 + uint32(c3)<<2
	return (rgb&0xff)<<16 + rgb&0xff00 + (rgb&0xff0000)>>16 + 0xff000000
}

// Load builds a Palette from the raw colour table. Any trailing bytes that
// don't form a complete entry are ignored.
func Load(b []byte) Palette {
	p := make(Palette, 0, len(b)/entrySize)
	for i := 0; i+entrySize <= len(b); i += entrySize {
		p = append(p, pack(b[i], b[i+1], b[i+2]))
	}
	return p
}

// Color returns the packed colour at index i
func (p Palette) Color(i int) (uint32, error) {
	if i < 0 || i >= len(p) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p))
	}
	return p[i], nil
}

// Unpack converts a packed colour to a color.RGBA
func Unpack(c uint32) color.RGBA {
	return color.RGBA{
		R: byte(c),
		G: byte(c >> 8),
		B: byte(c >> 16),
		A: byte(c >> 24),
	}
}

// RGBA returns the colour at index i as a color.RGBA
func (p Palette) RGBA(i int) (color.RGBA, error) {
	c, err := p.Color(i)
	if err != nil {
		return color.RGBA{}, err
	}
	return Unpack(c), nil
}

// ColorPalette returns the Palette as a color.Palette
func (p Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = Unpack(c)
	}
	return cp
}
