package sprite

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/bodgit/jy/palette"
	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

// Colours in order of first appearance, always starting with transparent
func uniqueColors(pix []uint32) color.Palette {
	seen := map[uint32]struct{}{0: {}}
	p := color.Palette{palette.Unpack(0)}
	for _, c := range pix {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			p = append(p, palette.Unpack(c))
		}
	}
	return p
}

func (s *Sprite) paletted() *image.Paletted {
	m := s.Image()
	b := m.Bounds()

	p := uniqueColors(s.Pix)
	if len(p) > maxColors {
		// Keep the transparent entry and quantize everything else into
		// the remaining slots
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(p[:1:maxColors], m)
	}

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

// EncodeGIF writes the sprite s to w in GIF format. Undrawn pixels are
// transparent. Sprites using more than 255 distinct colours are reduced with
// a median cut quantizer.
func EncodeGIF(w io.Writer, s *Sprite) error {
	return gif.Encode(w, s.paletted(), nil)
}

// EncodePNG writes the sprite s to w in PNG format
func EncodePNG(w io.Writer, s *Sprite) error {
	return png.Encode(w, s.Image())
}
