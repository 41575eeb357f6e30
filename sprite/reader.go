package sprite

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/jy/palette"
)

// MaxPixels is the largest Width*Height that Decode will allocate
const MaxPixels = 1 << 20

var (
	// ErrShortHeader is returned when a record is too short to hold the
	// sprite header
	ErrShortHeader = errors.New("sprite: short header")
	// ErrTooLarge is returned when the header describes a sprite with more
	// than MaxPixels pixels
	ErrTooLarge = errors.New("sprite: too large")
)

type header struct {
	Width   uint16
	Height  uint16
	XOffset int16
	YOffset int16
}

type decoder struct {
	r *bytes.Reader

	config Config
	pix    []uint32
}

func (d *decoder) readHeader() error {
	var h header
	if err := binary.Read(d.r, binary.LittleEndian, &h); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrShortHeader
		}
		return err
	}

	d.config = Config{
		Width:   int(h.Width),
		Height:  int(h.Height),
		XOffset: int(h.XOffset),
		YOffset: int(h.YOffset),
	}
	return nil
}

// Each scanline is charged against its own byte budget; a skip costs two
// and a run costs its length. The budget is signed so that a skip taking it
// below zero ends the line rather than wrapping.
func (d *decoder) readScanlines(p palette.Palette) error {
	for row := 0; ; row++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return nil
		}

		budget := int(b)
		pos := row * d.config.Width

		for budget > 0 {
			skip, err := d.r.ReadByte()
			if err != nil {
				return nil
			}
			pos += int(skip)
			budget -= 2

			if budget <= 0 {
				break
			}

			n, err := d.r.ReadByte()
			if err != nil {
				return nil
			}
			budget -= int(n)

			for ; n > 0; n-- {
				i, err := d.r.ReadByte()
				if err != nil {
					return nil
				}
				c, err := p.Color(int(i))
				if err != nil {
					return fmt.Errorf("sprite: row %d: %w", row, err)
				}
				if pos >= 0 && pos < len(d.pix) {
					d.pix[pos] = c
					pos++
				}
			}
		}
	}
}

func (d *decoder) decode(b []byte, p palette.Palette, configOnly bool) error {
	d.r = bytes.NewReader(b)

	if err := d.readHeader(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	n := d.config.Width * d.config.Height
	if n > MaxPixels {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, d.config.Width, d.config.Height)
	}

	d.pix = make([]uint32, n)

	return d.readScanlines(p)
}

// Decode decodes the sprite record b using the colours in p
func Decode(b []byte, p palette.Palette) (*Sprite, error) {
	var d decoder
	if err := d.decode(b, p, false); err != nil {
		return nil, err
	}
	return &Sprite{
		Config: d.config,
		Pix:    d.pix,
	}, nil
}

// DecodeConfig returns the dimensions and placement of the sprite record b
// without decoding the pixels.
func DecodeConfig(b []byte) (Config, error) {
	var d decoder
	if err := d.decode(b, nil, true); err != nil {
		return Config{}, err
	}
	return d.config, nil
}
