package sprite

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"testing"

	"github.com/bodgit/jy/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(width, height uint16, x, y int16, lines ...[]byte) []byte {
	b := new(bytes.Buffer)
	_ = binary.Write(b, binary.LittleEndian, header{width, height, x, y})
	for _, l := range lines {
		b.Write(l)
	}
	return b.Bytes()
}

func testPalette() palette.Palette {
	return palette.Load([]byte{
		0, 0, 0,
		63, 0, 0,
		0, 63, 0,
		0, 0, 63,
	})
}

func TestDecode(t *testing.T) {
	p := testPalette()

	tests := []struct {
		name   string
		width  uint16
		height uint16
		lines  [][]byte
		want   []uint32
	}{
		{
			name:   "two rows",
			width:  2,
			height: 2,
			lines: [][]byte{
				{4, 0, 2, 1, 2},
				{3, 1, 1, 3},
			},
			want: []uint32{p[1], p[2], 0, p[3]},
		},
		{
			name:   "several spans in one row",
			width:  4,
			height: 1,
			lines: [][]byte{
				{7, 1, 2, 1, 2, 0, 1, 3},
			},
			want: []uint32{0, p[1], p[2], p[3]},
		},
		{
			name:   "empty and skip only rows",
			width:  2,
			height: 3,
			lines: [][]byte{
				{0},
				{2, 1},
				{3, 1, 1, 3},
			},
			want: []uint32{0, 0, 0, 0, 0, p[3]},
		},
		{
			name:   "odd budget ends after skip",
			width:  2,
			height: 2,
			lines: [][]byte{
				{1, 0},
				{4, 0, 2, 2, 2},
			},
			want: []uint32{0, 0, p[2], p[2]},
		},
		{
			name:   "run clipped at the end of the buffer",
			width:  2,
			height: 1,
			lines: [][]byte{
				{6, 0, 4, 1, 2, 3, 1},
			},
			want: []uint32{p[1], p[2]},
		},
		{
			name:   "skip past the end of the buffer",
			width:  2,
			height: 1,
			lines: [][]byte{
				{5, 9, 3, 1, 1, 1},
			},
			want: []uint32{0, 0},
		},
		{
			name:   "stream ends inside a run",
			width:  3,
			height: 1,
			lines: [][]byte{
				{5, 0, 3, 1, 2},
			},
			want: []uint32{p[1], p[2], 0},
		},
		{
			name:   "no scanlines",
			width:  2,
			height: 1,
			want:   []uint32{0, 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := Decode(record(test.width, test.height, 0, 0, test.lines...), p)
			require.NoError(t, err)
			assert.Equal(t, int(test.width), s.Width)
			assert.Equal(t, int(test.height), s.Height)
			assert.Equal(t, test.want, s.Pix)
		})
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	for _, dims := range [][2]uint16{{0, 0}, {0, 4}, {4, 0}} {
		s, err := Decode(record(dims[0], dims[1], 0, 0, []byte{4, 0, 2, 1, 2}, []byte{3, 1, 1, 3}), testPalette())
		require.NoError(t, err)
		assert.Len(t, s.Pix, 0)
	}
}

func TestDecodePaletteIndexOutOfRange(t *testing.T) {
	_, err := Decode(record(2, 1, 0, 0, []byte{4, 0, 2, 1, 4}), testPalette())
	assert.True(t, errors.Is(err, palette.ErrIndexOutOfRange))
}

func TestDecodeShortHeader(t *testing.T) {
	for _, b := range [][]byte{nil, {1, 0, 1, 0, 0}} {
		_, err := Decode(b, testPalette())
		assert.Equal(t, ErrShortHeader, err)

		_, err = DecodeConfig(b)
		assert.Equal(t, ErrShortHeader, err)
	}
}

func TestDecodeTooLarge(t *testing.T) {
	b := record(0xffff, 0xffff, 0, 0, []byte{4, 0, 2, 1, 2})

	_, err := Decode(b, testPalette())
	assert.True(t, errors.Is(err, ErrTooLarge))

	c, err := DecodeConfig(b)
	require.NoError(t, err)
	assert.Equal(t, 0xffff, c.Width)

	s, err := Decode(record(1024, 1024, 0, 0), testPalette())
	require.NoError(t, err)
	assert.Len(t, s.Pix, MaxPixels)
}

func TestDecodeIdempotent(t *testing.T) {
	b := record(4, 2, 3, -2, []byte{7, 1, 2, 1, 2, 0, 1, 3}, []byte{4, 2, 2, 3, 3})
	p := testPalette()

	s1, err := Decode(b, p)
	require.NoError(t, err)
	s2, err := Decode(b, p)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, s1.Image().Pix, s2.Image().Pix)
}

func TestDecodeConfig(t *testing.T) {
	c, err := DecodeConfig(record(36, 18, -4, 300))
	require.NoError(t, err)
	assert.Equal(t, Config{Width: 36, Height: 18, XOffset: -4, YOffset: 300}, c)
	assert.Equal(t, image.Pt(-4, 300), c.Anchor())
}

func TestImage(t *testing.T) {
	s, err := Decode(record(2, 1, 0, 0, []byte{3, 1, 1, 1}), testPalette())
	require.NoError(t, err)

	m := s.Image()
	assert.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())
	assert.Equal(t, []uint8{0, 0, 0, 0, 0xfc, 0, 0, 0xff}, m.Pix)
}

func TestEncodePNG(t *testing.T) {
	s, err := Decode(record(2, 2, 0, 0, []byte{4, 0, 2, 1, 2}, []byte{3, 1, 1, 3}), testPalette())
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, EncodePNG(b, s))

	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), m.Bounds())

	_, _, _, a := m.At(0, 1).RGBA()
	assert.Equal(t, uint32(0), a)
	r, _, _, a := m.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(0xfcfc), r)
}

func TestEncodeGIF(t *testing.T) {
	s, err := Decode(record(2, 2, 0, 0, []byte{4, 0, 2, 1, 2}, []byte{3, 1, 1, 3}), testPalette())
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, EncodeGIF(b, s))

	m, err := gif.Decode(b)
	require.NoError(t, err)

	pm, ok := m.(*image.Paletted)
	require.True(t, ok)
	assert.Len(t, pm.Palette, 4)

	_, _, _, a := pm.At(0, 1).RGBA()
	assert.Equal(t, uint32(0), a)
	_, g, _, a := pm.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(0xfcfc), g)
}

func TestEncodeGIFQuantized(t *testing.T) {
	raw := make([]byte, 0, 256*3)
	for i := 0; i < 256; i++ {
		raw = append(raw, byte(i&63), byte(i>>6)*16, 0)
	}
	p := palette.Load(raw)

	var lines [][]byte
	for y := 0; y < 16; y++ {
		l := []byte{18, 1, 16}
		for x := 0; x < 16; x++ {
			l = append(l, byte(y*16+x))
		}
		lines = append(lines, l)
	}

	s, err := Decode(record(17, 16, 0, 0, lines...), p)
	require.NoError(t, err)
	require.Len(t, uniqueColors(s.Pix), 257)

	b := new(bytes.Buffer)
	require.NoError(t, EncodeGIF(b, s))

	m, err := gif.Decode(b)
	require.NoError(t, err)

	pm, ok := m.(*image.Paletted)
	require.True(t, ok)
	assert.LessOrEqual(t, len(pm.Palette), 256)

	_, _, _, a := pm.At(0, 5).RGBA()
	assert.Equal(t, uint32(0), a)
	_, _, _, a = pm.At(1, 5).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}
