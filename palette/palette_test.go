package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want uint32
	}{
		{"black", []byte{0, 0, 0}, 0xff000000},
		{"mmap entry 1", []byte{0x33, 0x3c, 0x3e}, 0xfff8f0cc},
		{"6-bit white", []byte{63, 63, 63}, 0xfffcfcfc},
		{"overflowing components", []byte{0xff, 0xff, 0xff}, 0xfffcffff},
		{"red only", []byte{63, 0, 0}, 0xff0000fc},
		{"blue only", []byte{0, 0, 63}, 0xfffc0000},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := Load(test.raw)
			require.Len(t, p, 1)

			c, err := p.Color(0)
			require.NoError(t, err)
			assert.Equal(t, test.want, c)
		})
	}
}

func TestLoadFixtureEntry(t *testing.T) {
	p := Load([]byte{0, 0, 0, 0x33, 0x3c, 0x3e})

	c, err := p.Color(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xf8f0cc), c&0xffffff)
}

func TestLoadTrailingBytes(t *testing.T) {
	assert.Len(t, Load(make([]byte, 768)), 256)
	assert.Len(t, Load(make([]byte, 769)), 256)
	assert.Len(t, Load(make([]byte, 770)), 256)
	assert.Len(t, Load([]byte{1, 2}), 0)
	assert.Len(t, Load(nil), 0)
}

func TestColorOutOfRange(t *testing.T) {
	p := Load(make([]byte, 6))

	for _, i := range []int{-1, 2, 255} {
		_, err := p.Color(i)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	}

	_, err := p.RGBA(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestRGBA(t *testing.T) {
	p := Load([]byte{0x33, 0x3c, 0x3e})

	c, err := p.RGBA(0)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xcc, G: 0xf0, B: 0xf8, A: 0xff}, c)

	cp := p.ColorPalette()
	require.Len(t, cp, 1)
	assert.Equal(t, c, cp[0])
}
