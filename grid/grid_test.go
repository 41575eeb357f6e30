package grid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func put(b []byte, index int, v int16) {
	binary.LittleEndian.PutUint16(b[index*2:], uint16(v))
}

func TestSceneMapGet(t *testing.T) {
	b := make([]byte, 71*sceneLayers*2)
	put(b, 70*LayerNum*sceneCells, 4)
	put(b, 70*LayerNum*sceneCells+1*SceneWidth+4, 140)
	put(b, (70*LayerNum+int(LayerEvent))*sceneCells+20*SceneWidth+19, -1)

	m := NewSceneMap(b)
	assert.Equal(t, 71, m.Scenes())

	tests := []struct {
		scene, x, y int
		layer       Layer
		want        int16
	}{
		{70, 0, 0, LayerEarth, 4},
		{70, 4, 1, LayerEarth, 140},
		{70, 19, 20, LayerEvent, -1},
		{70, 1, 4, LayerEarth, 0},
		{69, 4, 1, LayerEarth, 0},
	}

	for _, test := range tests {
		v, err := m.Get(test.scene, test.x, test.y, test.layer)
		require.NoError(t, err)
		assert.Equal(t, test.want, v)
	}
}

func TestSceneMapOutOfRange(t *testing.T) {
	b := make([]byte, sceneLayers*2)
	put(b, 0, 4)
	m := NewSceneMap(b)

	tests := []struct {
		name        string
		scene, x, y int
		layer       Layer
	}{
		{"negative scene", -1, 0, 0, 0},
		{"scene beyond buffer", 1, 0, 0, 0},
		{"column", 0, SceneWidth, 0, 0},
		{"negative column", 0, -1, 0, 0},
		{"row", 0, 0, SceneHeight, 0},
		{"layer", 0, 0, 0, LayerNum},
		{"scene 1<<49", 1 << 49, 0, 0, 0},
		{"scene 1<<51", 1 << 51, 0, 0, 0},
		{"scene 1<<58", 1 << 58, 0, 0, 0},
		{"scene 1<<60", 1 << 60, 0, 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := m.Get(test.scene, test.x, test.y, test.layer)
			assert.True(t, errors.Is(err, ErrOutOfRange))
		})
	}

	v, err := m.Get(0, SceneWidth-1, SceneHeight-1, LayerAirHeight)
	assert.NoError(t, err)
	assert.Equal(t, int16(0), v)
}

func TestSceneMapNoAliasing(t *testing.T) {
	b := make([]byte, 2*sceneLayers*2)
	for i := 0; i < len(b)/2; i++ {
		put(b, i, int16(i))
	}
	m := NewSceneMap(b)

	seen := make(map[int16]bool)
	for scene := 0; scene < 2; scene++ {
		for layer := Layer(0); layer < LayerNum; layer++ {
			for _, xy := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {63, 63}} {
				v, err := m.Get(scene, xy[0], xy[1], layer)
				require.NoError(t, err)
				assert.False(t, seen[v])
				seen[v] = true
			}
		}
	}
}

func TestEventMapSetGet(t *testing.T) {
	b := make([]byte, 2*sceneEvents*2)
	m := NewEventMap(b)
	assert.Equal(t, 2, m.Scenes())

	for _, v := range []int16{0, 1, -1, -2, math.MinInt16, math.MaxInt16} {
		require.NoError(t, m.Set(1, DNum-1, FieldY, v))
		got, err := m.Get(1, DNum-1, FieldY)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	require.NoError(t, m.Set(0, 3, FieldPicture, 0x1234))
	assert.Equal(t, []byte{0x34, 0x12}, b[(3*FieldsPerEvent+int(FieldPicture))*2:][:2])

	v, err := m.Get(0, 3, FieldPictureDelay)
	require.NoError(t, err)
	assert.Equal(t, int16(0), v)
}

func TestEventMapNoAliasing(t *testing.T) {
	m := NewEventMap(make([]byte, 2*sceneEvents*2))

	n := int16(1)
	for scene := 0; scene < 2; scene++ {
		for _, event := range []int{0, 1, DNum - 1} {
			for field := Field(0); field < FieldsPerEvent; field++ {
				require.NoError(t, m.Set(scene, event, field, n))
				n++
			}
		}
	}

	n = 1
	for scene := 0; scene < 2; scene++ {
		for _, event := range []int{0, 1, DNum - 1} {
			for field := Field(0); field < FieldsPerEvent; field++ {
				v, err := m.Get(scene, event, field)
				require.NoError(t, err)
				assert.Equal(t, n, v)
				n++
			}
		}
	}
}

func TestEventMapOutOfRange(t *testing.T) {
	b := make([]byte, sceneEvents*2)
	m := NewEventMap(b)

	assert.True(t, errors.Is(m.Set(1, 0, 0, 1), ErrOutOfRange))
	assert.True(t, errors.Is(m.Set(-1, 0, 0, 1), ErrOutOfRange))
	assert.True(t, errors.Is(m.Set(0, DNum, 0, 1), ErrOutOfRange))
	assert.True(t, errors.Is(m.Set(0, 0, FieldsPerEvent, 1), ErrOutOfRange))

	_, err := m.Get(0, 0, -1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	// Scenes large enough to overflow the index must not wrap onto scene 0
	for _, scene := range []int{1 << 49, 1 << 51, 1 << 58, 1 << 60} {
		assert.True(t, errors.Is(m.Set(scene, 0, 0, 77), ErrOutOfRange), scene)
		assert.True(t, errors.Is(m.Update(scene, 0, []int16{77}), ErrOutOfRange), scene)
		_, err := m.Get(scene, 0, 0)
		assert.True(t, errors.Is(err, ErrOutOfRange), scene)
	}

	assert.Equal(t, make([]byte, len(b)), b)

	// A buffer that ends half way through a value
	short := NewEventMap(make([]byte, 3))
	_, err = short.Get(0, 0, 1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = short.Get(0, 0, 0)
	assert.NoError(t, err)

	_, err = NewEventMap(nil).Get(0, 0, 0)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestEventMapUpdate(t *testing.T) {
	m := NewEventMap(make([]byte, sceneEvents*2))
	require.NoError(t, m.Set(0, 5, FieldID, 7))

	err := m.Update(0, 5, []int16{1, Unchanged, 100, Unchanged, Unchanged, 2000, 2010, 2000, 0, 12, 34})
	require.NoError(t, err)

	want := []int16{1, 7, 100, 0, 0, 2000, 2010, 2000, 0, 12, 34}
	for f, w := range want {
		v, err := m.Get(0, 5, Field(f))
		require.NoError(t, err)
		assert.Equal(t, w, v, Field(f))
	}

	assert.True(t, errors.Is(m.Update(0, 5, make([]int16, FieldsPerEvent+1)), ErrOutOfRange))
	assert.True(t, errors.Is(m.Update(1, 5, []int16{1}), ErrOutOfRange))
}

func TestEventMapSave(t *testing.T) {
	b := make([]byte, sceneEvents*2)
	m := NewEventMap(b)
	require.NoError(t, m.Set(0, 0, FieldBlocking, 1))

	out, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, b, out)

	out[0] = 9
	v, err := m.Get(0, 0, FieldBlocking)
	require.NoError(t, err)
	assert.Equal(t, int16(1), v)

	buf := new(bytes.Buffer)
	n, err := m.WriteTo(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(b)), n)
	assert.Equal(t, b, buf.Bytes())
}

func TestLayerNames(t *testing.T) {
	assert.Equal(t, "building-height", LayerBuildingHeight.String())
	assert.Equal(t, "unknown", Layer(LayerNum).String())

	l, ok := ParseLayer("air")
	assert.True(t, ok)
	assert.Equal(t, LayerAir, l)

	_, ok = ParseLayer("sky")
	assert.False(t, ok)
}
