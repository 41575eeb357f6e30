/*
Package grid implements the two flat tables of signed 16-bit little-endian
integers that hold the per-scene map layers and event state.

The scene map is indexed by scene, layer, row and column; every scene is
SceneWidth by SceneHeight cells with LayerNum layers. The event map is indexed
by scene, event and field; every scene has DNum events of FieldsPerEvent
fields each.
*/
package grid

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// SceneWidth is the number of columns in a scene
	SceneWidth = 64
	// SceneHeight is the number of rows in a scene
	SceneHeight = 64
	// LayerNum is the number of layers in a scene
	LayerNum = 6
	// DNum is the number of events in a scene
	DNum = 200
	// FieldsPerEvent is the number of fields in an event
	FieldsPerEvent = 11

	sceneCells  = SceneWidth * SceneHeight
	sceneLayers = sceneCells * LayerNum
	sceneEvents = DNum * FieldsPerEvent
)

// ErrOutOfRange is returned for any coordinate outside of a table
var ErrOutOfRange = errors.New("grid: index out of range")

func checkRange(name string, v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %s %d not in [0, %d)", ErrOutOfRange, name, v, n)
	}
	return nil
}

type table []byte

// The scene is bounded before any index arithmetic so that it can't
// overflow. A partial trailing scene still counts, its cells are checked
// against the buffer by offset.
func (t table) checkScene(scene, values int) error {
	return checkRange("scene", scene, (len(t)/2+values-1)/values)
}

func (t table) offset(index int) (int, error) {
	if index < 0 || index >= len(t)/2 {
		return 0, fmt.Errorf("%w: index %d beyond %d bytes", ErrOutOfRange, index, len(t))
	}
	return index * 2, nil
}

func (t table) get(index int) (int16, error) {
	off, err := t.offset(index)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(t[off:])), nil
}

func (t table) set(index int, v int16) error {
	off, err := t.offset(index)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(t[off:], uint16(v))
	return nil
}
