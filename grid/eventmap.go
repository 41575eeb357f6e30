package grid

import (
	"bytes"
	"fmt"
	"io"
)

// EventMap is the mutable table of event state. It is not safe for
// concurrent writers
type EventMap struct {
	t table
}

// NewEventMap returns an EventMap backed by b. Set writes through to b
func NewEventMap(b []byte) *EventMap {
	return &EventMap{t: table(b)}
}

func (m *EventMap) index(scene, event int, field Field) (int, error) {
	if err := m.t.checkScene(scene, sceneEvents); err != nil {
		return 0, err
	}
	if err := checkRange("event", event, DNum); err != nil {
		return 0, err
	}
	if err := checkRange("field", int(field), FieldsPerEvent); err != nil {
		return 0, err
	}
	return (scene*DNum+event)*FieldsPerEvent + int(field), nil
}

// Get returns field of event in scene
func (m *EventMap) Get(scene, event int, field Field) (int16, error) {
	i, err := m.index(scene, event, field)
	if err != nil {
		return 0, err
	}
	return m.t.get(i)
}

// Set overwrites field of event in scene with v
func (m *EventMap) Set(scene, event int, field Field, v int16) error {
	i, err := m.index(scene, event, field)
	if err != nil {
		return err
	}
	return m.t.set(i, v)
}

// Update sets the fields of event in scene from values in field order.
// Values equal to Unchanged are skipped. Nothing is written unless every
// field that would be written is in range
func (m *EventMap) Update(scene, event int, values []int16) error {
	if len(values) > FieldsPerEvent {
		return fmt.Errorf("%w: %d values for %d fields", ErrOutOfRange, len(values), FieldsPerEvent)
	}
	last, err := m.index(scene, event, Field(FieldsPerEvent-1))
	if err != nil {
		return err
	}
	if _, err := m.t.offset(last); err != nil {
		return err
	}
	for f, v := range values {
		if v == Unchanged {
			continue
		}
		if err := m.Set(scene, event, Field(f), v); err != nil {
			return err
		}
	}
	return nil
}

// Scenes returns the number of complete scenes in the table
func (m *EventMap) Scenes() int {
	return len(m.t) / 2 / sceneEvents
}

// MarshalBinary returns a copy of the table
func (m *EventMap) MarshalBinary() ([]byte, error) {
	return bytes.Clone(m.t), nil
}

// WriteTo writes the table to w
func (m *EventMap) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.t)
	return int64(n), err
}
