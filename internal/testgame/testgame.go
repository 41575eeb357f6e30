/*
Package testgame writes a small but complete set of game data files for
tests.
*/
package testgame

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/bodgit/jy/grid"
	"github.com/bodgit/jy/grp"
	"github.com/bodgit/jy/record"
)

// The entry scene is the last scene; the event table has one extra scene
// beyond that
const (
	EntryScene = 70
	EntryX     = 19
	EntryY     = 20

	Scenes = EntryScene + 1
	Events = Scenes + 1
)

func put16(b []byte, off int, v int16) {
	binary.LittleEndian.PutUint16(b[off:], uint16(v))
}

// Person returns a person record
func Person(name, alias string, level, talent, weapon, armor int16) []byte {
	b := make([]byte, record.PersonSize)
	copy(b[8:28], name)
	copy(b[28:48], alias)
	put16(b, 50, level)
	put16(b, 66, weapon)
	put16(b, 68, armor)
	put16(b, 140, talent)
	return b
}

func thing(name, description string, kind int16) []byte {
	b := make([]byte, record.ThingSize)
	copy(b[2:42], name)
	copy(b[82:142], description)
	put16(b, 152, kind)
	return b
}

func scene(name string, x, y int16) []byte {
	b := make([]byte, record.SceneSize)
	copy(b[2:22], name)
	put16(b, 38, x)
	put16(b, 40, y)
	return b
}

func sprite(w, h int16, lines ...[]byte) []byte {
	b := make([]byte, 8)
	put16(b, 0, w)
	put16(b, 2, h)
	for _, l := range lines {
		b = append(b, l...)
	}
	return b
}

// WriteArchive writes records to file, and its index unless indexed is false
func WriteArchive(file string, records [][]byte, indexed bool) error {
	index, data := grp.Encode(records)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return err
	}
	if indexed {
		return os.WriteFile(grp.IndexFile(file), index, 0o644)
	}
	return nil
}

// Write writes the game data files to dir using the default file names.
//
// There are three people, of which the first two have a talent above 85,
// two things and Scenes scenes. The base inventory holds three of the second
// thing. Scene layers hold 4 at (0, 0) and 140 at (4, 1) of the earth layer
// of the entry scene, and event 1 of the entry scene has the ID 42.
//
// Scene sprite 0 and 3 are drawable, 1 is an empty slot and 2 has no pixels.
// The head sprites have no index and the only thing sprite uses a colour
// beyond the palette.
func Write(dir string) error {
	path := func(file string) string {
		return filepath.Join(dir, file)
	}

	base := make([]byte, record.BaseSize)
	put16(base, 36, 1)
	put16(base, 38, 3)
	put16(base, 40, -1)

	var people []byte
	people = append(people, Person("Hu Fei", "Flying Fox", 10, 90, 0, -1)...)
	people = append(people, Person("Miao Renfeng", "Golden Face", 30, 95, 7, 1)...)
	people = append(people, Person("Shi Potian", "", 1, 20, -1, -1)...)

	var things []byte
	things = append(things, thing("Sword", "A plain sword", 2)...)
	things = append(things, thing("Herb", "Restores life", 3)...)

	var scenes []byte
	for i := 0; i < Scenes; i++ {
		name := "Wilderness"
		if i == EntryScene {
			name = "Xiaoxiang"
		}
		scenes = append(scenes, scene(name, EntryX, EntryY)...)
	}

	if err := WriteArchive(path("ranger.grp"), [][]byte{base, people, things, scenes}, true); err != nil {
		return err
	}

	const cells = grid.SceneWidth * grid.SceneHeight

	layers := make([]byte, Scenes*grid.LayerNum*cells*2)
	put16(layers, EntryScene*grid.LayerNum*cells*2, 4)
	put16(layers, (EntryScene*grid.LayerNum*cells+grid.SceneWidth+4)*2, 140)
	if err := os.WriteFile(path("allsin.grp"), layers, 0o644); err != nil {
		return err
	}

	events := make([]byte, Events*grid.DNum*grid.FieldsPerEvent*2)
	put16(events, ((EntryScene*grid.DNum+1)*grid.FieldsPerEvent+int(grid.FieldID))*2, 42)
	if err := os.WriteFile(path("alldef.grp"), events, 0o644); err != nil {
		return err
	}

	if err := os.WriteFile(path("mmap.col"), []byte{
		0, 0, 0,
		0x33, 0x3c, 0x3e,
		63, 0, 0,
		0, 0, 63,
	}, 0o644); err != nil {
		return err
	}

	if err := WriteArchive(path("smap.grp"), [][]byte{
		sprite(2, 1, []byte{4, 0, 2, 1, 2}),
		nil,
		sprite(0, 0),
		sprite(3, 2, []byte{3, 1, 1, 3}, []byte{5, 0, 3, 1, 2, 3}),
	}, true); err != nil {
		return err
	}

	if err := WriteArchive(path("hdgrp.grp"), [][]byte{sprite(1, 1, []byte{3, 0, 1, 1})}, false); err != nil {
		return err
	}

	return WriteArchive(path("thing.grp"), [][]byte{sprite(1, 1, []byte{3, 0, 1, 9})}, true)
}
