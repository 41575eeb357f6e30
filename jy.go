/*
Package jy is a library for reading the data files of the Jin Yong tile RPG.

It ties together the record archive, the scene layer and event tables, the
palette and the sprite archives found in a game data directory.
*/
package jy

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/bodgit/jy/grid"
	"github.com/bodgit/jy/grp"
	"github.com/bodgit/jy/palette"
	"github.com/bodgit/jy/record"
	"github.com/bodgit/jy/sprite"
)

// The party starts a new game here
const (
	EntryScene = 70
	EntryX     = 19
	EntryY     = 20
)

// Record numbers within the R archive
const (
	baseRecord = iota
	peopleRecord
	thingsRecord
	scenesRecord
)

// ErrMissingSprite is returned by Sprite for an empty or unknown record
var ErrMissingSprite = errors.New("jy: missing sprite")

// Config describes where the data files are and how to read them
type Config struct {
	Dir      string
	Encoding string

	Ranger  string
	Layers  string
	Events  string
	Palette string
	Sprites [numSpriteSets]string
}

// DefaultConfig returns the standard file names with data files in dir
func DefaultConfig(dir string) Config {
	return Config{
		Dir:      dir,
		Encoding: "utf-8",
		Ranger:   "ranger.grp",
		Layers:   "allsin.grp",
		Events:   "alldef.grp",
		Palette:  "mmap.col",
		Sprites: [numSpriteSets]string{
			SceneSprites: "smap.grp",
			HeadSprites:  "hdgrp.grp",
			ThingSprites: "thing.grp",
		},
	}
}

func (c Config) path(file string) string {
	return filepath.Join(c.Dir, file)
}

// Asset describes one of the files read by Load
type Asset struct {
	Name    string
	Size    int
	Records int
}

type spriteKey struct {
	set SpriteSet
	id  int
}

// Game holds everything decoded from a data directory
type Game struct {
	Base    *record.Base
	People  []*record.Person
	Things  []*record.Thing
	Scenes  []*record.Scene
	Layers  *grid.SceneMap
	Events  *grid.EventMap
	Palette palette.Palette

	assets  []Asset
	sprites [numSpriteSets]*grp.Archive

	mu    sync.Mutex
	cache map[spriteKey]*sprite.Sprite

	logger *log.Logger
}

func (g *Game) openArchive(file string) (*grp.Archive, error) {
	a, err := grp.Open(file)
	switch {
	case errors.Is(err, grp.ErrMissingIndex):
		g.logger.Printf("No index for \"%s\", treating as empty\n", file)
	case err != nil:
		return nil, err
	}
	g.assets = append(g.assets, Asset{Name: filepath.Base(file), Size: a.Size(), Records: a.Len()})
	return a, nil
}

func (g *Game) readFile(file string) ([]byte, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	g.assets = append(g.assets, Asset{Name: filepath.Base(file), Size: len(b)})
	return b, nil
}

func (g *Game) record(a *grp.Archive, i int, name string) []byte {
	b, ok := a.Record(i)
	if !ok {
		g.logger.Printf("No %s record\n", name)
	}
	return b
}

func (g *Game) loadRanger(file string, d *record.Decoder) error {
	a, err := g.openArchive(file)
	if err != nil {
		return err
	}

	if b := g.record(a, baseRecord, "base"); b != nil {
		if g.Base, err = d.Base(b); err != nil {
			return fmt.Errorf("base: %w", err)
		}
	}
	if b := g.record(a, peopleRecord, "people"); b != nil {
		if g.People, err = d.People(b); err != nil {
			return fmt.Errorf("people: %w", err)
		}
	}
	if b := g.record(a, thingsRecord, "things"); b != nil {
		if g.Things, err = d.Things(b); err != nil {
			return fmt.Errorf("things: %w", err)
		}
	}
	if b := g.record(a, scenesRecord, "scenes"); b != nil {
		if g.Scenes, err = d.Scenes(b); err != nil {
			return fmt.Errorf("scenes: %w", err)
		}
	}

	g.logger.Printf("Loaded %d people, %d things and %d scenes\n", len(g.People), len(g.Things), len(g.Scenes))

	return nil
}

// Load reads the data files described by cfg. Progress and anything
// tolerated, such as a missing index, is logged to logger.
func Load(cfg Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		cache:  make(map[spriteKey]*sprite.Sprite),
		logger: logger,
	}

	var d record.Decoder
	if cfg.Encoding != "" {
		enc, err := record.LookupEncoding(cfg.Encoding)
		if err != nil {
			return nil, err
		}
		d.Encoding = enc
	}

	if err := g.loadRanger(cfg.path(cfg.Ranger), &d); err != nil {
		return nil, err
	}

	b, err := g.readFile(cfg.path(cfg.Layers))
	if err != nil {
		return nil, err
	}
	g.Layers = grid.NewSceneMap(b)
	if g.Layers.Scenes() < len(g.Scenes) {
		g.logger.Printf("Layers cover %d of %d scenes\n", g.Layers.Scenes(), len(g.Scenes))
	}

	if b, err = g.readFile(cfg.path(cfg.Events)); err != nil {
		return nil, err
	}
	// Only the events of known scenes are kept
	if n := len(g.Scenes) * grid.DNum * grid.FieldsPerEvent * 2; n > 0 && len(b) > n {
		g.logger.Printf("Trimming events from %d to %d bytes\n", len(b), n)
		b = b[:n:n]
	}
	g.Events = grid.NewEventMap(b)

	if b, err = g.readFile(cfg.path(cfg.Palette)); err != nil {
		return nil, err
	}
	g.Palette = palette.Load(b)

	for i, file := range cfg.Sprites {
		if g.sprites[i], err = g.openArchive(cfg.path(file)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Assets returns the files read by Load in the order they were read
func (g *Game) Assets() []Asset {
	return g.assets
}

// EntryScene returns the scene a new game starts in
func (g *Game) EntryScene() (*record.Scene, bool) {
	if EntryScene >= len(g.Scenes) {
		return nil, false
	}
	return g.Scenes[EntryScene], true
}

// Talented returns the people with a talent greater than talent
func (g *Game) Talented(talent int) []*record.Person {
	var people []*record.Person
	for _, p := range g.People {
		if int(p.Talent) > talent {
			people = append(people, p)
		}
	}
	return people
}

// Sprites returns the number of slots in the given sprite archive
func (g *Game) Sprites(set SpriteSet) int {
	if !set.valid() {
		return 0
	}
	return g.sprites[set].Len()
}

// Sprite returns sprite id from the given archive. Decoded sprites are
// cached and shared between callers so must not be modified. Sprites are
// decoded concurrently, only the cache is locked.
func (g *Game) Sprite(set SpriteSet, id int) (*sprite.Sprite, error) {
	if !set.valid() {
		return nil, fmt.Errorf("%w: %s %d", ErrMissingSprite, set, id)
	}

	key := spriteKey{set, id}

	g.mu.Lock()
	s, ok := g.cache[key]
	g.mu.Unlock()
	if ok {
		return s, nil
	}

	b, ok := g.sprites[set].Record(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrMissingSprite, set, id)
	}

	// Decode without holding the lock, if another caller got there first
	// use their sprite instead
	s, err := sprite.Decode(b, g.Palette)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", set, id, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if cached, ok := g.cache[key]; ok {
		return cached, nil
	}
	g.cache[key] = s

	return s, nil
}

// SaveEvents writes the event table to file
func (g *Game) SaveEvents(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := g.Events.WriteTo(f); err != nil {
		return err
	}

	return f.Close()
}
