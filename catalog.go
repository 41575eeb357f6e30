package jy

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is a searchable sqlite database of the people, scenes and things
// of a Game
type Catalog struct {
	db *sql.DB
}

// NewCatalog opens or creates the catalog in file
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS person (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL, alias TEXT NOT NULL, level INTEGER NOT NULL, talent INTEGER NOT NULL, weapon INTEGER, armor INTEGER)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS thing (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL, description TEXT NOT NULL, kind INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS scene (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL, entry_x INTEGER NOT NULL, entry_y INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS inventory (thing_id INTEGER NOT NULL, count INTEGER NOT NULL, FOREIGN KEY(thing_id) REFERENCES thing(id))"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Import replaces the contents of the catalog with g
func (c *Catalog) Import(g *Game) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"inventory", "person", "thing", "scene"} {
		if _, err = tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for i, p := range g.People {
		// Negative slots mean nothing is equipped
		var weapon, armor sql.NullInt64
		if p.Weapon >= 0 {
			weapon.Int64, weapon.Valid = int64(p.Weapon), true
		}
		if p.Armor >= 0 {
			armor.Int64, armor.Valid = int64(p.Armor), true
		}

		if _, err = tx.Exec("INSERT INTO person (id, name, alias, level, talent, weapon, armor) VALUES (?, ?, ?, ?, ?, ?, ?)", i, p.Name, p.Alias, p.Level, p.Talent, weapon, armor); err != nil {
			return err
		}
	}

	for i, t := range g.Things {
		if _, err = tx.Exec("INSERT INTO thing (id, name, description, kind) VALUES (?, ?, ?, ?)", i, t.Name, t.Description, t.Kind); err != nil {
			return err
		}
	}

	for i, s := range g.Scenes {
		if _, err = tx.Exec("INSERT INTO scene (id, name, entry_x, entry_y) VALUES (?, ?, ?, ?)", i, s.Name, s.EntryX, s.EntryY); err != nil {
			return err
		}
	}

	if g.Base != nil {
		for _, item := range g.Base.Inventory {
			if item.Thing < 0 || int(item.Thing) >= len(g.Things) || item.Count <= 0 {
				continue
			}
			if _, err = tx.Exec("INSERT INTO inventory (thing_id, count) VALUES (?, ?)", item.Thing, item.Count); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// CatalogPerson is a person as stored in the catalog
type CatalogPerson struct {
	ID     int
	Name   string
	Alias  string
	Level  int
	Talent int
	Weapon string
	Armor  string
}

const personQuery = "SELECT p.id, p.name, p.alias, p.level, p.talent, w.name, a.name FROM person AS p LEFT JOIN thing AS w ON p.weapon = w.id LEFT JOIN thing AS a ON p.armor = a.id"

func scanPerson(row interface{ Scan(...interface{}) error }) (*CatalogPerson, error) {
	var p CatalogPerson
	var weapon, armor sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Alias, &p.Level, &p.Talent, &weapon, &armor); err != nil {
		return nil, err
	}
	p.Weapon, p.Armor = weapon.String, armor.String
	return &p, nil
}

// FindPerson returns the first person with the given name or alias, or nil
// if there is no match
func (c *Catalog) FindPerson(name string) (*CatalogPerson, error) {
	p, err := scanPerson(c.db.QueryRow(personQuery+" WHERE p.name = ? OR p.alias = ? ORDER BY p.id LIMIT 1", name, name))
	switch err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return p, nil
	default:
		return nil, err
	}
}

// Talented returns everyone with a talent greater than talent, most
// talented first
func (c *Catalog) Talented(talent int) ([]*CatalogPerson, error) {
	rows, err := c.db.Query(personQuery+" WHERE p.talent > ? ORDER BY p.talent DESC, p.id", talent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*CatalogPerson
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// Inventory returns the name and count of each item in the shared inventory
func (c *Catalog) Inventory() (map[string]int, error) {
	rows, err := c.db.Query("SELECT t.name, SUM(i.count) FROM inventory AS i JOIN thing AS t ON i.thing_id = t.id GROUP BY t.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inventory := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		inventory[name] += count
	}

	return inventory, rows.Err()
}
