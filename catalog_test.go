package jy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	_, g := loadGame(t)

	c, err := NewCatalog(filepath.Join(t.TempDir(), "jy.db"))
	require.NoError(t, err)
	defer c.Close()

	// Importing twice replaces rather than duplicates
	require.NoError(t, c.Import(g))
	require.NoError(t, c.Import(g))

	p, err := c.FindPerson("Flying Fox")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, CatalogPerson{ID: 0, Name: "Hu Fei", Alias: "Flying Fox", Level: 10, Talent: 90, Weapon: "Sword"}, *p)

	p, err = c.FindPerson("Miao Renfeng")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "", p.Weapon)
	assert.Equal(t, "Herb", p.Armor)

	p, err = c.FindPerson("Nobody")
	require.NoError(t, err)
	assert.Nil(t, p)

	people, err := c.Talented(85)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Miao Renfeng", people[0].Name)
	assert.Equal(t, "Hu Fei", people[1].Name)

	people, err = c.Talented(100)
	require.NoError(t, err)
	assert.Len(t, people, 0)

	inventory, err := c.Inventory()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Herb": 3}, inventory)
}
