package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBoard builds a two-continent board:
//
//	North: Alpha - Bravo - Charlie
//	South: Delta - Echo
//	Charlie borders Delta.
func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	require.NoError(t, b.AddTerritory("Alpha", "North"))
	require.NoError(t, b.AddTerritory("Bravo", "North"))
	require.NoError(t, b.AddTerritory("Charlie", "North"))
	require.NoError(t, b.AddTerritory("Delta", "South"))
	require.NoError(t, b.AddTerritory("Echo", "South"))
	require.NoError(t, b.AddBorder("Alpha", "Bravo"))
	require.NoError(t, b.AddBorder("Bravo", "Charlie"))
	require.NoError(t, b.AddBorder("Charlie", "Delta"))
	require.NoError(t, b.AddBorder("Delta", "Echo"))
	return b
}

func TestBoard_Topology(t *testing.T) {
	b := newTestBoard(t)

	assert.Equal(t, []Territory{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}, b.Territories())
	assert.Equal(t, []Continent{"North", "South"}, b.Continents())

	c, err := b.ContinentOf("Delta")
	require.NoError(t, err)
	assert.Equal(t, Continent("South"), c)

	north, err := b.TerritoriesIn("North")
	require.NoError(t, err)
	assert.Equal(t, []Territory{"Alpha", "Bravo", "Charlie"}, north)

	_, err = b.TerritoriesIn("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownContinent)
}

func TestBoard_AreBordering(t *testing.T) {
	b := newTestBoard(t)

	tests := []struct {
		a, b Territory
		want bool
	}{
		{"Alpha", "Bravo", true},
		{"Bravo", "Alpha", true},
		{"Charlie", "Delta", true},
		{"Alpha", "Charlie", false},
		{"Alpha", "Alpha", false},
	}
	for _, tt := range tests {
		got, err := b.AreBordering(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s-%s", tt.a, tt.b)
	}
}

func TestBoard_UnknownTerritory(t *testing.T) {
	b := newTestBoard(t)

	_, err := b.AreBordering("Alpha", "Nowhere")
	require.ErrorIs(t, err, ErrUnknownTerritory)
	var te *TerritoryError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, Territory("Nowhere"), te.Territory)
	assert.Contains(t, err.Error(), "Nowhere")

	_, err = b.ContinentOf("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownTerritory)

	_, err = b.Neighbours("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownTerritory)

	assert.ErrorIs(t, b.AddBorder("Nowhere", "Alpha"), ErrUnknownTerritory)
}

func TestBoard_AddTerritoryRejectsDuplicates(t *testing.T) {
	b := newTestBoard(t)
	assert.Error(t, b.AddTerritory("Alpha", "South"))
	assert.Error(t, b.AddTerritory("", "South"))
	assert.Error(t, b.AddBorder("Alpha", "Alpha"))
}

func TestBoard_Neighbours(t *testing.T) {
	b := newTestBoard(t)
	n, err := b.Neighbours("Charlie")
	require.NoError(t, err)
	assert.Equal(t, []Territory{"Bravo", "Delta"}, n)
}

func TestBoard_ReturnsCopies(t *testing.T) {
	b := newTestBoard(t)
	ts := b.Territories()
	ts[0] = "Mutated"
	assert.Equal(t, Territory("Alpha"), b.Territories()[0])
}
