package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(newTestBoard(t))
	require.NoError(t, r.Occupy("Alpha", "red", MustCount(3)))
	require.NoError(t, r.Occupy("Bravo", "red", MustCount(1)))
	require.NoError(t, r.Occupy("Charlie", "blue", MustCount(5)))
	return r
}

func TestRegistry_Queries(t *testing.T) {
	r := newTestRegistry(t)

	p, ok, err := r.OccupierOf("Alpha")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, PlayerName("red"), p)

	n, ok, err := r.TroopsOf("Charlie")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, n.Int())

	// Present on the board but nobody there.
	_, ok, err = r.OccupierOf("Echo")
	require.NoError(t, err)
	assert.False(t, ok)

	// Not on the board at all.
	_, _, err = r.TroopsOf("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownTerritory)
}

func TestRegistry_AddTroops(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.AddTroops("Alpha", MustCount(4)))
	n, _, _ := r.TroopsOf("Alpha")
	assert.Equal(t, 7, n.Int())

	assert.ErrorIs(t, r.AddTroops("Echo", One), ErrUnoccupiedTerritory)
	assert.ErrorIs(t, r.AddTroops("Atlantis", One), ErrUnknownTerritory)

	require.NoError(t, r.Occupy("Delta", "blue", MustCount(MaxCount)))
	before := r.Snapshot()
	assert.ErrorIs(t, r.AddTroops("Delta", One), ErrOverflow)
	assert.Equal(t, before, r.Snapshot())
}

func TestRegistry_RemoveTroops(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.RemoveTroops("Charlie", MustCount(2)))
		n, ok, _ := r.TroopsOf("Charlie")
		assert.True(t, ok)
		assert.Equal(t, 3, n.Int())
	})

	t.Run("exact count empties the territory", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.RemoveTroops("Charlie", MustCount(5)))
		_, ok, err := r.OccupierOf("Charlie")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("too many", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.RemoveTroops("Alpha", MustCount(4))
		require.ErrorIs(t, err, ErrTooManyTroopsRemoved)
		var tm *TooManyTroopsRemovedError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, 3, tm.Current.Int())
		assert.Equal(t, 4, tm.Requested.Int())
		n, _, _ := r.TroopsOf("Alpha")
		assert.Equal(t, 3, n.Int())
	})

	t.Run("unoccupied and unknown", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.ErrorIs(t, r.RemoveTroops("Echo", One), ErrUnoccupiedTerritory)
		assert.ErrorIs(t, r.RemoveTroops("Atlantis", One), ErrUnknownTerritory)
	})
}

func TestRegistry_Occupy(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Occupy("Charlie", "red", MustCount(2)))
	occ, ok, err := r.Get("Charlie")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Occupation{Occupier: "red", Troops: MustCount(2)}, occ)

	assert.ErrorIs(t, r.Occupy("Atlantis", "red", One), ErrUnknownTerritory)
	assert.ErrorIs(t, r.Occupy("Echo", "", One), ErrInvalidPlayer)
}

func TestRegistry_PlayerViews(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, []Territory{"Alpha", "Bravo"}, r.TerritoriesOf("red"))
	assert.Equal(t, 4, r.TotalTroops("red"))
	assert.Empty(t, r.TerritoriesOf("green"))
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	r := newTestRegistry(t)
	c := r.Clone()
	require.NoError(t, c.AddTroops("Alpha", MustCount(10)))

	n, _, _ := r.TroopsOf("Alpha")
	assert.Equal(t, 3, n.Int())
	n, _, _ = c.TroopsOf("Alpha")
	assert.Equal(t, 13, n.Int())
}
