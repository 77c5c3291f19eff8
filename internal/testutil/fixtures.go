package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// CreateTestBoard builds a small two-continent board:
//
//	North: Alpha - Bravo - Charlie
//	South: Delta - Echo
//	Charlie borders Delta, Echo borders Alpha.
func CreateTestBoard(t testing.TB) *core.Board {
	t.Helper()
	b := core.NewBoard()
	for _, tc := range []struct {
		t core.Territory
		c core.Continent
	}{
		{"Alpha", "North"},
		{"Bravo", "North"},
		{"Charlie", "North"},
		{"Delta", "South"},
		{"Echo", "South"},
	} {
		if err := b.AddTerritory(tc.t, tc.c); err != nil {
			t.Fatalf("add territory %s: %v", tc.t, err)
		}
	}
	for _, pair := range [][2]core.Territory{
		{"Alpha", "Bravo"},
		{"Bravo", "Charlie"},
		{"Charlie", "Delta"},
		{"Delta", "Echo"},
		{"Echo", "Alpha"},
	} {
		if err := b.AddBorder(pair[0], pair[1]); err != nil {
			t.Fatalf("add border %s-%s: %v", pair[0], pair[1], err)
		}
	}
	return b
}

// Holding is one row of a registry fixture.
type Holding struct {
	Territory core.Territory
	Player    core.PlayerName
	Troops    int
}

// CreateTestRegistry returns a registry over board populated with holdings.
func CreateTestRegistry(t testing.TB, board core.TerritoryMap, holdings ...Holding) *core.Registry {
	t.Helper()
	reg := core.NewRegistry(board)
	for _, h := range holdings {
		n, err := core.NewCount(h.Troops)
		if err != nil {
			t.Fatalf("troops for %s: %v", h.Territory, err)
		}
		if err := reg.Occupy(h.Territory, h.Player, n); err != nil {
			t.Fatalf("occupy %s: %v", h.Territory, err)
		}
	}
	return reg
}

// CreateSimpleTestSetup returns the test board with red holding the north
// and blue holding the south.
func CreateSimpleTestSetup(t testing.TB) (*core.Board, *core.Registry) {
	t.Helper()
	board := CreateTestBoard(t)
	reg := CreateTestRegistry(t, board,
		Holding{"Alpha", "red", 3},
		Holding{"Bravo", "red", 2},
		Holding{"Charlie", "red", 5},
		Holding{"Delta", "blue", 3},
		Holding{"Echo", "blue", 1},
	)
	return board, reg
}
