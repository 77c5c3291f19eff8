package core

import (
	"fmt"
	"slices"
)

// Territory names a single occupiable area of the board.
type Territory string

// Continent names a group of territories.
type Continent string

// TerritoryMap is the read-only board topology the engine consumes.
type TerritoryMap interface {
	ContinentOf(t Territory) (Continent, error)
	AreBordering(a, b Territory) (bool, error)
	Territories() []Territory
	Continents() []Continent
	TerritoriesIn(c Continent) ([]Territory, error)
}

// Board is the in-memory TerritoryMap. Build it with AddTerritory and
// AddBorder, then treat it as immutable.
type Board struct {
	order      []Territory
	continent  map[Territory]Continent
	borders    map[Territory]map[Territory]struct{}
	continents []Continent
	members    map[Continent][]Territory
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		continent: make(map[Territory]Continent),
		borders:   make(map[Territory]map[Territory]struct{}),
		members:   make(map[Continent][]Territory),
	}
}

// AddTerritory registers t as part of continent c. Adding a territory twice
// is an error.
func (b *Board) AddTerritory(t Territory, c Continent) error {
	if t == "" || c == "" {
		return fmt.Errorf("territory and continent names must be non-empty")
	}
	if _, exists := b.continent[t]; exists {
		return fmt.Errorf("territory %s already on the board", t)
	}
	if _, known := b.members[c]; !known {
		b.continents = append(b.continents, c)
	}
	b.order = append(b.order, t)
	b.continent[t] = c
	b.members[c] = append(b.members[c], t)
	b.borders[t] = make(map[Territory]struct{})
	return nil
}

// AddBorder adds a bidirectional border between x and y.
func (b *Board) AddBorder(x, y Territory) error {
	if !b.Has(x) {
		return territoryErr(x, ErrUnknownTerritory)
	}
	if !b.Has(y) {
		return territoryErr(y, ErrUnknownTerritory)
	}
	if x == y {
		return fmt.Errorf("territory %s cannot border itself", x)
	}
	b.borders[x][y] = struct{}{}
	b.borders[y][x] = struct{}{}
	return nil
}

// Has reports whether t is on the board.
func (b *Board) Has(t Territory) bool {
	_, ok := b.continent[t]
	return ok
}

// ContinentOf returns the continent t belongs to.
func (b *Board) ContinentOf(t Territory) (Continent, error) {
	c, ok := b.continent[t]
	if !ok {
		return "", territoryErr(t, ErrUnknownTerritory)
	}
	return c, nil
}

// AreBordering fails if either territory is missing from the board,
// regardless of occupation.
func (b *Board) AreBordering(x, y Territory) (bool, error) {
	if !b.Has(x) {
		return false, territoryErr(x, ErrUnknownTerritory)
	}
	if !b.Has(y) {
		return false, territoryErr(y, ErrUnknownTerritory)
	}
	_, ok := b.borders[x][y]
	return ok, nil
}

// Territories returns all territories in insertion order.
func (b *Board) Territories() []Territory { return slices.Clone(b.order) }

// Continents returns all continents in insertion order.
func (b *Board) Continents() []Continent { return slices.Clone(b.continents) }

// TerritoriesIn returns the members of c in insertion order.
func (b *Board) TerritoriesIn(c Continent) ([]Territory, error) {
	ts, ok := b.members[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContinent, c)
	}
	return slices.Clone(ts), nil
}

// Neighbours returns the territories bordering t, in board order.
func (b *Board) Neighbours(t Territory) ([]Territory, error) {
	adj, ok := b.borders[t]
	if !ok {
		return nil, territoryErr(t, ErrUnknownTerritory)
	}
	out := make([]Territory, 0, len(adj))
	for _, candidate := range b.order {
		if _, ok := adj[candidate]; ok {
			out = append(out, candidate)
		}
	}
	return out, nil
}
