package core

import "maps"

// PlayerName identifies a player for the whole game.
type PlayerName string

// Occupation is the holder of a territory and the troops stationed there.
type Occupation struct {
	Occupier PlayerName
	Troops   Count
}

// Reinforcement places Troops on Territory.
type Reinforcement struct {
	Territory Territory
	Troops    Count
}

// Regrouping moves Amount troops between two of the mover's territories.
type Regrouping struct {
	From   Territory
	To     Territory
	Amount Count
}

// Registry tracks who occupies each territory and with how many troops.
// Every territory is either absent from the registry (unoccupied) or held
// by exactly one player with at least one troop.
type Registry struct {
	board   TerritoryMap
	known   map[Territory]struct{}
	entries map[Territory]Occupation
}

// NewRegistry returns an empty registry over board's territories.
func NewRegistry(board TerritoryMap) *Registry {
	known := make(map[Territory]struct{})
	for _, t := range board.Territories() {
		known[t] = struct{}{}
	}
	return &Registry{
		board:   board,
		known:   known,
		entries: make(map[Territory]Occupation),
	}
}

// Board returns the topology the registry was built over.
func (r *Registry) Board() TerritoryMap { return r.board }

func (r *Registry) check(t Territory) error {
	if _, ok := r.known[t]; !ok {
		return territoryErr(t, ErrUnknownTerritory)
	}
	return nil
}

// Get returns the occupation of t. ok is false when t is unoccupied.
func (r *Registry) Get(t Territory) (occ Occupation, ok bool, err error) {
	if err := r.check(t); err != nil {
		return Occupation{}, false, err
	}
	occ, ok = r.entries[t]
	return occ, ok, nil
}

// OccupierOf returns the player holding t.
func (r *Registry) OccupierOf(t Territory) (PlayerName, bool, error) {
	occ, ok, err := r.Get(t)
	return occ.Occupier, ok, err
}

// TroopsOf returns the troops stationed on t.
func (r *Registry) TroopsOf(t Territory) (Count, bool, error) {
	occ, ok, err := r.Get(t)
	return occ.Troops, ok, err
}

// AddTroops adds n troops to the current occupier of t.
func (r *Registry) AddTroops(t Territory, n Count) error {
	occ, ok, err := r.Get(t)
	if err != nil {
		return err
	}
	if !ok {
		return territoryErr(t, ErrUnoccupiedTerritory)
	}
	sum, err := occ.Troops.Add(n)
	if err != nil {
		return territoryErr(t, err)
	}
	r.entries[t] = Occupation{Occupier: occ.Occupier, Troops: sum}
	return nil
}

// RemoveTroops removes n troops from t. Removing exactly the stationed
// amount leaves t unoccupied.
func (r *Registry) RemoveTroops(t Territory, n Count) error {
	occ, ok, err := r.Get(t)
	if err != nil {
		return err
	}
	if !ok {
		return territoryErr(t, ErrUnoccupiedTerritory)
	}
	switch occ.Troops.Compare(n) {
	case 0:
		delete(r.entries, t)
		return nil
	case -1:
		return &TooManyTroopsRemovedError{Territory: t, Current: occ.Troops, Requested: n}
	}
	left, err := occ.Troops.Sub(n)
	if err != nil {
		return territoryErr(t, err)
	}
	r.entries[t] = Occupation{Occupier: occ.Occupier, Troops: left}
	return nil
}

// Occupy sets the occupier and troops of t, replacing whatever was there.
func (r *Registry) Occupy(t Territory, p PlayerName, n Count) error {
	if err := r.check(t); err != nil {
		return err
	}
	if p == "" {
		return territoryErr(t, ErrInvalidPlayer)
	}
	r.entries[t] = Occupation{Occupier: p, Troops: n}
	return nil
}

// TerritoriesOf lists the territories p occupies, in board order.
func (r *Registry) TerritoriesOf(p PlayerName) []Territory {
	var out []Territory
	for _, t := range r.board.Territories() {
		if occ, ok := r.entries[t]; ok && occ.Occupier == p {
			out = append(out, t)
		}
	}
	return out
}

// TotalTroops sums the troops p has on the board.
func (r *Registry) TotalTroops(p PlayerName) int {
	total := 0
	for _, occ := range r.entries {
		if occ.Occupier == p {
			total += occ.Troops.Int()
		}
	}
	return total
}

// Snapshot returns a copy of every current occupation.
func (r *Registry) Snapshot() map[Territory]Occupation {
	return maps.Clone(r.entries)
}

// Clone returns an independent registry with the same occupations.
func (r *Registry) Clone() *Registry {
	return &Registry{
		board:   r.board,
		known:   r.known,
		entries: maps.Clone(r.entries),
	}
}
