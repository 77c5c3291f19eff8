package rules

import (
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// EliminationTracker records who destroyed whom.
type EliminationTracker struct {
	destroyer map[core.PlayerName]core.PlayerName
	order     []core.PlayerName
}

// NewEliminationTracker returns a tracker with nobody eliminated.
func NewEliminationTracker() *EliminationTracker {
	return &EliminationTracker{destroyer: make(map[core.PlayerName]core.PlayerName)}
}

// Eliminate records that by destroyed victim.
func (et *EliminationTracker) Eliminate(victim, by core.PlayerName) error {
	if prev, ok := et.destroyer[victim]; ok {
		return fmt.Errorf("%w: %s by %s", ErrPlayerAlreadyDestroyed, victim, prev)
	}
	et.destroyer[victim] = by
	et.order = append(et.order, victim)
	return nil
}

// IsEliminated reports whether p has been destroyed.
func (et *EliminationTracker) IsEliminated(p core.PlayerName) bool {
	_, ok := et.destroyer[p]
	return ok
}

// DestroyerOf returns who eliminated victim, if anyone.
func (et *EliminationTracker) DestroyerOf(victim core.PlayerName) (core.PlayerName, bool) {
	by, ok := et.destroyer[victim]
	return by, ok
}

// Eliminated lists eliminated players in elimination order.
func (et *EliminationTracker) Eliminated() []core.PlayerName {
	return slices.Clone(et.order)
}
