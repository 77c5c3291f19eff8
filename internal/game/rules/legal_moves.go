package rules

import "github.com/mitchelldurbincs/ConquestRules/internal/game/core"

// Move is a from/to pair of territories.
type Move struct {
	From core.Territory
	To   core.Territory
}

// LegalMoveCalculator computes legal moves for players
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// LegalAttacks lists every attack player may declare: from a territory they
// hold with at least two troops into a bordering territory held by someone
// else. Moves are ordered by board order of From, then To.
func (lmc *LegalMoveCalculator) LegalAttacks(reg *core.Registry, player core.PlayerName) []Move {
	return lmc.collect(reg, player, func(other core.PlayerName) bool { return other != player })
}

// LegalRegroups lists every pair of bordering territories player holds where
// the source can spare a troop.
func (lmc *LegalMoveCalculator) LegalRegroups(reg *core.Registry, player core.PlayerName) []Move {
	return lmc.collect(reg, player, func(other core.PlayerName) bool { return other == player })
}

func (lmc *LegalMoveCalculator) collect(reg *core.Registry, player core.PlayerName, target func(core.PlayerName) bool) []Move {
	board := reg.Board()
	all := board.Territories()

	var moves []Move
	for _, from := range reg.TerritoriesOf(player) {
		n, _, _ := reg.TroopsOf(from)
		if n.Int() < 2 {
			continue
		}
		for _, to := range all {
			if to == from {
				continue
			}
			if ok, err := board.AreBordering(from, to); err != nil || !ok {
				continue
			}
			other, occupied, err := reg.OccupierOf(to)
			if err != nil || !occupied || !target(other) {
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
