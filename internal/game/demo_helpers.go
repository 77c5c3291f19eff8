package game

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/rules"
)

// RandomTurnPlan builds a legal plan for the current player: the whole
// reinforcement allowance on one random territory, a few random attacks and
// at most one regroup. Intended for demos, benchmarks and simple baseline
// opponents.
func RandomTurnPlan(e *Engine, rng *rand.Rand) TurnPlan {
	var plan TurnPlan
	player := e.CurrentPlayer()
	held := e.TerritoriesOf(player)
	if len(held) == 0 {
		return plan
	}

	target := held[rng.Intn(len(held))]
	plan.Reinforcements = []core.Reinforcement{{
		Territory: target,
		Troops:    core.MustCount(e.ReinforcementAllowance(player)),
	}}

	// Attacks are listed against the board before reinforcing, so the
	// reinforced territory may show up with more troops than counted here.
	attacks := e.LegalAttacks()
	reinforcedAttacks := legalFrom(e, target)
	attacks = append(attacks, reinforcedAttacks...)
	if len(attacks) > 0 {
		n := 1 + rng.Intn(3)
		for i := 0; i < n; i++ {
			m := attacks[rng.Intn(len(attacks))]
			plan.Attacks = append(plan.Attacks, PlannedAttack{
				Move:   m,
				Rounds: 1 + rng.Intn(5),
				Occupy: rng.Intn(e.rules.MaxOccupyMove + 1),
			})
		}
	}

	if rng.Float32() < 0.5 {
		if moves := e.LegalRegroups(); len(moves) > 0 {
			m := moves[rng.Intn(len(moves))]
			plan.Regroups = []core.Regrouping{{From: m.From, To: m.To, Amount: core.One}}
		}
	}

	log.Debug().
		Str("player", string(player)).
		Str("reinforce", string(target)).
		Int("attacks", len(plan.Attacks)).
		Int("regroups", len(plan.Regroups)).
		Msg("Generated random turn plan")
	return plan
}

// legalFrom lists enemy neighbours of t regardless of its current troops.
func legalFrom(e *Engine, t core.Territory) []rules.Move {
	var moves []rules.Move
	player := e.CurrentPlayer()
	for _, to := range e.board.Territories() {
		if ok, err := e.board.AreBordering(t, to); err != nil || !ok {
			continue
		}
		if p, ok, _ := e.OccupierOf(to); ok && p != player {
			moves = append(moves, rules.Move{From: t, To: to})
		}
	}
	return moves
}
