package combat

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// Losses is the number of troops each side loses in one exchange.
type Losses struct {
	Attacker int
	Defender int
}

// Total is the number of armies decided by the exchange.
func (l Losses) Total() int { return l.Attacker + l.Defender }

// ContestedArmies is the number of troops whose fate one exchange decides
// when neither side may roll more than maxDice dice. A maxDice below one
// means DefaultMaxDice, as in DiceCounts.
func ContestedArmies(attacker, defender core.Count, maxDice int) int {
	if maxDice < 1 {
		maxDice = DefaultMaxDice
	}
	return min(attacker.Int()-1, defender.Int(), maxDice)
}

// ComputeLosses pairs the highest attacker roll with the highest defender
// roll, and so on, for as many pairs as there are contested armies. The
// higher roll wins each pair; the defender wins ties. The input slices are
// not modified. maxDice must be the cap the rolls were counted with.
func ComputeLosses(attacker, defender core.Count, maxDice int, attackerRolls, defenderRolls []int) (Losses, error) {
	contested := ContestedArmies(attacker, defender, maxDice)
	if len(attackerRolls) < contested || len(defenderRolls) < contested {
		return Losses{}, fmt.Errorf("%w: %d contested, rolled %d vs %d",
			ErrTooManyArmiesContested, contested, len(attackerRolls), len(defenderRolls))
	}

	atk := sortedDesc(attackerRolls)
	def := sortedDesc(defenderRolls)

	var l Losses
	for i := range contested {
		if atk[i] > def[i] {
			l.Defender++
		} else {
			l.Attacker++
		}
	}
	return l, nil
}

func sortedDesc(rolls []int) []int {
	out := slices.Clone(rolls)
	slices.SortFunc(out, func(a, b int) int { return cmp.Compare(b, a) })
	return out
}
