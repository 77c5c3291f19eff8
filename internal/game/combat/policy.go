package combat

import (
	"fmt"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// DefaultMaxDice is the most dice either side may roll in one exchange.
const DefaultMaxDice = 3

// DiceCount is how many dice each side rolls.
type DiceCount struct {
	Attacker int
	Defender int
}

// DiceCounts decides how many dice each side rolls. The attacker must keep one
// troop behind, so it rolls at most attacker-1 dice. An attacker with at least
// twice the defender's troops against a defender of three or more earns one
// bonus die, still bounded by the same cap.
func DiceCounts(attacker, defender core.Count, maxDice int) (DiceCount, error) {
	if maxDice < 1 {
		maxDice = DefaultMaxDice
	}
	a, d := attacker.Int(), defender.Int()
	if a < 2 {
		return DiceCount{}, fmt.Errorf("%w: attacker has %d", ErrNotEnoughArmiesForAttack, a)
	}

	limit := min(maxDice, a-1)
	atk := limit
	if a >= 2*d && d >= 3 {
		atk = min(atk+1, limit)
	}
	return DiceCount{Attacker: atk, Defender: min(maxDice, d)}, nil
}
