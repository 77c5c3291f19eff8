package combat

import (
	"fmt"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// Outcome is the result of resolving one exchange.
type Outcome struct {
	Dice          DiceCount
	AttackerRolls []int
	DefenderRolls []int
	Losses        Losses
}

// Resolver decides the losses of one exchange between two stacks.
type Resolver interface {
	Resolve(attacker, defender core.Count) (Outcome, error)
}

// DiceResolver rolls real dice.
type DiceResolver struct {
	Die     Die
	MaxDice int
}

// NewDiceResolver creates a resolver rolling die with the default dice cap.
func NewDiceResolver(die Die) *DiceResolver {
	return &DiceResolver{Die: die, MaxDice: DefaultMaxDice}
}

// Resolve rolls the dice DiceCounts allows under r.MaxDice and scores them.
func (r *DiceResolver) Resolve(attacker, defender core.Count) (Outcome, error) {
	dc, err := DiceCounts(attacker, defender, r.MaxDice)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{
		Dice:          dc,
		AttackerRolls: r.Die.RollN(dc.Attacker),
		DefenderRolls: r.Die.RollN(dc.Defender),
	}
	out.Losses, err = ComputeLosses(attacker, defender, r.MaxDice, out.AttackerRolls, out.DefenderRolls)
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// FixedResolver hands out scripted losses in order, repeating the last one
// once the script runs out.
type FixedResolver struct {
	Script []Losses
	next   int
}

// Resolve returns the next scripted losses.
func (r *FixedResolver) Resolve(attacker, defender core.Count) (Outcome, error) {
	if attacker.Int() < 2 {
		return Outcome{}, fmt.Errorf("%w: attacker has %d", ErrNotEnoughArmiesForAttack, attacker.Int())
	}
	if len(r.Script) == 0 {
		return Outcome{}, fmt.Errorf("%w: empty script", ErrInvalidLosses)
	}
	l := r.Script[min(r.next, len(r.Script)-1)]
	r.next++
	return Outcome{Losses: l}, nil
}
