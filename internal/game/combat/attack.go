package combat

import (
	"fmt"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// Attack names the attacking player and the two territories involved.
type Attack struct {
	Attacker core.PlayerName
	From     core.Territory
	To       core.Territory
}

// Result describes what ApplyAttack did to the registry.
type Result struct {
	Losses    Losses
	Conquered bool
	MovedIn   int
	Defender  core.PlayerName
}

// ApplyAttack applies losses to the registry. When the defender loses every
// troop it held, the attacker pays its own losses plus the move-in chosen by
// conqueror and occupies the defending territory with the moved troops. The
// registry is left untouched on error.
func ApplyAttack(reg *core.Registry, atk Attack, losses Losses, conqueror Conqueror, maxMoveIn int) (Result, error) {
	if maxMoveIn < 1 {
		maxMoveIn = DefaultMaxMoveIn
	}
	from, ok, err := reg.Get(atk.From)
	if err != nil {
		return Result{}, err
	}
	if !ok || from.Occupier != atk.Attacker {
		return Result{}, &core.TerritoryError{Territory: atk.From, Err: core.ErrCountryIsNotOccupiedByPlayer}
	}
	to, ok, err := reg.Get(atk.To)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, &core.TerritoryError{Territory: atk.To, Err: core.ErrUnoccupiedTerritory}
	}
	if to.Occupier == atk.Attacker {
		return Result{}, &core.TerritoryError{Territory: atk.To, Err: core.ErrCannotAttackOwnCountry}
	}
	if losses.Attacker < 0 || losses.Defender < 0 ||
		losses.Attacker >= from.Troops.Int() || losses.Defender > to.Troops.Int() {
		return Result{}, fmt.Errorf("%w: attacker %d/%d, defender %d/%d", ErrInvalidLosses,
			losses.Attacker, from.Troops.Int(), losses.Defender, to.Troops.Int())
	}

	res := Result{Losses: losses, Defender: to.Occupier}
	if losses.Defender < to.Troops.Int() {
		if err := removeLosses(reg, atk.From, losses.Attacker); err != nil {
			return Result{}, err
		}
		if err := removeLosses(reg, atk.To, losses.Defender); err != nil {
			return Result{}, err
		}
		return res, nil
	}

	remaining := from.Troops.Int() - losses.Attacker
	moveIn := conqueror.MoveIn(core.MustCount(remaining))
	switch {
	case moveIn < 1:
		return Result{}, fmt.Errorf("%w: asked for %d", ErrTooFewArmiesMoved, moveIn)
	case moveIn > maxMoveIn:
		return Result{}, fmt.Errorf("%w: %d exceeds the limit of %d", ErrTooManyArmiesMoved, moveIn, maxMoveIn)
	case moveIn >= remaining:
		return Result{}, fmt.Errorf("%w: %d would leave %s empty", ErrTooManyArmiesMoved, moveIn, atk.From)
	}

	// All checks passed; the steps below cannot fail on a consistent registry.
	if err := reg.RemoveTroops(atk.From, core.MustCount(losses.Attacker+moveIn)); err != nil {
		return Result{}, err
	}
	if err := reg.RemoveTroops(atk.To, to.Troops); err != nil {
		return Result{}, err
	}
	if err := reg.Occupy(atk.To, atk.Attacker, core.MustCount(moveIn)); err != nil {
		return Result{}, err
	}
	res.Conquered = true
	res.MovedIn = moveIn
	return res, nil
}

func removeLosses(reg *core.Registry, t core.Territory, n int) error {
	if n == 0 {
		return nil
	}
	return reg.RemoveTroops(t, core.MustCount(n))
}
