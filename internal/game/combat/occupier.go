package combat

import (
	"fmt"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// MoveAfterConquest shifts up to limit extra troops from the attacking
// territory into the one just conquered. Zero is a valid amount and changes
// nothing. The source must keep at least one troop.
func MoveAfterConquest(reg *core.Registry, from, to core.Territory, player core.PlayerName, amount, limit int) error {
	if limit < 0 {
		limit = DefaultMaxMoveIn
	}
	if amount < 0 {
		return fmt.Errorf("%w: negative amount %d", ErrTooFewArmiesMoved, amount)
	}
	if amount > limit {
		return fmt.Errorf("%w: %d exceeds the limit of %d", ErrTooManyArmiesMoved, amount, limit)
	}
	for _, t := range []core.Territory{from, to} {
		p, ok, err := reg.OccupierOf(t)
		if err != nil {
			return err
		}
		if !ok || p != player {
			return &core.TerritoryError{Territory: t, Err: core.ErrCountryIsNotOccupiedByPlayer}
		}
	}
	if amount == 0 {
		return nil
	}
	troops, _, _ := reg.TroopsOf(from)
	if amount >= troops.Int() {
		return fmt.Errorf("%w: %d would leave %s empty", ErrTooManyArmiesMoved, amount, from)
	}
	n := core.MustCount(amount)
	held, _, _ := reg.TroopsOf(to)
	if _, err := held.Add(n); err != nil {
		return &core.TerritoryError{Territory: to, Err: err}
	}
	if err := reg.RemoveTroops(from, n); err != nil {
		return err
	}
	return reg.AddTroops(to, n)
}
