package core

import (
	"errors"
	"fmt"
)

// Count invariant violations.
var (
	ErrNonPositive            = errors.New("count must be positive")
	ErrOverflow               = errors.New("count overflow")
	ErrWouldBecomeNonPositive = errors.New("count would become non-positive")
)

// Topology and occupation errors.
var (
	ErrUnknownTerritory     = errors.New("unknown territory")
	ErrUnknownContinent     = errors.New("unknown continent")
	ErrUnoccupiedTerritory  = errors.New("territory is unoccupied")
	ErrTooManyTroopsRemoved = errors.New("too many troops removed")
)

// Command rule violations shared by the engine and combat.
var (
	ErrCountryIsNotOccupiedByPlayer = errors.New("country is not occupied by player")
	ErrCountriesAreNotBordering     = errors.New("countries are not bordering")
	ErrCannotAttackOwnCountry       = errors.New("cannot attack own country")
	ErrDuplicateRegroupSource       = errors.New("country appears more than once as regroup source")
	ErrGameOver                     = errors.New("game is over")
	ErrInvalidPlayer                = errors.New("invalid player")
)

// WouldBecomeNonPositiveError reports a subtraction that would leave a Count
// at zero or below.
type WouldBecomeNonPositiveError struct {
	Minuend    Count
	Subtrahend Count
}

func (e *WouldBecomeNonPositiveError) Error() string {
	return fmt.Sprintf("%s: %d - %d", ErrWouldBecomeNonPositive, e.Minuend.Int(), e.Subtrahend.Int())
}

func (e *WouldBecomeNonPositiveError) Unwrap() error { return ErrWouldBecomeNonPositive }

// TooManyTroopsRemovedError reports an attempt to remove more troops than a
// territory holds.
type TooManyTroopsRemovedError struct {
	Territory Territory
	Current   Count
	Requested Count
}

func (e *TooManyTroopsRemovedError) Error() string {
	return fmt.Sprintf("%s from %s: has %d, requested %d", ErrTooManyTroopsRemoved, e.Territory, e.Current.Int(), e.Requested.Int())
}

func (e *TooManyTroopsRemovedError) Unwrap() error { return ErrTooManyTroopsRemoved }

// TerritoryError attaches the offending territory name to an error.
type TerritoryError struct {
	Territory Territory
	Err       error
}

func (e *TerritoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Territory, e.Err)
}

func (e *TerritoryError) Unwrap() error { return e.Err }

func territoryErr(t Territory, err error) error {
	return &TerritoryError{Territory: t, Err: err}
}

// GameError adds turn and player context to an engine failure.
type GameError struct {
	Turn      int
	Player    PlayerName
	Operation string
	Err       error
}

// NewGameError creates a GameError.
func NewGameError(turn int, player PlayerName, operation string, err error) *GameError {
	return &GameError{Turn: turn, Player: player, Operation: operation, Err: err}
}

func (e *GameError) Error() string {
	if e.Player != "" {
		return fmt.Sprintf("turn %d: player %s %s: %v", e.Turn, e.Player, e.Operation, e.Err)
	}
	return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error { return e.Err }

// WrapCommandError wraps err with the player and the command they issued.
// It returns nil for a nil err.
func WrapCommandError(player PlayerName, command string, err error) error {
	if err == nil {
		return nil
	}
	if player == "" {
		return fmt.Errorf("%s: %w", command, err)
	}
	return fmt.Errorf("player %s: %s: %w", player, command, err)
}
