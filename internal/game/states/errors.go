package states

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPhase                   = errors.New("command not allowed in the current phase")
	ErrNotInReinforcingStage        = errors.New("not in reinforcing stage")
	ErrCannotAttackNow              = errors.New("cannot attack now")
	ErrCannotAttackWhileOccupying   = errors.New("cannot attack while occupying")
	ErrCannotOccupyNow              = errors.New("cannot occupy now")
	ErrCannotEndAttackNow           = errors.New("cannot end attack now")
	ErrCannotEndAttackWhenOccupying = errors.New("cannot end attack when occupying")
	ErrCannotRegroupNow             = errors.New("cannot regroup now")
	ErrInvalidTransition            = errors.New("invalid phase transition")

	ErrNoPlayers       = errors.New("no players")
	ErrDuplicatePlayer = errors.New("duplicate player")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrLastPlayer      = errors.New("cannot remove the last remaining player")
)

// PhaseError is returned for any command issued in a phase that does not
// allow it. It matches ErrWrongPhase and the command specific sentinel.
type PhaseError struct {
	Command Command
	Phase   GamePhase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%v (phase %s)", e.reason(), e.Phase)
}

func (e *PhaseError) reason() error {
	switch e.Command {
	case CmdReinforce:
		return ErrNotInReinforcingStage
	case CmdAttack:
		if e.Phase == PhaseOccupying {
			return ErrCannotAttackWhileOccupying
		}
		return ErrCannotAttackNow
	case CmdOccupy:
		return ErrCannotOccupyNow
	case CmdEndAttack:
		if e.Phase == PhaseOccupying {
			return ErrCannotEndAttackWhenOccupying
		}
		return ErrCannotEndAttackNow
	case CmdRegroup:
		return ErrCannotRegroupNow
	}
	return ErrWrongPhase
}

func (e *PhaseError) Unwrap() []error {
	return []error{ErrWrongPhase, e.reason()}
}
