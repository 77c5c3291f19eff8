package states

import "fmt"

// GamePhase represents the current phase of a turn
type GamePhase int

const (
	// PhaseNoState - Before setup completes
	PhaseNoState GamePhase = iota

	// PhaseReinforcing - Current player places reinforcements
	PhaseReinforcing

	// PhaseFighting - Current player may attack or end the attack phase
	PhaseFighting

	// PhaseOccupying - A territory was just conquered; only the occupy move is legal
	PhaseOccupying

	// PhaseRegrouping - Current player submits end-of-turn troop moves
	PhaseRegrouping

	// PhaseEnded - Final state, a winner has been determined
	PhaseEnded
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseNoState:
		return "NoState"
	case PhaseReinforcing:
		return "Reinforcing"
	case PhaseFighting:
		return "Fighting"
	case PhaseOccupying:
		return "Occupying"
	case PhaseRegrouping:
		return "Regrouping"
	case PhaseEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded
}

// IsAttack reports whether p is one of the attack sub-phases
func (p GamePhase) IsAttack() bool {
	return p == PhaseFighting || p == PhaseOccupying
}

// CanReceiveCommands returns true if players can issue commands in this phase
func (p GamePhase) CanReceiveCommands() bool {
	return p != PhaseNoState && !p.IsTerminal()
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseNoState:
		return []GamePhase{PhaseReinforcing, PhaseEnded}
	case PhaseReinforcing:
		return []GamePhase{PhaseFighting, PhaseEnded}
	case PhaseFighting:
		return []GamePhase{PhaseOccupying, PhaseRegrouping, PhaseEnded}
	case PhaseOccupying:
		return []GamePhase{PhaseFighting, PhaseEnded}
	case PhaseRegrouping:
		return []GamePhase{PhaseReinforcing, PhaseEnded}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
