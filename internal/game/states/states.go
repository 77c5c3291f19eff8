package states

import "fmt"

// NoState is the phase before setup completes. It accepts no commands.
type NoState struct{}

func NewNoState() State { return &NoState{} }

func (s *NoState) Phase() GamePhase         { return PhaseNoState }
func (s *NoState) Allows(Command) bool      { return false }
func (s *NoState) Enter(*GameContext) error { return nil }
func (s *NoState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Setup complete")
	return nil
}
func (s *NoState) Validate(*GameContext) error { return nil }

// ReinforcingState is the start of every turn
type ReinforcingState struct{}

func NewReinforcingState() State { return &ReinforcingState{} }

func (s *ReinforcingState) Phase() GamePhase { return PhaseReinforcing }

func (s *ReinforcingState) Allows(cmd Command) bool { return cmd == CmdReinforce }

func (s *ReinforcingState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = timeNow()
	}
	ctx.Logger.Info().
		Str("player", string(ctx.CurrentPlayer)).
		Int("turn", ctx.Turn).
		Msg("Turn started")
	return nil
}

func (s *ReinforcingState) Exit(*GameContext) error { return nil }

func (s *ReinforcingState) Validate(ctx *GameContext) error {
	if ctx.CurrentPlayer == "" {
		return fmt.Errorf("reinforcing requires a current player")
	}
	return nil
}

// FightingState lets the current player attack until they end the attack
type FightingState struct{}

func NewFightingState() State { return &FightingState{} }

func (s *FightingState) Phase() GamePhase { return PhaseFighting }

func (s *FightingState) Allows(cmd Command) bool {
	return cmd == CmdAttack || cmd == CmdEndAttack
}

func (s *FightingState) Enter(ctx *GameContext) error {
	ctx.Pending = nil
	return nil
}

func (s *FightingState) Exit(*GameContext) error     { return nil }
func (s *FightingState) Validate(*GameContext) error { return nil }

// OccupyingState follows a conquest; only the occupy move is legal
type OccupyingState struct{}

func NewOccupyingState() State { return &OccupyingState{} }

func (s *OccupyingState) Phase() GamePhase { return PhaseOccupying }

func (s *OccupyingState) Allows(cmd Command) bool { return cmd == CmdOccupy }

func (s *OccupyingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Str("from", string(ctx.Pending.From)).
		Str("to", string(ctx.Pending.To)).
		Msg("Waiting for occupy move")
	return nil
}

func (s *OccupyingState) Exit(*GameContext) error { return nil }

func (s *OccupyingState) Validate(ctx *GameContext) error {
	if ctx.Pending == nil {
		return fmt.Errorf("occupying requires a pending conquest")
	}
	return nil
}

// RegroupingState closes the turn
type RegroupingState struct{}

func NewRegroupingState() State { return &RegroupingState{} }

func (s *RegroupingState) Phase() GamePhase            { return PhaseRegrouping }
func (s *RegroupingState) Allows(cmd Command) bool     { return cmd == CmdRegroup }
func (s *RegroupingState) Enter(*GameContext) error    { return nil }
func (s *RegroupingState) Exit(*GameContext) error     { return nil }
func (s *RegroupingState) Validate(*GameContext) error { return nil }

// EndedState represents a completed game
type EndedState struct{}

func NewEndedState() State { return &EndedState{} }

func (s *EndedState) Phase() GamePhase    { return PhaseEnded }
func (s *EndedState) Allows(Command) bool { return false }

func (s *EndedState) Enter(ctx *GameContext) error {
	ctx.Pending = nil
	ctx.Logger.Info().
		Interface("winners", ctx.Winners).
		Int("final_turn", ctx.Turn).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game ended")
	return nil
}

func (s *EndedState) Exit(*GameContext) error     { return nil }
func (s *EndedState) Validate(*GameContext) error { return nil }
