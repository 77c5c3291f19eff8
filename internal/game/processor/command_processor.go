package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ConquestRules/internal/game"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/rules"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/states"
)

// Engine is the command surface of a running game.
type Engine interface {
	CurrentPlayer() core.PlayerName
	CurrentPhase() states.GamePhase
	IsGameOver() bool
	Winners() []core.PlayerName

	Reinforce(rs []core.Reinforcement) error
	Attack(from, to core.Territory) (game.AttackReport, error)
	OccupyConqueredCountry(amount int) error
	EndAttack() error
	Regroup(moves []core.Regrouping) error

	ReinforcementAllowance(p core.PlayerName) int
	LegalAttacks() []rules.Move
	LegalRegroups() []rules.Move
	Render(color bool) string
}

// Result is what a command printed and whether the session should stop.
type Result struct {
	Command Command
	Output  string
	Quit    bool
}

// CommandProcessor executes parsed commands against an engine.
type CommandProcessor struct {
	logger zerolog.Logger
	color  bool
}

// NewCommandProcessor creates a new command processor. With color set the
// status board is drawn with ANSI colors.
func NewCommandProcessor(logger zerolog.Logger, color bool) *CommandProcessor {
	return &CommandProcessor{
		logger: logger.With().Str("component", "CommandProcessor").Logger(),
		color:  color,
	}
}

// Execute runs one command for the current player. Engine errors are wrapped
// with the player and the command.
func (cp *CommandProcessor) Execute(eng Engine, cmd Command) (Result, error) {
	player := eng.CurrentPlayer()
	res := Result{Command: cmd}
	cp.logger.Debug().Str("player", string(player)).Str("command", string(cmd.Kind)).Msg("Executing command")

	var err error
	switch cmd.Kind {
	case KindReinforce:
		err = eng.Reinforce(cmd.Reinforcements)
		if err == nil {
			res.Output = fmt.Sprintf("%s reinforced %d territories", player, len(cmd.Reinforcements))
		}
	case KindAttack:
		var report game.AttackReport
		report, err = eng.Attack(cmd.From, cmd.To)
		if err == nil {
			res.Output = describeAttack(report)
		}
	case KindOccupy:
		err = eng.OccupyConqueredCountry(cmd.Amount)
		if err == nil {
			res.Output = fmt.Sprintf("%s moved %d more troops in", player, cmd.Amount)
		}
	case KindEndAttack:
		err = eng.EndAttack()
		if err == nil {
			res.Output = fmt.Sprintf("%s ends the attack", player)
		}
	case KindRegroup:
		err = eng.Regroup(cmd.Regroups)
		if err == nil {
			res.Output = fmt.Sprintf("%s regrouped %d moves, %s to play", player, len(cmd.Regroups), eng.CurrentPlayer())
		}
	case KindStatus:
		res.Output = eng.Render(cp.color)
	case KindMoves:
		res.Output = cp.describeMoves(eng)
	case KindHelp:
		res.Output = Usage
	case KindQuit:
		res.Quit = true
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}

	if err != nil {
		wrapped := core.WrapCommandError(player, string(cmd.Kind), err)
		cp.logger.Warn().Err(wrapped).Str("player", string(player)).Msg("Command failed")
		return res, wrapped
	}
	if eng.IsGameOver() {
		res.Quit = true
		res.Output = strings.TrimSpace(res.Output + "\n" + fmt.Sprintf("game over, winners: %v", eng.Winners()))
	}
	return res, nil
}

// ExecuteLine parses and runs one typed line.
func (cp *CommandProcessor) ExecuteLine(eng Engine, parser *Parser, line string) (Result, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		cp.logger.Debug().Err(err).Str("line", line).Msg("Failed to parse command")
		return Result{}, err
	}
	return cp.Execute(eng, cmd)
}

// ProcessCommands runs cmds in order. A failed command leaves the game
// unchanged, so processing goes on; the first error is returned at the end.
// Processing stops on cancellation, a quit command or the end of the game.
func (cp *CommandProcessor) ProcessCommands(ctx context.Context, eng Engine, cmds []Command) ([]Result, error) {
	var (
		results          []Result
		encounteredError error
	)
	for _, cmd := range cmds {
		select {
		case <-ctx.Done():
			cp.logger.Warn().Err(ctx.Err()).Msg("Command processing interrupted by context cancellation")
			return results, ctx.Err()
		default:
		}

		res, err := cp.Execute(eng, cmd)
		if err != nil {
			if encounteredError == nil {
				encounteredError = err
			}
			continue
		}
		results = append(results, res)
		if res.Quit {
			break
		}
	}
	return results, encounteredError
}

func describeAttack(r game.AttackReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s attacks %s (%s)", r.From, r.To, r.Defender)
	if len(r.AttackerRolls) > 0 {
		fmt.Fprintf(&sb, ": %v vs %v", r.AttackerRolls, r.DefenderRolls)
	}
	fmt.Fprintf(&sb, ", losses %d/%d", r.Losses.Attacker, r.Losses.Defender)
	if r.Conquered {
		fmt.Fprintf(&sb, ", conquered with %d", r.MovedIn)
	}
	if r.Eliminated {
		fmt.Fprintf(&sb, ", %s eliminated", r.Defender)
	}
	return sb.String()
}

func (cp *CommandProcessor) describeMoves(eng Engine) string {
	player := eng.CurrentPlayer()
	phase := eng.CurrentPhase()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, phase %s\n", player, phase)
	switch phase {
	case states.PhaseReinforcing:
		fmt.Fprintf(&sb, "  allowance %d\n", eng.ReinforcementAllowance(player))
	case states.PhaseFighting:
		for _, m := range eng.LegalAttacks() {
			fmt.Fprintf(&sb, "  attack %s -> %s\n", m.From, m.To)
		}
	case states.PhaseRegrouping:
		for _, m := range eng.LegalRegroups() {
			fmt.Fprintf(&sb, "  regroup %s -> %s\n", m.From, m.To)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
