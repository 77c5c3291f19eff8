package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/rules"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/states"
)

// PlannedAttack repeats the attack from From into To up to Rounds times,
// stopping early on conquest or when From runs out of spare troops.
type PlannedAttack struct {
	rules.Move
	Rounds int
	// Occupy is the number of extra troops moved in after a conquest,
	// clamped to what the source can spare.
	Occupy int
}

// TurnPlan is every command of one turn.
type TurnPlan struct {
	Reinforcements []core.Reinforcement
	Attacks        []PlannedAttack
	Regroups       []core.Regrouping
}

// TurnSummary records what happened while a plan was played.
type TurnSummary struct {
	Player     core.PlayerName
	Turn       int
	Reports    []AttackReport
	Conquests  int
	Eliminated []core.PlayerName
	GameOver   bool
	Duration   time.Duration
}

// TurnProcessor handles the orchestration of a single turn
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// PlayTurn runs plan for the current player from reinforcement to regroup.
// Regroups made stale by the attacks are dropped.
// The context is checked between commands; a cancelled turn stops where it
// is and leaves the engine in a consistent phase.
func (tp *TurnProcessor) PlayTurn(ctx context.Context, plan TurnPlan) (summary TurnSummary, err error) {
	e := tp.engine
	summary = TurnSummary{Player: e.CurrentPlayer(), Turn: e.Turn()}
	start := time.Now()
	defer func() { summary.Duration = time.Since(start) }()

	turnLogger := tp.logger.With().Int("turn", summary.Turn).Str("player", string(summary.Player)).Logger()
	turnLogger.Debug().Msg("Starting turn")

	if phase := e.CurrentPhase(); !phase.CanReceiveCommands() {
		return summary, fmt.Errorf("%w: no turn to play in phase %s", core.ErrGameOver, phase)
	}

	if err := tp.checkContext(ctx, "reinforcing"); err != nil {
		return summary, err
	}
	if err := e.Reinforce(plan.Reinforcements); err != nil {
		return summary, err
	}

	for _, a := range plan.Attacks {
		for round := 0; round < max(1, a.Rounds); round++ {
			if err := tp.checkContext(ctx, "fighting"); err != nil {
				return summary, err
			}
			if !tp.canAttack(a.Move) {
				break
			}
			report, err := e.Attack(a.From, a.To)
			if err != nil {
				return summary, err
			}
			summary.Reports = append(summary.Reports, report)
			if report.Eliminated {
				summary.Eliminated = append(summary.Eliminated, report.Defender)
			}
			if report.GameOver {
				summary.GameOver = true
				turnLogger.Info().Msg("Game over during turn")
				return summary, nil
			}
			if !report.Conquered {
				continue
			}
			summary.Conquests++
			if err := e.OccupyConqueredCountry(tp.occupyAmount(a)); err != nil {
				return summary, err
			}
			break
		}
	}

	if err := tp.checkContext(ctx, "regrouping"); err != nil {
		return summary, err
	}
	if err := e.EndAttack(); err != nil {
		return summary, err
	}
	if err := e.Regroup(tp.liveRegroups(plan.Regroups)); err != nil {
		return summary, err
	}

	turnLogger.Debug().
		Int("attacks", len(summary.Reports)).
		Int("conquests", summary.Conquests).
		Msg("Turn finished")
	return summary, nil
}

// canAttack skips attacks the board no longer allows, such as one from a
// territory lost earlier in the turn.
func (tp *TurnProcessor) canAttack(m rules.Move) bool {
	e := tp.engine
	if e.CurrentPhase() != states.PhaseFighting {
		return false
	}
	p, ok, err := e.OccupierOf(m.From)
	if err != nil || !ok || p != e.CurrentPlayer() {
		return false
	}
	troops, _, _ := e.TroopsOf(m.From)
	if troops.Int() < 2 {
		return false
	}
	q, ok, err := e.OccupierOf(m.To)
	return err == nil && ok && q != p
}

// liveRegroups drops moves that the attacks made impossible: a source or
// destination lost, or a source left without the troops to spare.
func (tp *TurnProcessor) liveRegroups(moves []core.Regrouping) []core.Regrouping {
	e := tp.engine
	player := e.CurrentPlayer()
	live := make([]core.Regrouping, 0, len(moves))
	for _, m := range moves {
		from, ok, err := e.registry.Get(m.From)
		if err != nil || !ok || from.Occupier != player || !m.Amount.Less(from.Troops) {
			tp.logger.Debug().Str("from", string(m.From)).Str("to", string(m.To)).Msg("Dropping stale regroup")
			continue
		}
		if p, ok, _ := e.OccupierOf(m.To); !ok || p != player {
			tp.logger.Debug().Str("from", string(m.From)).Str("to", string(m.To)).Msg("Dropping stale regroup")
			continue
		}
		live = append(live, m)
	}
	return live
}

func (tp *TurnProcessor) occupyAmount(a PlannedAttack) int {
	troops, _, _ := tp.engine.TroopsOf(a.From)
	return max(0, min(a.Occupy, tp.engine.rules.MaxOccupyMove, troops.Int()-1))
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.engine.Turn()).
			Str("phase", phase).
			Msg("Turn cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}
