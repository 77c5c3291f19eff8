package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/combat"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/events"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/rules"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/states"
)

// RuleSet holds the limits the engine enforces.
type RuleSet struct {
	MaxMoveIn            int
	MaxOccupyMove        int
	StrictReinforcements bool
	ContinentBonus       map[core.Continent]int
}

// AttackReport describes one resolved attack.
type AttackReport struct {
	From          core.Territory
	To            core.Territory
	Defender      core.PlayerName
	AttackerRolls []int
	DefenderRolls []int
	Losses        combat.Losses
	Conquered     bool
	MovedIn       int
	Eliminated    bool
	GameOver      bool
}

// Engine runs one game: the occupation registry, the turn protocol and
// victory detection. Commands are all-or-nothing: a failed command leaves
// every territory and the phase unchanged. Engine is not safe for
// concurrent use.
type Engine struct {
	gameID       string
	board        core.TerritoryMap
	registry     *core.Registry
	players      []Player
	cursor       *states.PlayerCursor
	eliminations *rules.EliminationTracker
	stateMachine *states.StateMachine
	eventBus     events.Bus
	resolver     combat.Resolver
	conqueror    combat.Conqueror
	winCondition *rules.WinConditionChecker
	legalMoves   *rules.LegalMoveCalculator
	rules        RuleSet
	logger       zerolog.Logger

	gameOver bool
	winners  []core.PlayerName
}

// NewEngine builds and starts a game from cfg.
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

func (e *Engine) ctx() *states.GameContext { return e.stateMachine.GetContext() }

// Reinforce places a batch of troops on territories the current player
// holds and moves on to the attack.
func (e *Engine) Reinforce(rs []core.Reinforcement) error {
	return e.run(states.CmdReinforce, func(player core.PlayerName) error {
		return e.reinforce(player, rs)
	})
}

func (e *Engine) reinforce(player core.PlayerName, rs []core.Reinforcement) error {
	after := make(map[core.Territory]core.Count, len(rs))
	total := 0
	for _, r := range rs {
		occ, ok, err := e.registry.Get(r.Territory)
		if err != nil {
			return err
		}
		if !ok || occ.Occupier != player {
			return &core.TerritoryError{Territory: r.Territory, Err: core.ErrCountryIsNotOccupiedByPlayer}
		}
		cur, seen := after[r.Territory]
		if !seen {
			cur = occ.Troops
		}
		next, err := cur.Add(r.Troops)
		if err != nil {
			return &core.TerritoryError{Territory: r.Territory, Err: err}
		}
		after[r.Territory] = next
		total += r.Troops.Int()
	}
	if e.rules.StrictReinforcements {
		if allowed := e.ReinforcementAllowance(player); total != allowed {
			return fmt.Errorf("%w: placed %d, allowed %d", ErrReinforcementAllowance, total, allowed)
		}
	}

	for _, r := range rs {
		if err := e.registry.AddTroops(r.Territory, r.Troops); err != nil {
			return err
		}
	}

	e.eventBus.Publish(events.NewReinforcementsPlacedEvent(e.gameID, player, e.Turn(), rs))
	e.logger.Debug().
		Str("player", string(player)).
		Int("troops", total).
		Int("territories", len(after)).
		Msg("Reinforcements placed")

	return e.stateMachine.TransitionTo(states.PhaseFighting, "Reinforcements placed")
}

// Attack resolves one exchange of dice from one territory into a bordering
// enemy territory. A conquest moves the game into the occupying phase.
func (e *Engine) Attack(from, to core.Territory) (AttackReport, error) {
	var report AttackReport
	err := e.run(states.CmdAttack, func(player core.PlayerName) error {
		var err error
		report, err = e.attack(player, from, to)
		return err
	})
	return report, err
}

func (e *Engine) attack(player core.PlayerName, from, to core.Territory) (AttackReport, error) {
	src, ok, err := e.registry.Get(from)
	if err != nil {
		return AttackReport{}, err
	}
	if !ok || src.Occupier != player {
		return AttackReport{}, &core.TerritoryError{Territory: from, Err: core.ErrCountryIsNotOccupiedByPlayer}
	}
	bordering, err := e.board.AreBordering(from, to)
	if err != nil {
		return AttackReport{}, err
	}
	if !bordering {
		return AttackReport{}, fmt.Errorf("%w: %s and %s", core.ErrCountriesAreNotBordering, from, to)
	}
	dst, ok, err := e.registry.Get(to)
	if err != nil {
		return AttackReport{}, err
	}
	if !ok {
		return AttackReport{}, &core.TerritoryError{Territory: to, Err: core.ErrUnoccupiedTerritory}
	}
	if dst.Occupier == player {
		return AttackReport{}, &core.TerritoryError{Territory: to, Err: core.ErrCannotAttackOwnCountry}
	}

	outcome, err := e.resolver.Resolve(src.Troops, dst.Troops)
	if err != nil {
		return AttackReport{}, err
	}
	res, err := combat.ApplyAttack(e.registry, combat.Attack{Attacker: player, From: from, To: to},
		outcome.Losses, e.conqueror, e.rules.MaxMoveIn)
	if err != nil {
		return AttackReport{}, err
	}

	report := AttackReport{
		From:          from,
		To:            to,
		Defender:      res.Defender,
		AttackerRolls: outcome.AttackerRolls,
		DefenderRolls: outcome.DefenderRolls,
		Losses:        res.Losses,
		Conquered:     res.Conquered,
		MovedIn:       res.MovedIn,
	}

	turn := e.Turn()
	e.eventBus.Publish(events.NewCombatResolvedEvent(e.gameID, turn, player, res.Defender, from, to,
		outcome.AttackerRolls, outcome.DefenderRolls, res.Losses.Attacker, res.Losses.Defender, res.Conquered))
	e.logger.Debug().
		Str("player", string(player)).
		Str("from", string(from)).
		Str("to", string(to)).
		Ints("attacker_rolls", outcome.AttackerRolls).
		Ints("defender_rolls", outcome.DefenderRolls).
		Int("attacker_losses", res.Losses.Attacker).
		Int("defender_losses", res.Losses.Defender).
		Msg("Combat resolved")

	if !res.Conquered {
		return report, nil
	}

	e.eventBus.Publish(events.NewTerritoryConqueredEvent(e.gameID, turn, to, from, player, res.Defender, res.MovedIn))
	e.logger.Info().
		Str("player", string(player)).
		Str("territory", string(to)).
		Str("previous_owner", string(res.Defender)).
		Int("moved_in", res.MovedIn).
		Msg("Territory conquered")

	if len(e.registry.TerritoriesOf(res.Defender)) == 0 {
		if err := e.eliminate(res.Defender, player); err != nil {
			return report, err
		}
		report.Eliminated = true
	}

	if e.checkGameOver() {
		report.GameOver = true
		return report, nil
	}

	e.ctx().Pending = &states.Conquest{From: from, To: to}
	if err := e.stateMachine.TransitionTo(states.PhaseOccupying, "Territory conquered"); err != nil {
		return report, err
	}
	return report, nil
}

// OccupyConqueredCountry moves amount extra troops into the territory just
// conquered and returns to fighting. Zero keeps the troops where they are.
func (e *Engine) OccupyConqueredCountry(amount int) error {
	return e.run(states.CmdOccupy, func(player core.PlayerName) error {
		pending := e.ctx().Pending
		if err := combat.MoveAfterConquest(e.registry, pending.From, pending.To, player, amount, e.rules.MaxOccupyMove); err != nil {
			return err
		}
		e.eventBus.Publish(events.NewConquestOccupiedEvent(e.gameID, e.Turn(), player, pending.From, pending.To, amount))
		e.logger.Debug().
			Str("player", string(player)).
			Str("from", string(pending.From)).
			Str("to", string(pending.To)).
			Int("amount", amount).
			Msg("Conquest occupied")
		return e.stateMachine.TransitionTo(states.PhaseFighting, "Conquest occupied")
	})
}

// EndAttack closes the attack and opens the regroup.
func (e *Engine) EndAttack() error {
	return e.run(states.CmdEndAttack, func(core.PlayerName) error {
		return e.stateMachine.TransitionTo(states.PhaseRegrouping, "Attack ended")
	})
}

// Regroup applies a batch of troop moves between bordering territories of
// the current player, then hands the turn to the next player. The batch is
// validated as a whole against the troops held before any move.
func (e *Engine) Regroup(moves []core.Regrouping) error {
	return e.run(states.CmdRegroup, func(player core.PlayerName) error {
		return e.regroup(player, moves)
	})
}

func (e *Engine) regroup(player core.PlayerName, moves []core.Regrouping) error {
	sources := make(map[core.Territory]struct{}, len(moves))
	for _, m := range moves {
		if _, dup := sources[m.From]; dup {
			return &core.TerritoryError{Territory: m.From, Err: core.ErrDuplicateRegroupSource}
		}
		sources[m.From] = struct{}{}

		for _, t := range []core.Territory{m.From, m.To} {
			p, ok, err := e.registry.OccupierOf(t)
			if err != nil {
				return err
			}
			if !ok || p != player {
				return &core.TerritoryError{Territory: t, Err: core.ErrCountryIsNotOccupiedByPlayer}
			}
		}
		bordering, err := e.board.AreBordering(m.From, m.To)
		if err != nil {
			return err
		}
		if !bordering {
			return fmt.Errorf("%w: %s and %s", core.ErrCountriesAreNotBordering, m.From, m.To)
		}
		held, _, _ := e.registry.TroopsOf(m.From)
		if !m.Amount.Less(held) {
			return &core.TooManyTroopsRemovedError{Territory: m.From, Current: held, Requested: m.Amount}
		}
	}

	// Dry run on a copy so a destination overflow cannot half-apply the batch.
	trial := e.registry.Clone()
	if err := applyRegroupings(trial, moves); err != nil {
		return err
	}
	if err := applyRegroupings(e.registry, moves); err != nil {
		return err
	}

	e.eventBus.Publish(events.NewTroopsRegroupedEvent(e.gameID, player, e.Turn(), moves))
	e.logger.Debug().
		Str("player", string(player)).
		Int("moves", len(moves)).
		Msg("Troops regrouped")

	return e.advanceTurn()
}

func applyRegroupings(reg *core.Registry, moves []core.Regrouping) error {
	for _, m := range moves {
		if err := reg.RemoveTroops(m.From, m.Amount); err != nil {
			return err
		}
		if err := reg.AddTroops(m.To, m.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) advanceTurn() error {
	ctx := e.ctx()
	ctx.CurrentPlayer = e.cursor.Next()
	ctx.Turn++
	if err := e.stateMachine.TransitionTo(states.PhaseReinforcing, "Turn passed"); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewTurnStartedEvent(e.gameID, ctx.CurrentPlayer, ctx.Turn))
	return nil
}

// run checks the phase, executes fn for the current player and turns any
// failure into a logged, published rejection.
func (e *Engine) run(cmd states.Command, fn func(player core.PlayerName) error) error {
	player := e.CurrentPlayer()
	err := core.ErrGameOver
	if !e.gameOver {
		err = e.stateMachine.Check(cmd)
	}
	if err == nil {
		e.logger.Debug().Str("player", string(player)).Str("command", string(cmd)).Msg("Processing command")
		err = fn(player)
	}
	if err == nil {
		return nil
	}

	turn := e.Turn()
	e.logger.Warn().
		Err(err).
		Str("player", string(player)).
		Str("command", string(cmd)).
		Str("phase", e.CurrentPhase().String()).
		Msg("Command rejected")
	e.eventBus.Publish(events.NewCommandRejectedEvent(e.gameID, player, turn, string(cmd), err))
	return core.NewGameError(turn, player, string(cmd), err)
}

func (e *Engine) eliminate(victim, by core.PlayerName) error {
	rank := e.cursor.Len()
	if err := e.eliminations.Eliminate(victim, by); err != nil {
		return err
	}
	if err := e.cursor.Remove(victim); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewPlayerEliminatedEvent(e.gameID, victim, by, rank, e.Turn()))
	e.logger.Info().
		Str("player", string(victim)).
		Str("eliminated_by", string(by)).
		Int("rank", rank).
		Msg("Player eliminated")
	return nil
}

// checkGameOver polls the goals and ends the game when one is achieved or a
// single player is left.
func (e *Engine) checkGameOver() bool {
	if e.gameOver {
		return true
	}
	players := make([]rules.Player, len(e.players))
	for i, p := range e.players {
		players[i] = p
	}
	over, winners := e.winCondition.CheckGameOver(players, e)
	if !over {
		return false
	}

	e.gameOver = true
	e.winners = winners
	ctx := e.ctx()
	ctx.Winners = slices.Clone(winners)
	if err := e.stateMachine.TransitionTo(states.PhaseEnded, "Game over"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to transition to Ended state")
	}
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, winners, ctx.GetElapsedTime(), ctx.Turn))
	return true
}

// ReinforcementAllowance is the number of troops player receives at the
// start of a turn: a third of their territories (at least three) plus the
// bonus of every continent they hold entirely.
func (e *Engine) ReinforcementAllowance(player core.PlayerName) int {
	allowance := max(MinReinforcements, len(e.registry.TerritoriesOf(player))/3)
	for _, c := range e.continentsHeld(player) {
		allowance += e.continentBonus(c)
	}
	return allowance
}

func (e *Engine) continentBonus(c core.Continent) int {
	if b, ok := e.rules.ContinentBonus[c]; ok {
		return b
	}
	ts, _ := e.board.TerritoriesIn(c)
	return max(MinContinentBonus, len(ts)/2)
}

func (e *Engine) continentsHeld(player core.PlayerName) []core.Continent {
	var held []core.Continent
	for _, c := range e.board.Continents() {
		ts, err := e.board.TerritoriesIn(c)
		if err != nil || len(ts) == 0 {
			continue
		}
		all := true
		for _, t := range ts {
			if p, ok, _ := e.registry.OccupierOf(t); !ok || p != player {
				all = false
				break
			}
		}
		if all {
			held = append(held, c)
		}
	}
	return held
}

// GameID returns the unique id of this game.
func (e *Engine) GameID() string { return e.gameID }

// Board returns the static map.
func (e *Engine) Board() core.TerritoryMap { return e.board }

// CurrentPlayer returns the player whose turn it is.
func (e *Engine) CurrentPlayer() core.PlayerName { return e.ctx().CurrentPlayer }

// CurrentPhase returns the phase of the current turn.
func (e *Engine) CurrentPhase() states.GamePhase { return e.stateMachine.CurrentPhase() }

// Turn returns the 1-based turn number.
func (e *Engine) Turn() int { return e.ctx().Turn }

// IsGameOver reports whether a winner has been declared.
func (e *Engine) IsGameOver() bool { return e.gameOver }

// Winners returns the winning players, empty while the game runs.
func (e *Engine) Winners() []core.PlayerName { return slices.Clone(e.winners) }

// ActivePlayers returns the players still in the rotation, in turn order.
func (e *Engine) ActivePlayers() []core.PlayerName { return e.cursor.Players() }

// Eliminated returns the destroyed players, earliest first.
func (e *Engine) Eliminated() []core.PlayerName { return e.eliminations.Eliminated() }

// History returns the recorded phase transitions, oldest first.
func (e *Engine) History() []states.Transition { return e.stateMachine.GetHistory() }

// EventBus returns the bus the engine publishes to.
func (e *Engine) EventBus() events.Bus { return e.eventBus }

// Rules returns the rule set the game was built with.
func (e *Engine) Rules() RuleSet { return e.rules }

// Players returns every player in seating order, eliminated ones included.
func (e *Engine) Players() []Player { return slices.Clone(e.players) }

// Player looks a player up by name.
func (e *Engine) Player(name core.PlayerName) (Player, bool) {
	i := slices.IndexFunc(e.players, func(p Player) bool { return p.Name == name })
	if i < 0 {
		return Player{}, false
	}
	return e.players[i], true
}

// OccupierOf returns who holds t. ok is false for an unoccupied territory.
func (e *Engine) OccupierOf(t core.Territory) (core.PlayerName, bool, error) {
	return e.registry.OccupierOf(t)
}

// TroopsOf returns the troops on t. ok is false for an unoccupied territory.
func (e *Engine) TroopsOf(t core.Territory) (core.Count, bool, error) {
	return e.registry.TroopsOf(t)
}

// TerritoriesOf lists the territories p holds, in board order.
func (e *Engine) TerritoriesOf(p core.PlayerName) []core.Territory {
	return e.registry.TerritoriesOf(p)
}

// Snapshot returns a copy of every occupation.
func (e *Engine) Snapshot() map[core.Territory]core.Occupation {
	return e.registry.Snapshot()
}

// Pending returns the conquest waiting for the occupy move, if any.
func (e *Engine) Pending() (states.Conquest, bool) {
	if p := e.ctx().Pending; p != nil && e.CurrentPhase() == states.PhaseOccupying {
		return *p, true
	}
	return states.Conquest{}, false
}

// IsActive reports whether p is still in the game.
func (e *Engine) IsActive(p core.PlayerName) bool {
	return e.cursor.Contains(p) && !e.eliminations.IsEliminated(p)
}

// DestroyerOf returns who eliminated victim, if anyone has.
func (e *Engine) DestroyerOf(victim core.PlayerName) (core.PlayerName, bool) {
	return e.eliminations.DestroyerOf(victim)
}

// LegalAttacks lists the attacks the current player may declare.
func (e *Engine) LegalAttacks() []rules.Move {
	return e.legalMoves.LegalAttacks(e.registry, e.CurrentPlayer())
}

// LegalRegroups lists the single moves the current player may regroup.
func (e *Engine) LegalRegroups() []rules.Move {
	return e.legalMoves.LegalRegroups(e.registry, e.CurrentPlayer())
}
