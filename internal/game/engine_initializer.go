package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/ConquestRules/internal/common"
	"github.com/mitchelldurbincs/ConquestRules/internal/config"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/combat"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/dealer"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/events"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/mapgen"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/rules"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/states"
)

// PlayerSetup describes a player before the game starts. Goal wins over
// GoalSpec; with neither the player plays for the whole world.
type PlayerSetup struct {
	Name     core.PlayerName
	Color    string
	Goal     rules.Goal
	GoalSpec string
}

// GameConfig holds everything needed to start a game. Zero values fall back
// to the loaded configuration or to the built-in defaults.
type GameConfig struct {
	GameID  string
	Players []PlayerSetup

	// Board defaults to the classic map with its continent bonuses.
	Board          core.TerritoryMap
	ContinentBonus map[core.Continent]int

	// Occupations replaces dealing when set.
	Occupations map[core.Territory]core.Occupation
	ShuffleDeal bool
	Seed        uint64

	Die       combat.Die
	Resolver  combat.Resolver
	Conqueror combat.Conqueror

	MaxDice              int
	MaxMoveIn            int
	MaxOccupyMove        int
	StrictReinforcements bool
	HistorySize          int

	EventBus events.Bus
	Logger   zerolog.Logger
}

// GameConfigFromConfig maps the loaded configuration onto a GameConfig.
func GameConfigFromConfig(c *config.Config, logger zerolog.Logger) GameConfig {
	r := c.Game.Rules
	gc := GameConfig{
		ShuffleDeal:          c.Game.Setup.Deal == config.DealShuffled,
		Seed:                 c.Game.Setup.Seed,
		MaxDice:              r.MaxDice,
		MaxMoveIn:            r.MaxMoveIn,
		MaxOccupyMove:        r.MaxOccupyMove,
		StrictReinforcements: r.StrictReinforcements,
		HistorySize:          r.HistorySize,
		Logger:               logger,
	}
	switch r.Conqueror {
	case config.ConquerorMinimum:
		gc.Conqueror = combat.MinimumMoveIn
	case config.ConquerorFixed:
		gc.Conqueror = combat.FixedMoveIn(r.FixedMoveIn)
	}
	for _, p := range c.Game.Setup.Players {
		gc.Players = append(gc.Players, PlayerSetup{
			Name:     core.PlayerName(p.Name),
			Color:    p.Color,
			GoalSpec: p.Goal,
		})
	}
	return gc
}

// EngineInitializer handles the complex initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before setup")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	board, err := ei.generateMap()
	if err != nil {
		return nil, fmt.Errorf("map generation failed: %w", err)
	}

	players, err := ei.initializePlayers(board)
	if err != nil {
		return nil, fmt.Errorf("player setup failed: %w", err)
	}

	registry, err := ei.initializeRegistry(board, players)
	if err != nil {
		return nil, fmt.Errorf("territory setup failed: %w", err)
	}

	engine, err := ei.createEngine(board, registry, players)
	if err != nil {
		return nil, err
	}

	if err := ei.initializeStateMachine(engine); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	names := make([]core.PlayerName, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		names,
		len(board.Territories()),
		len(board.Continents()),
	))

	if !engine.checkGameOver() {
		engine.eventBus.Publish(events.NewTurnStartedEvent(engine.gameID, engine.CurrentPlayer(), engine.Turn()))
	}

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("players", len(players)).
		Int("territories", len(board.Territories())).
		Uint64("seed", ei.config.Seed).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in every zero-valued setting
func (ei *EngineInitializer) setupDefaults() {
	cfg := &ei.config
	if cfg.GameID == "" {
		cfg.GameID = uuid.NewString()
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
		ei.logger.Debug().Uint64("seed", cfg.Seed).Msg("No seed provided, using clock")
	}
	if cfg.MaxDice == 0 {
		cfg.MaxDice = MaxDice()
	}
	if cfg.MaxMoveIn == 0 {
		cfg.MaxMoveIn = MaxMoveIn()
	}
	if cfg.MaxOccupyMove == 0 {
		cfg.MaxOccupyMove = MaxOccupyMove()
	}
	if cfg.HistorySize == 0 {
		cfg.HistorySize = HistorySize()
	}
	if cfg.Die == nil {
		cfg.Die = combat.NewRandomDie(cfg.Seed)
	}
	if cfg.Resolver == nil {
		cfg.Resolver = &combat.DiceResolver{Die: cfg.Die, MaxDice: cfg.MaxDice}
	}
	if cfg.Conqueror == nil {
		cfg.Conqueror = combat.MaximumMoveInUpTo(cfg.MaxMoveIn)
	}
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBusWithLogger(ei.logger)
	}
}

// generateMap returns the configured board or builds the classic one
func (ei *EngineInitializer) generateMap() (core.TerritoryMap, error) {
	if ei.config.Board != nil {
		return ei.config.Board, nil
	}
	gen := mapgen.NewGenerator(mapgen.DefaultMapConfig())
	def, err := gen.Definition()
	if err != nil {
		return nil, err
	}
	if ei.config.ContinentBonus == nil {
		ei.config.ContinentBonus = def.Bonuses()
	}
	return gen.GenerateMap()
}

// initializePlayers validates names and resolves goals
func (ei *EngineInitializer) initializePlayers(board core.TerritoryMap) ([]Player, error) {
	if len(ei.config.Players) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughPlayers, len(ei.config.Players))
	}
	seen := make(map[core.PlayerName]bool, len(ei.config.Players))
	players := make([]Player, 0, len(ei.config.Players))
	for _, ps := range ei.config.Players {
		if err := common.ValidatePlayerName(string(ps.Name)); err != nil {
			return nil, err
		}
		if seen[ps.Name] {
			return nil, fmt.Errorf("%w: %s", states.ErrDuplicatePlayer, ps.Name)
		}
		seen[ps.Name] = true

		goal := ps.Goal
		if goal == nil && ps.GoalSpec != "" {
			g, err := rules.ParseGoal(ps.GoalSpec, board)
			if err != nil {
				return nil, fmt.Errorf("player %s: %w", ps.Name, err)
			}
			goal = g
		}
		if goal == nil {
			goal = rules.OccupyWorld()
		}
		players = append(players, Player{Name: ps.Name, Color: ps.Color, Goal: goal})
	}
	return players, nil
}

// initializeRegistry applies preset occupations or deals the board
func (ei *EngineInitializer) initializeRegistry(board core.TerritoryMap, players []Player) (*core.Registry, error) {
	reg := core.NewRegistry(board)
	names := make([]core.PlayerName, len(players))
	known := make(map[core.PlayerName]bool, len(players))
	for i, p := range players {
		names[i] = p.Name
		known[p.Name] = true
	}

	if ei.config.Occupations != nil {
		for t, occ := range ei.config.Occupations {
			if !known[occ.Occupier] {
				return nil, &core.TerritoryError{Territory: t, Err: ErrUnknownOccupier}
			}
			if err := reg.Occupy(t, occ.Occupier, occ.Troops); err != nil {
				return nil, err
			}
		}
	} else {
		var (
			dealt map[core.PlayerName][]core.Territory
			err   error
		)
		if ei.config.ShuffleDeal {
			rng := rand.New(rand.NewSource(ei.config.Seed))
			dealt, err = dealer.Shuffled(rng, board.Territories(), names)
		} else {
			dealt, err = dealer.Deal(board.Territories(), names)
		}
		if err != nil {
			return nil, err
		}
		if err := dealer.DealInto(reg, dealt); err != nil {
			return nil, err
		}
	}

	for _, name := range names {
		if len(reg.TerritoriesOf(name)) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrPlayerWithoutTerritory, name)
		}
	}
	return reg, nil
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(board core.TerritoryMap, reg *core.Registry, players []Player) (*Engine, error) {
	names := make([]core.PlayerName, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	cursor, err := states.NewPlayerCursor(names)
	if err != nil {
		return nil, err
	}

	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	stateMachine := states.NewStateMachine(gameContext, ei.config.EventBus)
	stateMachine.SetMaxHistorySize(ei.config.HistorySize)

	return &Engine{
		gameID:       ei.config.GameID,
		board:        board,
		registry:     reg,
		players:      players,
		cursor:       cursor,
		eliminations: rules.NewEliminationTracker(),
		stateMachine: stateMachine,
		eventBus:     ei.config.EventBus,
		resolver:     ei.config.Resolver,
		conqueror:    ei.config.Conqueror,
		winCondition: rules.NewWinConditionChecker(ei.logger, len(players)),
		legalMoves:   rules.NewLegalMoveCalculator(),
		rules: RuleSet{
			MaxMoveIn:            ei.config.MaxMoveIn,
			MaxOccupyMove:        ei.config.MaxOccupyMove,
			StrictReinforcements: ei.config.StrictReinforcements,
			ContinentBonus:       ei.config.ContinentBonus,
		},
		logger: gameContext.Logger,
	}, nil
}

// initializeStateMachine hands the first turn to the first player
func (ei *EngineInitializer) initializeStateMachine(engine *Engine) error {
	engine.ctx().CurrentPlayer = engine.cursor.Current()
	if err := engine.stateMachine.TransitionTo(states.PhaseReinforcing, "Game setup complete"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Reinforcing state")
		return err
	}
	return nil
}
