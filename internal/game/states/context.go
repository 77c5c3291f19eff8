package states

import (
	"time"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/rs/zerolog"
)

// Conquest is the pair of territories awaiting the occupy move.
type Conquest struct {
	From core.Territory
	To   core.Territory
}

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// CurrentPlayer is whose turn it is
	CurrentPlayer core.PlayerName

	// Turn counts completed regroups, starting at 1
	Turn int

	// Pending is set while a conquest waits for the occupy move
	Pending *Conquest

	// StartTime is when the first turn began
	StartTime time.Time

	// Winners are filled in once the game ends
	Winners []core.PlayerName
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
		Turn:   1,
	}
}

// GetElapsedTime returns the time elapsed since the first turn began
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime)
}
