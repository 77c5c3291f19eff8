package rules

import (
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/rs/zerolog"
)

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger          zerolog.Logger
	originalPlayers int
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, originalPlayers int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:          logger.With().Str("component", "WinConditionChecker").Logger(),
		originalPlayers: originalPlayers,
	}
}

// CheckGameOver reports whether the game is over and who won. The game ends
// when any active player's goal is achieved; every such player wins. It also
// ends when a multi-player game is down to one active player, who wins.
func (wc *WinConditionChecker) CheckGameOver(players []Player, view View) (bool, []core.PlayerName) {
	wc.logger.Debug().Msg("Checking game over conditions")

	var active, winners []core.PlayerName
	for _, p := range players {
		name := p.GetName()
		if !view.IsActive(name) {
			continue
		}
		active = append(active, name)
		if g := p.GetGoal(); g != nil && g.Achieved(name, view) {
			winners = append(winners, name)
		}
	}

	gameOver := len(winners) > 0
	if !gameOver {
		if wc.originalPlayers > 1 {
			gameOver = len(active) <= 1
		} else {
			gameOver = len(active) == 0
		}
		if gameOver && len(active) == 1 {
			winners = active
		}
	}

	if gameOver && len(winners) > 0 {
		wc.logger.Info().Interface("winners", winners).Msg("Winner determined")
	} else if gameOver {
		wc.logger.Info().Msg("No winner found, every player was eliminated")
	}

	wc.logger.Debug().Bool("is_game_over", gameOver).Int("active_player_count", len(active)).Interface("active_players", active).Msg("Game over check complete")

	return gameOver, winners
}

// Player interface to avoid circular imports
type Player interface {
	GetName() core.PlayerName
	GetGoal() Goal
}
