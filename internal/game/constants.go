package game

import (
	"github.com/mitchelldurbincs/ConquestRules/internal/config"
)

// Rule limits, read from the loaded configuration.
func MaxDice() int {
	return config.Get().Game.Rules.MaxDice
}

// MaxMoveIn is the configured ceiling on troops moved in after a conquest.
func MaxMoveIn() int {
	return config.Get().Game.Rules.MaxMoveIn
}

// MaxOccupyMove is the configured ceiling on the follow-up occupy move.
func MaxOccupyMove() int {
	return config.Get().Game.Rules.MaxOccupyMove
}

// HistorySize is how many phase transitions the state machine keeps.
func HistorySize() int {
	return config.Get().Game.Rules.HistorySize
}

// MinContinentBonus is the bonus for a continent with no configured value.
const MinContinentBonus = 2

// MinReinforcements is the smallest base allowance of a turn.
const MinReinforcements = 3
