package game

import "errors"

var (
	ErrReinforcementAllowance = errors.New("reinforcements do not match the allowance")
	ErrPlayerWithoutTerritory = errors.New("player holds no territory")
	ErrUnknownOccupier        = errors.New("territory held by a player not in the game")
	ErrNotEnoughPlayers       = errors.New("a game needs at least two players")
)
