package game

import (
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/rules"
)

// Player is one seat at the table. Players are identified by name.
type Player struct {
	Name  core.PlayerName
	Color string
	Goal  rules.Goal
}

func (p Player) GetName() core.PlayerName { return p.Name }
func (p Player) GetGoal() rules.Goal      { return p.Goal }

// PlayerStats is a per-player summary of the board.
type PlayerStats struct {
	Name         core.PlayerName
	Color        string
	Goal         string
	Territories  int
	Troops       int
	Continents   []core.Continent
	Eliminated   bool
	EliminatedBy core.PlayerName
}
