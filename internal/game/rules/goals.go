package rules

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// View is the read-only game state goals are evaluated against.
type View interface {
	Board() core.TerritoryMap
	OccupierOf(t core.Territory) (core.PlayerName, bool, error)
	IsActive(p core.PlayerName) bool
	DestroyerOf(victim core.PlayerName) (core.PlayerName, bool)
}

// Goal is a victory condition for one player.
type Goal interface {
	Achieved(player core.PlayerName, v View) bool
	String() string
}

type allOf []Goal

// AllOf is achieved when every sub-goal is. An empty AllOf is always
// achieved.
func AllOf(goals ...Goal) Goal { return allOf(goals) }

func (g allOf) Achieved(player core.PlayerName, v View) bool {
	for _, sub := range g {
		if !sub.Achieved(player, v) {
			return false
		}
	}
	return true
}

func (g allOf) String() string {
	parts := make([]string, len(g))
	for i, sub := range g {
		parts[i] = sub.String()
	}
	return strings.Join(parts, " and ")
}

type occupyContinent struct {
	continent core.Continent
}

// OccupyContinent is achieved when the player holds every territory of c.
func OccupyContinent(c core.Continent) Goal { return occupyContinent{continent: c} }

func (g occupyContinent) Achieved(player core.PlayerName, v View) bool {
	ts, err := v.Board().TerritoriesIn(g.continent)
	if err != nil || len(ts) == 0 {
		return false
	}
	return countHeld(player, v, ts) == len(ts)
}

func (g occupyContinent) String() string { return fmt.Sprintf("occupy %s", g.continent) }

type occupySubContinent struct {
	continent core.Continent
	count     int
}

// NewOccupySubContinent is achieved when the player holds at least k
// territories of c.
func NewOccupySubContinent(board core.TerritoryMap, c core.Continent, k int) (Goal, error) {
	ts, err := board.TerritoriesIn(c)
	if err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: need at least one territory of %s, got %d", ErrInvalidGoal, c, k)
	}
	if k > len(ts) {
		return nil, fmt.Errorf("%w: %s has %d, asked for %d", ErrSubContinentTooLarge, c, len(ts), k)
	}
	return occupySubContinent{continent: c, count: k}, nil
}

func (g occupySubContinent) Achieved(player core.PlayerName, v View) bool {
	ts, err := v.Board().TerritoriesIn(g.continent)
	if err != nil {
		return false
	}
	return countHeld(player, v, ts) >= g.count
}

func (g occupySubContinent) String() string {
	return fmt.Sprintf("occupy %d territories of %s", g.count, g.continent)
}

type destroy struct {
	target core.PlayerName
}

// Destroy is achieved when the player personally eliminated target and is
// still in the game.
func Destroy(target core.PlayerName) Goal { return destroy{target: target} }

func (g destroy) Achieved(player core.PlayerName, v View) bool {
	by, ok := v.DestroyerOf(g.target)
	return ok && by == player && v.IsActive(player)
}

func (g destroy) String() string { return fmt.Sprintf("destroy %s", g.target) }

type occupyWorld struct{}

// OccupyWorld is achieved when the player holds every territory on the board.
func OccupyWorld() Goal { return occupyWorld{} }

func (occupyWorld) Achieved(player core.PlayerName, v View) bool {
	ts := v.Board().Territories()
	return len(ts) > 0 && countHeld(player, v, ts) == len(ts)
}

func (occupyWorld) String() string { return "occupy the world" }

func countHeld(player core.PlayerName, v View, ts []core.Territory) int {
	held := 0
	for _, t := range ts {
		if p, ok, err := v.OccupierOf(t); err == nil && ok && p == player {
			held++
		}
	}
	return held
}
