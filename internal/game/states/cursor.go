package states

import (
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// PlayerCursor is a cyclic pointer over the players still in the game.
type PlayerCursor struct {
	players []core.PlayerName
	current int
}

// NewPlayerCursor starts at the first player.
func NewPlayerCursor(players []core.PlayerName) (*PlayerCursor, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	seen := make(map[core.PlayerName]struct{}, len(players))
	for _, p := range players {
		if p == "" {
			return nil, fmt.Errorf("%w: empty name", core.ErrInvalidPlayer)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p)
		}
		seen[p] = struct{}{}
	}
	return &PlayerCursor{players: slices.Clone(players)}, nil
}

// Current returns the player whose turn it is.
func (c *PlayerCursor) Current() core.PlayerName { return c.players[c.current] }

// Next advances to the following player, wrapping from last to first, and
// returns them.
func (c *PlayerCursor) Next() core.PlayerName {
	c.current = (c.current + 1) % len(c.players)
	return c.players[c.current]
}

// Remove drops p from the rotation. The cursor keeps pointing at the same
// player; if p was current, it moves to whoever would have played next.
func (c *PlayerCursor) Remove(p core.PlayerName) error {
	idx := slices.Index(c.players, p)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, p)
	}
	if len(c.players) == 1 {
		return fmt.Errorf("%w: %s", ErrLastPlayer, p)
	}
	c.players = slices.Delete(c.players, idx, idx+1)
	if idx < c.current {
		c.current--
	}
	if c.current >= len(c.players) {
		c.current = 0
	}
	return nil
}

// Contains reports whether p is still in the rotation.
func (c *PlayerCursor) Contains(p core.PlayerName) bool { return slices.Contains(c.players, p) }

// Players returns the remaining players in turn order.
func (c *PlayerCursor) Players() []core.PlayerName { return slices.Clone(c.players) }

// Len is the number of players left in the rotation.
func (c *PlayerCursor) Len() int { return len(c.players) }
