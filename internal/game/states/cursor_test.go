package states

import (
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCursor(t *testing.T, names ...core.PlayerName) *PlayerCursor {
	t.Helper()
	c, err := NewPlayerCursor(names)
	require.NoError(t, err)
	return c
}

func TestPlayerCursor_Wraps(t *testing.T) {
	c := newCursor(t, "red", "blue", "green")
	assert.Equal(t, core.PlayerName("red"), c.Current())
	assert.Equal(t, core.PlayerName("blue"), c.Next())
	assert.Equal(t, core.PlayerName("green"), c.Next())
	assert.Equal(t, core.PlayerName("red"), c.Next())
	assert.Equal(t, 3, c.Len())
}

func TestPlayerCursor_Errors(t *testing.T) {
	_, err := NewPlayerCursor(nil)
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, err = NewPlayerCursor([]core.PlayerName{"red", "red"})
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	_, err = NewPlayerCursor([]core.PlayerName{"red", ""})
	assert.ErrorIs(t, err, core.ErrInvalidPlayer)

	c := newCursor(t, "red")
	assert.ErrorIs(t, c.Remove("blue"), ErrUnknownPlayer)
	assert.ErrorIs(t, c.Remove("red"), ErrLastPlayer)
	assert.True(t, c.Contains("red"))
}

func TestPlayerCursor_Remove(t *testing.T) {
	tests := []struct {
		name        string
		advance     int
		remove      core.PlayerName
		wantCurrent core.PlayerName
		wantNext    core.PlayerName
	}{
		{"before current", 2, "red", "green", "yellow"},
		{"after current", 1, "green", "blue", "yellow"},
		{"current moves to next", 1, "blue", "green", "yellow"},
		{"current last wraps", 3, "yellow", "red", "blue"},
		{"only one behind", 0, "yellow", "red", "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(t, "red", "blue", "green", "yellow")
			for i := 0; i < tt.advance; i++ {
				c.Next()
			}
			require.NoError(t, c.Remove(tt.remove))
			assert.False(t, c.Contains(tt.remove))
			assert.Equal(t, 3, c.Len())
			assert.Equal(t, tt.wantCurrent, c.Current())
			assert.Equal(t, tt.wantNext, c.Next())
		})
	}
}

func TestPlayerCursor_PlayersIsACopy(t *testing.T) {
	c := newCursor(t, "red", "blue")
	ps := c.Players()
	ps[0] = "mutated"
	assert.Equal(t, []core.PlayerName{"red", "blue"}, c.Players())
}
