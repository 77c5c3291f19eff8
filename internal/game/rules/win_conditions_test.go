package rules

import (
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGameOver(t *testing.T) {
	t.Run("nobody has reached a goal", func(t *testing.T) {
		_, reg := testutil.CreateSimpleTestSetup(t)
		v := newTestView(reg)
		wc := NewWinConditionChecker(testutil.NopLogger(), 2)

		over, winners := wc.CheckGameOver([]Player{
			testPlayer{"red", OccupyWorld()},
			testPlayer{"blue", OccupyWorld()},
		}, v)
		assert.False(t, over)
		assert.Empty(t, winners)
	})

	t.Run("goal reached", func(t *testing.T) {
		_, reg := testutil.CreateSimpleTestSetup(t)
		v := newTestView(reg)
		wc := NewWinConditionChecker(testutil.NopLogger(), 2)

		over, winners := wc.CheckGameOver([]Player{
			testPlayer{"red", OccupyContinent("North")},
			testPlayer{"blue", OccupyWorld()},
		}, v)
		assert.True(t, over)
		assert.Equal(t, []core.PlayerName{"red"}, winners)
	})

	t.Run("ties are possible", func(t *testing.T) {
		_, reg := testutil.CreateSimpleTestSetup(t)
		v := newTestView(reg)
		wc := NewWinConditionChecker(testutil.NopLogger(), 2)

		over, winners := wc.CheckGameOver([]Player{
			testPlayer{"red", OccupyContinent("North")},
			testPlayer{"blue", OccupyContinent("South")},
		}, v)
		assert.True(t, over)
		assert.Equal(t, []core.PlayerName{"red", "blue"}, winners)
	})

	t.Run("eliminated players cannot win", func(t *testing.T) {
		_, reg := testutil.CreateSimpleTestSetup(t)
		v := newTestView(reg)
		require.NoError(t, v.tracker.Eliminate("blue", "green"))
		wc := NewWinConditionChecker(testutil.NopLogger(), 3)

		over, winners := wc.CheckGameOver([]Player{
			testPlayer{"red", OccupyWorld()},
			testPlayer{"blue", OccupyContinent("South")},
			testPlayer{"green", OccupyWorld()},
		}, v)
		assert.False(t, over)
		assert.Empty(t, winners)
	})

	t.Run("last player standing", func(t *testing.T) {
		_, reg := testutil.CreateSimpleTestSetup(t)
		v := newTestView(reg)
		require.NoError(t, v.tracker.Eliminate("blue", "red"))
		wc := NewWinConditionChecker(testutil.NopLogger(), 2)

		over, winners := wc.CheckGameOver([]Player{
			testPlayer{"red", OccupyWorld()},
			testPlayer{"blue", OccupyWorld()},
		}, v)
		assert.True(t, over)
		assert.Equal(t, []core.PlayerName{"red"}, winners)
	})

	t.Run("single player game keeps going", func(t *testing.T) {
		_, reg := testutil.CreateSimpleTestSetup(t)
		v := newTestView(reg)
		wc := NewWinConditionChecker(testutil.NopLogger(), 1)

		over, _ := wc.CheckGameOver([]Player{testPlayer{"red", OccupyWorld()}}, v)
		assert.False(t, over)
	})
}
