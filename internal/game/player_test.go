package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/rules"
	"github.com/mitchelldurbincs/ConquestRules/internal/testutil"
)

func TestPlayer_Accessors(t *testing.T) {
	goal := rules.Destroy("blue")
	player := Player{Name: "red", Color: "red", Goal: goal}

	assert.Equal(t, core.PlayerName("red"), player.GetName())
	assert.Equal(t, goal, player.GetGoal())

	var _ rules.Player = player
}

func TestEngine_Players(t *testing.T) {
	cfg := testConfig(t, losses(0, 1))
	cfg.Players = []PlayerSetup{
		{Name: "red", Color: "crimson"},
		{Name: "blue", Goal: rules.OccupyContinent("South")},
	}
	e := newTestEngine(t, cfg)

	players := e.Players()
	require.Len(t, players, 2)
	assert.Equal(t, "crimson", players[0].Color)
	assert.Equal(t, "occupy South", players[1].Goal.String())

	// The returned slice is a copy.
	players[0].Name = "mallory"
	assert.Equal(t, core.PlayerName("red"), e.Players()[0].Name)
}

func TestEngine_ReinforcementAllowance(t *testing.T) {
	tests := []struct {
		name     string
		holdings []testutil.Holding
		player   core.PlayerName
		want     int
	}{
		{
			name: "minimum with continent",
			holdings: []testutil.Holding{
				{Territory: "Alpha", Player: "red", Troops: 1},
				{Territory: "Bravo", Player: "red", Troops: 1},
				{Territory: "Charlie", Player: "red", Troops: 1},
				{Territory: "Delta", Player: "blue", Troops: 1},
				{Territory: "Echo", Player: "blue", Troops: 1},
			},
			player: "red",
			want:   MinReinforcements + 5,
		},
		{
			name: "no continent",
			holdings: []testutil.Holding{
				{Territory: "Alpha", Player: "red", Troops: 1},
				{Territory: "Bravo", Player: "blue", Troops: 1},
				{Territory: "Charlie", Player: "red", Troops: 1},
				{Territory: "Delta", Player: "blue", Troops: 1},
				{Territory: "Echo", Player: "red", Troops: 1},
			},
			player: "blue",
			want:   MinReinforcements,
		},
		{
			name: "default bonus for unlisted continent",
			holdings: []testutil.Holding{
				{Territory: "Alpha", Player: "red", Troops: 1},
				{Territory: "Bravo", Player: "red", Troops: 1},
				{Territory: "Charlie", Player: "blue", Troops: 1},
				{Territory: "Delta", Player: "red", Troops: 1},
				{Territory: "Echo", Player: "red", Troops: 1},
			},
			player: "red",
			want:   MinReinforcements + MinContinentBonus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, losses(0, 1))
			cfg.Occupations = occupations(tt.holdings...)
			cfg.ContinentBonus = map[core.Continent]int{"North": 5}
			e := newTestEngine(t, cfg)
			assert.Equal(t, tt.want, e.ReinforcementAllowance(tt.player))
		})
	}
}

func TestEngine_ReinforcementAllowanceClassic(t *testing.T) {
	e := newTestEngine(t, GameConfig{
		Players: []PlayerSetup{{Name: "red"}, {Name: "blue"}},
		Seed:    1,
		Logger:  testutil.NopLogger(),
	})

	// An ordered deal gives red the first 21 territories: the Americas,
	// Europe and North Africa.
	require.Len(t, e.TerritoriesOf("red"), 21)
	assert.Equal(t, 21/3+5+2+5, e.ReinforcementAllowance("red"))
	// Blue gets the rest of Africa, Asia and Australia.
	assert.Equal(t, 21/3+7+2, e.ReinforcementAllowance("blue"))
}
