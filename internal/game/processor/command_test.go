package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/testutil"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser(testutil.CreateTestBoard(t))

	tests := []struct {
		line string
		want Command
	}{
		{"reinforce Alpha 3", Command{Kind: KindReinforce, Reinforcements: []core.Reinforcement{
			{Territory: "Alpha", Troops: core.MustCount(3)},
		}}},
		{"Reinforce  alpha 1,  CHARLIE   2", Command{Kind: KindReinforce, Reinforcements: []core.Reinforcement{
			{Territory: "Alpha", Troops: core.One},
			{Territory: "Charlie", Troops: core.MustCount(2)},
		}}},
		{"reinforce", Command{Kind: KindReinforce}},
		{"attack Alpha -> Echo", Command{Kind: KindAttack, From: "Alpha", To: "Echo"}},
		{"attack charlie->delta", Command{Kind: KindAttack, From: "Charlie", To: "Delta"}},
		{"occupy 0", Command{Kind: KindOccupy}},
		{"occupy 2", Command{Kind: KindOccupy, Amount: 2}},
		{"end", Command{Kind: KindEndAttack}},
		{"end attack", Command{Kind: KindEndAttack}},
		{"regroup", Command{Kind: KindRegroup}},
		{"regroup Alpha -> Bravo 2, Charlie -> Bravo 1", Command{Kind: KindRegroup, Regroups: []core.Regrouping{
			{From: "Alpha", To: "Bravo", Amount: core.MustCount(2)},
			{From: "Charlie", To: "Bravo", Amount: core.One},
		}}},
		{"status", Command{Kind: KindStatus}},
		{"  moves ", Command{Kind: KindMoves}},
		{"help", Command{Kind: KindHelp}},
		{"QUIT", Command{Kind: KindQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := p.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_MultiWordTerritories(t *testing.T) {
	board := core.NewBoard()
	require.NoError(t, board.AddTerritory("Great Britain", "Europe"))
	require.NoError(t, board.AddTerritory("Western Europe", "Europe"))
	require.NoError(t, board.AddBorder("Great Britain", "Western Europe"))
	p := NewParser(board)

	cmd, err := p.Parse("regroup great   britain -> Western Europe 4")
	require.NoError(t, err)
	assert.Equal(t, []core.Regrouping{{From: "Great Britain", To: "Western Europe", Amount: core.MustCount(4)}}, cmd.Regroups)

	cmd, err = p.Parse("reinforce Western Europe 2")
	require.NoError(t, err)
	assert.Equal(t, core.Territory("Western Europe"), cmd.Reinforcements[0].Territory)
}

func TestParser_Errors(t *testing.T) {
	p := NewParser(testutil.CreateTestBoard(t))

	tests := []struct {
		line string
		want error
	}{
		{"", ErrSyntax},
		{"fortify Alpha", ErrUnknownCommand},
		{"reinforce Alpha", ErrSyntax},
		{"reinforce Alpha x", ErrSyntax},
		{"reinforce Alpha 0", core.ErrNonPositive},
		{"reinforce Atlantis 2", core.ErrUnknownTerritory},
		{"attack Alpha Echo", ErrSyntax},
		{"attack Alpha -> Atlantis", core.ErrUnknownTerritory},
		{"occupy", ErrSyntax},
		{"occupy many", ErrSyntax},
		{"end turn", ErrSyntax},
		{"regroup Alpha Bravo 2", ErrSyntax},
		{"regroup Alpha -> Bravo", ErrSyntax},
		{"status now", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := p.Parse(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
