package rules

import (
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

type testView struct {
	*core.Registry
	tracker *EliminationTracker
}

func newTestView(reg *core.Registry) *testView {
	return &testView{Registry: reg, tracker: NewEliminationTracker()}
}

func (v *testView) IsActive(p core.PlayerName) bool { return !v.tracker.IsEliminated(p) }

func (v *testView) DestroyerOf(victim core.PlayerName) (core.PlayerName, bool) {
	return v.tracker.DestroyerOf(victim)
}

type testPlayer struct {
	name core.PlayerName
	goal Goal
}

func (p testPlayer) GetName() core.PlayerName { return p.name }
func (p testPlayer) GetGoal() Goal            { return p.goal }
