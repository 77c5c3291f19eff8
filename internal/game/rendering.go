package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/ConquestRules/internal/common"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// Render draws the board as a text table grouped by continent. With color
// set, every occupier is printed in their player color.
func (e *Engine) Render(color bool) string {
	var sb strings.Builder

	colors := make(map[core.PlayerName]common.PlayerColor, len(e.players))
	for i, p := range e.players {
		colors[p.Name] = common.ColorFor(p.Color, i)
	}
	paint := func(p core.PlayerName, s string) string {
		if !color {
			return s
		}
		if c, ok := colors[p]; ok {
			return common.Colorize(c, s)
		}
		return common.Colorize(common.NeutralColor, s)
	}

	width := 0
	for _, t := range e.board.Territories() {
		width = max(width, len(t))
	}

	for _, c := range e.board.Continents() {
		fmt.Fprintf(&sb, "%s\n", c)
		ts, _ := e.board.TerritoriesIn(c)
		for _, t := range ts {
			occ, ok, _ := e.registry.Get(t)
			if !ok {
				fmt.Fprintf(&sb, "  %-*s  %s\n", width, t, paint("", "-"))
				continue
			}
			fmt.Fprintf(&sb, "  %-*s  %s %d\n", width, t, paint(occ.Occupier, string(occ.Occupier)), occ.Troops.Int())
		}
	}

	fmt.Fprintf(&sb, "turn %d, %s to play, phase %s\n", e.Turn(), paint(e.CurrentPlayer(), string(e.CurrentPlayer())), e.CurrentPhase())
	if e.gameOver {
		names := make([]string, len(e.winners))
		for i, w := range e.winners {
			names[i] = paint(w, string(w))
		}
		fmt.Fprintf(&sb, "game over, winners: %s\n", strings.Join(names, ", "))
	}
	return sb.String()
}
