package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// ParseGoal builds a goal from its textual form:
//
//	world
//	continent:<name>
//	subcontinent:<name>:<count>
//	destroy:<player>
//
// Terms joined with "+" must all be achieved.
func ParseGoal(spec string, board core.TerritoryMap) (Goal, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: empty goal", ErrInvalidGoal)
	}
	terms := strings.Split(spec, "+")
	if len(terms) == 1 {
		return parseTerm(terms[0], board)
	}
	goals := make([]Goal, 0, len(terms))
	for _, term := range terms {
		g, err := parseTerm(term, board)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return AllOf(goals...), nil
}

func parseTerm(term string, board core.TerritoryMap) (Goal, error) {
	parts := strings.Split(strings.TrimSpace(term), ":")
	switch strings.ToLower(parts[0]) {
	case "world":
		if len(parts) != 1 {
			break
		}
		return OccupyWorld(), nil
	case "continent":
		if len(parts) != 2 {
			break
		}
		c := core.Continent(parts[1])
		if _, err := board.TerritoriesIn(c); err != nil {
			return nil, err
		}
		return OccupyContinent(c), nil
	case "subcontinent":
		if len(parts) != 3 {
			break
		}
		k, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: count %q: %v", ErrInvalidGoal, parts[2], err)
		}
		return NewOccupySubContinent(board, core.Continent(parts[1]), k)
	case "destroy":
		if len(parts) != 2 || parts[1] == "" {
			break
		}
		return Destroy(core.PlayerName(parts[1])), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidGoal, term)
}
