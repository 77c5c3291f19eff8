package mapgen

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

var (
	ErrUnknownMap      = errors.New("unknown map")
	ErrEmptyDefinition = errors.New("map definition has no territories")
	ErrDisconnected    = errors.New("map is not connected")
)

// ContinentDef lists the territories of one continent and the troops
// awarded for holding all of them.
type ContinentDef struct {
	Name        core.Continent
	Bonus       int
	Territories []core.Territory
}

// Definition is a board description: continents in order plus the
// undirected border list.
type Definition struct {
	Name       string
	Continents []ContinentDef
	Borders    [][2]core.Territory
}

// Bonuses returns the continent bonus table.
func (d Definition) Bonuses() map[core.Continent]int {
	out := make(map[core.Continent]int, len(d.Continents))
	for _, c := range d.Continents {
		out[c.Name] = c.Bonus
	}
	return out
}

// MapConfig holds configuration for map generation
type MapConfig struct {
	Name string
}

// DefaultMapConfig returns the classic board configuration
func DefaultMapConfig() MapConfig {
	return MapConfig{Name: ClassicName}
}

// Generator turns a named definition into a Board
type Generator struct {
	config MapConfig
	defs   map[string]Definition
}

// NewGenerator creates a new map generator that knows the built-in maps
func NewGenerator(config MapConfig) *Generator {
	return &Generator{
		config: config,
		defs:   map[string]Definition{ClassicName: Classic()},
	}
}

// Register adds or replaces a definition under its name.
func (g *Generator) Register(def Definition) {
	g.defs[def.Name] = def
}

// Definition returns the definition the generator is configured for.
func (g *Generator) Definition() (Definition, error) {
	def, ok := g.defs[g.config.Name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownMap, g.config.Name)
	}
	return def, nil
}

// GenerateMap builds the configured board
func (g *Generator) GenerateMap() (*core.Board, error) {
	def, err := g.Definition()
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// Build validates def and returns the board it describes. Every territory
// must be reachable from every other.
func Build(def Definition) (*core.Board, error) {
	board := core.NewBoard()
	for _, c := range def.Continents {
		if c.Bonus < 0 {
			return nil, fmt.Errorf("continent %s: negative bonus %d", c.Name, c.Bonus)
		}
		for _, t := range c.Territories {
			if err := board.AddTerritory(t, c.Name); err != nil {
				return nil, fmt.Errorf("map %s: %w", def.Name, err)
			}
		}
	}
	if len(board.Territories()) == 0 {
		return nil, ErrEmptyDefinition
	}

	for _, pair := range def.Borders {
		if bordering, _ := board.AreBordering(pair[0], pair[1]); bordering {
			return nil, fmt.Errorf("map %s: border %s-%s listed twice", def.Name, pair[0], pair[1])
		}
		if err := board.AddBorder(pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("map %s: %w", def.Name, err)
		}
	}

	if unreached := unreachable(board); len(unreached) > 0 {
		return nil, fmt.Errorf("%w: %v unreachable", ErrDisconnected, unreached)
	}
	return board, nil
}

// unreachable runs a breadth-first search from the first territory and
// returns whatever it did not visit, in board order.
func unreachable(b *core.Board) []core.Territory {
	all := b.Territories()
	seen := map[core.Territory]bool{all[0]: true}
	queue := []core.Territory{all[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next, _ := b.Neighbours(cur)
		for _, n := range next {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	var out []core.Territory
	for _, t := range all {
		if !seen[t] {
			out = append(out, t)
		}
	}
	return out
}
