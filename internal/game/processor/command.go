package processor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/ConquestRules/internal/common"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// Kind names a command typed by a player.
type Kind string

const (
	KindReinforce Kind = "reinforce"
	KindAttack    Kind = "attack"
	KindOccupy    Kind = "occupy"
	KindEndAttack Kind = "end"
	KindRegroup   Kind = "regroup"
	KindStatus    Kind = "status"
	KindMoves     Kind = "moves"
	KindHelp      Kind = "help"
	KindQuit      Kind = "quit"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrSyntax         = errors.New("syntax error")
)

// Usage lists the command syntax.
const Usage = `commands:
  reinforce <territory> <n>[, <territory> <n> ...]
  attack <from> -> <to>
  occupy <n>
  end
  regroup [<from> -> <to> <n>[, ...]]
  status | moves | help | quit`

// Command is one parsed line.
type Command struct {
	Kind           Kind
	Reinforcements []core.Reinforcement
	From, To       core.Territory
	Amount         int
	Regroups       []core.Regrouping
}

// Parser turns typed lines into commands. Territory names are matched
// without regard to case or repeated spaces.
type Parser struct {
	territories map[string]core.Territory
}

// NewParser creates a parser for the territories of board.
func NewParser(board core.TerritoryMap) *Parser {
	p := &Parser{territories: make(map[string]core.Territory)}
	for _, t := range board.Territories() {
		p.territories[key(string(t))] = t
	}
	return p
}

func key(s string) string { return strings.ToLower(common.NormalizeName(s)) }

// Parse reads one command line.
func (p *Parser) Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch Kind(strings.ToLower(verb)) {
	case KindReinforce:
		rs, err := p.parseReinforcements(rest)
		return Command{Kind: KindReinforce, Reinforcements: rs}, err
	case KindAttack:
		from, to, err := p.parseArrow(rest)
		return Command{Kind: KindAttack, From: from, To: to}, err
	case KindOccupy:
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Command{}, fmt.Errorf("%w: occupy needs a number, got %q", ErrSyntax, rest)
		}
		return Command{Kind: KindOccupy, Amount: n}, nil
	case KindEndAttack:
		if rest != "" && !strings.EqualFold(rest, "attack") {
			return Command{}, fmt.Errorf("%w: unexpected %q after end", ErrSyntax, rest)
		}
		return Command{Kind: KindEndAttack}, nil
	case KindRegroup:
		moves, err := p.parseRegroups(rest)
		return Command{Kind: KindRegroup, Regroups: moves}, err
	case KindStatus, KindMoves, KindHelp, KindQuit:
		if rest != "" {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrSyntax, verb)
		}
		return Command{Kind: Kind(strings.ToLower(verb))}, nil
	case "":
		return Command{}, fmt.Errorf("%w: empty line", ErrSyntax)
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
}

func (p *Parser) territory(name string) (core.Territory, error) {
	if t, ok := p.territories[key(name)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownTerritory, common.NormalizeName(name))
}

// splitCount splits "Great Britain 3" into the territory and the count.
func (p *Parser) splitCount(s string) (core.Territory, core.Count, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", core.Count{}, fmt.Errorf("%w: expected <territory> <n>, got %q", ErrSyntax, s)
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return "", core.Count{}, fmt.Errorf("%w: %q is not a number", ErrSyntax, fields[len(fields)-1])
	}
	count, err := core.NewCount(n)
	if err != nil {
		return "", core.Count{}, err
	}
	t, err := p.territory(strings.Join(fields[:len(fields)-1], " "))
	return t, count, err
}

func (p *Parser) parseReinforcements(s string) ([]core.Reinforcement, error) {
	if s == "" {
		return nil, nil
	}
	var rs []core.Reinforcement
	for _, seg := range strings.Split(s, ",") {
		t, n, err := p.splitCount(seg)
		if err != nil {
			return nil, err
		}
		rs = append(rs, core.Reinforcement{Territory: t, Troops: n})
	}
	return rs, nil
}

func (p *Parser) parseArrow(s string) (core.Territory, core.Territory, error) {
	left, right, ok := strings.Cut(s, "->")
	if !ok {
		return "", "", fmt.Errorf("%w: expected <from> -> <to>, got %q", ErrSyntax, s)
	}
	from, err := p.territory(left)
	if err != nil {
		return "", "", err
	}
	to, err := p.territory(right)
	return from, to, err
}

func (p *Parser) parseRegroups(s string) ([]core.Regrouping, error) {
	if s == "" {
		return nil, nil
	}
	var moves []core.Regrouping
	for _, seg := range strings.Split(s, ",") {
		left, right, ok := strings.Cut(seg, "->")
		if !ok {
			return nil, fmt.Errorf("%w: expected <from> -> <to> <n>, got %q", ErrSyntax, strings.TrimSpace(seg))
		}
		from, err := p.territory(left)
		if err != nil {
			return nil, err
		}
		to, n, err := p.splitCount(right)
		if err != nil {
			return nil, err
		}
		moves = append(moves, core.Regrouping{From: from, To: to, Amount: n})
	}
	return moves, nil
}
