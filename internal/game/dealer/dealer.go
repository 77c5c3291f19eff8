// Package dealer hands out the starting territories before the first turn.
package dealer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"golang.org/x/exp/rand"
)

var (
	ErrNoPlayersToDealTo = errors.New("no players to deal to")
	ErrDuplicatePlayer   = errors.New("player dealt twice")
)

// Deal splits territories into contiguous chunks of len(territories)/len(players),
// one per player in order. The first len(territories)%len(players) players get
// one extra territory each, taken from the end of the list.
func Deal(territories []core.Territory, players []core.PlayerName) (map[core.PlayerName][]core.Territory, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayersToDealTo
	}
	seen := make(map[core.PlayerName]struct{}, len(players))
	for _, p := range players {
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p)
		}
		seen[p] = struct{}{}
	}

	chunk := len(territories) / len(players)
	rest := len(territories) % len(players)
	dealt := make(map[core.PlayerName][]core.Territory, len(players))
	for i, p := range players {
		hand := slices.Clone(territories[i*chunk : (i+1)*chunk])
		if i < rest {
			hand = append(hand, territories[len(players)*chunk+i])
		}
		dealt[p] = hand
	}
	return dealt, nil
}

// Shuffled deals copies of territories and players after shuffling both with
// rng. The inputs are not modified.
func Shuffled(rng *rand.Rand, territories []core.Territory, players []core.PlayerName) (map[core.PlayerName][]core.Territory, error) {
	ts := slices.Clone(territories)
	ps := slices.Clone(players)
	rng.Shuffle(len(ts), func(i, j int) { ts[i], ts[j] = ts[j], ts[i] })
	rng.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })
	return Deal(ts, ps)
}

// DealInto occupies every dealt territory in reg with one troop of its owner.
// Nothing is written unless every territory is known to reg.
func DealInto(reg *core.Registry, dealt map[core.PlayerName][]core.Territory) error {
	for _, hand := range dealt {
		for _, t := range hand {
			if _, _, err := reg.Get(t); err != nil {
				return err
			}
		}
	}
	for p, hand := range dealt {
		for _, t := range hand {
			if err := reg.Occupy(t, p, core.One); err != nil {
				return err
			}
		}
	}
	return nil
}
