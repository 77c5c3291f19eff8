package combat

import "github.com/mitchelldurbincs/ConquestRules/internal/game/core"

// DefaultMaxMoveIn caps the troops a conquest moves into the captured
// territory.
const DefaultMaxMoveIn = 3

// Conqueror picks how many troops follow a successful attack into the
// conquered territory. remaining is what the attacking territory holds after
// combat losses.
type Conqueror interface {
	MoveIn(remaining core.Count) int
}

// ConquerorFunc adapts a function to Conqueror.
type ConquerorFunc func(remaining core.Count) int

// MoveIn calls f.
func (f ConquerorFunc) MoveIn(remaining core.Count) int { return f(remaining) }

// MinimumMoveIn always moves a single troop.
var MinimumMoveIn = ConquerorFunc(func(core.Count) int { return 1 })

// MaximumMoveIn moves as many troops as allowed while leaving one behind.
var MaximumMoveIn = MaximumMoveInUpTo(DefaultMaxMoveIn)

// MaximumMoveInUpTo is MaximumMoveIn with a different ceiling.
func MaximumMoveInUpTo(limit int) Conqueror {
	return ConquerorFunc(func(remaining core.Count) int {
		return max(1, min(limit, remaining.Int()-1))
	})
}

// FixedMoveIn always asks to move n troops.
func FixedMoveIn(n int) Conqueror {
	return ConquerorFunc(func(core.Count) int { return n })
}
