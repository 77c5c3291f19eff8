package combat

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Sides is the number of faces on every die.
const Sides = 6

// Die is the randomness source for combat. Roll returns a value in
// [1, Sides]; RollN returns n independent rolls.
type Die interface {
	Roll() int
	RollN(n int) []int
}

// RandomDie rolls with a seeded pseudo random generator.
type RandomDie struct {
	rng *rand.Rand
}

// NewRandomDie creates a die seeded with seed. The same seed yields the same
// sequence of rolls.
func NewRandomDie(seed uint64) *RandomDie {
	return &RandomDie{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns one face in [1, Sides].
func (d *RandomDie) Roll() int { return d.rng.Intn(Sides) + 1 }

// RollN returns n rolls, or nil when n is not positive.
func (d *RandomDie) RollN(n int) []int { return rollN(d, n) }

// FixedDie replays a scripted sequence of faces, wrapping around at the end.
type FixedDie struct {
	faces []int
	next  int
}

// NewFixedDie returns a die that yields faces in order. It fails with
// ErrInvalidDieFace if faces is empty or holds a value outside [1, Sides].
func NewFixedDie(faces ...int) (*FixedDie, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: no faces given", ErrInvalidDieFace)
	}
	for _, f := range faces {
		if f < 1 || f > Sides {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDieFace, f)
		}
	}
	return &FixedDie{faces: append([]int(nil), faces...)}, nil
}

// Roll returns the next scripted face.
func (d *FixedDie) Roll() int {
	f := d.faces[d.next]
	d.next = (d.next + 1) % len(d.faces)
	return f
}

// RollN returns the next n scripted faces.
func (d *FixedDie) RollN(n int) []int { return rollN(d, n) }

func rollN(d Die, n int) []int {
	if n <= 0 {
		return nil
	}
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = d.Roll()
	}
	return rolls
}
