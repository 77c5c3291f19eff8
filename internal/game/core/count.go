package core

import (
	"fmt"
	"math"
	"strconv"
)

// MaxCount is the largest troop count a Count can hold.
const MaxCount = math.MaxInt32

// Count is a strictly positive troop count with checked arithmetic.
// The zero value represents one troop, so a Count can never be zero or
// negative.
type Count struct {
	// minusOne stores value-1 so the zero value is a valid count.
	minusOne int
}

// One is the smallest Count.
var One = Count{}

// NewCount returns the Count for n, or ErrNonPositive if n < 1 and
// ErrOverflow if n > MaxCount.
func NewCount(n int) (Count, error) {
	if n < 1 {
		return Count{}, fmt.Errorf("%w: %d", ErrNonPositive, n)
	}
	if n > MaxCount {
		return Count{}, fmt.Errorf("%w: %d", ErrOverflow, n)
	}
	return Count{minusOne: n - 1}, nil
}

// MustCount is like NewCount but panics on invalid input. Use it for
// constants and test fixtures only.
func MustCount(n int) Count {
	c, err := NewCount(n)
	if err != nil {
		panic(err)
	}
	return c
}

// Int returns the underlying value.
func (c Count) Int() int { return c.minusOne + 1 }

// String formats the count as a decimal number.
func (c Count) String() string { return strconv.Itoa(c.Int()) }

// Add returns c+o or ErrOverflow.
func (c Count) Add(o Count) (Count, error) {
	if c.Int() > MaxCount-o.Int() {
		return Count{}, fmt.Errorf("%w: %d + %d", ErrOverflow, c.Int(), o.Int())
	}
	return Count{minusOne: c.Int() + o.Int() - 1}, nil
}

// Sub returns c-o, failing with a *WouldBecomeNonPositiveError when c <= o.
func (c Count) Sub(o Count) (Count, error) {
	if c.Int() <= o.Int() {
		return Count{}, &WouldBecomeNonPositiveError{Minuend: c, Subtrahend: o}
	}
	return Count{minusOne: c.Int() - o.Int() - 1}, nil
}

// Mul returns c*o or ErrOverflow.
func (c Count) Mul(o Count) (Count, error) {
	if c.Int() > MaxCount/o.Int() {
		return Count{}, fmt.Errorf("%w: %d * %d", ErrOverflow, c.Int(), o.Int())
	}
	return Count{minusOne: c.Int()*o.Int() - 1}, nil
}

// Div returns the integer quotient c/o. The result may be zero, so it is
// returned as a plain int.
func (c Count) Div(o Count) int { return c.Int() / o.Int() }

// Mod returns c mod o as a plain int.
func (c Count) Mod(o Count) int { return c.Int() % o.Int() }

// Inc returns c+1 or ErrOverflow at MaxCount.
func (c Count) Inc() (Count, error) { return c.Add(One) }

// Dec returns c-1, failing when c is one.
func (c Count) Dec() (Count, error) { return c.Sub(One) }

// Compare returns -1, 0 or +1.
func (c Count) Compare(o Count) int {
	switch {
	case c.minusOne < o.minusOne:
		return -1
	case c.minusOne > o.minusOne:
		return 1
	default:
		return 0
	}
}

// Less reports whether c is smaller than o.
func (c Count) Less(o Count) bool { return c.minusOne < o.minusOne }

// MinCount returns the smaller of a and b.
func MinCount(a, b Count) Count {
	if b.Less(a) {
		return b
	}
	return a
}
