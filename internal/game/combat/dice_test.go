package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDie(t *testing.T) {
	d, err := NewFixedDie(6, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{6, 1, 3, 6, 1}, d.RollN(5))
	assert.Equal(t, 3, d.Roll())
	assert.Nil(t, d.RollN(0))
}

func TestFixedDie_RejectsBadFaces(t *testing.T) {
	_, err := NewFixedDie()
	assert.ErrorIs(t, err, ErrInvalidDieFace)

	_, err = NewFixedDie(1, 7)
	assert.ErrorIs(t, err, ErrInvalidDieFace)

	_, err = NewFixedDie(0)
	assert.ErrorIs(t, err, ErrInvalidDieFace)
}

func TestRandomDie(t *testing.T) {
	a := NewRandomDie(42)
	b := NewRandomDie(42)

	rolls := a.RollN(500)
	assert.Equal(t, rolls, b.RollN(500), "same seed must give the same rolls")

	seen := make(map[int]bool)
	for _, r := range rolls {
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, Sides)
		seen[r] = true
	}
	assert.Len(t, seen, Sides)
}
