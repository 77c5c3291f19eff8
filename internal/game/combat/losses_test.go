package combat

import (
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContestedArmies(t *testing.T) {
	assert.Equal(t, 1, ContestedArmies(core.MustCount(2), core.MustCount(5), DefaultMaxDice))
	assert.Equal(t, 2, ContestedArmies(core.MustCount(9), core.MustCount(2), DefaultMaxDice))
	assert.Equal(t, 3, ContestedArmies(core.MustCount(9), core.MustCount(9), DefaultMaxDice))
	assert.Equal(t, 0, ContestedArmies(core.One, core.MustCount(9), DefaultMaxDice))
}

func TestContestedArmies_FollowsDiceCap(t *testing.T) {
	assert.Equal(t, 2, ContestedArmies(core.MustCount(9), core.MustCount(9), 2))
	assert.Equal(t, 1, ContestedArmies(core.MustCount(9), core.MustCount(9), 1))
	assert.Equal(t, 3, ContestedArmies(core.MustCount(9), core.MustCount(9), 0), "unset cap means the default")
	assert.Equal(t, 5, ContestedArmies(core.MustCount(9), core.MustCount(9), 5))
}

func TestComputeLosses(t *testing.T) {
	tests := []struct {
		name     string
		attacker int
		defender int
		atk      []int
		def      []int
		want     Losses
	}{
		{"attacker sweeps", 5, 3, []int{6, 5, 4}, []int{1, 2, 3}, Losses{Attacker: 0, Defender: 3}},
		{"ties go to defender", 4, 3, []int{4, 4, 4}, []int{4, 4, 4}, Losses{Attacker: 3, Defender: 0}},
		{"sorted before pairing", 4, 2, []int{1, 6, 2}, []int{5, 3}, Losses{Attacker: 1, Defender: 1}},
		{"extra dice are ignored", 2, 3, []int{6}, []int{5, 5, 5}, Losses{Attacker: 0, Defender: 1}},
		{"one pair tie", 2, 1, []int{3}, []int{3}, Losses{Attacker: 1, Defender: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLosses(core.MustCount(tt.attacker), core.MustCount(tt.defender), DefaultMaxDice, tt.atk, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeLosses_DoesNotModifyRolls(t *testing.T) {
	atk := []int{1, 6, 2}
	def := []int{5, 3}
	_, err := ComputeLosses(core.MustCount(4), core.MustCount(2), DefaultMaxDice, atk, def)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 2}, atk)
	assert.Equal(t, []int{5, 3}, def)
}

func TestComputeLosses_TooFewDice(t *testing.T) {
	_, err := ComputeLosses(core.MustCount(5), core.MustCount(3), DefaultMaxDice, []int{6, 6}, []int{1, 1, 1})
	assert.ErrorIs(t, err, ErrTooManyArmiesContested)

	_, err = ComputeLosses(core.MustCount(5), core.MustCount(3), DefaultMaxDice, []int{6, 6, 6}, []int{1})
	assert.ErrorIs(t, err, ErrTooManyArmiesContested)
}

// Every exchange the dice policy allows loses exactly the contested armies.
func TestComputeLosses_Conservation(t *testing.T) {
	die := NewRandomDie(7)
	for a := 2; a <= 8; a++ {
		for d := 1; d <= 8; d++ {
			attacker, defender := core.MustCount(a), core.MustCount(d)
			for range 50 {
				dc, err := DiceCounts(attacker, defender, DefaultMaxDice)
				require.NoError(t, err)
				l, err := ComputeLosses(attacker, defender, DefaultMaxDice, die.RollN(dc.Attacker), die.RollN(dc.Defender))
				require.NoError(t, err)
				require.Equal(t, ContestedArmies(attacker, defender, DefaultMaxDice), l.Total(), "%d vs %d", a, d)
			}
		}
	}
}

// Holds for every cap, not only the default one.
func TestComputeLosses_ConservationUnderCap(t *testing.T) {
	die := NewRandomDie(11)
	for maxDice := 1; maxDice <= 5; maxDice++ {
		for a := 2; a <= 8; a++ {
			for d := 1; d <= 8; d++ {
				attacker, defender := core.MustCount(a), core.MustCount(d)
				dc, err := DiceCounts(attacker, defender, maxDice)
				require.NoError(t, err)
				l, err := ComputeLosses(attacker, defender, maxDice, die.RollN(dc.Attacker), die.RollN(dc.Defender))
				require.NoError(t, err, "cap %d, %d vs %d", maxDice, a, d)
				require.Equal(t, min(a-1, d, maxDice), l.Total(), "cap %d, %d vs %d", maxDice, a, d)
			}
		}
	}
}

func TestComputeLosses_EqualPairsFavourDefender(t *testing.T) {
	for face := 1; face <= Sides; face++ {
		l, err := ComputeLosses(core.MustCount(2), core.One, DefaultMaxDice, []int{face}, []int{face})
		require.NoError(t, err)
		assert.Equal(t, Losses{Attacker: 1}, l, "face %d", face)
	}
}
