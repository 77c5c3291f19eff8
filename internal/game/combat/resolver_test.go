package combat

import (
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceResolver(t *testing.T) {
	die, err := NewFixedDie(6, 5, 4, 1, 2, 3)
	require.NoError(t, err)
	r := NewDiceResolver(die)

	out, err := r.Resolve(core.MustCount(5), core.MustCount(3))
	require.NoError(t, err)
	assert.Equal(t, DiceCount{Attacker: 3, Defender: 3}, out.Dice)
	assert.Equal(t, []int{6, 5, 4}, out.AttackerRolls)
	assert.Equal(t, []int{1, 2, 3}, out.DefenderRolls)
	assert.Equal(t, Losses{Attacker: 0, Defender: 3}, out.Losses)
}

func TestDiceResolver_NonDefaultCap(t *testing.T) {
	tests := []struct {
		name    string
		maxDice int
		rolls   []int
		want    Losses
	}{
		{"two dice", 2, []int{6, 5, 1, 2}, Losses{Attacker: 0, Defender: 2}},
		{"one die", 1, []int{3, 4}, Losses{Attacker: 1, Defender: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			die, err := NewFixedDie(tt.rolls...)
			require.NoError(t, err)
			r := &DiceResolver{Die: die, MaxDice: tt.maxDice}

			out, err := r.Resolve(core.MustCount(5), core.MustCount(3))
			require.NoError(t, err)
			assert.Equal(t, DiceCount{Attacker: tt.maxDice, Defender: tt.maxDice}, out.Dice)
			assert.Equal(t, tt.want, out.Losses)
			assert.Equal(t, tt.maxDice, out.Losses.Total())
		})
	}
}

func TestDiceResolver_NotEnoughArmies(t *testing.T) {
	r := NewDiceResolver(NewRandomDie(1))
	_, err := r.Resolve(core.One, core.MustCount(2))
	assert.ErrorIs(t, err, ErrNotEnoughArmiesForAttack)
}

func TestFixedResolver(t *testing.T) {
	r := &FixedResolver{Script: []Losses{{Attacker: 1}, {Defender: 2}}}

	out, err := r.Resolve(core.MustCount(3), core.MustCount(3))
	require.NoError(t, err)
	assert.Equal(t, Losses{Attacker: 1}, out.Losses)

	out, err = r.Resolve(core.MustCount(3), core.MustCount(3))
	require.NoError(t, err)
	assert.Equal(t, Losses{Defender: 2}, out.Losses)

	out, err = r.Resolve(core.MustCount(3), core.MustCount(3))
	require.NoError(t, err)
	assert.Equal(t, Losses{Defender: 2}, out.Losses, "last entry repeats")

	_, err = (&FixedResolver{}).Resolve(core.MustCount(3), core.One)
	assert.ErrorIs(t, err, ErrInvalidLosses)
}
