package combat

import (
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveAfterConquest(t *testing.T) {
	tests := []struct {
		name        string
		amount      int
		wantErr     error
		wantCharlie int
		wantBravo   int
	}{
		{"nothing", 0, nil, 5, 2},
		{"one", 1, nil, 4, 3},
		{"up to the limit", 3, nil, 2, 5},
		{"above the limit", 4, ErrTooManyArmiesMoved, 5, 2},
		{"negative", -1, ErrTooFewArmiesMoved, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, reg := testutil.CreateSimpleTestSetup(t)
			err := MoveAfterConquest(reg, "Charlie", "Bravo", "red", tt.amount, DefaultMaxMoveIn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCharlie, troops(t, reg, "Charlie"))
			assert.Equal(t, tt.wantBravo, troops(t, reg, "Bravo"))
		})
	}
}

func TestMoveAfterConquest_MustLeaveOneBehind(t *testing.T) {
	_, reg := testutil.CreateSimpleTestSetup(t)

	err := MoveAfterConquest(reg, "Bravo", "Alpha", "red", 2, DefaultMaxMoveIn)
	assert.ErrorIs(t, err, ErrTooManyArmiesMoved)
	assert.Equal(t, 2, troops(t, reg, "Bravo"))

	require.NoError(t, MoveAfterConquest(reg, "Bravo", "Alpha", "red", 1, DefaultMaxMoveIn))
	assert.Equal(t, 1, troops(t, reg, "Bravo"))
	assert.Equal(t, 4, troops(t, reg, "Alpha"))
}

func TestMoveAfterConquest_Ownership(t *testing.T) {
	_, reg := testutil.CreateSimpleTestSetup(t)
	err := MoveAfterConquest(reg, "Charlie", "Delta", "red", 1, DefaultMaxMoveIn)
	assert.ErrorIs(t, err, core.ErrCountryIsNotOccupiedByPlayer)
	assert.Equal(t, 5, troops(t, reg, "Charlie"))
}
