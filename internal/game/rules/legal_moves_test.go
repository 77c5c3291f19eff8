package rules

import (
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLegalAttacks(t *testing.T) {
	_, reg := testutil.CreateSimpleTestSetup(t)
	lmc := NewLegalMoveCalculator()

	// Bravo has 2 but no enemy neighbours; Alpha borders Echo; Charlie borders Delta.
	assert.Equal(t, []Move{
		{From: "Alpha", To: "Echo"},
		{From: "Charlie", To: "Delta"},
	}, lmc.LegalAttacks(reg, "red"))

	// Echo holds a single troop.
	assert.Equal(t, []Move{{From: "Delta", To: "Charlie"}}, lmc.LegalAttacks(reg, "blue"))
}

func TestLegalRegroups(t *testing.T) {
	_, reg := testutil.CreateSimpleTestSetup(t)
	lmc := NewLegalMoveCalculator()

	assert.Equal(t, []Move{
		{From: "Alpha", To: "Bravo"},
		{From: "Bravo", To: "Alpha"},
		{From: "Bravo", To: "Charlie"},
		{From: "Charlie", To: "Bravo"},
	}, lmc.LegalRegroups(reg, "red"))
	assert.Equal(t, []Move{{From: "Delta", To: "Echo"}}, lmc.LegalRegroups(reg, "blue"))
	assert.Empty(t, lmc.LegalRegroups(reg, "green"))
}
