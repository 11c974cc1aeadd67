package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndCheck(t *testing.T) {
	ledger := NewLedger()

	assert.True(t, ledger.MarkAndCheck("data/maps/industrial.ipl"))
	assert.False(t, ledger.MarkAndCheck("data/maps/industrial.ipl"))

	// Case differences are the same key.
	assert.False(t, ledger.MarkAndCheck("DATA/MAPS/INDUSTRIAL.IPL"))

	assert.True(t, ledger.MarkAndCheck("data/maps/commercial.ipl"))
	assert.Equal(t, 2, ledger.Count())
}

func TestIsLoadedDoesNotMark(t *testing.T) {
	ledger := NewLedger()

	assert.False(t, ledger.IsLoaded("water.dat"))
	assert.True(t, ledger.MarkAndCheck("water.dat"))
	assert.True(t, ledger.IsLoaded("water.dat"))
}
