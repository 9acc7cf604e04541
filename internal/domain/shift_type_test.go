package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftCatalog(t *testing.T) {
	catalog := AllShiftTypes()

	assert.Equal(t, []ShiftType{EarlyShift, LateShift}, catalog)
	assert.Equal(t, "07:00 - 15:30", EarlyShift.TimeRange())
	assert.Equal(t, "11:30 - 20:00", LateShift.TimeRange())

	for _, shiftType := range catalog {
		assert.True(t, shiftType.Valid())
	}
	assert.False(t, ShiftType("NIGHT_SHIFT").Valid())
}
