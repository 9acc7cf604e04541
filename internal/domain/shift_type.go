package domain

// ShiftType is the closed set of daily shifts. Adding a shift type is a code
// change: extend the constants and the time-range table together.
type ShiftType string

const (
	EarlyShift ShiftType = "EARLY_SHIFT"
	LateShift  ShiftType = "LATE_SHIFT"
)

var shiftTimeRanges = map[ShiftType]string{
	EarlyShift: "07:00 - 15:30",
	LateShift:  "11:30 - 20:00",
}

// AllShiftTypes returns the full shift catalog in display order.
func AllShiftTypes() []ShiftType {
	return []ShiftType{EarlyShift, LateShift}
}

// TimeRange returns the fixed display time range of the shift.
func (s ShiftType) TimeRange() string {
	return shiftTimeRanges[s]
}

func (s ShiftType) Valid() bool {
	_, ok := shiftTimeRanges[s]
	return ok
}
