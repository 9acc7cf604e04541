package domain

import "errors"

// ErrScheduleConflict reports that a schedule insert hit the
// (employee, date) uniqueness constraint, typically because a concurrent
// plan was built for the same date.
var ErrScheduleConflict = errors.New("schedule assignment conflicts with an existing entry")

// ScheduleEntry records that an employee is assigned a shift on a date.
// At most one entry may exist per (employee, date). All entries of a date
// are replaced as one unit whenever a new plan is built for that date.
type ScheduleEntry struct {
	ID        int64     `json:"id"`
	Employee  Employee  `json:"employee"`
	Date      Date      `json:"date"`
	ShiftType ShiftType `json:"shiftType"`
}
