package planner

import (
	"fmt"

	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

// Every shift is covered by exactly two employees. This is fixed by the
// domain, not configuration.
const employeesPerShift = 2

// ValidateWishEntries checks the staffing rules for one target date. The
// rules are applied in order and the first violation wins:
//  1. at least one entry resolved
//  2. every entry is dated targetDate
//  3. exactly two entries per catalog shift type
//  4. no employee appears in more than one entry
//
// The function is pure and may be called any number of times.
func ValidateWishEntries(entries []*domain.WishBookEntry, targetDate domain.Date) error {
	if len(entries) == 0 {
		return &NotFoundError{Reason: "no wish book entries found for the provided IDs"}
	}

	for _, entry := range entries {
		if !entry.Date.Equal(targetDate) {
			return &ValidationError{Reason: "all wish book entries must have the same date"}
		}
	}

	countByShift := make(map[domain.ShiftType]int)
	for _, entry := range entries {
		countByShift[entry.ShiftType]++
	}

	// A shift type with no entries at all is just as much a violation as an
	// over- or understaffed one.
	for _, shiftType := range domain.AllShiftTypes() {
		if countByShift[shiftType] != employeesPerShift {
			return &ValidationError{
				Reason: fmt.Sprintf("exactly %d employees are required for each shift type: %s", employeesPerShift, shiftType),
			}
		}
	}

	seen := make(map[int64]bool, len(entries))
	for _, entry := range entries {
		if seen[entry.Employee.ID] {
			return &ValidationError{Reason: "an employee cannot be assigned to more than one shift type"}
		}
		seen[entry.Employee.ID] = true
	}

	return nil
}
