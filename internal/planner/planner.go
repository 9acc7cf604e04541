// Package planner turns a set of wish book entries for one date into a
// consistent, rule-satisfying schedule for that date, and projects stored
// schedules into a shift-grouped view.
package planner

import (
	"errors"
	"fmt"

	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

// WishBookStore provides read access to stored wish book entries. IDs that
// do not resolve are simply absent from the result, not reported.
type WishBookStore interface {
	GetWishBookEntriesByIDs(ids []int64) ([]*domain.WishBookEntry, error)
	GetWishBookEntriesByDate(date domain.Date) ([]*domain.WishBookEntry, error)
}

// ScheduleStore owns the schedule rows. ReplaceScheduleEntriesForDate must
// delete the date's existing rows and insert the new ones as one
// transaction: on any failure the prior schedule stays intact. A
// uniqueness violation is reported via domain.ErrScheduleConflict.
type ScheduleStore interface {
	ReplaceScheduleEntriesForDate(date domain.Date, entries []*domain.ScheduleEntry) ([]*domain.ScheduleEntry, error)
	GetScheduleEntriesByDate(date domain.Date) ([]*domain.ScheduleEntry, error)
}

// Planner is the shift planning engine. It never mutates wish book entries
// or employees, only the schedule rows of the planned date. There is no
// per-date locking: two concurrent plans for the same date are resolved by
// the store's (employee, date) uniqueness constraint and surface as a
// ConflictError.
type Planner struct {
	wishBook WishBookStore
	schedule ScheduleStore
}

func New(wishBook WishBookStore, schedule ScheduleStore) *Planner {
	return &Planner{
		wishBook: wishBook,
		schedule: schedule,
	}
}

// CreatePlan resolves the wish book entry IDs, validates them against the
// staffing rules and atomically replaces the date's schedule with one entry
// per wish. On a validation failure the schedule store is left untouched.
func (p *Planner) CreatePlan(date domain.Date, wishBookEntryIDs []int64) ([]*domain.ScheduleEntry, error) {
	entries, err := p.wishBook.GetWishBookEntriesByIDs(wishBookEntryIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve wish book entries: %w", err)
	}

	if err := ValidateWishEntries(entries, date); err != nil {
		return nil, err
	}

	scheduleEntries := make([]*domain.ScheduleEntry, len(entries))
	for i, entry := range entries {
		scheduleEntries[i] = &domain.ScheduleEntry{
			Employee:  entry.Employee,
			Date:      date,
			ShiftType: entry.ShiftType,
		}
	}

	created, err := p.schedule.ReplaceScheduleEntriesForDate(date, scheduleEntries)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleConflict) {
			return nil, &ConflictError{Err: err}
		}
		return nil, fmt.Errorf("replace schedule for %s: %w", date, err)
	}

	return created, nil
}

// GetSchedule returns the schedule of the date grouped by shift type. Every
// catalog shift type appears in the view, staffed or not; a date without
// any schedule rows yields empty employee lists, never an error.
func (p *Planner) GetSchedule(date domain.Date) (*domain.ScheduleView, error) {
	entries, err := p.schedule.GetScheduleEntriesByDate(date)
	if err != nil {
		return nil, fmt.Errorf("load schedule for %s: %w", date, err)
	}

	namesByShift := make(map[domain.ShiftType][]string)
	for _, entry := range entries {
		namesByShift[entry.ShiftType] = append(namesByShift[entry.ShiftType], entry.Employee.Name)
	}

	view := &domain.ScheduleView{
		Date:   date,
		Shifts: make([]domain.ScheduleViewShift, 0, len(domain.AllShiftTypes())),
	}
	for _, shiftType := range domain.AllShiftTypes() {
		names := namesByShift[shiftType]
		if names == nil {
			names = []string{}
		}
		view.Shifts = append(view.Shifts, domain.ScheduleViewShift{
			ShiftType:     shiftType,
			TimeRange:     shiftType.TimeRange(),
			EmployeeNames: names,
		})
	}

	return view, nil
}
