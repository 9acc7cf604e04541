package planner

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWishBookStore struct {
	entries map[int64]*domain.WishBookEntry
	err     error
}

func (f *fakeWishBookStore) GetWishBookEntriesByIDs(ids []int64) ([]*domain.WishBookEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	// IDs without a stored entry are silently absent, like the real store
	found := make([]*domain.WishBookEntry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := f.entries[id]; ok {
			found = append(found, entry)
		}
	}
	return found, nil
}

func (f *fakeWishBookStore) GetWishBookEntriesByDate(date domain.Date) ([]*domain.WishBookEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	entries := make([]*domain.WishBookEntry, 0)
	for _, entry := range f.entries {
		if entry.Date.Equal(date) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type fakeScheduleStore struct {
	byDate       map[string][]*domain.ScheduleEntry
	nextID       int64
	replaceErr   error
	readErr      error
	replaceCalls int
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{byDate: make(map[string][]*domain.ScheduleEntry)}
}

func (f *fakeScheduleStore) ReplaceScheduleEntriesForDate(date domain.Date, entries []*domain.ScheduleEntry) ([]*domain.ScheduleEntry, error) {
	f.replaceCalls++
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	created := make([]*domain.ScheduleEntry, len(entries))
	for i, entry := range entries {
		f.nextID++
		c := *entry
		c.ID = f.nextID
		created[i] = &c
	}
	f.byDate[date.String()] = created
	return created, nil
}

func (f *fakeScheduleStore) GetScheduleEntriesByDate(date domain.Date) ([]*domain.ScheduleEntry, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.byDate[date.String()], nil
}

func wish(id int64, employeeID int64, name string, date domain.Date, shiftType domain.ShiftType) *domain.WishBookEntry {
	return &domain.WishBookEntry{
		ID:        id,
		Employee:  domain.Employee{ID: employeeID, Name: name},
		Date:      date,
		ShiftType: shiftType,
	}
}

func validWishBook(date domain.Date) *fakeWishBookStore {
	return &fakeWishBookStore{entries: map[int64]*domain.WishBookEntry{
		1: wish(1, 1, "Alice", date, domain.EarlyShift),
		2: wish(2, 2, "Bob", date, domain.EarlyShift),
		3: wish(3, 3, "Carol", date, domain.LateShift),
		4: wish(4, 4, "Dave", date, domain.LateShift),
	}}
}

func TestCreatePlan_ValidRequest(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	schedule := newFakeScheduleStore()
	p := New(validWishBook(date), schedule)

	entries, err := p.CreatePlan(date, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// employee and shift type pairing is preserved, IDs are assigned
	for i, expected := range []struct {
		name      string
		shiftType domain.ShiftType
	}{
		{"Alice", domain.EarlyShift},
		{"Bob", domain.EarlyShift},
		{"Carol", domain.LateShift},
		{"Dave", domain.LateShift},
	} {
		assert.Equal(t, expected.name, entries[i].Employee.Name)
		assert.Equal(t, expected.shiftType, entries[i].ShiftType)
		assert.True(t, entries[i].Date.Equal(date))
		assert.NotZero(t, entries[i].ID)
	}

	view, err := p.GetSchedule(date)
	require.NoError(t, err)
	require.Len(t, view.Shifts, 2)
	assert.Equal(t, []string{"Alice", "Bob"}, view.Shifts[0].EmployeeNames)
	assert.Equal(t, []string{"Carol", "Dave"}, view.Shifts[1].EmployeeNames)
}

func TestCreatePlan_NoEntriesFound(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	schedule := newFakeScheduleStore()
	p := New(&fakeWishBookStore{entries: map[int64]*domain.WishBookEntry{}}, schedule)

	_, err := p.CreatePlan(date, []int64{1, 2, 3, 4})

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "no wish book entries found for the provided IDs", notFoundErr.Reason)
	assert.Zero(t, schedule.replaceCalls)
}

func TestCreatePlan_MixedDates(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	wishBook := validWishBook(date)
	wishBook.entries[1] = wish(1, 1, "Alice", domain.NewDate(2025, time.June, 16), domain.EarlyShift)
	schedule := newFakeScheduleStore()
	p := New(wishBook, schedule)

	_, err := p.CreatePlan(date, []int64{1, 2, 3, 4})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "all wish book entries must have the same date", validationErr.Reason)
	assert.Zero(t, schedule.replaceCalls)
}

func TestCreatePlan_WrongHeadcount(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)

	t.Run("understaffed early shift", func(t *testing.T) {
		schedule := newFakeScheduleStore()
		p := New(validWishBook(date), schedule)

		// only 1 early entry resolved: 1 early, 2 late
		_, err := p.CreatePlan(date, []int64{1, 3, 4})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "exactly 2 employees are required for each shift type")
		assert.Contains(t, validationErr.Reason, "EARLY_SHIFT")
		assert.Zero(t, schedule.replaceCalls)
	})

	t.Run("overstaffed early shift", func(t *testing.T) {
		wishBook := validWishBook(date)
		wishBook.entries[5] = wish(5, 5, "Eve", date, domain.EarlyShift)
		schedule := newFakeScheduleStore()
		p := New(wishBook, schedule)

		_, err := p.CreatePlan(date, []int64{1, 2, 3, 4, 5})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "EARLY_SHIFT")
		assert.Zero(t, schedule.replaceCalls)
	})

	t.Run("missing late shift entirely", func(t *testing.T) {
		schedule := newFakeScheduleStore()
		p := New(validWishBook(date), schedule)

		_, err := p.CreatePlan(date, []int64{1, 2})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "LATE_SHIFT")
		assert.Zero(t, schedule.replaceCalls)
	})
}

func TestCreatePlan_EmployeeInBothShifts(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	wishBook := validWishBook(date)
	// Alice also wishes for the late shift
	wishBook.entries[5] = wish(5, 1, "Alice", date, domain.LateShift)
	schedule := newFakeScheduleStore()
	p := New(wishBook, schedule)

	_, err := p.CreatePlan(date, []int64{1, 2, 5, 4})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "an employee cannot be assigned to more than one shift type", validationErr.Reason)
	assert.Zero(t, schedule.replaceCalls)
}

func TestCreatePlan_MissingIDsSilentlyDropped(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	schedule := newFakeScheduleStore()
	p := New(validWishBook(date), schedule)

	// ID 99 resolves to nothing; the remaining set still satisfies the rules
	entries, err := p.CreatePlan(date, []int64{1, 2, 3, 4, 99})
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestCreatePlan_AtomicReplace(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	wishBook := validWishBook(date)
	wishBook.entries[5] = wish(5, 5, "Eve", date, domain.EarlyShift)
	wishBook.entries[6] = wish(6, 6, "Frank", date, domain.EarlyShift)
	wishBook.entries[7] = wish(7, 7, "Grace", date, domain.LateShift)
	wishBook.entries[8] = wish(8, 8, "Heidi", date, domain.LateShift)
	schedule := newFakeScheduleStore()
	p := New(wishBook, schedule)

	_, err := p.CreatePlan(date, []int64{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = p.CreatePlan(date, []int64{5, 6, 7, 8})
	require.NoError(t, err)

	// no residue from the first plan
	view, err := p.GetSchedule(date)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eve", "Frank"}, view.Shifts[0].EmployeeNames)
	assert.Equal(t, []string{"Grace", "Heidi"}, view.Shifts[1].EmployeeNames)
}

func TestCreatePlan_Conflict(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	schedule := newFakeScheduleStore()
	schedule.replaceErr = fmt.Errorf("employee 1 on %s: %w", date, domain.ErrScheduleConflict)
	p := New(validWishBook(date), schedule)

	_, err := p.CreatePlan(date, []int64{1, 2, 3, 4})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.ErrorIs(t, err, domain.ErrScheduleConflict)
}

func TestCreatePlan_StoreError(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	schedule := newFakeScheduleStore()
	schedule.replaceErr = errors.New("connection reset")
	p := New(validWishBook(date), schedule)

	_, err := p.CreatePlan(date, []int64{1, 2, 3, 4})
	require.Error(t, err)

	var validationErr *ValidationError
	var conflictErr *ConflictError
	assert.False(t, errors.As(err, &validationErr))
	assert.False(t, errors.As(err, &conflictErr))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGetSchedule_EmptyDate(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	p := New(&fakeWishBookStore{}, newFakeScheduleStore())

	view, err := p.GetSchedule(date)
	require.NoError(t, err)

	// every catalog shift type is present even without any rows
	require.Len(t, view.Shifts, len(domain.AllShiftTypes()))
	for i, shiftType := range domain.AllShiftTypes() {
		assert.Equal(t, shiftType, view.Shifts[i].ShiftType)
		assert.Equal(t, shiftType.TimeRange(), view.Shifts[i].TimeRange)
		assert.NotNil(t, view.Shifts[i].EmployeeNames)
		assert.Empty(t, view.Shifts[i].EmployeeNames)
	}
}

func TestGetSchedule_Idempotent(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	schedule := newFakeScheduleStore()
	p := New(validWishBook(date), schedule)

	_, err := p.CreatePlan(date, []int64{1, 2, 3, 4})
	require.NoError(t, err)

	first, err := p.GetSchedule(date)
	require.NoError(t, err)
	second, err := p.GetSchedule(date)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetSchedule_StoreError(t *testing.T) {
	date := domain.NewDate(2025, time.June, 15)
	schedule := newFakeScheduleStore()
	schedule.readErr = errors.New("timeout")
	p := New(&fakeWishBookStore{}, schedule)

	_, err := p.GetSchedule(date)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
