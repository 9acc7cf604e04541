package repository

import (
	"context"
	"time"

	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

// CreateWishBookEntry inserts a wish for the named employee, creating the
// employee record first if the name is not known yet. Both writes happen in
// one transaction. A duplicate (employee, date, shift type) wish surfaces as
// a uniqueness violation from the database.
func (r *Repository) CreateWishBookEntry(employeeName string, date domain.Date, shiftType domain.ShiftType) (*domain.WishBookEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	employee, err := r.findOrCreateEmployee(ctx, tx, employeeName)
	if err != nil {
		return nil, err
	}

	entry := &domain.WishBookEntry{
		Employee:  *employee,
		Date:      date,
		ShiftType: shiftType,
	}

	query := `
		INSERT INTO wish_book_entries (employee_id, date, shift_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, employee.ID, date, shiftType).Scan(&entry.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetWishBookEntriesByIDs resolves the given IDs to wish book entries. IDs
// without a matching row are simply absent from the result.
func (r *Repository) GetWishBookEntriesByIDs(ids []int64) ([]*domain.WishBookEntry, error) {
	query := `
		SELECT w.id, w.date, w.shift_type, e.id, e.name, e.is_admin
		FROM wish_book_entries w
		JOIN employees e ON e.id = w.employee_id
		WHERE w.id = ANY($1)
		ORDER BY w.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.WishBookEntry, 0, len(ids))
	for rows.Next() {
		entry := &domain.WishBookEntry{}
		dst := []any{&entry.ID, &entry.Date, &entry.ShiftType, &entry.Employee.ID, &entry.Employee.Name, &entry.Employee.IsAdmin}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) GetWishBookEntriesByDate(date domain.Date) ([]*domain.WishBookEntry, error) {
	query := `
		SELECT w.id, w.date, w.shift_type, e.id, e.name, e.is_admin
		FROM wish_book_entries w
		JOIN employees e ON e.id = w.employee_id
		WHERE w.date = $1
		ORDER BY w.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.WishBookEntry, 0)
	for rows.Next() {
		entry := &domain.WishBookEntry{}
		dst := []any{&entry.ID, &entry.Date, &entry.ShiftType, &entry.Employee.ID, &entry.Employee.Name, &entry.Employee.IsAdmin}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
