package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

// ReplaceScheduleEntriesForDate swaps the date's schedule for the given
// entries in one transaction: delete first, then insert, so a failed insert
// rolls back to the prior schedule. Insert order is preserved and IDs are
// assigned by the database. A hit on the (employee, date) uniqueness
// constraint is reported as domain.ErrScheduleConflict.
func (r *Repository) ReplaceScheduleEntriesForDate(date domain.Date, entries []*domain.ScheduleEntry) ([]*domain.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM schedule_entries WHERE date = $1`
	if _, err := tx.ExecContext(ctx, query, date); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		query := `
			INSERT INTO schedule_entries (employee_id, date, shift_type)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, entry.Employee.ID, entry.Date, entry.ShiftType).Scan(&entry.ID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "schedule_entries_employee_id_date_key" {
				return nil, fmt.Errorf("employee %d on %s: %w", entry.Employee.ID, date, domain.ErrScheduleConflict)
			}
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) GetScheduleEntriesByDate(date domain.Date) ([]*domain.ScheduleEntry, error) {
	query := `
		SELECT s.id, s.date, s.shift_type, e.id, e.name, e.is_admin
		FROM schedule_entries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.date = $1
		ORDER BY s.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		entry := &domain.ScheduleEntry{}
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
