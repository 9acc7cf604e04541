package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (name)
		VALUES ($1)
		RETURNING id, is_admin
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, employee.Name).Scan(&employee.ID, &employee.IsAdmin); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByName(name string) (*domain.Employee, error) {
	query := `
		SELECT id, is_admin FROM employees WHERE name = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		Name: name,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(&employee.ID, &employee.IsAdmin); err != nil {
		return nil, err
	}

	return employee, nil
}

// findOrCreateEmployee resolves the employee by name inside the given
// transaction, creating the record on first reference. Employees are never
// deleted here.
func (r *Repository) findOrCreateEmployee(ctx context.Context, tx *sql.Tx, name string) (*domain.Employee, error) {
	employee := &domain.Employee{
		Name: name,
	}

	query := `SELECT id, is_admin FROM employees WHERE name = $1`
	err := tx.QueryRowContext(ctx, query, name).Scan(&employee.ID, &employee.IsAdmin)
	switch {
	case err == nil:
		return employee, nil
	case errors.Is(err, sql.ErrNoRows):
		// fall through to create
	default:
		return nil, err
	}

	query = `
		INSERT INTO employees (name)
		VALUES ($1)
		RETURNING id, is_admin
	`
	if err := tx.QueryRowContext(ctx, query, name).Scan(&employee.ID, &employee.IsAdmin); err != nil {
		return nil, err
	}

	return employee, nil
}
