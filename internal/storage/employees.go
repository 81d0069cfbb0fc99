package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/txnview/internal/model"
)

// SaveEmployees inserts or replaces employees in a single transaction.
func (s *SQLiteStorage) SaveEmployees(ctx context.Context, employees []model.Employee) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEmployees(employees); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employees (id, first_name, last_name)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, emp := range employees {
		if _, err := stmt.ExecContext(ctx, emp.ID, emp.FirstName, emp.LastName); err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", emp.ID, err)
		}
	}

	return tx.Commit()
}

// GetEmployees returns the whole directory ordered by name.
func (s *SQLiteStorage) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name
		FROM employees
		ORDER BY last_name, first_name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	employees := []model.Employee{}
	for rows.Next() {
		var emp model.Employee
		if err := rows.Scan(&emp.ID, &emp.FirstName, &emp.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
