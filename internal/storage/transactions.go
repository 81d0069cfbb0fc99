package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Veraticus/txnview/internal/model"
)

const transactionColumns = `
	t.id, t.amount, t.merchant, t.date, t.approved,
	t.employee_id, COALESCE(e.first_name, ''), COALESCE(e.last_name, '')
`

// SaveTransactions saves multiple transactions to the database.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	// Validate inputs
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.saveTransactionsTx(ctx, tx, transactions); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStorage) saveTransactionsTx(ctx context.Context, tx *sql.Tx, transactions []model.Transaction) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, amount, employee_id, merchant, date, approved)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount = excluded.amount,
			employee_id = excluded.employee_id,
			merchant = excluded.merchant,
			date = excluded.date,
			approved = excluded.approved
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		_, err = stmt.ExecContext(ctx,
			txn.ID,
			txn.Amount,
			txn.Employee.ID,
			txn.Merchant,
			txn.Date.UTC(),
			txn.Approved,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	return nil
}

// GetTransactionsPage returns one page of all transactions, newest first.
// NextPage is nil on the last page.
func (s *SQLiteStorage) GetTransactionsPage(ctx context.Context, page, pageSize int) (model.Page[model.Transaction], error) {
	if err := validateContext(ctx); err != nil {
		return model.Page[model.Transaction]{}, err
	}
	if err := validatePage(page, pageSize); err != nil {
		return model.Page[model.Transaction]{}, err
	}

	// Fetch one extra row to learn whether another page exists.
	transactions, err := queryTransactions(ctx, s.db, `
		SELECT `+transactionColumns+`
		FROM transactions t
		LEFT JOIN employees e ON e.id = t.employee_id
		ORDER BY t.date DESC, t.id
		LIMIT ? OFFSET ?
	`, pageSize+1, page*pageSize)
	if err != nil {
		return model.Page[model.Transaction]{}, err
	}

	result := model.Page[model.Transaction]{Data: transactions}
	if len(transactions) > pageSize {
		result.Data = transactions[:pageSize]
		result.NextPage = model.PageCursor(page + 1)
	}

	return result, nil
}

// GetTransactionsByEmployee returns every transaction of one employee.
// Unknown employees yield an empty slice.
func (s *SQLiteStorage) GetTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(employeeID, "employeeID"); err != nil {
		return nil, err
	}

	return queryTransactions(ctx, s.db, `
		SELECT `+transactionColumns+`
		FROM transactions t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = ?
		ORDER BY t.date DESC, t.id
	`, employeeID)
}

// SetTransactionApproval updates the approval flag of one transaction.
func (s *SQLiteStorage) SetTransactionApproval(ctx context.Context, transactionID string, approved bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(transactionID, "transactionID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET approved = ? WHERE id = ?`,
		approved, transactionID)
	if err != nil {
		return fmt.Errorf("failed to update approval for %s: %w", transactionID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
	}

	return nil
}

func queryTransactions(ctx context.Context, q queryable, query string, args ...any) ([]model.Transaction, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	transactions := []model.Transaction{}
	for rows.Next() {
		var (
			txn  model.Transaction
			date time.Time
		)
		if err := rows.Scan(
			&txn.ID,
			&txn.Amount,
			&txn.Merchant,
			&date,
			&txn.Approved,
			&txn.Employee.ID,
			&txn.Employee.FirstName,
			&txn.Employee.LastName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Date = date.UTC()
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}
