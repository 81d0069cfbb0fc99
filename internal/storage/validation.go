// Package storage provides the data persistence layer for txnview.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/txnview/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidEmployee    = errors.New("invalid employee")
	ErrInvalidPage        = errors.New("invalid page request")
	ErrNotFound           = errors.New("not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validatePage(page, pageSize int) error {
	if page < 0 {
		return fmt.Errorf("%w: page %d is negative", ErrInvalidPage, page)
	}
	if pageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidPage, pageSize)
	}
	return nil
}

// validateEmployees validates a slice of employees.
func validateEmployees(employees []model.Employee) error {
	if employees == nil {
		return fmt.Errorf("%w: employees", ErrNilParameter)
	}
	if len(employees) == 0 {
		return fmt.Errorf("%w: employees", ErrEmptySlice)
	}

	for i, emp := range employees {
		if err := validateEmployee(emp); err != nil {
			return fmt.Errorf("employee at index %d: %w", i, err)
		}
	}
	return nil
}

func validateEmployee(emp model.Employee) error {
	if strings.TrimSpace(emp.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidEmployee)
	}
	if strings.TrimSpace(emp.FirstName) == "" && strings.TrimSpace(emp.LastName) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidEmployee)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i, txn := range transactions {
		if err := validateTransaction(&txn); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.Merchant == "" {
		return fmt.Errorf("%w: missing merchant", ErrInvalidTransaction)
	}
	if txn.Employee.ID == "" {
		return fmt.Errorf("%w: missing employee ID", ErrInvalidTransaction)
	}
	return nil
}
