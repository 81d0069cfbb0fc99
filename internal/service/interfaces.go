// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/txnview/internal/model"
)

// EmployeeFetcher loads the full employee directory.
type EmployeeFetcher interface {
	FetchAll(ctx context.Context) ([]model.Employee, error)
}

// TransactionPager loads one page of all transactions.
type TransactionPager interface {
	FetchPage(ctx context.Context, cursor model.Cursor) (model.Page[model.Transaction], error)
}

// EmployeeTransactionFetcher loads every transaction of a single employee.
type EmployeeTransactionFetcher interface {
	FetchByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error)
}

// ApprovalSetter records whether a transaction has been approved.
type ApprovalSetter interface {
	SetTransactionApproval(ctx context.Context, transactionID string, approved bool) error
}

// Counts summarizes stored records.
type Counts struct {
	Employees    int
	Transactions int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Employee operations
	SaveEmployees(ctx context.Context, employees []model.Employee) error
	GetEmployees(ctx context.Context) ([]model.Employee, error)

	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactionsPage(ctx context.Context, page, pageSize int) (model.Page[model.Transaction], error)
	GetTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error)
	SetTransactionApproval(ctx context.Context, transactionID string, approved bool) error
	GetCounts(ctx context.Context) (Counts, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
