// Package source adapts the persistence layer to the fetch contracts the
// feeds consume. Every failure is reported as a common.FetchError.
package source

import (
	"context"
	"time"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/service"
)

// DefaultPageSize matches the page size of the original mock API.
const DefaultPageSize = 5

// Store is the subset of service.Storage the source reads from.
type Store interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetTransactionsPage(ctx context.Context, page, pageSize int) (model.Page[model.Transaction], error)
	GetTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error)
	SetTransactionApproval(ctx context.Context, transactionID string, approved bool) error
}

// Source serves employees and transactions out of a Store.
type Source struct {
	store    Store
	delay    time.Duration
	pageSize int
}

// Ensure we implement the interfaces.
var (
	_ service.EmployeeFetcher            = (*Source)(nil)
	_ service.TransactionPager           = (*Source)(nil)
	_ service.EmployeeTransactionFetcher = (*Source)(nil)
	_ service.ApprovalSetter             = (*Source)(nil)
)

// Option is a functional option for configuring a Source.
type Option func(*Source)

// WithDelay simulates transport latency on every fetch.
func WithDelay(d time.Duration) Option {
	return func(s *Source) {
		s.delay = d
	}
}

// WithPageSize sets how many transactions one page holds.
func WithPageSize(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// New creates a Source reading from store.
func New(store Store, opts ...Option) *Source {
	s := &Source{
		store:    store,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PageSize returns the configured page size.
func (s *Source) PageSize() int {
	return s.pageSize
}

// FetchAll returns the full employee directory.
func (s *Source) FetchAll(ctx context.Context) ([]model.Employee, error) {
	const op = "fetch employees"
	if err := s.wait(ctx); err != nil {
		return nil, common.NewFetchError(op, err)
	}

	employees, err := s.store.GetEmployees(ctx)
	if err != nil {
		return nil, common.NewFetchError(op, err)
	}

	common.FromContext(ctx).Debug("Fetched employees", "count", len(employees))
	return employees, nil
}

// FetchPage returns the page the cursor points at. A nil cursor is treated
// as a request for the first page.
func (s *Source) FetchPage(ctx context.Context, cursor model.Cursor) (model.Page[model.Transaction], error) {
	const op = "fetch transactions page"
	if err := s.wait(ctx); err != nil {
		return model.Page[model.Transaction]{}, common.NewFetchError(op, err)
	}

	page := 0
	if cursor != nil {
		page = *cursor
	}

	result, err := s.store.GetTransactionsPage(ctx, page, s.pageSize)
	if err != nil {
		return model.Page[model.Transaction]{}, common.NewFetchError(op, err)
	}

	common.FromContext(ctx).Debug("Fetched transactions page",
		"page", page,
		"count", len(result.Data),
		"has_more", result.HasMore())
	return result, nil
}

// FetchByEmployee returns every transaction of one employee.
func (s *Source) FetchByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error) {
	const op = "fetch transactions by employee"
	if err := s.wait(ctx); err != nil {
		return nil, common.NewFetchError(op, err)
	}

	transactions, err := s.store.GetTransactionsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, common.NewFetchError(op, err)
	}

	common.FromContext(ctx).Debug("Fetched employee transactions",
		"employee_id", employeeID,
		"count", len(transactions))
	return transactions, nil
}

// SetTransactionApproval records the approval flag of a transaction.
func (s *Source) SetTransactionApproval(ctx context.Context, transactionID string, approved bool) error {
	if err := s.wait(ctx); err != nil {
		return common.NewFetchError("set transaction approval", err)
	}
	if err := s.store.SetTransactionApproval(ctx, transactionID, approved); err != nil {
		return common.NewFetchError("set transaction approval", err)
	}
	return nil
}

func (s *Source) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
