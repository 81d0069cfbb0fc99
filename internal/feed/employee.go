package feed

import (
	"context"
	"log/slog"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/service"
)

// EmployeeFeed holds every transaction of at most one employee.
type EmployeeFeed struct {
	fetcher    service.EmployeeTransactionFetcher
	employeeID string
	data       []model.Transaction
	state
}

var _ Resource = (*EmployeeFeed)(nil)

// NewEmployeeFeed creates an empty feed backed by fetcher.
func NewEmployeeFeed(fetcher service.EmployeeTransactionFetcher) *EmployeeFeed {
	return &EmployeeFeed{fetcher: fetcher}
}

// FetchByID replaces the feed with the transactions of employeeID. A newer
// FetchByID or an Invalidate supersedes this call, in which case its result
// is dropped. On failure the previous data is left untouched.
func (f *EmployeeFeed) FetchByID(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		return common.ErrEmptyEmployeeID
	}

	f.mu.Lock()
	f.generation++
	generation := f.begin()
	notify := f.listener()
	f.mu.Unlock()
	notify()

	transactions, err := f.fetcher.FetchByEmployee(ctx, employeeID)

	f.mu.Lock()
	current := f.finish(generation)
	if err == nil && current {
		f.data = make([]model.Transaction, len(transactions))
		copy(f.data, transactions)
		f.employeeID = employeeID
	}
	notify = f.listener()
	f.mu.Unlock()
	notify()

	if err != nil {
		return err
	}
	if !current {
		slog.Debug("Discarded stale employee transactions", "employee_id", employeeID)
	}
	return nil
}

// Data returns a copy of the held transactions, or nil when nothing is loaded.
func (f *EmployeeFeed) Data() []model.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneTransactions(f.data)
}

// EmployeeID returns the employee whose transactions are held, or "".
func (f *EmployeeFeed) EmployeeID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.employeeID
}

// Loaded reports whether transactions for an employee are held.
func (f *EmployeeFeed) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data != nil
}

// Invalidate clears the feed and discards any in-flight result.
func (f *EmployeeFeed) Invalidate() {
	f.mu.Lock()
	f.generation++
	f.data = nil
	f.employeeID = ""
	notify := f.listener()
	f.mu.Unlock()
	notify()
}
