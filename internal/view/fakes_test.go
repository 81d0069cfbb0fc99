package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Veraticus/txnview/internal/model"
)

// backend is an in-memory stand-in for all three fetch contracts. Hooks run
// at the moment a fetch is issued so tests can observe ordering.
type backend struct {
	onFetchAll        func()
	onFetchPage       func(page int)
	onFetchByEmployee func(id string)
	employeesErr      error
	pageErr           error
	byEmployeeErr     error
	byEmployee        map[string][]model.Transaction
	employees         []model.Employee
	pages             []model.Page[model.Transaction]
	calls             []string
	mu                sync.Mutex
}

var (
	alice = model.Employee{ID: "emp_a", FirstName: "Alice", LastName: "Anders"}
	bob   = model.Employee{ID: "emp_b", FirstName: "Bob", LastName: "Baker"}
)

func newBackend() *backend {
	return &backend{
		employees: []model.Employee{alice, bob},
		pages: []model.Page[model.Transaction]{
			{Data: makeTxns("page0", alice, 3), NextPage: model.PageCursor(1)},
			{Data: makeTxns("page1", bob, 3), NextPage: model.PageCursor(2)},
			{Data: makeTxns("page2", alice, 1), NextPage: nil},
		},
		byEmployee: map[string][]model.Transaction{
			alice.ID: makeTxns("alice", alice, 4),
			bob.ID:   makeTxns("bob", bob, 2),
		},
	}
}

func makeTxns(prefix string, emp model.Employee, n int) []model.Transaction {
	out := make([]model.Transaction, n)
	for i := range out {
		out[i] = model.Transaction{
			ID:       fmt.Sprintf("%s_%d", prefix, i),
			Employee: emp,
			Merchant: "Merchant",
			Amount:   float64(i + 1),
			Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}

func (b *backend) record(call string) {
	b.mu.Lock()
	b.calls = append(b.calls, call)
	b.mu.Unlock()
}

func (b *backend) callLog() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *backend) count(call string) int {
	n := 0
	for _, c := range b.callLog() {
		if c == call {
			n++
		}
	}
	return n
}

func (b *backend) FetchAll(context.Context) ([]model.Employee, error) {
	b.record("employees")
	if b.onFetchAll != nil {
		b.onFetchAll()
	}
	if b.employeesErr != nil {
		return nil, b.employeesErr
	}
	return b.employees, nil
}

func (b *backend) FetchPage(_ context.Context, cursor model.Cursor) (model.Page[model.Transaction], error) {
	page := *cursor
	b.record(fmt.Sprintf("page:%d", page))
	if b.onFetchPage != nil {
		b.onFetchPage(page)
	}
	if b.pageErr != nil {
		return model.Page[model.Transaction]{}, b.pageErr
	}
	return b.pages[page], nil
}

func (b *backend) FetchByEmployee(_ context.Context, id string) ([]model.Transaction, error) {
	b.record("employee:" + id)
	if b.onFetchByEmployee != nil {
		b.onFetchByEmployee(id)
	}
	if b.byEmployeeErr != nil {
		return nil, b.byEmployeeErr
	}
	return b.byEmployee[id], nil
}

func newTestController(b *backend, opts ...Option) *Controller {
	return NewController(NewSession(b, b, b), opts...)
}

func txnIDs(transactions []model.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, txn := range transactions {
		out = append(out, txn.ID)
	}
	return out
}
