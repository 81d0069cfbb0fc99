package tui

import (
	"context"
	"sync"
	"time"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
)

var (
	ada   = model.Employee{ID: "e1", FirstName: "Ada", LastName: "Lovelace"}
	grace = model.Employee{ID: "e2", FirstName: "Grace", LastName: "Hopper"}
)

func txn(id, merchant string, employee model.Employee, amount float64) model.Transaction {
	return model.Transaction{
		ID:       id,
		Date:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Merchant: merchant,
		Employee: employee,
		Amount:   amount,
	}
}

// backend serves two pages of transactions and every employee's list.
type backend struct {
	pageErr   error
	approvals map[string]bool
	pages     [][]model.Transaction
	mu        sync.Mutex
}

func newBackend() *backend {
	return &backend{
		approvals: make(map[string]bool),
		pages: [][]model.Transaction{
			{txn("t1", "Blue Bottle", ada, 4.5), txn("t2", "Delta", grace, 320)},
			{txn("t3", "Office Depot", ada, 58.2)},
		},
	}
}

func (b *backend) FetchAll(context.Context) ([]model.Employee, error) {
	return []model.Employee{ada, grace}, nil
}

func (b *backend) FetchPage(_ context.Context, cursor model.Cursor) (model.Page[model.Transaction], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pageErr != nil {
		return model.Page[model.Transaction]{}, common.NewFetchError("fetch page", b.pageErr)
	}
	page := 0
	if cursor != nil {
		page = *cursor
	}
	out := model.Page[model.Transaction]{Data: b.pages[page]}
	if page+1 < len(b.pages) {
		out.NextPage = model.PageCursor(page + 1)
	}
	return out, nil
}

func (b *backend) FetchByEmployee(_ context.Context, employeeID string) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, page := range b.pages {
		for _, t := range page {
			if t.Employee.ID == employeeID {
				out = append(out, t)
			}
		}
	}
	if out == nil {
		out = []model.Transaction{}
	}
	return out, nil
}

func (b *backend) SetTransactionApproval(_ context.Context, id string, approved bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.approvals[id] = approved
	return nil
}
