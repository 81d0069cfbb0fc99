package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Veraticus/txnview/internal/model"
)

// gate lets a test hold a fake fetch open until it is released.
type gate struct {
	started chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (g *gate) wait(ctx context.Context) error {
	if g == nil {
		return nil
	}
	g.started <- struct{}{}
	select {
	case <-g.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *gate) open() {
	close(g.release)
}

type fakeDirectory struct {
	gate      *gate
	err       error
	employees []model.Employee
	mu        sync.Mutex
	calls     int
}

func (f *fakeDirectory) FetchAll(ctx context.Context) ([]model.Employee, error) {
	f.mu.Lock()
	f.calls++
	g, err, employees := f.gate, f.err, f.employees
	f.mu.Unlock()

	if waitErr := g.wait(ctx); waitErr != nil {
		return nil, waitErr
	}
	if err != nil {
		return nil, err
	}
	return employees, nil
}

type fakePager struct {
	gate      *gate
	err       error
	pages     []model.Page[model.Transaction]
	requested []int
	mu        sync.Mutex
}

func (f *fakePager) FetchPage(ctx context.Context, cursor model.Cursor) (model.Page[model.Transaction], error) {
	f.mu.Lock()
	page := *cursor
	f.requested = append(f.requested, page)
	g, err := f.gate, f.err
	f.mu.Unlock()

	if waitErr := g.wait(ctx); waitErr != nil {
		return model.Page[model.Transaction]{}, waitErr
	}
	if err != nil {
		return model.Page[model.Transaction]{}, err
	}
	if page >= len(f.pages) {
		return model.Page[model.Transaction]{Data: []model.Transaction{}}, nil
	}
	return f.pages[page], nil
}

func (f *fakePager) setGate(g *gate) {
	f.mu.Lock()
	f.gate = g
	f.mu.Unlock()
}

type fakeByEmployee struct {
	gates map[string]*gate
	err   error
	data  map[string][]model.Transaction
	mu    sync.Mutex
}

func (f *fakeByEmployee) FetchByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error) {
	f.mu.Lock()
	g, err := f.gates[employeeID], f.err
	f.mu.Unlock()

	if waitErr := g.wait(ctx); waitErr != nil {
		return nil, waitErr
	}
	if err != nil {
		return nil, err
	}
	return f.data[employeeID], nil
}

func txns(prefix string, n int) []model.Transaction {
	out := make([]model.Transaction, n)
	for i := range out {
		out[i] = model.Transaction{
			ID:       fmt.Sprintf("%s_%d", prefix, i),
			Merchant: "Merchant",
			Amount:   float64(i),
			Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}

// threePages returns pages 0..2 of two transactions each; page 2 is last.
func threePages() []model.Page[model.Transaction] {
	return []model.Page[model.Transaction]{
		{Data: txns("p0", 2), NextPage: model.PageCursor(1)},
		{Data: txns("p1", 2), NextPage: model.PageCursor(2)},
		{Data: txns("p2", 2), NextPage: nil},
	}
}

func ids(transactions []model.Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, txn := range transactions {
		out = append(out, txn.ID)
	}
	return out
}
