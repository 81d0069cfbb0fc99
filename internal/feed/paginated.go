package feed

import (
	"context"
	"log/slog"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/service"
)

// PaginatedFeed accumulates pages of all transactions. Data only grows
// between invalidations.
type PaginatedFeed struct {
	pager service.TransactionPager
	next  model.Cursor
	data  []model.Transaction
	state
}

var _ Resource = (*PaginatedFeed)(nil)

// NewPaginatedFeed creates an empty feed positioned at the first page.
func NewPaginatedFeed(pager service.TransactionPager) *PaginatedFeed {
	return &PaginatedFeed{
		pager: pager,
		next:  model.InitialCursor(),
	}
}

// FetchNextPage fetches the page after the last one loaded and appends it.
// It fails with common.ErrEndOfData once the last page has been loaded.
// If the feed is invalidated, or another fetch has already consumed the
// same cursor, by the time the page arrives the page is dropped.
func (f *PaginatedFeed) FetchNextPage(ctx context.Context) error {
	f.mu.Lock()
	if f.data != nil && f.next == nil {
		f.mu.Unlock()
		return common.ErrEndOfData
	}
	requested := *f.next
	generation := f.begin()
	notify := f.listener()
	f.mu.Unlock()
	notify()

	page, err := f.pager.FetchPage(ctx, model.PageCursor(requested))

	f.mu.Lock()
	current := f.finish(generation) && f.expects(requested)
	if err == nil && current {
		if f.data == nil {
			f.data = make([]model.Transaction, 0, len(page.Data))
		}
		f.data = append(f.data, page.Data...)
		f.next = copyCursor(page.NextPage)
	}
	notify = f.listener()
	f.mu.Unlock()
	notify()

	if err != nil {
		return err
	}
	if !current {
		slog.Debug("Discarded stale transactions page", "page", requested)
	}
	return nil
}

// expects reports whether page is the one the feed is waiting for.
// Callers must hold f.mu.
func (f *PaginatedFeed) expects(page int) bool {
	return f.next != nil && *f.next == page
}

// Data returns a copy of the accumulated transactions, or nil when no
// page has been loaded since the last invalidation.
func (f *PaginatedFeed) Data() []model.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneTransactions(f.data)
}

// NextPage returns the cursor of the next page, nil at end of data.
func (f *PaginatedFeed) NextPage() model.Cursor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyCursor(f.next)
}

// EndOfData reports whether the last page has been loaded.
func (f *PaginatedFeed) EndOfData() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data != nil && f.next == nil
}

// Loaded reports whether at least one page is held.
func (f *PaginatedFeed) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data != nil
}

// Invalidate drops all pages and rewinds to the first page.
func (f *PaginatedFeed) Invalidate() {
	f.mu.Lock()
	f.generation++
	f.data = nil
	f.next = model.InitialCursor()
	notify := f.listener()
	f.mu.Unlock()
	notify()
}

func copyCursor(c model.Cursor) model.Cursor {
	if c == nil {
		return nil
	}
	return model.PageCursor(*c)
}

func cloneTransactions(txns []model.Transaction) []model.Transaction {
	if txns == nil {
		return nil
	}
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	return out
}
