// Package view coordinates the employee directory and the two transaction
// feeds into a single transaction view.
package view

import (
	"github.com/Veraticus/txnview/internal/feed"
	"github.com/Veraticus/txnview/internal/service"
)

// Session owns the feeds of one view session. It is created when the view
// opens and closed when it goes away; feeds are only ever reset, never
// recreated, in between.
type Session struct {
	Directory  *feed.Directory
	Paginated  *feed.PaginatedFeed
	ByEmployee *feed.EmployeeFeed
}

// NewSession creates empty feeds backed by the given fetchers.
func NewSession(
	employees service.EmployeeFetcher,
	pager service.TransactionPager,
	byEmployee service.EmployeeTransactionFetcher,
) *Session {
	return &Session{
		Directory:  feed.NewDirectory(employees),
		Paginated:  feed.NewPaginatedFeed(pager),
		ByEmployee: feed.NewEmployeeFeed(byEmployee),
	}
}

// Resources lists every feed of the session.
func (s *Session) Resources() []feed.Resource {
	return []feed.Resource{s.Directory, s.Paginated, s.ByEmployee}
}

// Close resets every feed so that results still in flight are dropped.
func (s *Session) Close() {
	for _, r := range s.Resources() {
		r.OnChange(nil)
		r.Invalidate()
	}
}
