package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Veraticus/txnview/internal/feed"
	"github.com/Veraticus/txnview/internal/model"
)

// ErrViewMoreUnavailable is returned by ViewMore when the control would be
// hidden or disabled.
var ErrViewMoreUnavailable = errors.New("view more is not available")

// Controller decides, for every user action, which feed is authoritative,
// which one is invalidated, and in what order fetches are awaited. It owns
// no data; everything it shows is read from the session's feeds.
//
// Fetch errors are returned unchanged to the caller.
type Controller struct {
	session  *Session
	observer func(Snapshot)
	mu       sync.Mutex
	pending  int
	// isLoading is the global indicator. It only tracks the directory.
	isLoading bool
}

// Option is a functional option for configuring a Controller.
type Option func(*Controller)

// WithObserver registers fn to receive a fresh snapshot after every state
// change. fn may be called from any goroutine.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// NewController creates a controller over session.
func NewController(session *Session, opts ...Option) *Controller {
	c := &Controller{session: session}
	for _, opt := range opts {
		opt(c)
	}
	for _, r := range session.Resources() {
		r.OnChange(c.notify)
	}
	return c
}

// Session returns the session the controller reads from.
func (c *Controller) Session() *Session {
	return c.session
}

// Bootstrap loads everything on first render. It only acts when the
// directory has not loaded and is not already loading, and reports whether
// it did.
func (c *Controller) Bootstrap(ctx context.Context) (bool, error) {
	dir := c.session.Directory
	c.mu.Lock()
	skip := c.isLoading || dir.Loaded() || dir.Loading()
	c.mu.Unlock()
	if skip {
		return false, nil
	}

	slog.Debug("Bootstrapping transaction view")
	return true, c.LoadAllTransactions(ctx)
}

// LoadAllTransactions switches to the paginated view of all transactions:
// it clears the per-employee view, reloads the directory, drops the global
// loading indicator and then fetches the next page.
func (c *Controller) LoadAllTransactions(ctx context.Context) error {
	c.begin()
	defer c.end()

	c.setLoading(true)
	c.session.ByEmployee.Invalidate()

	if err := c.session.Directory.FetchAll(ctx); err != nil {
		c.setLoading(false)
		return err
	}
	c.setLoading(false)

	slog.Debug("Loading next transactions page")
	return c.session.Paginated.FetchNextPage(ctx)
}

// LoadTransactionsByEmployee shows the transactions of one employee. The
// empty id selects everyone and is handled by LoadAllTransactions.
func (c *Controller) LoadTransactionsByEmployee(ctx context.Context, employeeID string) error {
	if employeeID == model.EmptyEmployee.ID {
		return c.LoadAllTransactions(ctx)
	}

	c.begin()
	defer c.end()

	c.session.Paginated.Invalidate()

	slog.Debug("Loading employee transactions", "employee_id", employeeID)
	return c.session.ByEmployee.FetchByID(ctx, employeeID)
}

// Select applies a selector change. A nil selection is ignored.
func (c *Controller) Select(ctx context.Context, employee *model.Employee) error {
	if employee == nil {
		return nil
	}
	return c.LoadTransactionsByEmployee(ctx, employee.ID)
}

// ViewMore handles the "View More" control. It re-runs the whole
// LoadAllTransactions sequence, directory included; pages accumulate
// because the paginated feed appends until it is invalidated.
func (c *Controller) ViewMore(ctx context.Context) error {
	props := c.Snapshot().ViewMore
	if !props.Visible || props.Disabled {
		return ErrViewMoreUnavailable
	}
	return c.LoadAllTransactions(ctx)
}

// Snapshot reads the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	isLoading := c.isLoading
	busy := c.pending > 0
	c.mu.Unlock()

	s := c.session
	employees := s.Directory.Employees()
	paginated := s.Paginated.Data()
	byEmployee := s.ByEmployee.Data()
	endOfData := s.Paginated.EndOfData()

	snap := Snapshot{
		Transactions:        feed.DeriveDisplay(paginated, byEmployee),
		FilteringByEmployee: byEmployee != nil,
		EndOfTransactions:   endOfData,
		Busy:                busy,
		Selector: SelectorProps{
			Items:     selectorItems(employees),
			IsLoading: isLoading,
			Default:   model.EmptyEmployee,
		},
	}

	switch {
	case byEmployee != nil:
		snap.State = StateShowingByEmployee
		snap.EmployeeID = s.ByEmployee.EmployeeID()
	case paginated != nil:
		snap.State = StateShowingAll
	}

	snap.ViewMore = ViewMoreProps{
		Visible:  snap.Transactions != nil && !snap.FilteringByEmployee && !endOfData,
		Disabled: s.Paginated.Loading(),
	}

	return snap
}

func selectorItems(employees []model.Employee) []model.Employee {
	if employees == nil {
		return []model.Employee{}
	}
	items := make([]model.Employee, 0, len(employees)+1)
	items = append(items, model.EmptyEmployee)
	return append(items, employees...)
}

func (c *Controller) setLoading(loading bool) {
	c.mu.Lock()
	c.isLoading = loading
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) begin() {
	c.mu.Lock()
	c.pending++
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) end() {
	c.mu.Lock()
	c.pending--
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) notify() {
	if c.observer == nil {
		return
	}
	c.observer(c.Snapshot())
}
