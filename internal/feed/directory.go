package feed

import (
	"context"
	"log/slog"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/service"
)

// Directory holds the full employee list.
type Directory struct {
	fetcher   service.EmployeeFetcher
	employees []model.Employee
	state
}

var _ Resource = (*Directory)(nil)

// NewDirectory creates an empty directory backed by fetcher.
func NewDirectory(fetcher service.EmployeeFetcher) *Directory {
	return &Directory{fetcher: fetcher}
}

// FetchAll loads the whole directory, replacing any previous list. On
// failure the previous list is kept and the error is returned.
func (d *Directory) FetchAll(ctx context.Context) error {
	d.mu.Lock()
	generation := d.begin()
	notify := d.listener()
	d.mu.Unlock()
	notify()

	employees, err := d.fetcher.FetchAll(ctx)

	d.mu.Lock()
	current := d.finish(generation)
	if err == nil && current {
		d.employees = make([]model.Employee, len(employees))
		copy(d.employees, employees)
	}
	notify = d.listener()
	d.mu.Unlock()
	notify()

	if err != nil {
		return err
	}
	if !current {
		slog.Debug("Discarded stale employee directory", "count", len(employees))
	}
	return nil
}

// Employees returns a copy of the directory. The result is nil until the
// directory has loaded.
func (d *Directory) Employees() []model.Employee {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.employees == nil {
		return nil
	}
	out := make([]model.Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

// Loaded reports whether the directory has been fetched.
func (d *Directory) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.employees != nil
}

// Invalidate forgets the directory so the next FetchAll starts fresh.
func (d *Directory) Invalidate() {
	d.mu.Lock()
	d.generation++
	d.employees = nil
	notify := d.listener()
	d.mu.Unlock()
	notify()
}
