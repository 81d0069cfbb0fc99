package view

import "github.com/Veraticus/txnview/internal/model"

// State is the conceptual mode of the view, derived from the feeds.
type State int

const (
	// StateUninitialized means no transactions are loaded.
	StateUninitialized State = iota
	// StateShowingAll means the paginated feed is on display.
	StateShowingAll
	// StateShowingByEmployee means one employee's transactions are on display.
	StateShowingByEmployee
)

func (s State) String() string {
	switch s {
	case StateShowingAll:
		return "showing_all"
	case StateShowingByEmployee:
		return "showing_by_employee"
	default:
		return "uninitialized"
	}
}

// SelectorProps is what the employee selector renders.
type SelectorProps struct {
	Default   model.Employee
	Items     []model.Employee
	IsLoading bool
}

// ViewMoreProps is what the "View More" control renders.
type ViewMoreProps struct {
	Visible  bool
	Disabled bool
}

// Snapshot is a consistent read of everything the presentation layer needs.
type Snapshot struct {
	// Transactions is nil while nothing is loaded.
	Transactions        []model.Transaction
	EmployeeID          string
	Selector            SelectorProps
	State               State
	ViewMore            ViewMoreProps
	FilteringByEmployee bool
	EndOfTransactions   bool
	// Busy is set while a controller action is in flight; conflicting
	// actions should be disabled.
	Busy bool
}

// Loaded reports whether there is anything to show.
func (s Snapshot) Loaded() bool {
	return s.Transactions != nil
}
