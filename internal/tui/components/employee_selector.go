// Package components holds the reusable pieces of the transaction view.
package components

import (
	"strings"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/tui/themes"
)

const defaultSelectorRows = 6

// EmployeeSelector is a focusable single-choice list of employees. The
// highlighted row moves with the cursor; the current row is the one that
// was last applied.
type EmployeeSelector struct {
	theme   themes.Theme
	items   []model.Employee
	current model.Employee
	cursor  int
	rows    int
	loading bool
	focused bool
}

// NewEmployeeSelector creates an empty selector whose current value is the
// "All Employees" entry.
func NewEmployeeSelector(theme themes.Theme) EmployeeSelector {
	return EmployeeSelector{
		theme:   theme,
		current: model.EmptyEmployee,
		rows:    defaultSelectorRows,
	}
}

// SetItems replaces the options. The cursor stays on the same employee when
// it is still listed.
func (s *EmployeeSelector) SetItems(items []model.Employee) {
	var highlighted string
	if h := s.Highlighted(); h != nil {
		highlighted = h.ID
	}

	s.items = items
	s.cursor = 0
	for i, item := range items {
		if item.ID == highlighted {
			s.cursor = i
			break
		}
	}
}

// Items returns the options.
func (s EmployeeSelector) Items() []model.Employee {
	return s.items
}

// SetLoading toggles the loading indicator.
func (s *EmployeeSelector) SetLoading(loading bool) {
	s.loading = loading
}

// SetCurrent marks employee as the applied selection.
func (s *EmployeeSelector) SetCurrent(employee model.Employee) {
	s.current = employee
}

// Current returns the applied selection.
func (s EmployeeSelector) Current() model.Employee {
	return s.current
}

// SetRows limits how many options are rendered at once.
func (s *EmployeeSelector) SetRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.rows = rows
}

// Focus gives the selector keyboard focus.
func (s *EmployeeSelector) Focus() { s.focused = true }

// Blur removes keyboard focus.
func (s *EmployeeSelector) Blur() { s.focused = false }

// Focused reports whether the selector has focus.
func (s EmployeeSelector) Focused() bool { return s.focused }

// MoveUp moves the cursor up one option.
func (s *EmployeeSelector) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one option.
func (s *EmployeeSelector) MoveDown() {
	if s.cursor < len(s.items)-1 {
		s.cursor++
	}
}

// Highlighted returns the option under the cursor, or nil when there are none.
func (s EmployeeSelector) Highlighted() *model.Employee {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	employee := s.items[s.cursor]
	return &employee
}

// View renders the selector. spinnerFrame is shown next to the loading text.
func (s EmployeeSelector) View(spinnerFrame string) string {
	var b strings.Builder

	b.WriteString(s.theme.Bold.Render("Employee:"))
	b.WriteString(" " + s.theme.Normal.Render(s.current.FullName()))
	b.WriteString("\n")

	switch {
	case s.loading:
		b.WriteString(spinnerFrame + " " + s.theme.Muted.Render("Loading employees…"))
	case len(s.items) == 0:
		b.WriteString(s.theme.Muted.Render("No employees"))
	default:
		b.WriteString(s.renderItems())
	}

	style := s.theme.BlurredBox
	if s.focused {
		style = s.theme.FocusedBox
	}
	return style.Render(b.String())
}

func (s EmployeeSelector) renderItems() string {
	start := 0
	if s.cursor >= s.rows {
		start = s.cursor - s.rows + 1
	}
	end := min(start+s.rows, len(s.items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := s.items[i]
		marker := "  "
		if item.ID == s.current.ID {
			marker = "• "
		}
		line := marker + item.FullName()

		switch {
		case i == s.cursor && s.focused:
			line = s.theme.Selected.Render("> " + line)
		case i == s.cursor:
			line = s.theme.Highlighted.Render("> " + line)
		default:
			line = s.theme.Normal.Render("  " + line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
