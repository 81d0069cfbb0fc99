package components

import (
	"github.com/Veraticus/txnview/internal/cli"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TransactionTable renders the displayed transactions with bubbles/table.
type TransactionTable struct {
	theme        themes.Theme
	transactions []model.Transaction
	table        table.Model
}

// NewTransactionTable creates a table with nothing loaded.
func NewTransactionTable(theme themes.Theme) TransactionTable {
	columns := []table.Column{
		{Title: cli.TransactionHeaders[0], Width: 10},
		{Title: cli.TransactionHeaders[1], Width: 20},
		{Title: cli.TransactionHeaders[2], Width: 24},
		{Title: cli.TransactionHeaders[3], Width: 11},
		{Title: cli.TransactionHeaders[4], Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return TransactionTable{theme: theme, table: t}
}

// SetTransactions replaces the rows. A nil slice means nothing is loaded yet.
// approvals overrides the approved flag of individual transactions by ID.
func (t *TransactionTable) SetTransactions(txns []model.Transaction, approvals map[string]bool) {
	if txns == nil {
		t.transactions = nil
		t.table.SetRows(nil)
		return
	}

	t.transactions = make([]model.Transaction, len(txns))
	rows := make([]table.Row, len(txns))
	for i, txn := range txns {
		if approved, ok := approvals[txn.ID]; ok {
			txn.Approved = approved
		}
		t.transactions[i] = txn
		rows[i] = table.Row(cli.TransactionRow(txn))
	}
	t.table.SetRows(rows)
}

// Len returns the number of rows.
func (t TransactionTable) Len() int {
	return len(t.transactions)
}

// Loaded reports whether transactions have been set.
func (t TransactionTable) Loaded() bool {
	return t.transactions != nil
}

// Highlighted returns the transaction under the cursor, or nil.
func (t TransactionTable) Highlighted() *model.Transaction {
	i := t.table.Cursor()
	if i < 0 || i >= len(t.transactions) {
		return nil
	}
	txn := t.transactions[i]
	return &txn
}

// SetHeight sets the number of visible rows.
func (t *TransactionTable) SetHeight(h int) {
	t.table.SetHeight(max(h, 3))
}

// Focus gives the table keyboard focus.
func (t *TransactionTable) Focus() { t.table.Focus() }

// Blur removes keyboard focus.
func (t *TransactionTable) Blur() { t.table.Blur() }

// Focused reports whether the table has focus.
func (t TransactionTable) Focused() bool { return t.table.Focused() }

// Update handles navigation keys while focused.
func (t TransactionTable) Update(msg tea.Msg) (TransactionTable, tea.Cmd) {
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return t, cmd
}

// View renders the table, or a placeholder while nothing is loaded.
func (t TransactionTable) View() string {
	style := t.theme.BlurredBox
	if t.table.Focused() {
		style = t.theme.FocusedBox
	}

	switch {
	case t.transactions == nil:
		return style.Render(t.theme.Muted.Render("Loading transactions…"))
	case len(t.transactions) == 0:
		return style.Render(t.theme.Muted.Render("No transactions"))
	default:
		return style.Render(t.table.View())
	}
}
