package cli

import (
	"strings"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TransactionHeaders are the column titles used wherever transactions are tabulated.
var TransactionHeaders = []string{"Date", "Employee", "Merchant", "Amount", "Approved"}

// TransactionRow flattens a transaction into table cells.
func TransactionRow(txn model.Transaction) []string {
	approved := ""
	if txn.Approved {
		approved = SuccessIcon
	}
	return []string{
		txn.Date.Format("2006-01-02"),
		txn.Employee.FullName(),
		txn.Merchant,
		txn.FormattedAmount(),
		approved,
	}
}

// RenderTransactions renders transactions as a borderless table.
func RenderTransactions(txns []model.Transaction) string {
	rows := make([][]string, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, TransactionRow(txn))
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(TransactionHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := TableCellStyle
			if row == table.HeaderRow {
				style = TableHeaderStyle
			}
			if col == 3 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	return strings.TrimRight(t.Render(), "\n")
}
