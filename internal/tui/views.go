package tui

import (
	"fmt"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("Transactions"),
		m.selector.View(m.spinner.View()),
		m.table.View(),
	}
	if line := m.renderViewMore(); line != "" {
		sections = append(sections, line)
	}
	if m.lastError != nil {
		sections = append(sections, m.theme.StatusError.Render("Error: "+common.UserMessage(m.lastError)))
	}
	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderViewMore() string {
	snap := m.snapshot
	props := snap.ViewMore

	switch {
	case props.Visible && props.Disabled:
		return m.theme.ButtonOff.Render("View More") + " " + m.spinner.View()
	case props.Visible:
		return m.theme.Button.Render("View More") + " " + m.theme.Muted.Render("(m)")
	case snap.Loaded() && snap.EndOfTransactions && !snap.FilteringByEmployee:
		return m.theme.Muted.Render("All transactions shown")
	case snap.FilteringByEmployee:
		return m.theme.Muted.Render(countLabel(len(snap.Transactions)))
	default:
		return ""
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 transaction"
	}
	return fmt.Sprintf("%d transactions", n)
}
