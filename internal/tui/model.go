// Package tui is the interactive transaction browser.
package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/service"
	"github.com/Veraticus/txnview/internal/tui/components"
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/Veraticus/txnview/internal/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus is the pane receiving navigation keys.
type Focus int

const (
	FocusSelector Focus = iota
	FocusTable
)

// Model holds the main TUI state. Everything about transactions comes from
// controller snapshots; the model only adds selection, focus and local
// approval edits on top.
type Model struct {
	ctx        context.Context
	lastError  error
	controller *view.Controller
	approver   service.ApprovalSetter
	approvals  map[string]bool
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	spinner    spinner.Model
	selector   components.EmployeeSelector
	table      components.TransactionTable
	snapshot   view.Snapshot
	focus      Focus
	width      int
	height     int
	quitting   bool
}

func newModel(ctx context.Context, controller *view.Controller, cfg Config) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(cfg.Theme.Spinner),
	)

	m := Model{
		ctx:        ctx,
		controller: controller,
		approver:   cfg.Approver,
		approvals:  make(map[string]bool),
		theme:      cfg.Theme,
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		selector:   components.NewEmployeeSelector(cfg.Theme),
		table:      components.NewTransactionTable(cfg.Theme),
		width:      cfg.Width,
		height:     cfg.Height,
	}
	m.selector.Focus()
	m.handleResize()
	m.applySnapshot(controller.Snapshot())
	return m
}

// Init starts the spinner and bootstraps the view.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, bootstrapCmd(m.ctx, m.controller))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case snapshotMsg:
		m.applySnapshot(msg.snapshot)

	case actionDoneMsg:
		m.applySnapshot(msg.snapshot)
		m.handleActionResult(msg.action, msg.err)

	case approvalMsg:
		if msg.err != nil {
			common.LogError(msg.err, "Failed to update approval", common.Fields{"transaction_id": msg.id})
			m.lastError = msg.err
			break
		}
		m.approvals[msg.id] = msg.approved
		m.table.SetTransactions(m.snapshot.Transactions, m.approvals)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.SwitchFocus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keymap.ViewMore):
		return m.viewMore()

	case key.Matches(msg, m.keymap.ToggleApproval):
		return m, m.toggleApproval()
	}

	if m.focus == FocusTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Up):
		m.selector.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.selector.MoveDown()
	case key.Matches(msg, m.keymap.Select):
		return m.applySelection()
	}
	return m, nil
}

// applySelection mirrors a select control: only a change of value is
// forwarded, and nothing is forwarded while another action runs.
func (m Model) applySelection() (tea.Model, tea.Cmd) {
	if m.snapshot.Busy {
		return m, nil
	}
	employee := m.selector.Highlighted()
	if employee == nil || employee.ID == m.selector.Current().ID {
		return m, nil
	}

	m.selector.SetCurrent(*employee)
	m.snapshot.Busy = true
	m.lastError = nil
	return m, selectCmd(m.ctx, m.controller, *employee)
}

func (m Model) viewMore() (tea.Model, tea.Cmd) {
	props := m.snapshot.ViewMore
	if m.snapshot.Busy || !props.Visible || props.Disabled {
		return m, nil
	}
	m.snapshot.Busy = true
	m.lastError = nil
	return m, viewMoreCmd(m.ctx, m.controller)
}

func (m Model) toggleApproval() tea.Cmd {
	if m.approver == nil {
		return nil
	}
	txn := m.table.Highlighted()
	if txn == nil {
		return nil
	}
	return approvalCmd(m.ctx, m.approver, txn.ID, !txn.Approved)
}

func (m *Model) handleActionResult(action string, err error) {
	switch {
	case err == nil:
		m.lastError = nil
	case errors.Is(err, context.Canceled), errors.Is(err, view.ErrViewMoreUnavailable):
		slog.Debug("Action dropped", "action", action, "error", err)
	default:
		common.LogError(err, "Action failed", common.Fields{"action": action})
		m.lastError = err
	}
}

func (m *Model) applySnapshot(snap view.Snapshot) {
	m.snapshot = snap
	m.selector.SetItems(snap.Selector.Items)
	m.selector.SetLoading(snap.Selector.IsLoading)
	m.table.SetTransactions(snap.Transactions, m.approvals)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSelector {
		m.focus = FocusTable
		m.selector.Blur()
		m.table.Focus()
		return
	}
	m.focus = FocusSelector
	m.table.Blur()
	m.selector.Focus()
}

func (m *Model) handleResize() {
	m.help.Width = m.width
	// Title, selector header, View More, error and help lines plus borders.
	const chrome = 14
	rows := max(m.height-chrome, 6)
	m.selector.SetRows(min(rows/3, 8))
	m.table.SetHeight(rows - rows/3)
}

// Focus returns the pane that receives navigation keys.
func (m Model) Focus() Focus {
	return m.focus
}

// Snapshot returns the last controller snapshot applied.
func (m Model) Snapshot() view.Snapshot {
	return m.snapshot
}

// Err returns the error currently shown, if any.
func (m Model) Err() error {
	return m.lastError
}
