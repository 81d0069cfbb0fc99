package tui

import (
	"context"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/service"
	"github.com/Veraticus/txnview/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

func runAction(ctx context.Context, c *view.Controller, action string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := fn(ctx)
		return actionDoneMsg{
			action:   action,
			err:      err,
			snapshot: c.Snapshot(),
		}
	}
}

func bootstrapCmd(ctx context.Context, c *view.Controller) tea.Cmd {
	return runAction(ctx, c, "bootstrap", func(ctx context.Context) error {
		_, err := c.Bootstrap(ctx)
		return err
	})
}

func selectCmd(ctx context.Context, c *view.Controller, employee model.Employee) tea.Cmd {
	return runAction(ctx, c, "select", func(ctx context.Context) error {
		return c.Select(ctx, &employee)
	})
}

func viewMoreCmd(ctx context.Context, c *view.Controller) tea.Cmd {
	return runAction(ctx, c, "view_more", c.ViewMore)
}

func approvalCmd(ctx context.Context, approver service.ApprovalSetter, id string, approved bool) tea.Cmd {
	return func() tea.Msg {
		err := approver.SetTransactionApproval(ctx, id, approved)
		return approvalMsg{id: id, approved: approved, err: err}
	}
}
