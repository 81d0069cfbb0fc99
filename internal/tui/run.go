package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Veraticus/txnview/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

// Notifier forwards controller snapshots to a running program. Register
// Observe as the controller's observer and pass the notifier to Run.
type Notifier struct {
	program *tea.Program
	mu      sync.RWMutex
}

// NewNotifier creates a notifier with no program attached.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Observe delivers snap to the attached program. Snapshots are dropped
// while no program is running.
func (n *Notifier) Observe(snap view.Snapshot) {
	n.mu.RLock()
	p := n.program
	n.mu.RUnlock()
	if p != nil {
		p.Send(snapshotMsg{snapshot: snap})
	}
}

func (n *Notifier) attach(p *tea.Program) {
	n.mu.Lock()
	n.program = p
	n.mu.Unlock()
}

func (n *Notifier) detach() {
	n.attach(nil)
}

// Run starts the transaction browser and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, controller *view.Controller, opts ...Option) error {
	if controller == nil {
		return fmt.Errorf("controller is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := tea.NewProgram(
		newModel(ctx, controller, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if cfg.Notifier != nil {
		cfg.Notifier.attach(p)
		defer cfg.Notifier.detach()
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
