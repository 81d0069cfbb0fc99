package tui

import (
	"github.com/Veraticus/txnview/internal/service"
	"github.com/Veraticus/txnview/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Approver service.ApprovalSetter
	Notifier *Notifier
	Width    int
	Height   int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  100,
		Height: 30,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithApprover enables toggling a transaction's approval.
func WithApprover(approver service.ApprovalSetter) Option {
	return func(c *Config) {
		c.Approver = approver
	}
}

// WithNotifier forwards controller snapshots into the running program. The
// same notifier must be registered as the controller's observer.
func WithNotifier(n *Notifier) Option {
	return func(c *Config) {
		c.Notifier = n
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
