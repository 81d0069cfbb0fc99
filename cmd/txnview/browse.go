package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/tui"
	"github.com/Veraticus/txnview/internal/view"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse transactions interactively",
		Long: `Open the interactive transaction browser.

All transactions are listed newest first, a page at a time; press m for
more. Pick an employee to see only their transactions.`,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// The alternate screen owns the terminal, so logs go to a file.
	logFile, err := openLogFile(appConfig.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()
	if err := setupLogging(logFile); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	ctx = common.WithLogger(ctx, slog.Default().With("command", "browse"))

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("Failed to close storage", "error", closeErr)
		}
	}()

	src := newSource(store)
	session := view.NewSession(src, src, src)
	defer session.Close()

	notifier := tui.NewNotifier()
	controller := view.NewController(session, view.WithObserver(notifier.Observe))

	common.LogInfo("Starting transaction browser", common.Fields{
		"database":  store.Path(),
		"page_size": src.PageSize(),
	})
	return tui.Run(ctx, controller,
		tui.WithNotifier(notifier),
		tui.WithApprover(src),
	)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
