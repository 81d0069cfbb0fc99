package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/txnview/internal/cli"
	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/Veraticus/txnview/internal/view"
	"github.com/spf13/cobra"
)

type listOptions struct {
	employeeID string
	format     string
	pages      int
}

func listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print transactions without the interactive browser",
		Long: `Print the transactions the browser would show.

Without --employee the first --pages pages of all transactions are
printed, newest first. With --employee every transaction of that
employee is printed.`,
		Example: `  txnview list --pages 3
  txnview list --employee 7c1e --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.employeeID, "employee", "", "only show transactions of this employee ID")
	cmd.Flags().IntVar(&opts.pages, "pages", 1, "number of pages to load when showing all transactions")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format (table, json)")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	if opts.pages < 1 {
		return common.NewUserError("--pages must be at least 1", nil)
	}
	if opts.format != "table" && opts.format != "json" {
		return common.NewUserError(fmt.Sprintf("unknown format %q", opts.format), nil)
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txns, err := listTransactions(ctx, newSource(store), opts)
	if err != nil {
		return err
	}
	return writeTransactions(cmd.OutOrStdout(), txns, opts.format)
}

// listTransactions drives a view controller the way a user would: open the
// view, optionally pick an employee, then press View More until enough
// pages are shown or there are no more.
func listTransactions(ctx context.Context, src *source.Source, opts listOptions) ([]model.Transaction, error) {
	session := view.NewSession(src, src, src)
	defer session.Close()
	controller := view.NewController(session)

	if _, err := controller.Bootstrap(ctx); err != nil {
		return nil, err
	}

	if opts.employeeID != "" {
		if !hasEmployee(controller.Snapshot().Selector.Items, opts.employeeID) {
			return nil, common.NewUserError(fmt.Sprintf("unknown employee %q", opts.employeeID), nil)
		}
		if err := controller.LoadTransactionsByEmployee(ctx, opts.employeeID); err != nil {
			return nil, err
		}
		return controller.Snapshot().Transactions, nil
	}

	for page := 1; page < opts.pages; page++ {
		err := controller.ViewMore(ctx)
		if errors.Is(err, view.ErrViewMoreUnavailable) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return controller.Snapshot().Transactions, nil
}

func hasEmployee(items []model.Employee, id string) bool {
	for _, e := range items {
		if e.ID == id {
			return true
		}
	}
	return false
}

func writeTransactions(w io.Writer, txns []model.Transaction, format string) error {
	if txns == nil {
		txns = []model.Transaction{}
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(txns)
	}

	if len(txns) == 0 {
		_, err := fmt.Fprintln(w, cli.FormatInfo("No transactions found"))
		return err
	}
	_, err := fmt.Fprintln(w, cli.RenderTransactions(txns))
	return err
}
