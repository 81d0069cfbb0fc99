package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/Veraticus/txnview/internal/cli"
	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/service"
	"github.com/spf13/cobra"
)

const seedBatchSize = 50

type seedOptions struct {
	file         string
	employees    int
	transactions int
}

func seedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load employees and transactions into the database",
		Long: `Load data from a JSON file shaped like

  {"employees": [...], "transactions": [...]}

or, without --file, generate random demo data.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON file to load")
	cmd.Flags().IntVar(&opts.employees, "employees", 8, "employees to generate")
	cmd.Flags().IntVar(&opts.transactions, "transactions", 60, "transactions to generate")

	return cmd
}

func runSeed(cmd *cobra.Command, opts seedOptions) error {
	out := cmd.OutOrStdout()

	var (
		data seedData
		err  error
	)
	if opts.file != "" {
		data, err = readSeedFile(opts.file)
		if err != nil {
			return err
		}
	} else {
		if opts.employees < 1 || opts.transactions < 0 {
			return common.NewUserError("--employees must be at least 1 and --transactions cannot be negative", nil)
		}
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)) //nolint:gosec // demo data
		data = generateSeedData(rng, opts.employees, opts.transactions, time.Now())
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Seeding interrupted! Batches already written are kept.")
	ctx, stop := interrupts.HandleInterrupts(cmd.Context())
	defer stop()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	fmt.Fprintln(out, cli.FormatTitle("Seeding transactions"))
	if err := loadSeed(ctx, store, data, out); err != nil {
		if interrupts.WasInterrupted() {
			return common.NewUserError("seeding interrupted", err)
		}
		return err
	}

	counts, err := store.GetCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, cli.RenderBox("Database", fmt.Sprintf(
		"Employees: %d\nTransactions: %d\nPath: %s",
		counts.Employees, counts.Transactions, store.Path(),
	)))
	return nil
}

func readSeedFile(path string) (seedData, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided path is intended
	if err != nil {
		return seedData{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := parseSeedData(f)
	if err != nil {
		return seedData{}, common.NewUserError(fmt.Sprintf("could not read %s", path), err)
	}
	return data, nil
}

// loadSeed writes employees first, then transactions in batches with a
// progress bar on w.
func loadSeed(ctx context.Context, store service.Storage, data seedData, w io.Writer) error {
	if len(data.Employees) > 0 {
		if err := store.SaveEmployees(ctx, data.Employees); err != nil {
			return fmt.Errorf("failed to save employees: %w", err)
		}
	}
	if len(data.Transactions) == 0 {
		return nil
	}

	bar := cli.NewProgressBar(w, len(data.Transactions), "Saving transactions...")
	for start := 0; start < len(data.Transactions); start += seedBatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+seedBatchSize, len(data.Transactions))
		if err := store.SaveTransactions(ctx, data.Transactions[start:end]); err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		if err := bar.Add(end - start); err != nil {
			slog.Debug("Progress bar update failed", "error", err)
		}
	}
	return nil
}
