package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/txnview/internal/source"
	"github.com/Veraticus/txnview/internal/storage"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(appConfig.DatabasePath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newSource wraps store with the configured page size and simulated latency.
func newSource(store source.Store) *source.Source {
	return source.New(store,
		source.WithPageSize(appConfig.PageSize),
		source.WithDelay(appConfig.FetchDelay),
	)
}
