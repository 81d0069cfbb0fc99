// Package testutil provides shared test fixtures backed by an in-memory database.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/storage"
)

// TestDB is a migrated in-memory database plus the fixtures written to it.
type TestDB struct {
	Storage      *storage.SQLiteStorage
	Employees    []model.Employee
	Transactions []model.Transaction
}

// SetupTestDB creates a new in-memory test database, writes the fixtures
// from b (which may be nil) and closes the database when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.NewFixtures().
//		WithEmployee(testutil.Ada).
//		WithTransactions(testutil.Ada, 7))
func SetupTestDB(t *testing.T, b *Fixtures) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Logf("failed to close test database: %v", closeErr)
		}
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db := &TestDB{Storage: store}
	if b == nil {
		return db
	}

	if len(b.employees) > 0 {
		if err := store.SaveEmployees(ctx, b.employees); err != nil {
			t.Fatalf("failed to seed employees: %v", err)
		}
	}
	if len(b.transactions) > 0 {
		if err := store.SaveTransactions(ctx, b.transactions); err != nil {
			t.Fatalf("failed to seed transactions: %v", err)
		}
	}
	db.Employees = b.employees
	db.Transactions = b.transactions
	return db
}

// TransactionIDs returns the IDs of the seeded transactions, newest first,
// which is the order pages are served in.
func (db *TestDB) TransactionIDs() []string {
	ids := make([]string, len(db.Transactions))
	for i, txn := range db.Transactions {
		ids[i] = txn.ID
	}
	return ids
}
