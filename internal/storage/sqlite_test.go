package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	cleanup := func() {
		_ = store.Close()
	}

	return store, cleanup
}

var (
	testAlice = model.Employee{ID: "emp_alice", FirstName: "Alice", LastName: "Anders"}
	testBob   = model.Employee{ID: "emp_bob", FirstName: "Bob", LastName: "Baker"}
)

// seedTransactions stores n transactions alternating between Alice and Bob,
// dated one day apart so txn_0 is the newest.
func seedTransactions(t *testing.T, store *SQLiteStorage, n int) []model.Transaction {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.SaveEmployees(ctx, []model.Employee{testAlice, testBob}))

	base := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	transactions := make([]model.Transaction, n)
	for i := range transactions {
		emp := testAlice
		if i%2 == 1 {
			emp = testBob
		}
		transactions[i] = model.Transaction{
			ID:       fmt.Sprintf("txn_%02d", i),
			Amount:   float64(10 + i),
			Employee: emp,
			Merchant: fmt.Sprintf("Merchant %d", i),
			Date:     base.AddDate(0, 0, -i),
		}
	}
	require.NoError(t, store.SaveTransactions(ctx, transactions))

	return transactions
}

func TestNewSQLiteStorage_InMemory(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Migrate(context.Background()))
	counts, err := store.GetCounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.Employees)
	assert.Zero(t, counts.Transactions)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestSQLiteStorage_Migrate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op
	require.NoError(t, store.Migrate(ctx))

	var indexCount int
	err = store.db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='index' AND name IN ('idx_transactions_employee', 'idx_transactions_date_id')
	`).Scan(&indexCount)
	require.NoError(t, err)
	assert.Equal(t, 2, indexCount)
}

func TestSQLiteStorage_Employees(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.SaveEmployees(ctx, []model.Employee{testBob, testAlice}))

	employees, err := store.GetEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Employee{testAlice, testBob}, employees)

	// Upsert replaces names
	renamed := testBob
	renamed.LastName = "Brown"
	require.NoError(t, store.SaveEmployees(ctx, []model.Employee{renamed}))

	employees, err = store.GetEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Brown", employees[1].LastName)
}

func TestSQLiteStorage_GetEmployeesEmpty(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	employees, err := store.GetEmployees(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestSQLiteStorage_GetCounts(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	seedTransactions(t, store, 7)

	counts, err := store.GetCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Employees)
	assert.Equal(t, 7, counts.Transactions)
}
