package main

import (
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/txnview/internal/storage"
	"github.com/Veraticus/txnview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	return testutil.SetupTestDB(t, nil).Storage
}

const seedJSON = `{
  "employees": [
    {"id": "e1", "firstName": "Ada", "lastName": "Lovelace"}
  ],
  "transactions": [
    {"id": "t1", "amount": 12.5, "employee": {"id": "e1", "firstName": "Ada", "lastName": "Lovelace"}, "merchant": "Blue Bottle", "date": "2024-03-09", "approved": true},
    {"id": "t2", "amount": 300, "employeeId": "e1", "merchant": "Delta", "date": "2024-03-10T08:30:00Z"},
    {"id": "t3", "amount": 42, "employee": {"id": "e2", "firstName": "Grace", "lastName": "Hopper"}, "merchant": "Staples", "date": "03/11/2024"}
  ]
}`

func TestParseSeedData(t *testing.T) {
	data, err := parseSeedData(strings.NewReader(seedJSON))
	require.NoError(t, err)

	require.Len(t, data.Employees, 2, "employee from a transaction is added")
	assert.Equal(t, "Grace", data.Employees[1].FirstName)

	require.Len(t, data.Transactions, 3)
	assert.True(t, data.Transactions[0].Approved)
	assert.Equal(t, "Ada", data.Transactions[1].Employee.FirstName, "employeeId resolved")
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), data.Transactions[0].Date)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), data.Transactions[2].Date)
}

func TestParseSeedData_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "not json", input: "nope", wantErr: "invalid seed JSON"},
		{name: "bad date", input: `{"transactions":[{"id":"t1","employeeId":"e1","date":"yesterday"}]}`, wantErr: "unrecognized date"},
		{name: "unknown employee", input: `{"transactions":[{"id":"t1","employeeId":"e9","date":"2024-01-01"}]}`, wantErr: "unknown employee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSeedData(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateSeedData(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	data := generateSeedData(rand.New(rand.NewPCG(1, 2)), 12, 40, now)

	require.Len(t, data.Employees, 12)
	require.Len(t, data.Transactions, 40)

	ids := make(map[string]bool)
	for _, e := range data.Employees {
		assert.NotEmpty(t, e.ID)
		assert.False(t, ids[e.ID])
		ids[e.ID] = true
	}
	for _, txn := range data.Transactions {
		assert.True(t, ids[txn.Employee.ID], "transaction belongs to a generated employee")
		assert.Positive(t, txn.Amount)
		assert.False(t, txn.Date.After(now))
		assert.True(t, txn.Date.After(now.AddDate(0, 0, -91)))
	}
}

func TestLoadSeed(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	data := generateSeedData(rand.New(rand.NewPCG(3, 4)), 3, seedBatchSize+7, time.Now())
	require.NoError(t, loadSeed(ctx, store, data, io.Discard))

	counts, err := store.GetCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Employees)
	assert.Equal(t, seedBatchSize+7, counts.Transactions)
}

func TestLoadSeed_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := createTestStorage(t)

	data := generateSeedData(rand.New(rand.NewPCG(5, 6)), 1, 5, time.Now())
	err := loadSeed(ctx, store, data, io.Discard)
	assert.Error(t, err)
}
