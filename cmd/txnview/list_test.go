package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/Veraticus/txnview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSource(t *testing.T, pageSize int) *source.Source {
	t.Helper()
	store := createTestStorage(t)
	data, err := parseSeedData(strings.NewReader(seedJSON))
	require.NoError(t, err)
	require.NoError(t, loadSeed(context.Background(), store, data, &bytes.Buffer{}))
	return source.New(store, source.WithPageSize(pageSize))
}

func ids(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, txn := range txns {
		out[i] = txn.ID
	}
	return out
}

func TestListTransactions(t *testing.T) {
	tests := []struct {
		name string
		opts listOptions
		want []string
	}{
		{name: "first page", opts: listOptions{pages: 1}, want: []string{"t3", "t2"}},
		{name: "two pages", opts: listOptions{pages: 2}, want: []string{"t3", "t2", "t1"}},
		{name: "more pages than exist", opts: listOptions{pages: 9}, want: []string{"t3", "t2", "t1"}},
		{name: "one employee", opts: listOptions{pages: 1, employeeID: "e1"}, want: []string{"t2", "t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := seededSource(t, 2)
			txns, err := listTransactions(context.Background(), src, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(txns))
		})
	}
}

func TestListTransactions_UnknownEmployee(t *testing.T) {
	src := seededSource(t, 2)
	_, err := listTransactions(context.Background(), src, listOptions{pages: 1, employeeID: "nobody"})

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "nobody")
}

func TestListTransactions_EmptyDatabase(t *testing.T) {
	src := source.New(createTestStorage(t))
	txns, err := listTransactions(context.Background(), src, listOptions{pages: 3})
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestWriteTransactions(t *testing.T) {
	src := seededSource(t, 5)
	txns, err := listTransactions(context.Background(), src, listOptions{pages: 1})
	require.NoError(t, err)

	var table bytes.Buffer
	require.NoError(t, writeTransactions(&table, txns, "table"))
	assert.Contains(t, table.String(), "Staples")
	assert.Contains(t, table.String(), "Grace Hopper")

	var out bytes.Buffer
	require.NoError(t, writeTransactions(&out, txns, "json"))
	var decoded []model.Transaction
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, ids(txns), ids(decoded))

	var empty bytes.Buffer
	require.NoError(t, writeTransactions(&empty, nil, "json"))
	assert.Equal(t, "[]\n", empty.String())
}

func TestListTransactions_DefaultPageSize(t *testing.T) {
	db := testutil.SetupTestDB(t, testutil.NewFixtures().
		WithEmployee(testutil.Ada, testutil.Grace).
		WithTransactions(testutil.Ada, 4).
		WithTransactions(testutil.Grace, 3))
	src := source.New(db.Storage)

	first, err := listTransactions(context.Background(), src, listOptions{pages: 1})
	require.NoError(t, err)
	assert.Equal(t, db.TransactionIDs()[:source.DefaultPageSize], ids(first))

	all, err := listTransactions(context.Background(), src, listOptions{pages: 2})
	require.NoError(t, err)
	assert.Equal(t, db.TransactionIDs(), ids(all))

	grace, err := listTransactions(context.Background(), src, listOptions{pages: 1, employeeID: testutil.Grace.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"txn-004", "txn-005", "txn-006"}, ids(grace))
}
