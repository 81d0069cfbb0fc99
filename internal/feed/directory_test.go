package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_FetchAll(t *testing.T) {
	employees := []model.Employee{
		{ID: "a", FirstName: "Ann"},
		{ID: "b", FirstName: "Ben"},
	}
	fetcher := &fakeDirectory{employees: employees}
	dir := NewDirectory(fetcher)

	assert.False(t, dir.Loaded())
	assert.Nil(t, dir.Employees())

	require.NoError(t, dir.FetchAll(context.Background()))
	assert.True(t, dir.Loaded())
	assert.False(t, dir.Loading())
	assert.Equal(t, employees, dir.Employees())

	// Re-fetching replaces the list
	fetcher.employees = employees[:1]
	require.NoError(t, dir.FetchAll(context.Background()))
	assert.Equal(t, employees[:1], dir.Employees())
	assert.Equal(t, 2, fetcher.calls)
}

func TestDirectory_EmptyDirectoryIsLoaded(t *testing.T) {
	dir := NewDirectory(&fakeDirectory{})

	require.NoError(t, dir.FetchAll(context.Background()))
	assert.True(t, dir.Loaded())
	assert.NotNil(t, dir.Employees())
	assert.Empty(t, dir.Employees())
}

func TestDirectory_LoadingDuringFetch(t *testing.T) {
	g := newGate()
	dir := NewDirectory(&fakeDirectory{gate: g, employees: []model.Employee{{ID: "a"}}})

	done := make(chan error, 1)
	go func() { done <- dir.FetchAll(context.Background()) }()

	<-g.started
	assert.True(t, dir.Loading())
	assert.False(t, dir.Loaded())

	g.open()
	require.NoError(t, <-done)
	assert.False(t, dir.Loading())
	assert.True(t, dir.Loaded())
}

func TestDirectory_FailureKeepsPriorList(t *testing.T) {
	fetcher := &fakeDirectory{employees: []model.Employee{{ID: "a"}}}
	dir := NewDirectory(fetcher)
	require.NoError(t, dir.FetchAll(context.Background()))

	cause := errors.New("backend down")
	fetcher.err = cause
	err := dir.FetchAll(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.False(t, dir.Loading())
	assert.Equal(t, []model.Employee{{ID: "a"}}, dir.Employees())
}

func TestDirectory_InvalidateDiscardsInFlight(t *testing.T) {
	g := newGate()
	dir := NewDirectory(&fakeDirectory{gate: g, employees: []model.Employee{{ID: "a"}}})

	done := make(chan error, 1)
	go func() { done <- dir.FetchAll(context.Background()) }()
	<-g.started

	dir.Invalidate()
	g.open()

	require.NoError(t, <-done)
	assert.False(t, dir.Loaded())
	assert.False(t, dir.Loading())
}

func TestDirectory_OnChange(t *testing.T) {
	dir := NewDirectory(&fakeDirectory{employees: []model.Employee{{ID: "a"}}})

	calls := 0
	dir.OnChange(func() {
		calls++
		// Listeners may read the feed without deadlocking.
		_ = dir.Employees()
	})

	require.NoError(t, dir.FetchAll(context.Background()))
	assert.Equal(t, 2, calls, "start and finish")

	dir.Invalidate()
	assert.Equal(t, 3, calls)
}
