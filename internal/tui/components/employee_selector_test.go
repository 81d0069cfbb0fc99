package components

import (
	"testing"

	"github.com/Veraticus/txnview/internal/model"
	tuitest "github.com/Veraticus/txnview/internal/tui/testing"
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ada   = model.Employee{ID: "e1", FirstName: "Ada", LastName: "Lovelace"}
	grace = model.Employee{ID: "e2", FirstName: "Grace", LastName: "Hopper"}
)

func TestEmployeeSelector_Empty(t *testing.T) {
	s := NewEmployeeSelector(themes.Default)

	assert.Nil(t, s.Highlighted())
	assert.Equal(t, model.EmptyEmployee, s.Current())

	out := tuitest.StripANSI(s.View("*"))
	assert.Contains(t, out, "All Employees")
	assert.Contains(t, out, "No employees")
}

func TestEmployeeSelector_Loading(t *testing.T) {
	s := NewEmployeeSelector(themes.Default)
	s.SetLoading(true)

	out := tuitest.StripANSI(s.View("*"))
	assert.Contains(t, out, "* Loading employees…")
}

func TestEmployeeSelector_Navigation(t *testing.T) {
	s := NewEmployeeSelector(themes.Default)
	s.SetItems([]model.Employee{model.EmptyEmployee, ada, grace})

	require.NotNil(t, s.Highlighted())
	assert.Equal(t, "", s.Highlighted().ID)

	s.MoveUp()
	assert.Equal(t, "", s.Highlighted().ID, "cursor stops at the top")

	s.MoveDown()
	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, grace.ID, s.Highlighted().ID, "cursor stops at the bottom")
}

func TestEmployeeSelector_SetItemsKeepsCursor(t *testing.T) {
	s := NewEmployeeSelector(themes.Default)
	s.SetItems([]model.Employee{model.EmptyEmployee, ada, grace})
	s.MoveDown()
	s.MoveDown()

	s.SetItems([]model.Employee{model.EmptyEmployee, grace})
	assert.Equal(t, grace.ID, s.Highlighted().ID)

	s.SetItems([]model.Employee{model.EmptyEmployee, ada})
	assert.Equal(t, "", s.Highlighted().ID, "falls back to the first option")
}

func TestEmployeeSelector_ViewWindow(t *testing.T) {
	s := NewEmployeeSelector(themes.Default)
	s.SetRows(2)
	s.SetItems([]model.Employee{model.EmptyEmployee, ada, grace})
	s.SetCurrent(grace)
	s.Focus()
	s.MoveDown()
	s.MoveDown()

	out := tuitest.StripANSI(s.View(""))
	assert.Contains(t, out, "Employee: Grace Hopper")
	assert.Contains(t, out, "> • Grace Hopper")
	assert.NotContains(t, out, "All Employees", "first option scrolled out")
	assert.True(t, s.Focused())
}
