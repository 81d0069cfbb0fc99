package testutil

import (
	"fmt"
	"time"

	"github.com/Veraticus/txnview/internal/model"
)

// Common employees used across tests.
var (
	Ada   = model.Employee{ID: "emp-ada", FirstName: "Ada", LastName: "Lovelace"}
	Grace = model.Employee{ID: "emp-grace", FirstName: "Grace", LastName: "Hopper"}
	Alan  = model.Employee{ID: "emp-alan", FirstName: "Alan", LastName: "Turing"}
)

// BaseDate is the date of the newest generated transaction.
var BaseDate = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

// Fixtures builds employees and transactions for SetupTestDB. Generated
// transactions get strictly decreasing dates one day apart, so their
// insertion order is also their page order.
type Fixtures struct {
	employees    []model.Employee
	transactions []model.Transaction
}

// NewFixtures starts an empty fixture set.
func NewFixtures() *Fixtures {
	return &Fixtures{}
}

// WithEmployee adds employees.
func (f *Fixtures) WithEmployee(employees ...model.Employee) *Fixtures {
	f.employees = append(f.employees, employees...)
	return f
}

// WithTransactions appends n transactions made by employee.
func (f *Fixtures) WithTransactions(employee model.Employee, n int) *Fixtures {
	for range n {
		i := len(f.transactions)
		f.transactions = append(f.transactions, model.Transaction{
			ID:       fmt.Sprintf("txn-%03d", i),
			Amount:   float64(10 + i),
			Employee: employee,
			Merchant: fmt.Sprintf("Merchant %d", i),
			Date:     BaseDate.AddDate(0, 0, -i),
		})
	}
	return f
}
