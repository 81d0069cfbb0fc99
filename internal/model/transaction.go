// Package model defines the records shared by storage, feeds and views.
package model

import (
	"fmt"
	"time"
)

// Transaction represents a single card transaction made by an employee.
type Transaction struct {
	Date     time.Time `json:"date"`
	ID       string    `json:"id"`
	Merchant string    `json:"merchant"`
	Employee Employee  `json:"employee"`
	Amount   float64   `json:"amount"`
	Approved bool      `json:"approved"`
}

// FormattedAmount renders the amount in dollars.
func (t Transaction) FormattedAmount() string {
	if t.Amount < 0 {
		return fmt.Sprintf("-$%.2f", -t.Amount)
	}
	return fmt.Sprintf("$%.2f", t.Amount)
}
