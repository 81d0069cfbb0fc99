package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/Veraticus/txnview/internal/model"
	"github.com/google/uuid"
)

// seedData is what the seed command writes to storage.
type seedData struct {
	Employees    []model.Employee
	Transactions []model.Transaction
}

type seedFile struct {
	Employees    []model.Employee  `json:"employees"`
	Transactions []seedTransaction `json:"transactions"`
}

// seedTransaction accepts either an embedded employee or an employeeId.
type seedTransaction struct {
	Employee   *model.Employee `json:"employee"`
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Merchant   string          `json:"merchant"`
	Date       string          `json:"date"`
	Amount     float64         `json:"amount"`
	Approved   bool            `json:"approved"`
}

var seedDateLayouts = []string{time.RFC3339, "2006-01-02", "01/02/2006"}

func parseSeedDate(s string) (time.Time, error) {
	for _, layout := range seedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseSeedData decodes a seed file. Employees referenced only from
// transactions are added to the employee list.
func parseSeedData(r io.Reader) (seedData, error) {
	var file seedFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return seedData{}, fmt.Errorf("invalid seed JSON: %w", err)
	}

	employees := make(map[string]model.Employee, len(file.Employees))
	data := seedData{Employees: append([]model.Employee(nil), file.Employees...)}
	for _, e := range file.Employees {
		employees[e.ID] = e
	}

	for i, raw := range file.Transactions {
		date, err := parseSeedDate(raw.Date)
		if err != nil {
			return seedData{}, fmt.Errorf("transaction %d (%s): %w", i, raw.ID, err)
		}

		employee := model.Employee{ID: raw.EmployeeID}
		if raw.Employee != nil {
			employee = *raw.Employee
		}
		if known, ok := employees[employee.ID]; ok {
			employee = known
		} else if employee.ID != "" {
			if employee.FirstName == "" && employee.LastName == "" {
				return seedData{}, fmt.Errorf("transaction %d (%s): unknown employee %q", i, raw.ID, employee.ID)
			}
			employees[employee.ID] = employee
			data.Employees = append(data.Employees, employee)
		}

		id := raw.ID
		if id == "" {
			id = uuid.NewString()
		}
		data.Transactions = append(data.Transactions, model.Transaction{
			ID:       id,
			Amount:   raw.Amount,
			Employee: employee,
			Merchant: raw.Merchant,
			Date:     date,
			Approved: raw.Approved,
		})
	}

	return data, nil
}

var (
	demoFirstNames = []string{"Ada", "Grace", "Alan", "Katherine", "Edsger", "Barbara", "Donald", "Margaret", "Linus", "Radia"}
	demoLastNames  = []string{"Lovelace", "Hopper", "Turing", "Johnson", "Dijkstra", "Liskov", "Knuth", "Hamilton", "Torvalds", "Perlman"}
	demoMerchants  = []string{
		"Delta Air Lines", "Blue Bottle Coffee", "Office Depot", "Uber", "Marriott",
		"Amazon Web Services", "Staples", "Hertz", "Chipotle", "Apple Store",
	}
)

// generateSeedData builds random employees and transactions dated within
// the 90 days before now.
func generateSeedData(rng *rand.Rand, employees, transactions int, now time.Time) seedData {
	data := seedData{
		Employees:    make([]model.Employee, 0, employees),
		Transactions: make([]model.Transaction, 0, transactions),
	}

	for i := range employees {
		data.Employees = append(data.Employees, model.Employee{
			ID:        uuid.NewString(),
			FirstName: demoFirstNames[i%len(demoFirstNames)],
			LastName:  demoLastNames[(i/len(demoFirstNames)+i)%len(demoLastNames)],
		})
	}

	day := now.UTC().Truncate(24 * time.Hour)
	for range transactions {
		cents := 100 + rng.IntN(250000)
		data.Transactions = append(data.Transactions, model.Transaction{
			ID:       uuid.NewString(),
			Amount:   float64(cents) / 100,
			Employee: data.Employees[rng.IntN(len(data.Employees))],
			Merchant: demoMerchants[rng.IntN(len(demoMerchants))],
			Date:     day.AddDate(0, 0, -rng.IntN(90)),
			Approved: rng.IntN(4) == 0,
		})
	}

	return data
}
