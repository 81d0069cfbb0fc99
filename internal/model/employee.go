package model

import "strings"

// Employee is a member of the employee directory.
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// EmptyEmployee is the "no filter" selection. Its ID is the empty string.
var EmptyEmployee = Employee{
	ID:        "",
	FirstName: "All",
	LastName:  "Employees",
}

// IsEmpty reports whether e is the "show all" sentinel.
func (e Employee) IsEmpty() bool {
	return e.ID == EmptyEmployee.ID
}

// FullName returns "First Last", skipping blank parts.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
