package entity

import "time"

// Company is the root of the directory aggregate. It owns its employees
// exclusively: deleting a company cascades to every employee and, through
// them, to their skills and education records.
type Company struct {
	ID          string
	CompanyName string
	Address     string // optional, unbounded
	Email       string
	PhoneNumber string
	CreatedAt   time.Time // set once at creation
	Employees   []Employee
}
