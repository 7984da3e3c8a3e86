package entity

import "time"

// Employee belongs to exactly one company. JoinDate carries the calendar
// date only (time of day zeroed); it must be strictly before "today" at
// the time of write.
type Employee struct {
	ID          string
	CompanyID   string
	EmpName     string
	Designation string // see Designations; not enforced at the API boundary
	JoinDate    time.Time
	Email       string
	PhoneNumber string
	Skills      []Skill
	Education   []Education
}

// Designations is the catalog the UI offers for the designation field.
// The API stores whatever string it receives and only flags unknown values,
// so new designations can be introduced without a backend release.
var Designations = []string{
	"Developer",
	"Manager",
	"SystemAdmin",
	"TeamLead",
	"PM",
}

// KnownDesignation reports whether d is in the catalog.
func KnownDesignation(d string) bool {
	for _, known := range Designations {
		if d == known {
			return true
		}
	}
	return false
}
