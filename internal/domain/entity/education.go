package entity

// Education is a completed course of an employee. CompletedYear is kept as
// the "Mon YYYY" display string the form submits (for example "Mar 2021");
// it is pattern-checked but carries no semantic year range.
type Education struct {
	ID            string
	EmployeeID    string
	InstituteName string
	CourseName    string
	CompletedYear string
}
