package dto

import "time"

// CompanyPayload is the write shape for POST/PUT /api/companies. The same
// payload creates a company and fully replaces its employee subtree on
// update; child records carry no ids from the client.
type CompanyPayload struct {
	CompanyName string            `json:"companyName"`
	Address     string            `json:"address"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phoneNumber"`
	EmpInfo     []EmployeePayload `json:"empInfo"`
}

// EmployeePayload is one employee inside a company payload. JoinDate is a
// DD/MM/YYYY string.
type EmployeePayload struct {
	EmpName       string             `json:"empName"`
	Designation   string             `json:"designation"`
	JoinDate      string             `json:"joinDate"`
	Email         string             `json:"email"`
	PhoneNumber   string             `json:"phoneNumber"`
	SkillInfo     []SkillPayload     `json:"skillInfo"`
	EducationInfo []EducationPayload `json:"educationInfo"`
}

// SkillPayload is one skill row. SkillRating arrives as the string the
// form control produces and must parse to an integer in [1,5].
type SkillPayload struct {
	SkillName   string `json:"skillName"`
	SkillRating string `json:"skillRating"`
}

// EducationPayload is one education row. CompletedYear is a "Mon YYYY"
// string such as "Mar 2021".
type EducationPayload struct {
	InstituteName string `json:"instituteName"`
	CourseName    string `json:"courseName"`
	CompletedYear string `json:"completedYear"`
}

// CompanyResponse is the read shape of a company with its nested graph.
type CompanyResponse struct {
	ID          string             `json:"id"`
	CompanyName string             `json:"companyName"`
	Address     string             `json:"address"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber"`
	CreatedAt   time.Time          `json:"createdAt"`
	EmpInfo     []EmployeeResponse `json:"empInfo"`
}

// EmployeeResponse mirrors EmployeePayload on reads; JoinDate is formatted
// back to DD/MM/YYYY.
type EmployeeResponse struct {
	ID            string              `json:"id"`
	CompanyID     string              `json:"companyId"`
	EmpName       string              `json:"empName"`
	Designation   string              `json:"designation"`
	JoinDate      string              `json:"joinDate"`
	Email         string              `json:"email"`
	PhoneNumber   string              `json:"phoneNumber"`
	SkillInfo     []SkillResponse     `json:"skillInfo"`
	EducationInfo []EducationResponse `json:"educationInfo"`
}

// SkillResponse is one stored skill; the rating is numeric on reads.
type SkillResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	SkillName   string `json:"skillName"`
	SkillRating int    `json:"skillRating"`
}

// EducationResponse is one stored education record.
type EducationResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employeeId"`
	InstituteName string `json:"instituteName"`
	CourseName    string `json:"courseName"`
	CompletedYear string `json:"completedYear"`
}

// CompanyListResponse is the paginated list shape.
type CompanyListResponse struct {
	Companies  []CompanyResponse `json:"companies"`
	Pagination Pagination        `json:"pagination"`
}

// Pagination describes one page of a list. Page is 1-indexed and
// Pages = ceil(Total/Limit).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
