// Package validation implements the layered schema validation for write
// payloads: skill and education rules at the bottom, employee rules above
// them, company rules at the top. A failed validation reports every
// violated field, not just the first, as (path, message) pairs whose
// messages are stable API contract.
package validation

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/compdir/company-directory-api/internal/application/dto"
)

// FieldError is a single violation. Path uses the wire field names with
// array indexes, e.g. "empInfo[0].skillInfo[1].skillRating".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Errors aggregates all violations of one payload. It implements error;
// the first message doubles as the summary.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Message
}

var (
	emailRe         = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	completedYearRe = regexp.MustCompile(`^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4}$`)
)

// Company validates a full company payload, recursing into empInfo.
// A nil result means the payload is valid.
func Company(in *dto.CompanyPayload) Errors {
	var errs Errors
	errs = requireMax(errs, "companyName", in.CompanyName, 50,
		"Company name is required", "Company name must be at most 50 characters")
	// address is optional and unbounded
	errs = email(errs, "email", in.Email)
	errs = requireMax(errs, "phoneNumber", in.PhoneNumber, 15,
		"Phone number is required", "Phone number must be at most 15 characters")
	for i, emp := range in.EmpInfo {
		errs = append(errs, employee(&emp, childPath("", "empInfo", i))...)
	}
	return errs
}

// Employee validates a single employee payload, recursing into skillInfo
// and educationInfo. Exposed for form-level validation of one employee
// block; paths are rooted at the employee.
func Employee(in *dto.EmployeePayload) Errors {
	return employee(in, "")
}

func employee(in *dto.EmployeePayload, prefix string) Errors {
	var errs Errors
	errs = requireMax(errs, join(prefix, "empName"), in.EmpName, 25,
		"Employee name is required", "Employee name must be at most 25 characters")
	errs = require(errs, join(prefix, "designation"), in.Designation, "Designation is required")
	errs = require(errs, join(prefix, "joinDate"), in.JoinDate, "Join date is required")
	errs = email(errs, join(prefix, "email"), in.Email)
	errs = requireMax(errs, join(prefix, "phoneNumber"), in.PhoneNumber, 15,
		"Phone number is required", "Phone number must be at most 15 characters")
	for i, s := range in.SkillInfo {
		errs = append(errs, skill(&s, childPath(prefix, "skillInfo", i))...)
	}
	for i, e := range in.EducationInfo {
		errs = append(errs, education(&e, childPath(prefix, "educationInfo", i))...)
	}
	return errs
}

// Skill validates a single skill payload.
func Skill(in *dto.SkillPayload) Errors {
	return skill(in, "")
}

func skill(in *dto.SkillPayload, prefix string) Errors {
	var errs Errors
	errs = require(errs, join(prefix, "skillName"), in.SkillName, "Skill name is required")
	if _, ok := ParseRating(in.SkillRating); !ok {
		errs = append(errs, FieldError{
			Path:    join(prefix, "skillRating"),
			Message: "Skill rating must be between 1 and 5",
		})
	}
	return errs
}

// Education validates a single education payload.
func Education(in *dto.EducationPayload) Errors {
	return education(in, "")
}

func education(in *dto.EducationPayload, prefix string) Errors {
	var errs Errors
	errs = requireMax(errs, join(prefix, "instituteName"), in.InstituteName, 50,
		"Institute name is required", "Institute name must be at most 50 characters")
	errs = requireMax(errs, join(prefix, "courseName"), in.CourseName, 25,
		"Course name is required", "Course name must be at most 25 characters")
	if !completedYearRe.MatchString(in.CompletedYear) {
		errs = append(errs, FieldError{
			Path:    join(prefix, "completedYear"),
			Message: "Completed year must be in format 'Mon YYYY'",
		})
	}
	return errs
}

// ParseRating parses the skill rating string and reports whether it is an
// integer in [1,5]. Ratings are rejected outside the range, never clamped.
func ParseRating(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

func require(errs Errors, path, value, requiredMsg string) Errors {
	if value == "" {
		return append(errs, FieldError{Path: path, Message: requiredMsg})
	}
	return errs
}

func requireMax(errs Errors, path, value string, max int, requiredMsg, maxMsg string) Errors {
	if value == "" {
		return append(errs, FieldError{Path: path, Message: requiredMsg})
	}
	if utf8.RuneCountInString(value) > max {
		return append(errs, FieldError{Path: path, Message: maxMsg})
	}
	return errs
}

func email(errs Errors, path, value string) Errors {
	if !emailRe.MatchString(value) {
		return append(errs, FieldError{Path: path, Message: "Invalid email format"})
	}
	if utf8.RuneCountInString(value) > 100 {
		return append(errs, FieldError{Path: path, Message: "Email must be at most 100 characters"})
	}
	return errs
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}

func childPath(prefix, field string, index int) string {
	return join(prefix, field) + "[" + strconv.Itoa(index) + "]"
}
