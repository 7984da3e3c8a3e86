package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	trequire "github.com/stretchr/testify/require"

	"github.com/compdir/company-directory-api/internal/application/dto"
)

func validCompany() *dto.CompanyPayload {
	return &dto.CompanyPayload{
		CompanyName: "Google",
		Address:     "1600 Amphitheatre Parkway",
		Email:       "contact@google.com",
		PhoneNumber: "+1-650-253-0000",
		EmpInfo: []dto.EmployeePayload{
			{
				EmpName:     "June",
				Designation: "Developer",
				JoinDate:    "01/01/2021",
				Email:       "june@gmail.com",
				PhoneNumber: "+1111111111111",
				SkillInfo: []dto.SkillPayload{
					{SkillName: "Angular", SkillRating: "4"},
				},
				EducationInfo: []dto.EducationPayload{
					{InstituteName: "Test institute", CourseName: "BE CSE", CompletedYear: "Mar 2021"},
				},
			},
		},
	}
}

func TestCompanyValid(t *testing.T) {
	assert.Empty(t, Company(validCompany()))
}

func TestCompanyWithoutEmployeesIsValid(t *testing.T) {
	in := validCompany()
	in.EmpInfo = nil
	assert.Empty(t, Company(in))
}

func TestCompanyNameBounds(t *testing.T) {
	in := validCompany()
	in.CompanyName = strings.Repeat("a", 50)
	assert.Empty(t, Company(in), "exactly 50 characters is accepted")

	in.CompanyName = strings.Repeat("a", 51)
	errs := Company(in)
	trequire.Len(t, errs, 1)
	assert.Equal(t, "companyName", errs[0].Path)
	assert.Contains(t, errs[0].Message, "at most 50 characters")

	in.CompanyName = ""
	errs = Company(in)
	trequire.Len(t, errs, 1)
	assert.Equal(t, "Company name is required", errs[0].Message)
}

func TestAddressIsOptionalAndUnbounded(t *testing.T) {
	in := validCompany()
	in.Address = ""
	assert.Empty(t, Company(in))

	in.Address = strings.Repeat("long ", 1000)
	assert.Empty(t, Company(in))
}

func TestEmailRules(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"contact@google.com", true},
		{"a@b.co", true},
		{"first.last+tag@sub.domain.org", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@no-local.com", false},
		{strings.Repeat("a", 95) + "@long.com", false}, // 104 chars
	}
	for _, tc := range cases {
		in := validCompany()
		in.Email = tc.email
		errs := Company(in)
		if tc.ok {
			assert.Empty(t, errs, "email %q", tc.email)
		} else {
			assert.NotEmpty(t, errs, "email %q", tc.email)
		}
	}
}

func TestSkillRating(t *testing.T) {
	cases := []struct {
		rating string
		ok     bool
	}{
		{"1", true},
		{"3", true},
		{"5", true},
		{"0", false},
		{"6", false},
		{"abc", false},
		{"", false},
		{"-1", false},
		{"2.5", false},
	}
	for _, tc := range cases {
		errs := Skill(&dto.SkillPayload{SkillName: "Java", SkillRating: tc.rating})
		if tc.ok {
			assert.Empty(t, errs, "rating %q", tc.rating)
		} else {
			trequire.Len(t, errs, 1, "rating %q", tc.rating)
			assert.Equal(t, "Skill rating must be between 1 and 5", errs[0].Message)
		}
	}
}

func TestSkillNameRequired(t *testing.T) {
	errs := Skill(&dto.SkillPayload{SkillName: "", SkillRating: "3"})
	trequire.Len(t, errs, 1)
	assert.Equal(t, "Skill name is required", errs[0].Message)
}

func TestCompletedYearPattern(t *testing.T) {
	cases := []struct {
		year string
		ok   bool
	}{
		{"Mar 2021", true},
		{"Jan 2020", true},
		{"Dec 1999", true},
		{"2021-03", false},
		{"January 2021", false},
		{"Mar 21", false},
		{"mar 2021", false},
		{"Mar  2021", false},
		{"", false},
	}
	for _, tc := range cases {
		errs := Education(&dto.EducationPayload{
			InstituteName: "Test institute",
			CourseName:    "BE CSE",
			CompletedYear: tc.year,
		})
		if tc.ok {
			assert.Empty(t, errs, "year %q", tc.year)
		} else {
			trequire.Len(t, errs, 1, "year %q", tc.year)
			assert.Equal(t, "Completed year must be in format 'Mon YYYY'", errs[0].Message)
		}
	}
}

func TestEducationBounds(t *testing.T) {
	errs := Education(&dto.EducationPayload{
		InstituteName: strings.Repeat("i", 51),
		CourseName:    strings.Repeat("c", 26),
		CompletedYear: "Mar 2021",
	})
	trequire.Len(t, errs, 2)
	assert.Equal(t, "Institute name must be at most 50 characters", errs[0].Message)
	assert.Equal(t, "Course name must be at most 25 characters", errs[1].Message)
}

func TestEmployeeRules(t *testing.T) {
	errs := Employee(&dto.EmployeePayload{
		EmpName:     strings.Repeat("n", 26),
		Designation: "",
		JoinDate:    "",
		Email:       "bad",
		PhoneNumber: strings.Repeat("9", 16),
	})
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	assert.ElementsMatch(t, []string{
		"Employee name must be at most 25 characters",
		"Designation is required",
		"Join date is required",
		"Invalid email format",
		"Phone number must be at most 15 characters",
	}, messages)
}

func TestAggregatesAllViolationsWithPaths(t *testing.T) {
	in := &dto.CompanyPayload{
		CompanyName: "",
		Email:       "nope",
		PhoneNumber: "",
		EmpInfo: []dto.EmployeePayload{
			{
				EmpName:     "June",
				Designation: "Developer",
				JoinDate:    "01/01/2021",
				Email:       "june@gmail.com",
				PhoneNumber: "123",
				SkillInfo: []dto.SkillPayload{
					{SkillName: "Angular", SkillRating: "4"},
					{SkillName: "", SkillRating: "9"},
				},
				EducationInfo: []dto.EducationPayload{
					{InstituteName: "X", CourseName: "Y", CompletedYear: "March 2021"},
				},
			},
		},
	}
	errs := Company(in)

	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.Path)
	}
	assert.ElementsMatch(t, []string{
		"companyName",
		"email",
		"phoneNumber",
		"empInfo[0].skillInfo[1].skillName",
		"empInfo[0].skillInfo[1].skillRating",
		"empInfo[0].educationInfo[0].completedYear",
	}, paths)

	// The first violation's message doubles as the error summary.
	assert.Equal(t, errs[0].Message, errs.Error())
}
