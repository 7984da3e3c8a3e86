// Command seed wipes the directory and loads the sample companies through
// the same validation and persistence path the API uses.
package main

import (
	"context"

	"github.com/compdir/company-directory-api/internal/application/dto"
	"github.com/compdir/company-directory-api/internal/application/usecase"
	"github.com/compdir/company-directory-api/internal/infrastructure/postgres"
	"github.com/compdir/company-directory-api/pkg/config"
	"github.com/compdir/company-directory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}
	if _, err := pool.Exec(ctx, `TRUNCATE companies CASCADE`); err != nil {
		log.Fatal().Err(err).Msg("clear existing data")
	}

	uc := usecase.NewCompanyUseCase(postgres.NewCompanyRepository(pool), postgres.NewTxRunner(pool), log)
	for _, payload := range samples() {
		created, err := uc.Create(ctx, payload)
		if err != nil {
			log.Fatal().Err(err).Str("company", payload.CompanyName).Msg("seed company")
		}
		log.Info().Str("id", created.ID).Str("company", created.CompanyName).Msg("seeded")
	}
	log.Info().Msg("seed data created successfully")
}

func samples() []*dto.CompanyPayload {
	return []*dto.CompanyPayload{
		{
			CompanyName: "Google",
			Address:     "1600 Amphitheatre Parkway, Mountain View, CA 94043",
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
						{SkillName: "HTML", SkillRating: "5"},
						{SkillName: "CSS", SkillRating: "5"},
						{SkillName: "JavaScript", SkillRating: "5"},
					},
					EducationInfo: []dto.EducationPayload{
						{InstituteName: "Test institute", CourseName: "BE CSE", CompletedYear: "Mar 2021"},
						{InstituteName: "ABC institute", CourseName: "BE ECE", CompletedYear: "Jan 2020"},
					},
				},
				{
					EmpName:     "July",
					Designation: "Developer",
					JoinDate:    "01/01/2020",
					Email:       "july@gmail.com",
					PhoneNumber: "+1111111111111",
					SkillInfo: []dto.SkillPayload{
						{SkillName: "Java", SkillRating: "4"},
						{SkillName: "SQL", SkillRating: "5"},
						{SkillName: "UI", SkillRating: "5"},
						{SkillName: "JavaScript", SkillRating: "5"},
					},
					EducationInfo: []dto.EducationPayload{
						{InstituteName: "Test institute", CourseName: "BE CSE", CompletedYear: "Mar 2021"},
						{InstituteName: "ABC institute", CourseName: "BE ECE", CompletedYear: "Jan 2020"},
					},
				},
			},
		},
		{
			CompanyName: "Microsoft",
			Address:     "One Microsoft Way, Redmond, WA 98052",
			Email:       "contact@microsoft.com",
			PhoneNumber: "+1-425-882-8080",
			EmpInfo: []dto.EmployeePayload{
				{
					EmpName:     "John Doe",
					Designation: "Manager",
					JoinDate:    "15/06/2019",
					Email:       "john.doe@microsoft.com",
					PhoneNumber: "+1-425-123-4567",
					SkillInfo: []dto.SkillPayload{
						{SkillName: "C#", SkillRating: "5"},
						{SkillName: "SQL", SkillRating: "4"},
						{SkillName: "AWS", SkillRating: "3"},
					},
					EducationInfo: []dto.EducationPayload{
						{InstituteName: "University of Washington", CourseName: "MS Computer Science", CompletedYear: "Jun 2019"},
					},
				},
				{
					EmpName:     "Jane Smith",
					Designation: "TeamLead",
					JoinDate:    "10/03/2020",
					Email:       "jane.smith@microsoft.com",
					PhoneNumber: "+1-425-987-6543",
					SkillInfo: []dto.SkillPayload{
						{SkillName: "React", SkillRating: "5"},
						{SkillName: "Node.js", SkillRating: "4"},
						{SkillName: "Python", SkillRating: "3"},
						{SkillName: "Django", SkillRating: "3"},
					},
					EducationInfo: []dto.EducationPayload{
						{InstituteName: "Stanford University", CourseName: "BS Computer Science", CompletedYear: "May 2020"},
						{InstituteName: "MIT", CourseName: "MS Software Engineering", CompletedYear: "Dec 2021"},
					},
				},
			},
		},
	}
}
