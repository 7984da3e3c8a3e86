package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compdir/company-directory-api/internal/application/dto"
	"github.com/compdir/company-directory-api/internal/application/usecase"
	"github.com/compdir/company-directory-api/internal/application/validation"
	"github.com/compdir/company-directory-api/internal/domain"
	"github.com/compdir/company-directory-api/internal/infrastructure/memory"
	"github.com/compdir/company-directory-api/pkg/dates"
)

func newUseCase() *usecase.CompanyUseCase {
	repo := memory.NewCompanyRepository()
	return usecase.NewCompanyUseCase(repo, repo, zerolog.Nop())
}

func payload(name string) *dto.CompanyPayload {
	return &dto.CompanyPayload{
		CompanyName: name,
		Address:     "1600 Amphitheatre Parkway",
		Email:       "contact@" + name + ".com",
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
				},
				EducationInfo: []dto.EducationPayload{
					{InstituteName: "Test institute", CourseName: "BE CSE", CompletedYear: "Mar 2021"},
				},
			},
		},
	}
}

func TestCreateThenReadMatchesPayload(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, payload("google"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "google", got.CompanyName)
	require.Len(t, got.EmpInfo, 1)
	emp := got.EmpInfo[0]
	assert.Equal(t, "June", emp.EmpName)
	assert.Equal(t, "Developer", emp.Designation)
	assert.Equal(t, "01/01/2021", emp.JoinDate, "join date reads back as DD/MM/YYYY")
	assert.Equal(t, created.ID, emp.CompanyID)
	require.Len(t, emp.SkillInfo, 2)
	assert.Equal(t, "Angular", emp.SkillInfo[0].SkillName)
	assert.Equal(t, 4, emp.SkillInfo[0].SkillRating)
	assert.Equal(t, emp.ID, emp.SkillInfo[0].EmployeeID)
	require.Len(t, emp.EducationInfo, 1)
	assert.Equal(t, "Mar 2021", emp.EducationInfo[0].CompletedYear)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	uc := newUseCase()
	in := payload("google")
	in.CompanyName = ""
	in.EmpInfo[0].SkillInfo[0].SkillRating = "6"

	_, err := uc.Create(context.Background(), in)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2, "all violations are reported together")
}

func TestCreateJoinDateBoundary(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	now := time.Now()

	cases := []struct {
		name     string
		joinDate string
		wantErr  bool
	}{
		{"yesterday accepted", dates.Format(now.AddDate(0, 0, -1)), false},
		{"today rejected", dates.Format(now), true},
		{"tomorrow rejected", dates.Format(now.AddDate(0, 0, 1)), true},
		{"unparseable rejected", "01-01-2021", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := payload("google")
			in.EmpInfo[0].JoinDate = tc.joinDate
			_, err := uc.Create(ctx, in)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrJoinDateNotPast)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateReplacesEmployeeSubtree(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	in := payload("google")
	in.EmpInfo = append(in.EmpInfo, dto.EmployeePayload{
		EmpName:     "July",
		Designation: "Manager",
		JoinDate:    "01/01/2020",
		Email:       "july@gmail.com",
		PhoneNumber: "+1111111111111",
	})
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)
	require.Len(t, created.EmpInfo, 2)
	oldEmployeeID := created.EmpInfo[0].ID

	update := payload("google")
	update.EmpInfo[0].EmpName = "August"
	updated, err := uc.Update(ctx, created.ID, update)
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.EmpInfo, 1, "old subtree is gone, not merged")
	assert.Equal(t, "August", got.EmpInfo[0].EmpName)
	assert.NotEqual(t, oldEmployeeID, got.EmpInfo[0].ID, "child identity is not preserved")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "createdAt survives updates")
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Update(context.Background(), "b5b1b2a0-0000-0000-0000-000000000000", payload("google"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByIDUnknownIsNotFound(t *testing.T) {
	uc := newUseCase()
	_, err := uc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, payload("google"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestListPagination(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		in := payload(fmt.Sprintf("company%02d", i))
		in.EmpInfo = nil
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	page1, err := uc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Companies, 10)
	assert.Equal(t, dto.Pagination{Page: 1, Limit: 10, Total: 15, Pages: 2}, page1.Pagination)

	page2, err := uc.List(ctx, "", 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2.Companies, 5)
	assert.Equal(t, 2, page2.Pagination.Page)

	// Newest first: the last company created leads page 1.
	assert.Equal(t, "company14", page1.Companies[0].CompanyName)
}

func TestListSearchIsCaseInsensitiveSubstring(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	google := payload("Google")
	google.EmpInfo = nil
	_, err := uc.Create(ctx, google)
	require.NoError(t, err)

	microsoft := payload("Microsoft")
	microsoft.EmpInfo = nil
	_, err = uc.Create(ctx, microsoft)
	require.NoError(t, err)

	out, err := uc.List(ctx, "goog", 1, 10)
	require.NoError(t, err)
	require.Len(t, out.Companies, 1)
	assert.Equal(t, "Google", out.Companies[0].CompanyName)
	assert.Equal(t, 1, out.Pagination.Total)
}

func TestListCacheInvalidatedOnWrite(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	first, err := uc.Create(ctx, payload("google"))
	require.NoError(t, err)

	before, err := uc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, before.Pagination.Total)

	// Identical tuple is served from the cache.
	again, err := uc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Same(t, before, again)

	// A confirmed write purges it.
	_, err = uc.Create(ctx, payload("microsoft"))
	require.NoError(t, err)

	after, err := uc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, 2, after.Pagination.Total)

	require.NoError(t, uc.Delete(ctx, first.ID))
	final, err := uc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, final.Pagination.Total)
}
