package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/compdir/company-directory-api/internal/application/cache"
	"github.com/compdir/company-directory-api/internal/application/dto"
	"github.com/compdir/company-directory-api/internal/application/validation"
	"github.com/compdir/company-directory-api/internal/domain"
	"github.com/compdir/company-directory-api/internal/domain/entity"
	"github.com/compdir/company-directory-api/internal/domain/repository"
	"github.com/compdir/company-directory-api/pkg/dates"
)

// DefaultLimit is the page size used when the client does not send one.
const DefaultLimit = 10

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// CompanyUseCase applies the write contract for the directory: schema
// validation, the join-date policy, transactional nested writes with full
// replace-of-children on update, and list-cache invalidation.
type CompanyUseCase struct {
	repo  repository.CompanyRepository
	tx    repository.TxRunner
	cache *cache.ListCache
	log   zerolog.Logger
}

// NewCompanyUseCase wires the use case with its persistence ports and a
// logger for flagging out-of-catalog values.
func NewCompanyUseCase(repo repository.CompanyRepository, tx repository.TxRunner, log zerolog.Logger) *CompanyUseCase {
	return &CompanyUseCase{
		repo:  repo,
		tx:    tx,
		cache: cache.NewListCache(),
		log:   log,
	}
}

// List returns one page of companies, newest first, with pagination
// metadata. Results are served from the list cache when the identical
// (search, page, limit) tuple was queried since the last write.
func (uc *CompanyUseCase) List(ctx context.Context, search string, page, limit int) (*dto.CompanyListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	key := cache.Key{Search: search, Page: page, Limit: limit}
	if cached, ok := uc.cache.Get(key); ok {
		return cached, nil
	}

	offset := (page - 1) * limit
	companies, err := uc.repo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	total, err := uc.repo.Count(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count companies: %w", err)
	}

	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, *companyToResponse(c))
	}
	out := &dto.CompanyListResponse{
		Companies: items,
		Pagination: dto.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}
	uc.cache.Put(key, out)
	return out, nil
}

// GetByID returns one company with its full nested graph.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return companyToResponse(company), nil
}

// Create validates the payload and persists the company with its whole
// subtree in one transaction.
func (uc *CompanyUseCase) Create(ctx context.Context, in *dto.CompanyPayload) (*dto.CompanyResponse, error) {
	company, err := uc.materialize(in)
	if err != nil {
		return nil, err
	}
	company.CreatedAt = time.Now()

	err = uc.tx.Run(ctx, func(repo repository.CompanyRepository) error {
		return repo.Insert(ctx, company)
	})
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	uc.cache.Purge()
	return companyToResponse(company), nil
}

// Update validates the payload, then atomically replaces the company's
// scalar fields and its entire employee subtree. The payload carries no
// child ids, so there is no diff target: the old subtree is deleted and a
// new one inserted inside the same transaction. Child record identity is
// not preserved across edits.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in *dto.CompanyPayload) (*dto.CompanyResponse, error) {
	company, err := uc.materialize(in)
	if err != nil {
		return nil, err
	}
	company.ID = id
	for i := range company.Employees {
		company.Employees[i].CompanyID = id
	}

	err = uc.tx.Run(ctx, func(repo repository.CompanyRepository) error {
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		company.CreatedAt = existing.CreatedAt

		if err := repo.DeleteEmployees(ctx, id); err != nil {
			return err
		}
		if _, err := repo.UpdateScalars(ctx, company); err != nil {
			return err
		}
		return repo.InsertEmployees(ctx, id, company.Employees)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update company: %w", err)
	}

	uc.cache.Purge()
	return companyToResponse(company), nil
}

// Delete checks existence and then removes the company, cascading to its
// subtree.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if !found {
		return domain.ErrNotFound
	}
	uc.cache.Purge()
	return nil
}

// materialize turns a validated payload into an entity tree with fresh
// ids. Returns validation.Errors for schema violations and
// domain.ErrJoinDateNotPast for join dates not strictly before today.
func (uc *CompanyUseCase) materialize(in *dto.CompanyPayload) (*entity.Company, error) {
	if errs := validation.Company(in); len(errs) > 0 {
		return nil, errs
	}

	company := &entity.Company{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		Address:     in.Address,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Employees:   make([]entity.Employee, 0, len(in.EmpInfo)),
	}

	for _, emp := range in.EmpInfo {
		joinDate, err := dates.Parse(emp.JoinDate)
		if err != nil || !dates.BeforeToday(joinDate) {
			return nil, domain.ErrJoinDateNotPast
		}
		if !entity.KnownDesignation(emp.Designation) {
			// Stored anyway: the designation catalog is UI-level only.
			uc.log.Warn().Str("designation", emp.Designation).Msg("designation outside catalog")
		}

		employee := entity.Employee{
			ID:          uuid.New().String(),
			CompanyID:   company.ID,
			EmpName:     emp.EmpName,
			Designation: emp.Designation,
			JoinDate:    joinDate,
			Email:       emp.Email,
			PhoneNumber: emp.PhoneNumber,
			Skills:      make([]entity.Skill, 0, len(emp.SkillInfo)),
			Education:   make([]entity.Education, 0, len(emp.EducationInfo)),
		}
		for _, s := range emp.SkillInfo {
			rating, _ := validation.ParseRating(s.SkillRating)
			if !entity.KnownSkill(s.SkillName) {
				uc.log.Warn().Str("skill", s.SkillName).Msg("skill outside catalog")
			}
			employee.Skills = append(employee.Skills, entity.Skill{
				ID:          uuid.New().String(),
				EmployeeID:  employee.ID,
				SkillName:   s.SkillName,
				SkillRating: rating,
			})
		}
		for _, e := range emp.EducationInfo {
			employee.Education = append(employee.Education, entity.Education{
				ID:            uuid.New().String(),
				EmployeeID:    employee.ID,
				InstituteName: e.InstituteName,
				CourseName:    e.CourseName,
				CompletedYear: e.CompletedYear,
			})
		}
		company.Employees = append(company.Employees, employee)
	}
	return company, nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	out := &dto.CompanyResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Address:     c.Address,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
		EmpInfo:     make([]dto.EmployeeResponse, 0, len(c.Employees)),
	}
	for _, emp := range c.Employees {
		e := dto.EmployeeResponse{
			ID:            emp.ID,
			CompanyID:     emp.CompanyID,
			EmpName:       emp.EmpName,
			Designation:   emp.Designation,
			JoinDate:      dates.Format(emp.JoinDate),
			Email:         emp.Email,
			PhoneNumber:   emp.PhoneNumber,
			SkillInfo:     make([]dto.SkillResponse, 0, len(emp.Skills)),
			EducationInfo: make([]dto.EducationResponse, 0, len(emp.Education)),
		}
		for _, s := range emp.Skills {
			e.SkillInfo = append(e.SkillInfo, dto.SkillResponse{
				ID:          s.ID,
				EmployeeID:  s.EmployeeID,
				SkillName:   s.SkillName,
				SkillRating: s.SkillRating,
			})
		}
		for _, ed := range emp.Education {
			e.EducationInfo = append(e.EducationInfo, dto.EducationResponse{
				ID:            ed.ID,
				EmployeeID:    ed.EmployeeID,
				InstituteName: ed.InstituteName,
				CourseName:    ed.CourseName,
				CompletedYear: ed.CompletedYear,
			})
		}
		out.EmpInfo = append(out.EmpInfo, e)
	}
	return out
}
