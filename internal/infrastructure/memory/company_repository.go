// Package memory implements the persistence ports over an in-process map.
// It backs the use case and handler tests (the Postgres adapter needs a
// live database) and keeps the same observable semantics: newest-first
// ordering, case-insensitive substring search and cascade deletes.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/compdir/company-directory-api/internal/domain/entity"
	"github.com/compdir/company-directory-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository = (*CompanyRepo)(nil)
	_ repository.TxRunner          = (*CompanyRepo)(nil)
)

// CompanyRepo stores company aggregates in memory. It doubles as a
// TxRunner: Run simply invokes fn against the repo itself, which is
// enough for single-goroutine tests but offers no rollback.
type CompanyRepo struct {
	mu        sync.RWMutex
	companies map[string]*entity.Company
	order     []string // ids in insertion order; newest is last
}

// NewCompanyRepository builds an empty in-memory store.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{companies: make(map[string]*entity.Company)}
}

// Run implements repository.TxRunner without transactional isolation.
func (r *CompanyRepo) Run(_ context.Context, fn func(repo repository.CompanyRepository) error) error {
	return fn(r)
}

// Insert stores a deep copy of the company.
func (r *CompanyRepo) Insert(_ context.Context, company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[company.ID] = copyCompany(company)
	r.order = append(r.order, company.ID)
	return nil
}

// InsertEmployees appends a subtree under an existing company.
func (r *CompanyRepo) InsertEmployees(_ context.Context, companyID string, employees []entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[companyID]
	if !ok {
		return nil
	}
	for _, emp := range employees {
		c.Employees = append(c.Employees, *copyEmployee(&emp))
	}
	return nil
}

// GetByID returns a deep copy, or (nil, nil) when absent.
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return copyCompany(c), nil
}

// List returns the requested page, newest first.
func (r *CompanyRepo) List(_ context.Context, search string, limit, offset int) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := r.matching(search)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	out := make([]*entity.Company, 0, end-offset)
	for _, c := range matched[offset:end] {
		out = append(out, copyCompany(c))
	}
	return out, nil
}

// Count returns the number of companies matching search.
func (r *CompanyRepo) Count(_ context.Context, search string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matching(search)), nil
}

// UpdateScalars overwrites the company's own fields.
func (r *CompanyRepo) UpdateScalars(_ context.Context, company *entity.Company) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[company.ID]
	if !ok {
		return false, nil
	}
	c.CompanyName = company.CompanyName
	c.Address = company.Address
	c.Email = company.Email
	c.PhoneNumber = company.PhoneNumber
	return true, nil
}

// DeleteEmployees clears the employee subtree of a company.
func (r *CompanyRepo) DeleteEmployees(_ context.Context, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.companies[companyID]; ok {
		c.Employees = []entity.Employee{}
	}
	return nil
}

// Delete removes a company and its subtree.
func (r *CompanyRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return false, nil
	}
	delete(r.companies, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// matching returns companies filtered by search, newest first. Creation
// order breaks ties on equal timestamps, matching a serial insert.
func (r *CompanyRepo) matching(search string) []*entity.Company {
	term := strings.ToLower(search)
	var out []*entity.Company
	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.companies[r.order[i]]
		if term == "" ||
			strings.Contains(strings.ToLower(c.CompanyName), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func copyCompany(c *entity.Company) *entity.Company {
	out := *c
	out.Employees = make([]entity.Employee, 0, len(c.Employees))
	for i := range c.Employees {
		out.Employees = append(out.Employees, *copyEmployee(&c.Employees[i]))
	}
	return &out
}

func copyEmployee(e *entity.Employee) *entity.Employee {
	out := *e
	out.Skills = append([]entity.Skill(nil), e.Skills...)
	out.Education = append([]entity.Education(nil), e.Education...)
	if out.Skills == nil {
		out.Skills = []entity.Skill{}
	}
	if out.Education == nil {
		out.Education = []entity.Education{}
	}
	return &out
}
