package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/compdir/company-directory-api/internal/domain/entity"
	"github.com/compdir/company-directory-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port over PostgreSQL.
// Pass a pool or a tx (Querier); TxRunner binds one to a transaction.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// searchFilter matches companies whose name or email contains the search
// term, case-insensitively. An empty term matches everything.
const searchFilter = `($1 = '' OR company_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')`

// Insert persists a company and its whole employee subtree. Callers wanting
// atomicity run it inside TxRunner; the statements themselves do not open
// a transaction.
func (r *CompanyRepo) Insert(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, company_name, address, email, phone_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.CompanyName, company.Address,
		company.Email, company.PhoneNumber, company.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return r.InsertEmployees(ctx, company.ID, company.Employees)
}

// InsertEmployees persists an employee subtree under companyID.
func (r *CompanyRepo) InsertEmployees(ctx context.Context, companyID string, employees []entity.Employee) error {
	for _, emp := range employees {
		query := `
			INSERT INTO employees (id, company_id, emp_name, designation, join_date, email, phone_number)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := r.q.Exec(ctx, query,
			emp.ID, companyID, emp.EmpName, emp.Designation,
			emp.JoinDate, emp.Email, emp.PhoneNumber,
		)
		if err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}
		for _, s := range emp.Skills {
			_, err := r.q.Exec(ctx,
				`INSERT INTO skills (id, employee_id, skill_name, skill_rating) VALUES ($1, $2, $3, $4)`,
				s.ID, emp.ID, s.SkillName, s.SkillRating,
			)
			if err != nil {
				return fmt.Errorf("insert skill: %w", err)
			}
		}
		for _, e := range emp.Education {
			_, err := r.q.Exec(ctx,
				`INSERT INTO education (id, employee_id, institute_name, course_name, completed_year) VALUES ($1, $2, $3, $4, $5)`,
				e.ID, emp.ID, e.InstituteName, e.CourseName, e.CompletedYear,
			)
			if err != nil {
				return fmt.Errorf("insert education: %w", err)
			}
		}
	}
	return nil
}

// GetByID loads one company with its nested graph. Returns (nil, nil) when
// the id is unknown.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, company_name, address, email, phone_number, created_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyName, &c.Address, &c.Email, &c.PhoneNumber, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	if err := r.loadEmployees(ctx, []*entity.Company{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns one page of companies with nested graphs, newest first.
func (r *CompanyRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, company_name, address, email, phone_number, created_at
		FROM companies
		WHERE ` + searchFilter + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.Address, &c.Email, &c.PhoneNumber, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	if err := r.loadEmployees(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count returns the number of companies matching search.
func (r *CompanyRepo) Count(ctx context.Context, search string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM companies WHERE `+searchFilter, search).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return total, nil
}

// UpdateScalars updates the company's own fields; employees and created_at
// are untouched. Returns false when the id is unknown.
func (r *CompanyRepo) UpdateScalars(ctx context.Context, company *entity.Company) (bool, error) {
	query := `
		UPDATE companies SET company_name = $2, address = $3, email = $4, phone_number = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.CompanyName, company.Address, company.Email, company.PhoneNumber,
	)
	if err != nil {
		return false, fmt.Errorf("update company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeleteEmployees removes every employee of companyID; the cascade takes
// skills and education.
func (r *CompanyRepo) DeleteEmployees(ctx context.Context, companyID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM employees WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("delete employees: %w", err)
	}
	return nil
}

// Delete removes a company; the cascade clears the subtree. Returns false
// when the id is unknown.
func (r *CompanyRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// loadEmployees attaches the employee/skill/education graph to the given
// companies with three batched queries instead of one per row.
func (r *CompanyRepo) loadEmployees(ctx context.Context, companies []*entity.Company) error {
	if len(companies) == 0 {
		return nil
	}
	byCompany := make(map[string]*entity.Company, len(companies))
	companyIDs := make([]string, 0, len(companies))
	for _, c := range companies {
		c.Employees = []entity.Employee{}
		byCompany[c.ID] = c
		companyIDs = append(companyIDs, c.ID)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, emp_name, designation, join_date, email, phone_number
		FROM employees WHERE company_id = ANY($1)`, companyIDs)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	defer rows.Close()

	// employee id -> (company id, index within that company's slice)
	type empSlot struct {
		companyID string
		index     int
	}
	slots := make(map[string]empSlot)
	var employeeIDs []string
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.EmpName, &e.Designation, &e.JoinDate, &e.Email, &e.PhoneNumber); err != nil {
			return fmt.Errorf("scan employee: %w", err)
		}
		e.Skills = []entity.Skill{}
		e.Education = []entity.Education{}
		c := byCompany[e.CompanyID]
		slots[e.ID] = empSlot{companyID: e.CompanyID, index: len(c.Employees)}
		c.Employees = append(c.Employees, e)
		employeeIDs = append(employeeIDs, e.ID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	if len(employeeIDs) == 0 {
		return nil
	}

	skillRows, err := r.q.Query(ctx, `
		SELECT id, employee_id, skill_name, skill_rating
		FROM skills WHERE employee_id = ANY($1)`, employeeIDs)
	if err != nil {
		return fmt.Errorf("load skills: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var s entity.Skill
		if err := skillRows.Scan(&s.ID, &s.EmployeeID, &s.SkillName, &s.SkillRating); err != nil {
			return fmt.Errorf("scan skill: %w", err)
		}
		slot := slots[s.EmployeeID]
		emp := &byCompany[slot.companyID].Employees[slot.index]
		emp.Skills = append(emp.Skills, s)
	}
	if err := skillRows.Err(); err != nil {
		return fmt.Errorf("load skills: %w", err)
	}

	eduRows, err := r.q.Query(ctx, `
		SELECT id, employee_id, institute_name, course_name, completed_year
		FROM education WHERE employee_id = ANY($1)`, employeeIDs)
	if err != nil {
		return fmt.Errorf("load education: %w", err)
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var e entity.Education
		if err := eduRows.Scan(&e.ID, &e.EmployeeID, &e.InstituteName, &e.CourseName, &e.CompletedYear); err != nil {
			return fmt.Errorf("scan education: %w", err)
		}
		slot := slots[e.EmployeeID]
		emp := &byCompany[slot.companyID].Employees[slot.index]
		emp.Education = append(emp.Education, e)
	}
	if err := eduRows.Err(); err != nil {
		return fmt.Errorf("load education: %w", err)
	}
	return nil
}
