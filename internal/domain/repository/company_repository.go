package repository

import (
	"context"

	"github.com/compdir/company-directory-api/internal/domain/entity"
)

// CompanyRepository is the persistence port for the company aggregate.
// Implementations are bindable to either a connection pool or an open
// transaction (see TxRunner), so a use case can compose several calls
// into one atomic unit.
type CompanyRepository interface {
	// Insert persists a company together with its full employee subtree
	// (employees, skills, education).
	Insert(ctx context.Context, company *entity.Company) error

	// InsertEmployees persists a fresh employee subtree under an existing
	// company. Used by the full-replace update flow.
	InsertEmployees(ctx context.Context, companyID string, employees []entity.Employee) error

	// GetByID loads one company with its nested graph. Returns (nil, nil)
	// when the id is unknown.
	GetByID(ctx context.Context, id string) (*entity.Company, error)

	// List returns one page of companies (nested graph included), newest
	// first. A non-empty search filters by case-insensitive substring match
	// against companyName or email.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Company, error)

	// Count returns the total number of companies matching search.
	Count(ctx context.Context, search string) (int, error)

	// UpdateScalars updates the company's own fields (name, address, email,
	// phone); it never touches employees or createdAt. Returns false when
	// the id is unknown.
	UpdateScalars(ctx context.Context, company *entity.Company) (bool, error)

	// DeleteEmployees removes every employee of a company; skills and
	// education go with them.
	DeleteEmployees(ctx context.Context, companyID string) error

	// Delete removes a company and cascades to its subtree. Returns false
	// when the id is unknown.
	Delete(ctx context.Context, id string) (bool, error)
}

// TxRunner executes fn against a CompanyRepository bound to a single
// transaction. fn returning an error rolls everything back; the
// delete-then-recreate update flow relies on this to never leave a
// company without its employees.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo CompanyRepository) error) error
}
