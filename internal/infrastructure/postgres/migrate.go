package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the relational shape of the directory. Ownership edges are
// enforced with ON DELETE CASCADE: dropping a company takes its employees
// with it, and dropping an employee takes skills and education.
//
// Ids are TEXT, not UUID: the API treats ids as opaque strings, so a
// lookup with an arbitrary malformed id must fall through to "no rows"
// (then 404) instead of failing the query with a uuid syntax error.
// Designation and skill_name are TEXT for the same reason the validator
// only checks them as non-empty: the catalogs are advisory and values
// outside them are stored, not rejected.
const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id            TEXT PRIMARY KEY,
	company_name  VARCHAR(50)  NOT NULL,
	address       TEXT         NOT NULL DEFAULT '',
	email         VARCHAR(100) NOT NULL,
	phone_number  VARCHAR(15)  NOT NULL,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS employees (
	id            TEXT PRIMARY KEY,
	company_id    TEXT         NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	emp_name      VARCHAR(25)  NOT NULL,
	designation   TEXT         NOT NULL,
	join_date     DATE         NOT NULL,
	email         VARCHAR(100) NOT NULL,
	phone_number  VARCHAR(15)  NOT NULL
);

CREATE TABLE IF NOT EXISTS skills (
	id            TEXT PRIMARY KEY,
	employee_id   TEXT         NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	skill_name    TEXT         NOT NULL,
	skill_rating  INT          NOT NULL CHECK (skill_rating BETWEEN 1 AND 5)
);

CREATE TABLE IF NOT EXISTS education (
	id              TEXT        PRIMARY KEY,
	employee_id     TEXT        NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	institute_name  VARCHAR(50) NOT NULL,
	course_name     VARCHAR(25) NOT NULL,
	completed_year  VARCHAR(8)  NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_employees_company_id  ON employees(company_id);
CREATE INDEX IF NOT EXISTS idx_skills_employee_id    ON skills(employee_id);
CREATE INDEX IF NOT EXISTS idx_education_employee_id ON education(employee_id);
CREATE INDEX IF NOT EXISTS idx_companies_created_at  ON companies(created_at DESC);
`

// Migrate creates the directory schema if it does not exist. Run at
// startup before the first request is served.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
