package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func flatSchema() string {
	return strings.Join(strings.Fields(schema), " ")
}

// Ids travel through the API as opaque strings. Typed UUID columns would
// make Postgres reject any malformed id with a syntax error before the
// query runs, turning unknown-id lookups into 500s instead of 404s.
func TestSchemaKeepsIDsOpaque(t *testing.T) {
	assert.NotContains(t, schema, "UUID")

	flat := flatSchema()
	assert.Contains(t, flat, "id TEXT PRIMARY KEY")
	assert.Contains(t, flat, "company_id TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE")
	assert.Contains(t, flat, "employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE")
}

// Designation and skill name are validated only as non-empty, so the
// columns must not impose a length the validator does not.
func TestSchemaDoesNotBoundLenientFields(t *testing.T) {
	flat := flatSchema()
	assert.Contains(t, flat, "designation TEXT NOT NULL")
	assert.Contains(t, flat, "skill_name TEXT NOT NULL")
}
