package store

import (
	"context"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
)

// BootstrapRecorder receives the outcome of every bootstrap step.
type BootstrapRecorder interface {
	ObserveBootstrapStep(step string, ok bool)
}

// bootstrapStep is one idempotent DDL statement applied at startup.
type bootstrapStep struct {
	name  string
	query string
}

// Document schemas are attached NOT VALID: rows written from now on are
// checked, rows already stored are left alone.
const (
	usersSchemaQuery = `ALTER TABLE users
	DROP CONSTRAINT IF EXISTS users_doc_schema,
	ADD CONSTRAINT users_doc_schema CHECK (
		jsonb_typeof(doc) = 'object'
		AND COALESCE(jsonb_typeof(doc->'username'), '') = 'string'
		AND COALESCE(jsonb_typeof(doc->'email'), '') = 'string'
		AND COALESCE(jsonb_typeof(doc->'password_hash'), '') = 'string'
	) NOT VALID`

	employeesSchemaQuery = `ALTER TABLE employees
	DROP CONSTRAINT IF EXISTS employees_doc_schema,
	ADD CONSTRAINT employees_doc_schema CHECK (
		jsonb_typeof(doc) = 'object'
		AND COALESCE(jsonb_typeof(doc->'employee_id'), '') = 'string'
		AND COALESCE(jsonb_typeof(doc->'name'), '') = 'string'
		AND COALESCE(jsonb_typeof(doc->'department'), '') = 'string'
		AND COALESCE(jsonb_typeof(doc->'salary'), '') = 'number'
		AND COALESCE(jsonb_typeof(doc->'joining_date'), '') = 'string'
		AND COALESCE(jsonb_typeof(doc->'skills'), '') = 'array'
		AND NOT jsonb_path_exists(doc, '$.skills[*] ? (@.type() != "string")')
	) NOT VALID`

	usersUsernameIndexQuery       = `CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users ((doc->>'username'))`
	employeesEmployeeIDIndexQuery = `CREATE UNIQUE INDEX IF NOT EXISTS employees_employee_id_key ON employees ((doc->>'employee_id'))`
)

var bootstrapSteps = []bootstrapStep{
	{name: "users_schema", query: usersSchemaQuery},
	{name: "employees_schema", query: employeesSchemaQuery},
	{name: "users_username_index", query: usersUsernameIndexQuery},
	{name: "employees_employee_id_index", query: employeesEmployeeIDIndexQuery},
}

// Bootstrap applies the document schemas and unique indexes.
//
// Each step is attempted independently: a failure is logged and recorded,
// and the remaining steps still run. The collections themselves must
// already exist (see [DB.Migrate]). Returns the number of failed steps.
func Bootstrap(ctx context.Context, db *DB, recorder BootstrapRecorder) int {
	log := logger.FromContext(ctx)
	if db.logger != nil {
		log = db.logger
	}

	failed := 0
	for _, step := range bootstrapSteps {
		_, err := db.ExecContext(ctx, step.query)
		if recorder != nil {
			recorder.ObserveBootstrapStep(step.name, err == nil)
		}
		if err != nil {
			failed++
			log.Warn().Err(err).Str("func", "Bootstrap").Str("step", step.name).Msg("bootstrap step failed, continuing")
			continue
		}
		log.Debug().Str("func", "Bootstrap").Str("step", step.name).Msg("bootstrap step applied")
	}

	return failed
}
