package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepRecord struct {
	step string
	ok   bool
}

type fakeRecorder struct {
	steps []stepRecord
}

func (f *fakeRecorder) ObserveBootstrapStep(step string, ok bool) {
	f.steps = append(f.steps, stepRecord{step: step, ok: ok})
}

func TestBootstrap_AllStepsApplied(t *testing.T) {
	db, mock := newTestDB(t)
	for range bootstrapSteps {
		mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	rec := &fakeRecorder{}

	failed := Bootstrap(context.Background(), db, rec)

	assert.Equal(t, 0, failed)
	require.Len(t, rec.steps, len(bootstrapSteps))
	for _, s := range rec.steps {
		assert.True(t, s.ok, s.step)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrap_FailureDoesNotStopLaterSteps(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE users")).WillReturnError(errors.New("permission denied"))
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE employees")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE UNIQUE INDEX IF NOT EXISTS users_username_key")).WillReturnError(errors.New("duplicate key"))
	mock.ExpectExec(regexp.QuoteMeta("CREATE UNIQUE INDEX IF NOT EXISTS employees_employee_id_key")).WillReturnResult(sqlmock.NewResult(0, 0))
	rec := &fakeRecorder{}

	failed := Bootstrap(context.Background(), db, rec)

	assert.Equal(t, 2, failed)
	assert.Equal(t, []stepRecord{
		{"users_schema", false},
		{"employees_schema", true},
		{"users_username_index", false},
		{"employees_employee_id_index", true},
	}, rec.steps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrap_NilRecorder(t *testing.T) {
	db, mock := newTestDB(t)
	for range bootstrapSteps {
		mock.ExpectExec(".+").WillReturnError(errors.New("down"))
	}

	failed := Bootstrap(context.Background(), db, nil)

	assert.Equal(t, len(bootstrapSteps), failed)
}

func TestBootstrapSchemas_AreNotValidated(t *testing.T) {
	assert.Contains(t, usersSchemaQuery, "NOT VALID")
	assert.Contains(t, employeesSchemaQuery, "NOT VALID")
	assert.Contains(t, employeesSchemaQuery, "DROP CONSTRAINT IF EXISTS employees_doc_schema")
}
