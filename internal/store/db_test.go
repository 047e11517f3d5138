package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-employee-keeper/internal/config"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingMock(t *testing.T) (sqlmock.Sqlmock, func() (*DB, error)) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return mock, func() (*DB, error) {
		return newDB(context.Background(), conn, "assessment_db", logger.Nop())
	}
}

func TestNewDB_CreatesSchema(t *testing.T) {
	mock, open := newPingMock(t)
	mock.ExpectPing()
	mock.ExpectExec(regexp.QuoteMeta(`CREATE SCHEMA IF NOT EXISTS "assessment_db"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	db, err := open()

	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewDB_PingFailsFast(t *testing.T) {
	mock, open := newPingMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err := open()

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewDB_RetriesWhileStarting(t *testing.T) {
	mock, open := newPingMock(t)
	mock.ExpectPing().WillReturnError(pgError(pgerrcode.CannotConnectNow))
	mock.ExpectPing()
	mock.ExpectExec("CREATE SCHEMA").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := open()

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewDB_SchemaError(t *testing.T) {
	mock, open := newPingMock(t)
	mock.ExpectPing()
	mock.ExpectExec("CREATE SCHEMA").WillReturnError(errors.New("permission denied"))

	_, err := open()

	assert.ErrorContains(t, err, "assessment_db")
}

func TestNewConnectPostgres_InvalidURI(t *testing.T) {
	_, err := NewConnectPostgres(context.Background(), config.DB{DSN: "://bad"}, logger.Nop())

	assert.Error(t, err)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
