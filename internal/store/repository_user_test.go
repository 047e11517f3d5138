package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &DB{
		DB:                 sqlDB,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := models.User{Username: "john", Email: "john@example.com", PasswordHash: "hash"}

	doc, _ := json.Marshal(user.Document())
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (doc)")).
		WithArgs(string(doc)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"unique violation", pgError(pgerrcode.UniqueViolation), ErrUsernameAlreadyExists},
		{"check violation", pgError(pgerrcode.CheckViolation), ErrDocumentRejected},
		{"network error", errors.New("db network error"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WithArgs(sqlmock.AnyArg()).
				WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, doc FROM users WHERE doc->>'username' = $1")).
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows([]string{"id", "doc"}).
			AddRow(int64(5), []byte(`{"username":"john","email":"j@x.io","password_hash":"h"}`)))

	user, err := repo.FindUserByUsername(context.Background(), "john")

	require.NoError(t, err)
	assert.Equal(t, models.User{UserID: 5, Username: "john", Email: "j@x.io", PasswordHash: "h"}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByUsername_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByUsername(context.Background(), "john")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByUsername_CorruptDocument(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doc"}).AddRow(int64(1), []byte(`not json`)))

	_, err := repo.FindUserByUsername(context.Background(), "john")

	assert.ErrorIs(t, err, ErrScanningRow)
}
