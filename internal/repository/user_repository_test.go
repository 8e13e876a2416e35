package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"mcq-quiz/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository tests.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	user := domain.NewUser("alice", "alice@example.com", "hash")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, username, email, password_hash, created_at)")).
		WithArgs(sqlmock.AnyArg(), "alice", "alice@example.com", "hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateUser(context.Background(), user))
	assert.Len(t, user.ID, 26)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_Duplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"postgres", &pq.Error{Code: "23505"}},
		{"oracle", errors.New("ORA-00001: unique constraint (QUIZ.SYS_C008) violated")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewUserRepository(db)

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.err)

			err := repo.CreateUser(context.Background(), domain.NewUser("alice", "a@example.com", "hash"))
			assert.ErrorIs(t, err, domain.ErrDuplicateUser)
		})
	}
}

func TestUserRepository_CreateUser_OtherError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("connection reset"))

	err := repo.CreateUser(context.Background(), domain.NewUser("alice", "a@example.com", "hash"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrDuplicateUser))
}

func TestUserRepository_GetUserByIdentifier(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow("01HZX", "alice", "alice@example.com", "hash", now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = ? OR email = ?")).
		WithArgs("alice@example.com", "alice@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByIdentifier(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, now.Equal(user.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetUserByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE username = ? OR email = ?")).
		WithArgs("alice", "new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", "new@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestToDomainUser(t *testing.T) {
	assert.Nil(t, toDomainUser(nil))
	u := &domain.User{ID: "1", Username: "bob", Email: "b@example.com", PasswordHash: "h"}
	assert.Equal(t, u, toDomainUser(fromDomainUser(u)))
}
