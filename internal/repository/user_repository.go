package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/repository/models"
	"mcq-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of sqlxUserRepository.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

var selectUserSQL = "SELECT " + util.ColumnList("", models.UserColumns...) + " FROM users"

// CreateUser assigns an id when missing. A duplicate username or email is
// reported as domain.ErrDuplicateUser.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = util.NewULID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	m := fromDomainUser(user)

	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`INSERT INTO users (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query, m.ID, m.Username, m.Email, m.PasswordHash, m.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeDuplicateUser, domain.ErrDuplicateUser.Message, err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getOne(ctx, selectUserSQL+" WHERE id = ?", userID)
}

func (r *sqlxUserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	return r.getOne(ctx, selectUserSQL+" WHERE username = ? OR email = ?", identifier, identifier)
}

func (r *sqlxUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM users WHERE username = ? OR email = ?`)
	if err := exec.GetContext(ctx, &count, query, username, email); err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
	return count > 0, nil
}

func (r *sqlxUserRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.User
	if err := exec.GetContext(ctx, &m, exec.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&m), nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
