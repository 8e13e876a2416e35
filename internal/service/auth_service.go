package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mcq-quiz/internal/cache"
	"mcq-quiz/internal/config"
	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/dto"
	"mcq-quiz/internal/logger"
	"mcq-quiz/internal/util"
	"mcq-quiz/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionFieldUserID   = "user_id"
	sessionFieldUsername = "username"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Login returns a signed session token for the matched user.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	// Logout ends the session behind token. It never fails.
	Logout(ctx context.Context, token string)
	ValidateSession(ctx context.Context, token string) (*domain.Session, error)
}

type authServiceImpl struct {
	userRepo  domain.UserRepository
	cache     domain.Cache
	validator *validation.Validator
	cfg       config.AuthConfig
	hashCost  int
	now       func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, sessions domain.Cache, validator *validation.Validator, cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret for auth service is not configured")
	}
	if cfg.SessionTTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &authServiceImpl{
		userRepo:  userRepo,
		cache:     sessions,
		validator: validator,
		cfg:       cfg,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
	}, nil
}

func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check existing user", err)
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		// The validator counts runes; bcrypt caps the encoded length.
		return nil, domain.ValidationErrors{
			domain.NewInvalidValueError("password", "password must be at most 72 bytes"),
		}
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := domain.NewUser(req.Username, req.Email, string(hash))
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, domain.NewInternalError("Failed to create user", err)
	}

	logger.Get().Info("User registered", zap.String("userID", user.ID), zap.String("username", user.Username))
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		return "", nil, domain.NewInternalError("Failed to look up user", err)
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sessionID := util.NewULID()
	key := cache.SessionKey(sessionID)
	fields := map[string]string{
		sessionFieldUserID:   user.ID,
		sessionFieldUsername: user.Username,
	}
	if err := s.cache.HSet(ctx, key, fields); err != nil {
		return "", nil, domain.NewInternalError("Failed to create session", err)
	}
	if err := s.cache.Expire(ctx, key, s.cfg.SessionTTL); err != nil {
		_ = s.cache.Delete(ctx, key)
		return "", nil, domain.NewInternalError("Failed to create session", err)
	}

	token, err := s.createJWT(user, sessionID)
	if err != nil {
		_ = s.cache.Delete(ctx, key)
		return "", nil, domain.NewInternalError("Failed to sign session token", err)
	}

	logger.Get().Info("User logged in", zap.String("userID", user.ID), zap.String("sessionID", sessionID))
	return token, user, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	// Expired tokens still identify a session worth deleting.
	claims, err := s.parseJWT(token, jwt.WithoutClaimsValidation())
	if err != nil {
		logger.Get().Debug("Logout with unparseable token", zap.Error(err))
		return
	}
	if err := s.cache.Delete(ctx, cache.SessionKey(claims.SessionID)); err != nil {
		logger.Get().Warn("Failed to delete session", zap.String("sessionID", claims.SessionID), zap.Error(err))
	}
}

func (s *authServiceImpl) ValidateSession(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, domain.NewUnauthorizedError(domain.ErrUnauthorized.Message, err)
	}

	fields, err := s.cache.HGetAll(ctx, cache.SessionKey(claims.SessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrUnauthorized
		}
		return nil, domain.NewInternalError("Failed to load session", err)
	}
	if fields[sessionFieldUserID] != claims.UserID {
		return nil, domain.ErrUnauthorized
	}

	session := &domain.Session{
		ID:       claims.SessionID,
		UserID:   claims.UserID,
		Username: fields[sessionFieldUsername],
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (s *authServiceImpl) createJWT(user *domain.User, sessionID string) (string, error) {
	now := s.now()
	claims := dto.AuthClaims{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authServiceImpl) parseJWT(tokenString string, opts ...jwt.ParserOption) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}
