package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/pkg/password"
	"github.com/focusdo/backend/pkg/token"
	"github.com/focusdo/backend/repository"
)

// TokenPair is what a successful login yields.
type TokenPair struct {
	Access    string
	Refresh   string
	ExpiresIn int64
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   *password.Hasher
	tokens   *token.Manager
	logger   *zap.Logger
}

func New(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	hasher *password.Hasher,
	tokens *token.Manager,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates an account. The plaintext password is hashed and
// discarded; it never reaches storage or the response.
func (uc *UseCase) Register(ctx context.Context, username, email, plain string) (*domain.User, error) {
	user := &domain.User{
		Username: username,
		Email:    email,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if plain == "" {
		return nil, domain.NewValidationError(map[string]string{"password": "password is required"})
	}

	hash, err := uc.hasher.Hash(plain)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}
	user.PasswordHash = hash

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a token pair. The refresh token
// is tracked server-side so it can be revoked.
func (uc *UseCase) Login(ctx context.Context, username, plain string) (*TokenPair, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Verify(plain, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := uc.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to issue tokens", err)
	}

	session := &domain.Session{
		ID:        pair.RefreshID,
		UserID:    user.ID,
		ExpiresAt: pair.RefreshExpiresAt,
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Info("user logged in", zap.String("user_id", user.ID))
	return &TokenPair{
		Access:    pair.Access,
		Refresh:   pair.Refresh,
		ExpiresIn: pair.ExpiresIn,
	}, nil
}

// Refresh validates a refresh token, confirms its session is still
// alive, and issues a fresh access token.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := uc.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	if _, err := uc.sessions.Get(ctx, claims.ID); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	access, err := uc.tokens.GenerateAccess(claims.UserID)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to issue access token", err)
	}

	return &TokenPair{
		Access:    access,
		ExpiresIn: uc.tokens.AccessTTLSeconds(),
	}, nil
}

// Logout revokes the refresh session; the refresh token stops working
// immediately, access tokens simply run out.
func (uc *UseCase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return domain.ErrInvalidToken
	}
	return uc.sessions.Delete(ctx, claims.ID)
}
