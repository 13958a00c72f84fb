package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/pkg/password"
	"github.com/focusdo/backend/pkg/token"
	"github.com/focusdo/backend/repository/memory"
)

func newUseCase(t *testing.T) (*UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	tokens := token.NewManager(token.Config{
		Secret:     "test-secret",
		Issuer:     "test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	uc := New(store.Users(), store.Sessions(), password.NewHasher(), tokens, nil)
	return uc, store
}

func TestRegister(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.NotEqual(t, "s3cret", user.PasswordHash)

	stored, err := store.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	first, err := uc.Register(ctx, "alice", "", "s3cret")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "alice", "other@example.com", "other")
	var dErr *domain.Error
	require.ErrorAs(t, err, &dErr)
	require.Equal(t, domain.ErrCodeInvalid, dErr.Code)
	require.Contains(t, dErr.Fields, "username")

	// The original account is untouched.
	stored, err := store.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, first.ID, stored.ID)
}

func TestRegisterValidation(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "", "", "s3cret")
	var dErr *domain.Error
	require.ErrorAs(t, err, &dErr)
	require.Contains(t, dErr.Fields, "username")

	_, err = uc.Register(ctx, "bob", "", "")
	require.ErrorAs(t, err, &dErr)
	require.Contains(t, dErr.Fields, "password")
}

func TestLogin(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "", "s3cret")
	require.NoError(t, err)

	pair, err := uc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	require.Equal(t, int64(60), pair.ExpiresIn)
}

func TestLoginBadCredentials(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "", "s3cret")
	require.NoError(t, err)

	_, err = uc.Login(ctx, "alice", "wrong")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))

	// An unknown username is indistinguishable from a wrong password.
	_, err = uc.Login(ctx, "nobody", "s3cret")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestRefresh(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "", "s3cret")
	require.NoError(t, err)
	pair, err := uc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	refreshed, err := uc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.Access)
	require.Empty(t, refreshed.Refresh)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "", "s3cret")
	require.NoError(t, err)
	pair, err := uc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = uc.Refresh(ctx, pair.Access)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))

	_, err = uc.Refresh(ctx, "garbage")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestLogoutRevokesRefresh(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "", "s3cret")
	require.NoError(t, err)
	pair, err := uc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, pair.Refresh))

	_, err = uc.Refresh(ctx, pair.Refresh)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}
