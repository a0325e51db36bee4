package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "todoapp/internal/pkg/errors"
	"todoapp/internal/repo"
	"todoapp/internal/service"
	"todoapp/internal/testutil"
)

const testBcryptCost = 4

func newAuthService(t *testing.T) (*service.AuthService, *repo.UserRepo) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	users := repo.NewUserRepo(db)
	return service.NewAuthService(users, testBcryptCost), users
}

func TestRegisterNormalizesEmail(t *testing.T) {
	auth, users := newAuthService(t)

	user, err := auth.Register(context.Background(), "  A@Example.COM ", "secret1", "alice")
	require.NoError(t, err)
	require.Equal(t, "a@example.com", user.Email)

	stored, err := users.GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
	require.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestRegisterPasswordLengthBoundary(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register(context.Background(), "short@example.com", "12345", "s")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, err = auth.Register(context.Background(), "short@example.com", "123456", "s")
	require.NoError(t, err)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	auth, users := newAuthService(t)

	_, err := auth.Register(context.Background(), "dup@example.com", "secret1", "first")
	require.NoError(t, err)

	// Same address in a different case is still the same account.
	_, err = auth.Register(context.Background(), "DUP@example.com", "secret2", "second")
	require.ErrorIs(t, err, appErr.ErrConflict)

	_, err = users.GetByEmail(context.Background(), "dup@example.com")
	require.NoError(t, err)
}

func TestLoginGenericFailure(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register(context.Background(), "a@example.com", "secret1", "alice")
	require.NoError(t, err)

	// Unknown user and wrong password are indistinguishable.
	_, err = auth.Login(context.Background(), "nobody@example.com", "secret1")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)

	_, err = auth.Login(context.Background(), "a@example.com", "wrong-password")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)

	user, err := auth.Login(context.Background(), "a@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice", user.UserName)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	auth, users := newAuthService(t)

	require.NoError(t, auth.EnsureAdmin(context.Background(), "admin@example.com", "pass", "admin"))
	first, err := users.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)

	require.NoError(t, auth.EnsureAdmin(context.Background(), "admin@example.com", "pass", "admin"))
	second, err := users.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.PasswordHash, second.PasswordHash)
}
