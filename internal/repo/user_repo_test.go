package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"todoapp/internal/model"
	appErr "todoapp/internal/pkg/errors"
	"todoapp/internal/pkg/timeutil"
	"todoapp/internal/repo"
	"todoapp/internal/testutil"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	db := testutil.OpenTestDB(t)
	users := repo.NewUserRepo(db)

	user := &model.User{
		Email:        "a@example.com",
		PasswordHash: "hash",
		UserName:     "alice",
		Ctime:        timeutil.NowUnix(),
	}
	require.NoError(t, users.Create(context.Background(), user))
	require.NotZero(t, user.ID)

	byEmail, err := users.GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, "alice", byEmail.UserName)

	byID, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "a@example.com", byID.Email)

	_, err = users.GetByEmail(context.Background(), "missing@example.com")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestUserRepoDuplicateEmailConflicts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	users := repo.NewUserRepo(db)

	first := &model.User{Email: "dup@example.com", PasswordHash: "h1", Ctime: timeutil.NowUnix()}
	require.NoError(t, users.Create(context.Background(), first))

	second := &model.User{Email: "dup@example.com", PasswordHash: "h2", Ctime: timeutil.NowUnix()}
	err := users.Create(context.Background(), second)
	require.ErrorIs(t, err, appErr.ErrConflict)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE email = ?", "dup@example.com"))
	require.Equal(t, 1, count)
}
