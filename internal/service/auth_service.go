package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"todoapp/internal/model"
	appErr "todoapp/internal/pkg/errors"
	"todoapp/internal/pkg/password"
	"todoapp/internal/pkg/timeutil"
	"todoapp/internal/repo"
)

const minPasswordRunes = 6

type AuthService struct {
	users      *repo.UserRepo
	bcryptCost int
}

func NewAuthService(users *repo.UserRepo, bcryptCost int) *AuthService {
	return &AuthService{users: users, bcryptCost: bcryptCost}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// The persisted unique constraint applies to this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Validation order: normalize email, check
// password length, then insert; a duplicate normalized email surfaces as
// ErrConflict. Registration does not establish a session.
func (s *AuthService) Register(ctx context.Context, email, plainPassword, userName string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, appErr.ErrInvalid
	}
	if utf8.RuneCountInString(plainPassword) < minPasswordRunes {
		return nil, appErr.ErrInvalid
	}
	hash, err := password.Hash(plainPassword, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		UserName:     userName,
		Ctime:        timeutil.NowUnix(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logutil.GetLogger(ctx).Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password both return
// bare ErrUnauthorized so the two cases are indistinguishable to clients.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, appErr.ErrUnauthorized
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, appErr.ErrUnauthorized
	}
	return user, nil
}

// GetUser loads the account behind an authenticated session.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

// EnsureAdmin seeds the reserved admin account once at startup. It is
// idempotent: an existing row (including one created by a concurrent
// instance) leaves the store untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, plainPassword, userName string) error {
	email = NormalizeEmail(email)
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, appErr.ErrNotFound) {
		return err
	}
	hash, err := password.Hash(plainPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		UserName:     userName,
		Ctime:        timeutil.NowUnix(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, appErr.ErrConflict) {
			return nil
		}
		return err
	}
	logutil.GetLogger(ctx).Info("admin user seeded", zap.String("email", email))
	return nil
}
