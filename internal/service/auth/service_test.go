package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/auth"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt-0123456789"
)

type fakeUserRepo struct {
	users []user.User
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = int64(len(r.users) + 1)
	u.CreatedAt = time.Now()
	r.users = append(r.users, u)
	return u, nil
}

func (r *fakeUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newTestService(t *testing.T, repo *fakeUserRepo) auth.AuthService {
	t.Helper()
	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp)
	require.NoError(t, err)
	return NewAuthService(repo, jwtService)
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "password123"))
	require.Len(t, repo.users, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[0].PasswordHash), []byte("password123")))

	require.NoError(t, svc.EnsureAdmin(ctx, "other", "password456"))
	assert.Len(t, repo.users, 1, "an existing account disables seeding")
}

func TestEnsureAdmin_RejectsWeakInput(t *testing.T) {
	svc := newTestService(t, &fakeUserRepo{})

	assert.ErrorIs(t, svc.EnsureAdmin(context.Background(), "admin", "short"), user.ErrInvalidPassword)
	assert.ErrorIs(t, svc.EnsureAdmin(context.Background(), "a b", "password123"), user.ErrInvalidUsername)
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()
	require.NoError(t, svc.EnsureAdmin(ctx, "rh.admin", "password123"))

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Username: "rh.admin", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "rh.admin", resp.Username)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "rh.admin", Password: "wrongpassword"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{})
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)
	})
}
