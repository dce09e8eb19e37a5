package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// EnsureAdmin creates the first operator account when none exists.
	EnsureAdmin(ctx context.Context, username, password string) error
}
