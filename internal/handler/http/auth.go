package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/auth"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	json "github.com/goccy/go-json"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err, "username", loginReq.Username)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in successfully", "username", tokenResponse.Username)
	response.Created(w, "User logged in successfully", tokenResponse)
}

// Logout implements AuthHandler. The presented token stays revoked until it
// would have expired.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	expiresAt := token.Expiration()
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(24 * time.Hour)
	}
	if err := a.jwtService.RevokeToken(r.Context(), jwtauth.TokenFromHeader(r), expiresAt.Unix()); err != nil {
		// The token is already blocked in memory; only persistence failed.
		slog.Error("Failed to persist token revocation", "error", err)
	}

	slog.Info("User logged out successfully", "subject", token.Subject())
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}
