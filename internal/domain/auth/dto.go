package auth

import "github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("username", r.Username)
	if !validator.IsEmpty(r.Username) && !validator.IsValidUsername(r.Username) {
		errs.Add("username", "username may only contain 3-50 letters, numbers, dots, underscores, and hyphens")
	}

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) > 255 {
		errs.Add("password", "password must not exceed 255 characters")
	}

	return errs.Err()
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	Username    string `json:"username"`
}
