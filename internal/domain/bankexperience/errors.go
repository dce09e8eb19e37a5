package bankexperience

import "errors"

var (
	ErrBankExperienceNotFound = errors.New("bank experience not found")
)
