package nonbankexperience

import "errors"

var (
	ErrNonBankExperienceNotFound = errors.New("non-bank experience not found")
)
