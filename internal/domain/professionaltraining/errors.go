package professionaltraining

import "errors"

var (
	ErrProfessionalTrainingNotFound = errors.New("professional training not found")
)
