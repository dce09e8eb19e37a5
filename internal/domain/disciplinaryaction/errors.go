package disciplinaryaction

import "errors"

var (
	ErrDisciplinaryActionNotFound = errors.New("disciplinary action not found")
	ErrReferenceExists            = errors.New("decision reference already recorded")
)
