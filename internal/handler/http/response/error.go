package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/auth"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")

	// Patches
	case errors.Is(err, fields.ErrUnknownField), errors.Is(err, fields.ErrImmutableField),
		errors.Is(err, fields.ErrInvalidValue):
		BadRequest(w, err.Error(), nil)

	// Information sheets
	case errors.Is(err, informationsheet.ErrInformationSheetNotFound):
		NotFound(w, "Information sheet not found")
	case errors.Is(err, informationsheet.ErrMatriculeExists):
		Conflict(w, "Matricule already registered")
	case errors.Is(err, informationsheet.ErrNINExists):
		Conflict(w, "NIN already registered")

	// Sub-records
	case errors.Is(err, bankexperience.ErrBankExperienceNotFound):
		NotFound(w, "Bank experience not found")
	case errors.Is(err, nonbankexperience.ErrNonBankExperienceNotFound):
		NotFound(w, "Non-bank experience not found")
	case errors.Is(err, disciplinaryaction.ErrDisciplinaryActionNotFound):
		NotFound(w, "Disciplinary action not found")
	case errors.Is(err, disciplinaryaction.ErrReferenceExists):
		Conflict(w, "Decision reference already recorded")
	case errors.Is(err, professionaltraining.ErrProfessionalTrainingNotFound):
		NotFound(w, "Professional training not found")

	// Reports
	case errors.Is(err, report.ErrActionNotOnSheet):
		NotFound(w, "Disciplinary action not found on this information sheet")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
