package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/auth"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	var verrs validator.ValidationErrors
	verrs.Add("matricule", "matricule is required")

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("sheet: %w", verrs.Err()), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown field", fmt.Errorf("%w: x", fields.ErrUnknownField), http.StatusBadRequest, "BAD_REQUEST"},
		{"immutable field", fields.ErrImmutableField, http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid value", fields.ErrInvalidValue, http.StatusBadRequest, "BAD_REQUEST"},
		{"sheet not found", informationsheet.ErrInformationSheetNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"matricule conflict", informationsheet.ErrMatriculeExists, http.StatusConflict, "CONFLICT"},
		{"reference conflict", disciplinaryaction.ErrReferenceExists, http.StatusConflict, "CONFLICT"},
		{"action not on sheet", fmt.Errorf("%w: 3", report.ErrActionNotOnSheet), http.StatusNotFound, "NOT_FOUND"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	var verrs validator.ValidationErrors
	verrs.Add("date_debut", "date_debut must be a valid date (YYYY-MM-DD)")

	rec := httptest.NewRecorder()
	HandleError(rec, verrs)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"date_debut": "date_debut must be a valid date (YYYY-MM-DD)"}, resp.Error.Details)
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "text/html; charset=utf-8", "doc.html", true, []byte("<p>x</p>"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `inline; filename="doc.html"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "<p>x</p>", rec.Body.String())
}
