package disciplinaryaction

import (
	"testing"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisciplinaryAction_Validate(t *testing.T) {
	valid := DisciplinaryAction{TypeSanction: "Blame", ReferenceDecision: "DS-12", DateDecision: "2022-06-01"}
	require.NoError(t, valid.Validate())

	bad := DisciplinaryAction{Classification: "5eme degre", DateDecision: "2022-13-01"}
	var errs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &errs)

	got := errs.ToMap()
	assert.Equal(t, "type_sanction is required", got["type_sanction"])
	assert.Equal(t, "reference_decision is required", got["reference_decision"])
	assert.Contains(t, got, "classification")
	assert.Contains(t, got, "date_decision")
}

func TestDisciplinaryAction_ValidateSheetRef(t *testing.T) {
	zero := int64(0)
	a := DisciplinaryAction{InformationSheetID: &zero, TypeSanction: "Blame", ReferenceDecision: "DS-1", DateDecision: "2022-06-01"}

	var errs validator.ValidationErrors
	require.ErrorAs(t, a.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "information_sheet_id")
}
