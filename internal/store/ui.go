package store

import (
	"errors"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
)

var ErrRowRequired = errors.New("dialog requires a row")

type DialogKind int

const (
	DialogClosed DialogKind = iota
	DialogAdd
	DialogEdit
	DialogDelete
)

func (k DialogKind) String() string {
	switch k {
	case DialogAdd:
		return "add"
	case DialogEdit:
		return "edit"
	case DialogDelete:
		return "delete"
	default:
		return "closed"
	}
}

// ParseDialogKind accepts "add", "edit", "delete" and "closed".
func ParseDialogKind(s string) (DialogKind, bool) {
	for _, k := range []DialogKind{DialogClosed, DialogAdd, DialogEdit, DialogDelete} {
		if k.String() == s {
			return k, true
		}
	}
	return DialogClosed, false
}

// Dialog is the modal state of one feature. It can only be built through
// Closed, Adding, Editing and Deleting, so an edit or delete dialog always
// carries its row. The zero value is closed.
type Dialog[R any] struct {
	kind DialogKind
	row  R
}

func Closed[R any]() Dialog[R] { return Dialog[R]{} }

func Adding[R any]() Dialog[R] { return Dialog[R]{kind: DialogAdd} }

func Editing[R any](row R) Dialog[R] { return Dialog[R]{kind: DialogEdit, row: row} }

func Deleting[R any](row R) Dialog[R] { return Dialog[R]{kind: DialogDelete, row: row} }

// OpenDialog builds a dialog from a runtime kind. Edit and delete need a row.
func OpenDialog[R any](kind DialogKind, row *R) (Dialog[R], error) {
	switch kind {
	case DialogAdd:
		return Adding[R](), nil
	case DialogEdit, DialogDelete:
		if row == nil {
			return Closed[R](), ErrRowRequired
		}
		return Dialog[R]{kind: kind, row: *row}, nil
	default:
		return Closed[R](), nil
	}
}

func (d Dialog[R]) Kind() DialogKind { return d.kind }

func (d Dialog[R]) IsOpen() bool { return d.kind != DialogClosed }

// Row returns the target row of an edit or delete dialog.
func (d Dialog[R]) Row() (R, bool) {
	if d.kind == DialogEdit || d.kind == DialogDelete {
		return d.row, true
	}
	var zero R
	return zero, false
}

// FeatureState is the interaction state of one feature screen.
type FeatureState[R any] struct {
	Dialog     Dialog[R]
	CurrentRow *R
}

func (f FeatureState[R]) open(d Dialog[R]) FeatureState[R] {
	f.Dialog = d
	if row, ok := d.Row(); ok {
		f.CurrentRow = &row
	}
	return f
}

func (f FeatureState[R]) withRow(row *R) FeatureState[R] {
	if row == nil {
		f.CurrentRow = nil
		return f
	}
	r := *row
	f.CurrentRow = &r
	return f
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type UIState struct {
	Theme                Theme
	InformationSheet     FeatureState[informationsheet.InformationSheet]
	BankExperience       FeatureState[bankexperience.BankExperience]
	NonBankExperience    FeatureState[nonbankexperience.NonBankExperience]
	DisciplinaryAction   FeatureState[disciplinaryaction.DisciplinaryAction]
	ProfessionalTraining FeatureState[professionaltraining.ProfessionalTraining]
}

// UIStore tracks which dialog is open and which row is targeted, per feature.
type UIStore struct {
	*Store[UIState]
}

func NewUIStore(theme Theme) *UIStore {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	return &UIStore{Store: NewStore(UIState{Theme: theme})}
}

func (u *UIStore) update(fn func(*UIState)) {
	_ = u.Mutate(func(s UIState) (UIState, error) {
		fn(&s)
		return s, nil
	})
}

func (u *UIStore) SetTheme(t Theme) {
	u.update(func(s *UIState) { s.Theme = t })
}

// ToggleTheme flips between dark and light and returns the new theme.
func (u *UIStore) ToggleTheme() Theme {
	var next Theme
	u.update(func(s *UIState) {
		s.Theme = s.Theme.Toggle()
		next = s.Theme
	})
	return next
}

// OpenInformationSheet moves the dialog to d; an edit or delete dialog also targets its row.
func (u *UIStore) OpenInformationSheet(d Dialog[informationsheet.InformationSheet]) {
	u.update(func(s *UIState) { s.InformationSheet = s.InformationSheet.open(d) })
}

// CloseInformationSheet closes the dialog and clears the current row.
func (u *UIStore) CloseInformationSheet() {
	u.update(func(s *UIState) { s.InformationSheet = FeatureState[informationsheet.InformationSheet]{} })
}

func (u *UIStore) SetInformationSheetCurrentRow(row *informationsheet.InformationSheet) {
	u.update(func(s *UIState) { s.InformationSheet = s.InformationSheet.withRow(row) })
}

func (u *UIStore) OpenBankExperience(d Dialog[bankexperience.BankExperience]) {
	u.update(func(s *UIState) { s.BankExperience = s.BankExperience.open(d) })
}

func (u *UIStore) CloseBankExperience() {
	u.update(func(s *UIState) { s.BankExperience = FeatureState[bankexperience.BankExperience]{} })
}

func (u *UIStore) SetBankExperienceCurrentRow(row *bankexperience.BankExperience) {
	u.update(func(s *UIState) { s.BankExperience = s.BankExperience.withRow(row) })
}

func (u *UIStore) OpenNonBankExperience(d Dialog[nonbankexperience.NonBankExperience]) {
	u.update(func(s *UIState) { s.NonBankExperience = s.NonBankExperience.open(d) })
}

func (u *UIStore) CloseNonBankExperience() {
	u.update(func(s *UIState) { s.NonBankExperience = FeatureState[nonbankexperience.NonBankExperience]{} })
}

func (u *UIStore) SetNonBankExperienceCurrentRow(row *nonbankexperience.NonBankExperience) {
	u.update(func(s *UIState) { s.NonBankExperience = s.NonBankExperience.withRow(row) })
}

func (u *UIStore) OpenDisciplinaryAction(d Dialog[disciplinaryaction.DisciplinaryAction]) {
	u.update(func(s *UIState) { s.DisciplinaryAction = s.DisciplinaryAction.open(d) })
}

func (u *UIStore) CloseDisciplinaryAction() {
	u.update(func(s *UIState) { s.DisciplinaryAction = FeatureState[disciplinaryaction.DisciplinaryAction]{} })
}

func (u *UIStore) SetDisciplinaryActionCurrentRow(row *disciplinaryaction.DisciplinaryAction) {
	u.update(func(s *UIState) { s.DisciplinaryAction = s.DisciplinaryAction.withRow(row) })
}

func (u *UIStore) OpenProfessionalTraining(d Dialog[professionaltraining.ProfessionalTraining]) {
	u.update(func(s *UIState) { s.ProfessionalTraining = s.ProfessionalTraining.open(d) })
}

func (u *UIStore) CloseProfessionalTraining() {
	u.update(func(s *UIState) { s.ProfessionalTraining = FeatureState[professionaltraining.ProfessionalTraining]{} })
}

func (u *UIStore) SetProfessionalTrainingCurrentRow(row *professionaltraining.ProfessionalTraining) {
	u.update(func(s *UIState) { s.ProfessionalTraining = s.ProfessionalTraining.withRow(row) })
}
