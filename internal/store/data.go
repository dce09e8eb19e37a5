package store

import (
	"slices"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
)

// DataState is the set of entity collections. A mutation replaces only the
// collection it touches; the others keep their identity.
type DataState struct {
	InformationSheets     []informationsheet.InformationSheet
	BankExperiences       []bankexperience.BankExperience
	NonBankExperiences    []nonbankexperience.NonBankExperience
	DisciplinaryActions   []disciplinaryaction.DisciplinaryAction
	ProfessionalTrainings []professionaltraining.ProfessionalTraining
}

// DataStore is the process-wide holder of entity collections.
type DataStore struct {
	*Store[DataState]
}

func NewDataStore() *DataStore {
	return &DataStore{Store: NewStore(DataState{})}
}

// ==================== INFORMATIONSHEET ====================

// SetInformationSheets replaces the whole collection.
func (d *DataStore) SetInformationSheets(list []informationsheet.InformationSheet) {
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.InformationSheets = slices.Clone(list)
		return s, nil
	})
}

// AddInformationSheet appends sheet with the next free id and returns the stored element.
func (d *DataStore) AddInformationSheet(sheet informationsheet.InformationSheet) informationsheet.InformationSheet {
	var added informationsheet.InformationSheet
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.InformationSheets, added = appendRecord(s.InformationSheets, sheet)
		return s, nil
	})
	return added
}

// UpdateInformationSheet shallow-merges patch into the element with the given id.
func (d *DataStore) UpdateInformationSheet(id int64, patch fields.Patch) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := patchRecord(s.InformationSheets, informationsheet.Fields, id, patch)
		if err != nil {
			return s, err
		}
		s.InformationSheets = list
		return s, nil
	})
}

// DeleteInformationSheet removes the element with the given id.
func (d *DataStore) DeleteInformationSheet(id int64) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := removeRecord(s.InformationSheets, informationsheet.Fields, id)
		if err != nil {
			return s, err
		}
		s.InformationSheets = list
		return s, nil
	})
}

// ==================== BANKEXPERIENCE ====================

func (d *DataStore) SetBankExperiences(list []bankexperience.BankExperience) {
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.BankExperiences = slices.Clone(list)
		return s, nil
	})
}

func (d *DataStore) AddBankExperience(exp bankexperience.BankExperience) bankexperience.BankExperience {
	var added bankexperience.BankExperience
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.BankExperiences, added = appendRecord(s.BankExperiences, exp)
		return s, nil
	})
	return added
}

func (d *DataStore) UpdateBankExperience(id int64, patch fields.Patch) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := patchRecord(s.BankExperiences, bankexperience.Fields, id, patch)
		if err != nil {
			return s, err
		}
		s.BankExperiences = list
		return s, nil
	})
}

func (d *DataStore) DeleteBankExperience(id int64) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := removeRecord(s.BankExperiences, bankexperience.Fields, id)
		if err != nil {
			return s, err
		}
		s.BankExperiences = list
		return s, nil
	})
}

// ==================== NONBANKEXPERIENCE ====================

func (d *DataStore) SetNonBankExperiences(list []nonbankexperience.NonBankExperience) {
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.NonBankExperiences = slices.Clone(list)
		return s, nil
	})
}

func (d *DataStore) AddNonBankExperience(exp nonbankexperience.NonBankExperience) nonbankexperience.NonBankExperience {
	var added nonbankexperience.NonBankExperience
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.NonBankExperiences, added = appendRecord(s.NonBankExperiences, exp)
		return s, nil
	})
	return added
}

func (d *DataStore) UpdateNonBankExperience(id int64, patch fields.Patch) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := patchRecord(s.NonBankExperiences, nonbankexperience.Fields, id, patch)
		if err != nil {
			return s, err
		}
		s.NonBankExperiences = list
		return s, nil
	})
}

func (d *DataStore) DeleteNonBankExperience(id int64) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := removeRecord(s.NonBankExperiences, nonbankexperience.Fields, id)
		if err != nil {
			return s, err
		}
		s.NonBankExperiences = list
		return s, nil
	})
}

// ==================== DISCIPLINARYACTION ====================

func (d *DataStore) SetDisciplinaryActions(list []disciplinaryaction.DisciplinaryAction) {
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.DisciplinaryActions = slices.Clone(list)
		return s, nil
	})
}

func (d *DataStore) AddDisciplinaryAction(action disciplinaryaction.DisciplinaryAction) disciplinaryaction.DisciplinaryAction {
	var added disciplinaryaction.DisciplinaryAction
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.DisciplinaryActions, added = appendRecord(s.DisciplinaryActions, action)
		return s, nil
	})
	return added
}

func (d *DataStore) UpdateDisciplinaryAction(id int64, patch fields.Patch) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := patchRecord(s.DisciplinaryActions, disciplinaryaction.Fields, id, patch)
		if err != nil {
			return s, err
		}
		s.DisciplinaryActions = list
		return s, nil
	})
}

func (d *DataStore) DeleteDisciplinaryAction(id int64) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := removeRecord(s.DisciplinaryActions, disciplinaryaction.Fields, id)
		if err != nil {
			return s, err
		}
		s.DisciplinaryActions = list
		return s, nil
	})
}

// ==================== PROFESSIONALTRAINING ====================

func (d *DataStore) SetProfessionalTrainings(list []professionaltraining.ProfessionalTraining) {
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.ProfessionalTrainings = slices.Clone(list)
		return s, nil
	})
}

func (d *DataStore) AddProfessionalTraining(training professionaltraining.ProfessionalTraining) professionaltraining.ProfessionalTraining {
	var added professionaltraining.ProfessionalTraining
	_ = d.Mutate(func(s DataState) (DataState, error) {
		s.ProfessionalTrainings, added = appendRecord(s.ProfessionalTrainings, training)
		return s, nil
	})
	return added
}

func (d *DataStore) UpdateProfessionalTraining(id int64, patch fields.Patch) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := patchRecord(s.ProfessionalTrainings, professionaltraining.Fields, id, patch)
		if err != nil {
			return s, err
		}
		s.ProfessionalTrainings = list
		return s, nil
	})
}

func (d *DataStore) DeleteProfessionalTraining(id int64) error {
	return d.Mutate(func(s DataState) (DataState, error) {
		list, err := removeRecord(s.ProfessionalTrainings, professionaltraining.Fields, id)
		if err != nil {
			return s, err
		}
		s.ProfessionalTrainings = list
		return s, nil
	})
}
