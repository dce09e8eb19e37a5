package store

import (
	"sync"
	"testing"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSheets() []informationsheet.InformationSheet {
	return []informationsheet.InformationSheet{
		{ID: 1, Matricule: "M-001", Nom: "Benali", Prenom: "Amine", DateNaissance: "1985-04-12", Sexe: "M", DateRecrutement: "2010-09-01", Poste: "Caissier"},
		{ID: 2, Matricule: "M-002", Nom: "Kaci", Prenom: "Lydia", DateNaissance: "1990-01-30", Sexe: "F", DateRecrutement: "2015-02-15", Poste: "Chargee de clientele", Groupe: "B", Echelon: "3"},
		{ID: 5, Matricule: "M-005", Nom: "Mansouri", Prenom: "Karim", DateNaissance: "1979-11-02", Sexe: "M", DateRecrutement: "2004-06-01", Poste: "Directeur d'agence"},
	}
}

func TestDataStore_AddBankExperience_AssignsNextID(t *testing.T) {
	d := NewDataStore()
	d.SetBankExperiences([]bankexperience.BankExperience{
		{ID: 3, Affectation: "Agence Alger Centre", Poste: "Guichetier", DateDebut: "2012-01-01"},
		{ID: 7, Affectation: "Agence Oran", Poste: "Caissier", DateDebut: "2016-03-01"},
	})

	added := d.AddBankExperience(bankexperience.BankExperience{Affectation: "Branch A", Poste: "Teller", PBI: 0, DateDebut: "2024-01-01"})

	assert.Equal(t, int64(8), added.ID)
	list := d.Get().BankExperiences
	require.Len(t, list, 3)
	assert.Equal(t, added, list[2])
	assert.Equal(t, "Branch A", list[2].Affectation)
	assert.Equal(t, "Teller", list[2].Poste)
}

func TestDataStore_AddToEmptyCollection_StartsAtOne(t *testing.T) {
	d := NewDataStore()

	added := d.AddProfessionalTraining(professionaltraining.ProfessionalTraining{Specialite: "Finance", Etablissement: "ESB", DateDebut: "2020-01-01"})

	assert.Equal(t, int64(1), added.ID)
}

func TestDataStore_AddIgnoresCallerID(t *testing.T) {
	d := NewDataStore()
	d.SetNonBankExperiences([]nonbankexperience.NonBankExperience{{ID: 4, Organisme: "Sonatrach", Poste: "Comptable", DateDebut: "2001-01-01"}})

	added := d.AddNonBankExperience(nonbankexperience.NonBankExperience{ID: 1, Organisme: "APC", Poste: "Agent", DateDebut: "1999-01-01"})

	assert.Equal(t, int64(5), added.ID)
}

func TestDataStore_UpdateInformationSheet_MergesPatch(t *testing.T) {
	d := NewDataStore()
	d.SetInformationSheets(seededSheets())
	before := d.Get().InformationSheets

	err := d.UpdateInformationSheet(2, fields.Patch{"nom": "NewName"})
	require.NoError(t, err)

	after := d.Get().InformationSheets
	require.Len(t, after, 3)

	want := before[1]
	want.Nom = "NewName"
	assert.Equal(t, want, after[1])
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])

	// the previous snapshot is untouched
	assert.Equal(t, "Kaci", before[1].Nom)
}

func TestDataStore_UpdateKeepsOtherCollectionsIdentical(t *testing.T) {
	d := NewDataStore()
	d.SetInformationSheets(seededSheets())
	d.SetBankExperiences([]bankexperience.BankExperience{{ID: 1, Affectation: "Agence Blida", Poste: "Caissier", DateDebut: "2011-01-01"}})
	before := d.Get()

	require.NoError(t, d.UpdateInformationSheet(1, fields.Patch{"poste": "Chef de service"}))

	after := d.Get()
	assert.True(t, Identity(before.BankExperiences, after.BankExperiences))
	assert.False(t, Identity(before.InformationSheets, after.InformationSheets))
}

func TestDataStore_UpdateMultipleFields(t *testing.T) {
	d := NewDataStore()
	d.SetBankExperiences([]bankexperience.BankExperience{{ID: 1, Affectation: "Agence Blida", Poste: "Caissier", DateDebut: "2011-01-01", PBI: 2}})

	require.NoError(t, d.UpdateBankExperience(1, fields.Patch{"pbi": 4, "dateFin": "2019-12-31"}))

	got := d.Get().BankExperiences[0]
	assert.Equal(t, 4, got.PBI)
	assert.Equal(t, "2019-12-31", got.DateFin)
	assert.Equal(t, "Agence Blida", got.Affectation)
}

func TestDataStore_UpdateRejectsUnknownAndIDFields(t *testing.T) {
	d := NewDataStore()
	d.SetInformationSheets(seededSheets())
	before := d.Get().InformationSheets

	err := d.UpdateInformationSheet(2, fields.Patch{"surname": "X"})
	assert.ErrorIs(t, err, fields.ErrUnknownField)

	err = d.UpdateInformationSheet(2, fields.Patch{"id": 9})
	assert.ErrorIs(t, err, fields.ErrImmutableField)

	assert.True(t, Identity(before, d.Get().InformationSheets))
}

func TestDataStore_UnknownID_LeavesCollectionUnchanged(t *testing.T) {
	d := NewDataStore()
	d.SetInformationSheets(seededSheets())
	before := d.Get().InformationSheets

	notified := 0
	unsubscribe := d.Subscribe(func(DataState) { notified++ })
	defer unsubscribe()

	err := d.UpdateInformationSheet(42, fields.Patch{"nom": "Ghost"})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = d.DeleteInformationSheet(42)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.True(t, Identity(before, d.Get().InformationSheets))
	assert.Equal(t, seededSheets(), d.Get().InformationSheets)
	assert.Zero(t, notified)
}

func TestDataStore_Delete_PreservesOrder(t *testing.T) {
	d := NewDataStore()
	d.SetInformationSheets(seededSheets())

	require.NoError(t, d.DeleteInformationSheet(2))

	got := d.Get().InformationSheets
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(5), got[1].ID)
}

func TestDataStore_DeleteDisciplinaryAction(t *testing.T) {
	d := NewDataStore()
	d.SetDisciplinaryActions([]disciplinaryaction.DisciplinaryAction{
		{ID: 1, TypeSanction: "Avertissement", ReferenceDecision: "D-1", DateDecision: "2020-01-01"},
		{ID: 2, TypeSanction: "Blame", ReferenceDecision: "D-2", DateDecision: "2021-01-01"},
		{ID: 3, TypeSanction: "Mise a pied", ReferenceDecision: "D-3", DateDecision: "2022-01-01"},
	})

	require.NoError(t, d.DeleteDisciplinaryAction(1))

	got := d.Get().DisciplinaryActions
	require.Len(t, got, 2)
	assert.Equal(t, "D-2", got[0].ReferenceDecision)
	assert.Equal(t, "D-3", got[1].ReferenceDecision)
}

func TestDataStore_SetCopiesInput(t *testing.T) {
	d := NewDataStore()
	input := seededSheets()
	d.SetInformationSheets(input)

	input[0].Nom = "Changed"

	assert.Equal(t, "Benali", d.Get().InformationSheets[0].Nom)
}

func TestDataStore_NotifiesEverySubscriberInOrder(t *testing.T) {
	d := NewDataStore()
	var calls []string

	unsubA := d.Subscribe(func(s DataState) { calls = append(calls, "a") })
	unsubB := d.Subscribe(func(s DataState) { calls = append(calls, "b") })

	d.SetInformationSheets(seededSheets())
	unsubA()
	d.AddInformationSheet(informationsheet.InformationSheet{Nom: "Haddad"})
	unsubB()
	unsubB()
	d.SetInformationSheets(nil)

	assert.Equal(t, []string{"a", "b", "b"}, calls)
	assert.Zero(t, d.SubscriberCount())
}

func TestDataStore_ListenerSeesNewState(t *testing.T) {
	d := NewDataStore()
	var seen []informationsheet.InformationSheet
	defer d.Subscribe(func(s DataState) { seen = s.InformationSheets })()

	d.SetInformationSheets(seededSheets())

	assert.Len(t, seen, 3)
}

func TestDataStore_ListenerMayMutate(t *testing.T) {
	d := NewDataStore()
	once := false
	defer d.Subscribe(func(s DataState) {
		if !once {
			once = true
			d.AddBankExperience(bankexperience.BankExperience{Affectation: "Agence Tizi", Poste: "Caissier", DateDebut: "2020-01-01"})
		}
	})()

	d.SetBankExperiences(nil)

	assert.Len(t, d.Get().BankExperiences, 1)
}

func TestDataStore_ConcurrentAdds(t *testing.T) {
	d := NewDataStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.AddNonBankExperience(nonbankexperience.NonBankExperience{Organisme: "SNTF", Poste: "Agent", DateDebut: "2000-01-01"})
		}()
	}
	wg.Wait()

	list := d.Get().NonBankExperiences
	require.Len(t, list, 50)
	seen := map[int64]bool{}
	for _, e := range list {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}
