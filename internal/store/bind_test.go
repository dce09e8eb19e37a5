package store

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectSheets(s DataState) []informationsheet.InformationSheet { return s.InformationSheets }

func TestBind_FiresOnlyWhenSliceChanges(t *testing.T) {
	d := NewDataStore()
	d.SetInformationSheets(seededSheets())

	renders := 0
	b := Bind(d, selectSheets, Identity[informationsheet.InformationSheet], func([]informationsheet.InformationSheet) { renders++ })
	defer b.Close()

	assert.Len(t, b.Current(), 3)

	d.AddBankExperience(bankexperience.BankExperience{Affectation: "Agence Bejaia", Poste: "Caissier", DateDebut: "2020-01-01"})
	assert.Zero(t, renders)

	require.NoError(t, d.UpdateInformationSheet(1, fields.Patch{"poste": "Chef d'agence"}))
	assert.Equal(t, 1, renders)
	assert.Equal(t, "Chef d'agence", b.Current()[0].Poste)
}

// racingSource lands a mutation while the binding is subscribing, before the
// listener is registered.
type racingSource struct {
	*Store[int]
}

func setInt(s *Store[int], v int) {
	_ = s.Mutate(func(int) (int, error) { return v, nil })
}

func (r racingSource) Subscribe(fn Listener[int]) func() {
	setInt(r.Store, 2)
	return r.Store.Subscribe(fn)
}

func TestBind_SeesMutationDuringSubscribe(t *testing.T) {
	src := racingSource{NewStore(1)}

	b := Bind[int, int](src, func(v int) int { return v }, Equal[int], nil)
	defer b.Close()

	assert.Equal(t, 2, b.Current())
	setInt(src.Store, 3)
	assert.Equal(t, 3, b.Current())
}

func TestBind_NeverMatchesOriginalBehaviour(t *testing.T) {
	d := NewDataStore()
	renders := 0
	b := Bind(d, selectSheets, Never[[]informationsheet.InformationSheet], func([]informationsheet.InformationSheet) { renders++ })
	defer b.Close()

	d.AddBankExperience(bankexperience.BankExperience{Affectation: "Agence Annaba", Poste: "Caissier", DateDebut: "2020-01-01"})
	d.SetBankExperiences(nil)

	assert.Equal(t, 2, renders)
}

func TestBind_ComparableSelector(t *testing.T) {
	u := NewUIStore(ThemeDark)
	var kinds []DialogKind
	b := Bind(u, func(s UIState) DialogKind { return s.DisciplinaryAction.Dialog.Kind() }, Equal[DialogKind], func(k DialogKind) { kinds = append(kinds, k) })
	defer b.Close()

	u.OpenDisciplinaryAction(Adding[disciplinaryaction.DisciplinaryAction]())
	u.SetTheme(ThemeLight)
	u.OpenDisciplinaryAction(Adding[disciplinaryaction.DisciplinaryAction]())
	u.CloseDisciplinaryAction()

	assert.Equal(t, []DialogKind{DialogAdd, DialogClosed}, kinds)
}

func TestBind_DeepEqual(t *testing.T) {
	d := NewDataStore()
	d.SetInformationSheets(seededSheets())
	renders := 0
	b := Bind(d, selectSheets, DeepEqual[[]informationsheet.InformationSheet], func([]informationsheet.InformationSheet) { renders++ })
	defer b.Close()

	// same content, new slice
	d.SetInformationSheets(seededSheets())
	assert.Zero(t, renders)

	d.SetInformationSheets(seededSheets()[:1])
	assert.Equal(t, 1, renders)
}

func TestBind_CloseUnsubscribes(t *testing.T) {
	d := NewDataStore()
	renders := 0
	b := Bind(d, selectSheets, Identity[informationsheet.InformationSheet], func([]informationsheet.InformationSheet) { renders++ })
	b.Close()

	d.SetInformationSheets(seededSheets())

	assert.Zero(t, renders)
	assert.Zero(t, d.SubscriberCount())
}

func TestIdentity(t *testing.T) {
	a := []int{1, 2, 3}
	assert.True(t, Identity(a, a))
	assert.False(t, Identity(a, []int{1, 2, 3}))
	assert.False(t, Identity(a, a[:2]))
	assert.True(t, Identity[int](nil, nil))
	assert.False(t, Identity(nil, []int{}))
}

func TestProvider(t *testing.T) {
	ctx := context.Background()
	assert.PanicsWithValue(t, ErrNoProvider, func() { Data(ctx) })
	assert.PanicsWithValue(t, ErrNoProvider, func() { UI(ctx) })

	d := NewDataStore()
	u := NewUIStore(ThemeLight)
	ctx = WithUI(WithData(ctx, d), u)

	assert.Same(t, d, Data(ctx))
	assert.Same(t, u, UI(ctx))
}
