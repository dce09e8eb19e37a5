package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
)

// Resource is the remote side of a feature.
type Resource[R any] interface {
	GetAll(ctx context.Context, parentID *int64) ([]R, error)
	Create(ctx context.Context, item R) (R, error)
	Update(ctx context.Context, id int64, patch fields.Patch) (R, error)
	Delete(ctx context.Context, id int64) error
}

type column struct {
	Field string
	Title string
	Width int
}

// featureDef wires one entity to its resource, its collection in the data
// store and its interaction state in the UI store.
type featureDef[R record.Validatable] struct {
	Title    string
	Singular string
	Table    *fields.Table
	Columns  []column
	Form     []formField
	Resource Resource[R]
	ID       func(R) int64

	List   func(store.DataState) []R
	Set    func([]R)
	Update func(id int64, patch fields.Patch) error
	Delete func(id int64) error

	State  func(store.UIState) store.FeatureState[R]
	Open   func(store.Dialog[R])
	Close  func()
	SetRow func(*R)

	// Print is nil for features without a document.
	Print      func(ctx context.Context, b *report.Builder, row R) (report.Document, error)
	PrintLabel string
}

// page is the type-erased view of a feature the app drives.
type page interface {
	Title() string
	Fetch(ctx context.Context) (apply func(), err error)
	HandleKey(a *App, msg tea.KeyMsg) tea.Cmd
	DialogOpen() bool
	Sync(st styles)
	Resize(width, height int)
	View(st styles) string
	Help() string
	Close()
}

type featurePage[R record.Validatable] struct {
	def   featureDef[R]
	list  *store.Binding[[]R]
	state *store.Binding[store.FeatureState[R]]
	table table.Model
	form  *form
	dirty bool
}

func newFeaturePage[R record.Validatable](def featureDef[R], data *store.DataStore, ui *store.UIStore, st styles) *featurePage[R] {
	cols := make([]table.Column, len(def.Columns))
	for i, c := range def.Columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	p := &featurePage[R]{
		def:   def,
		table: table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(15)),
		dirty: true,
	}
	p.table.SetStyles(st.Table)
	p.list = store.Bind(data, def.List, store.Identity[R], func([]R) { p.dirty = true })
	p.state = store.Bind(ui, def.State, store.DeepEqual[store.FeatureState[R]], nil)
	return p
}

func (p *featurePage[R]) Title() string { return p.def.Title }

// Fetch loads the collection; apply stores it and must run on the UI goroutine.
func (p *featurePage[R]) Fetch(ctx context.Context) (func(), error) {
	list, err := p.def.Resource.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.def.Title, err)
	}
	return func() { p.def.Set(list) }, nil
}

func (p *featurePage[R]) DialogOpen() bool {
	return p.state.Current().Dialog.IsOpen()
}

func (p *featurePage[R]) Close() {
	p.list.Close()
	p.state.Close()
}

// Sync rebuilds the rows after the collection changed and keeps the current
// row of the UI store on the cursor.
func (p *featurePage[R]) Sync(st styles) {
	p.table.SetStyles(st.Table)
	if !p.dirty {
		return
	}
	p.dirty = false

	items := p.list.Current()
	rows := make([]table.Row, 0, len(items))
	for _, it := range items {
		obj, err := fields.Object(it)
		if err != nil {
			continue
		}
		row := make(table.Row, len(p.def.Columns))
		for i, c := range p.def.Columns {
			row[i] = display(obj[c.Field])
		}
		rows = append(rows, row)
	}
	p.table.SetRows(rows)
	if p.table.Cursor() >= len(rows) {
		p.table.SetCursor(max(len(rows)-1, 0))
	}
	p.syncRow()
}

func (p *featurePage[R]) syncRow() {
	items := p.list.Current()
	cur := p.table.Cursor()
	if cur < 0 || cur >= len(items) {
		p.def.SetRow(nil)
		return
	}
	row := items[cur]
	p.def.SetRow(&row)
}

func (p *featurePage[R]) Resize(width, height int) {
	p.table.SetWidth(width)
	p.table.SetHeight(max(height, 3))
}

func (p *featurePage[R]) current() (R, bool) {
	row := p.state.Current().CurrentRow
	if row == nil {
		var zero R
		return zero, false
	}
	return *row, true
}

func (p *featurePage[R]) HandleKey(a *App, msg tea.KeyMsg) tea.Cmd {
	dialog := p.state.Current().Dialog
	switch dialog.Kind() {
	case store.DialogAdd, store.DialogEdit:
		return p.handleForm(a, msg, dialog)
	case store.DialogDelete:
		return p.handleDelete(a, msg, dialog)
	}

	switch msg.String() {
	case "a":
		p.form = newForm(p.def.Form, nil)
		p.def.Open(store.Adding[R]())
		return nil
	case "e", "enter":
		row, ok := p.current()
		if !ok {
			return nil
		}
		obj, err := fields.Object(row)
		if err != nil {
			a.fail(err)
			return nil
		}
		p.form = newForm(p.def.Form, obj)
		p.def.Open(store.Editing(row))
		return nil
	case "d", "delete":
		if row, ok := p.current(); ok {
			p.def.Open(store.Deleting(row))
		}
		return nil
	case "p":
		row, ok := p.current()
		if !ok || p.def.Print == nil {
			return nil
		}
		return a.print(func(ctx context.Context, b *report.Builder) (report.Document, error) {
			return p.def.Print(ctx, b, row)
		})
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	p.syncRow()
	return cmd
}

func (p *featurePage[R]) handleForm(a *App, msg tea.KeyMsg, dialog store.Dialog[R]) tea.Cmd {
	if msg.String() == "esc" {
		p.closeDialog()
		return nil
	}
	if p.form == nil {
		p.closeDialog()
		return nil
	}
	submit, cmd := p.form.Update(msg)
	if !submit {
		return cmd
	}
	// One remote write at a time per dialog.
	if a.busy {
		return nil
	}

	if dialog.Kind() == store.DialogAdd {
		return p.submitAdd(a)
	}
	row, _ := dialog.Row()
	return p.submitEdit(a, row)
}

func (p *featurePage[R]) submitAdd(a *App) tea.Cmd {
	patch, err := p.form.Patch(false)
	if err != nil {
		a.fail(err)
		return nil
	}
	var zero R
	item, err := fields.Merge(p.def.Table, zero, patch)
	if err != nil {
		a.fail(err)
		return nil
	}
	if err := item.Validate(); err != nil {
		a.fail(err)
		return nil
	}

	return a.run(func(ctx context.Context) (func(), string, error) {
		if _, err := p.def.Resource.Create(ctx, item); err != nil {
			return nil, "", err
		}
		// Re-read so the stored list carries the server id.
		apply, err := p.Fetch(ctx)
		if err != nil {
			return nil, "", err
		}
		return func() {
			apply()
			p.closeDialog()
		}, p.def.Singular + " ajouté(e)", nil
	})
}

func (p *featurePage[R]) submitEdit(a *App, row R) tea.Cmd {
	patch, err := p.form.Patch(true)
	if err != nil {
		a.fail(err)
		return nil
	}
	if len(patch) == 0 {
		p.closeDialog()
		return nil
	}
	merged, err := fields.Merge(p.def.Table, row, patch)
	if err != nil {
		a.fail(err)
		return nil
	}
	if err := merged.Validate(); err != nil {
		a.fail(err)
		return nil
	}

	id := p.def.ID(row)
	return a.run(func(ctx context.Context) (func(), string, error) {
		if _, err := p.def.Resource.Update(ctx, id, patch); err != nil {
			return nil, "", err
		}
		return func() {
			if err := p.def.Update(id, patch); err != nil {
				a.fail(err)
			}
			p.closeDialog()
		}, p.def.Singular + " modifié(e)", nil
	})
}

func (p *featurePage[R]) handleDelete(a *App, msg tea.KeyMsg, dialog store.Dialog[R]) tea.Cmd {
	switch msg.String() {
	case "y", "o":
		if a.busy {
			return nil
		}
		row, _ := dialog.Row()
		id := p.def.ID(row)
		return a.run(func(ctx context.Context) (func(), string, error) {
			if err := p.def.Resource.Delete(ctx, id); err != nil {
				return nil, "", err
			}
			return func() {
				if err := p.def.Delete(id); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
					a.fail(err)
				}
				p.closeDialog()
			}, p.def.Singular + " supprimé(e)", nil
		})
	case "n", "esc":
		p.closeDialog()
	}
	return nil
}

// closeDialog clears the UI state and points it back at the cursor row.
func (p *featurePage[R]) closeDialog() {
	p.form = nil
	p.def.Close()
	p.syncRow()
}

func (p *featurePage[R]) View(st styles) string {
	state := p.state.Current()
	switch state.Dialog.Kind() {
	case store.DialogAdd, store.DialogEdit:
		title := "Nouveau : " + p.def.Singular
		if state.Dialog.Kind() == store.DialogEdit {
			title = "Modifier : " + p.def.Singular
		}
		body := ""
		if p.form != nil {
			body = p.form.View(st)
		}
		return st.Dialog.Render(st.Title.Render(title) + "\n" + body + "\n" +
			st.Help.Render("tab: champ suivant • entrée/ctrl+s: enregistrer • échap: annuler"))
	case store.DialogDelete:
		row, _ := state.Dialog.Row()
		return st.Dialog.Render(st.Title.Render("Supprimer : "+p.def.Singular) + "\n" +
			fmt.Sprintf("Supprimer l'enregistrement n° %d ?", p.def.ID(row)) + "\n\n" +
			st.Help.Render("o/y: confirmer • n/échap: annuler"))
	}

	if len(p.list.Current()) == 0 {
		return st.Help.Render("Aucun enregistrement. Appuyez sur « a » pour en ajouter un.")
	}
	return p.table.View()
}

func (p *featurePage[R]) Help() string {
	parts := []string{"a: ajouter", "e: modifier", "d: supprimer"}
	if p.def.Print != nil {
		parts = append(parts, "p: "+p.def.PrintLabel)
	}
	return strings.Join(parts, " • ")
}
