// Package report builds the printable documents of an information sheet:
// the work certificate, the administrative investigation letter and the
// xlsx register of all sheets.
package report

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var ErrActionNotOnSheet = errors.New("disciplinary action does not belong to this information sheet")

// Source reads the records a document is built from. Both the REST client
// and the server repositories provide one.
type Source interface {
	InformationSheet(ctx context.Context, id int64) (informationsheet.InformationSheet, error)
	BankExperiencesOf(ctx context.Context, sheetID int64) ([]bankexperience.BankExperience, error)
	NonBankExperiencesOf(ctx context.Context, sheetID int64) ([]nonbankexperience.NonBankExperience, error)
	DisciplinaryActionsOf(ctx context.Context, sheetID int64) ([]disciplinaryaction.DisciplinaryAction, error)
	ProfessionalTrainingsOf(ctx context.Context, sheetID int64) ([]professionaltraining.ProfessionalTraining, error)
}

// Letterhead is printed on every document.
type Letterhead struct {
	BankName  string `yaml:"bank_name"`
	Direction string `yaml:"direction"`
	City      string `yaml:"city"`
	Signatory string `yaml:"signatory"`
}

type Kind string

const (
	WorkCertificate     Kind = "work-certificate"
	InvestigationLetter Kind = "investigation-letter"
)

type Document struct {
	Kind     Kind
	Title    string
	Filename string
	Markdown string
}

// Dossier is an information sheet with every record attached to it.
type Dossier struct {
	Sheet                 informationsheet.InformationSheet
	BankExperiences       []bankexperience.BankExperience
	NonBankExperiences    []nonbankexperience.NonBankExperience
	DisciplinaryActions   []disciplinaryaction.DisciplinaryAction
	ProfessionalTrainings []professionaltraining.ProfessionalTraining
}

type Builder struct {
	src       Source
	head      Letterhead
	now       func() time.Time
	templates *template.Template
}

func NewBuilder(src Source, head Letterhead) *Builder {
	return &Builder{
		src:       src,
		head:      head,
		now:       time.Now,
		templates: template.Must(template.New("report").Funcs(funcs).ParseFS(templateFS, "templates/*.md.tmpl")),
	}
}

// Collect fetches the sheet and its sub-records concurrently.
func (b *Builder) Collect(ctx context.Context, sheetID int64) (Dossier, error) {
	var d Dossier
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Sheet, err = b.src.InformationSheet(ctx, sheetID)
		return err
	})
	g.Go(func() (err error) {
		d.BankExperiences, err = b.src.BankExperiencesOf(ctx, sheetID)
		return err
	})
	g.Go(func() (err error) {
		d.NonBankExperiences, err = b.src.NonBankExperiencesOf(ctx, sheetID)
		return err
	})
	g.Go(func() (err error) {
		d.DisciplinaryActions, err = b.src.DisciplinaryActionsOf(ctx, sheetID)
		return err
	})
	g.Go(func() (err error) {
		d.ProfessionalTrainings, err = b.src.ProfessionalTrainingsOf(ctx, sheetID)
		return err
	})

	if err := g.Wait(); err != nil {
		return Dossier{}, err
	}
	return d, nil
}

func (b *Builder) WorkCertificate(ctx context.Context, sheetID int64) (Document, error) {
	d, err := b.Collect(ctx, sheetID)
	if err != nil {
		return Document{}, err
	}

	md, err := b.render("work_certificate.md.tmpl", map[string]any{
		"Head":                  b.head,
		"Today":                 b.today(),
		"Sheet":                 d.Sheet,
		"BankExperiences":       d.BankExperiences,
		"ProfessionalTrainings": d.ProfessionalTrainings,
	})
	if err != nil {
		return Document{}, err
	}
	return Document{
		Kind:     WorkCertificate,
		Title:    "Attestation de travail - " + d.Sheet.FullName(),
		Filename: fmt.Sprintf("attestation-travail-%s", slug(d.Sheet.Matricule)),
		Markdown: md,
	}, nil
}

// InvestigationLetter builds the letter for one disciplinary action of the
// sheet. The sheet's other actions are listed as history.
func (b *Builder) InvestigationLetter(ctx context.Context, sheetID, actionID int64) (Document, error) {
	d, err := b.Collect(ctx, sheetID)
	if err != nil {
		return Document{}, err
	}

	var action *disciplinaryaction.DisciplinaryAction
	var previous []disciplinaryaction.DisciplinaryAction
	for i := range d.DisciplinaryActions {
		a := d.DisciplinaryActions[i]
		if a.ID == actionID {
			action = &a
			continue
		}
		previous = append(previous, a)
	}
	if action == nil {
		return Document{}, fmt.Errorf("%w: action %d, sheet %d", ErrActionNotOnSheet, actionID, sheetID)
	}

	md, err := b.render("investigation_letter.md.tmpl", map[string]any{
		"Head":     b.head,
		"Today":    b.today(),
		"Sheet":    d.Sheet,
		"Action":   action,
		"Previous": previous,
	})
	if err != nil {
		return Document{}, err
	}
	return Document{
		Kind:     InvestigationLetter,
		Title:    "Enquête administrative - " + d.Sheet.FullName(),
		Filename: fmt.Sprintf("enquete-administrative-%s-%s", slug(d.Sheet.Matricule), slug(action.ReferenceDecision)),
		Markdown: md,
	}, nil
}

func (b *Builder) today() string {
	return b.now().Format("2006-01-02")
}

func (b *Builder) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := b.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

var funcs = template.FuncMap{
	"esc":  escapeMarkdown,
	"date": frenchDate,
	"year": func(d string) string {
		if len(d) >= 4 {
			return d[:4]
		}
		return d
	},
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `|`, `\|`,
	`[`, `\[`, `]`, `\]`, `<`, `&lt;`, `>`, `&gt;`, `#`, `\#`,
)

// escapeMarkdown keeps record text from being read as markup.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// frenchDate turns YYYY-MM-DD into DD/MM/YYYY.
func frenchDate(d string) string {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		if d == "" {
			return "non renseignée"
		}
		return escapeMarkdown(d)
	}
	return t.Format("02/01/2006")
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
