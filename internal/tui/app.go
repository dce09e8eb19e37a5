// Package tui is the terminal back-office: one page per entity, each a table
// with add, edit, delete and print actions driven by the data and UI stores.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 15 * time.Second

var errNoReports = errors.New("impression indisponible")

type Options struct {
	// OnThemeChange persists the theme after the operator toggled it.
	OnThemeChange func(store.Theme) error
	// Timeout bounds each remote call. Zero means 15s.
	Timeout time.Duration
}

type (
	loadedMsg struct {
		applies []func()
		err     error
	}
	resultMsg struct {
		apply  func()
		status string
		err    error
	}
	printMsg struct {
		doc      report.Document
		rendered string
		err      error
	}
)

// App is the bubbletea model of the console. Remote calls run as commands and
// hand back closures; store mutations only happen inside Update.
type App struct {
	ctx     context.Context
	backend Backend
	opts    Options

	ui     *store.UIStore
	theme  *store.Binding[store.Theme]
	styles styles
	pages  []page
	active int

	status string
	err    error
	busy   bool
	doc    *report.Document
	viewer viewport.Model
	width  int
	height int
}

// New builds the console over the stores carried by ctx. It panics when ctx
// holds no stores.
func New(ctx context.Context, backend Backend, opts Options) *App {
	data := store.Data(ctx)
	ui := store.UI(ctx)
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	a := &App{
		ctx:     ctx,
		backend: backend,
		opts:    opts,
		ui:      ui,
		styles:  newStyles(ui.Get().Theme),
	}
	a.theme = store.Bind(ui, func(s store.UIState) store.Theme { return s.Theme }, store.Equal[store.Theme], a.themeChanged)
	a.pages = pages(backend, data, ui, a.styles)
	return a
}

func (a *App) themeChanged(t store.Theme) {
	a.styles = newStyles(t)
	if a.opts.OnThemeChange == nil {
		return
	}
	if err := a.opts.OnThemeChange(t); err != nil {
		a.fail(fmt.Errorf("enregistrement du thème: %w", err))
	}
}

func (a *App) Init() tea.Cmd {
	return a.load()
}

// load fetches every collection concurrently. Nothing is stored unless all
// fetches succeed.
func (a *App) load() tea.Cmd {
	a.busy = true
	a.status = "Chargement..."
	pages := a.pages
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, a.opts.Timeout)
		defer cancel()

		applies := make([]func(), len(pages))
		g, gctx := errgroup.WithContext(ctx)
		for i, p := range pages {
			g.Go(func() error {
				apply, err := p.Fetch(gctx)
				applies[i] = apply
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{applies: applies}
	}
}

// run executes fn off the UI goroutine; its apply closure runs back in Update.
func (a *App) run(fn func(ctx context.Context) (func(), string, error)) tea.Cmd {
	a.busy = true
	a.err = nil
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, a.opts.Timeout)
		defer cancel()
		apply, status, err := fn(ctx)
		return resultMsg{apply: apply, status: status, err: err}
	}
}

// print builds a document and renders it for the terminal in the current theme.
func (a *App) print(fn func(ctx context.Context, b *report.Builder) (report.Document, error)) tea.Cmd {
	if a.backend.Reports == nil {
		a.fail(errNoReports)
		return nil
	}
	a.busy = true
	a.err = nil
	theme := string(a.ui.Get().Theme)
	width := a.width
	b := a.backend.Reports
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, a.opts.Timeout)
		defer cancel()
		doc, err := fn(ctx, b)
		if err != nil {
			return printMsg{err: err}
		}
		out, err := report.Terminal(doc, theme, width)
		return printMsg{doc: doc, rendered: out, err: err}
	}
}

func (a *App) fail(err error) {
	slog.Error("console operation failed", slog.String("page", a.pages[a.active].Title()), slog.String("error", err.Error()))
	a.err = err
	a.status = ""
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	for _, p := range a.pages {
		p.Sync(a.styles)
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for _, p := range a.pages {
			p.Resize(msg.Width, msg.Height-8)
		}
		a.viewer.Width = msg.Width
		a.viewer.Height = max(msg.Height-6, 3)
		return nil

	case loadedMsg:
		a.busy = false
		if msg.err != nil {
			a.fail(msg.err)
			return nil
		}
		for _, apply := range msg.applies {
			if apply != nil {
				apply()
			}
		}
		a.err = nil
		a.status = "Données chargées"
		return nil

	case resultMsg:
		a.busy = false
		if msg.err != nil {
			a.fail(msg.err)
			return nil
		}
		a.err = nil
		a.status = msg.status
		if msg.apply != nil {
			msg.apply()
		}
		return nil

	case printMsg:
		a.busy = false
		if msg.err != nil {
			a.fail(msg.err)
			return nil
		}
		doc := msg.doc
		a.doc = &doc
		a.viewer = viewport.New(max(a.width, 80), max(a.height-6, 10))
		a.viewer.SetContent(msg.rendered)
		a.status = doc.Title
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	if a.doc != nil {
		switch key {
		case "esc", "q":
			a.doc = nil
			a.status = ""
			return nil
		}
		var cmd tea.Cmd
		a.viewer, cmd = a.viewer.Update(msg)
		return cmd
	}

	cur := a.pages[a.active]
	if cur.DialogOpen() {
		return cur.HandleKey(a, msg)
	}

	switch key {
	case "q":
		return tea.Quit
	case "tab":
		a.switchTo(a.active + 1)
		return nil
	case "shift+tab":
		a.switchTo(a.active - 1)
		return nil
	case "1", "2", "3", "4", "5":
		a.switchTo(int(key[0] - '1'))
		return nil
	case "t":
		a.ui.ToggleTheme()
		return nil
	case "r":
		return a.load()
	}
	return cur.HandleKey(a, msg)
}

func (a *App) switchTo(i int) {
	n := len(a.pages)
	if i >= n || i < 0 {
		i = (i%n + n) % n
	}
	a.active = i
}

func (a *App) View() string {
	st := a.styles

	tabs := make([]string, len(a.pages))
	for i, p := range a.pages {
		label := fmt.Sprintf("%d %s", i+1, p.Title())
		if i == a.active {
			tabs[i] = st.ActiveTab.Render(label)
		} else {
			tabs[i] = st.Tab.Render(label)
		}
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("Back-office RH"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	help := "tab: page suivante • 1-5: aller à • t: thème • r: recharger • q: quitter"
	if a.doc != nil {
		b.WriteString(st.Title.Render(a.doc.Title))
		b.WriteString("\n")
		b.WriteString(a.viewer.View())
		help = "↑/↓: défiler • échap: fermer"
	} else {
		cur := a.pages[a.active]
		b.WriteString(cur.View(st))
		if !cur.DialogOpen() {
			help = cur.Help() + " • " + help
		}
	}
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(st.Error.Render("Erreur : " + a.err.Error()))
	case a.busy:
		b.WriteString(st.Status.Render("..."))
	case a.status != "":
		b.WriteString(st.Status.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(st.Help.Render(help))
	return b.String()
}

// Close releases every store subscription held by the console.
func (a *App) Close() {
	a.theme.Close()
	for _, p := range a.pages {
		p.Close()
	}
}

var _ tea.Model = (*App)(nil)
