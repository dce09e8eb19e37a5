package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
)

type palette struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Selected   lipgloss.Color
}

var (
	darkPalette = palette{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#4fb477"),
		Muted:      lipgloss.Color("#7d8799"),
		Border:     lipgloss.Color("#2a3850"),
		Selected:   lipgloss.Color("#1e3a2b"),
	}
	lightPalette = palette{
		Foreground: lipgloss.Color("#101f38"),
		Primary:    lipgloss.Color("#0b6e4f"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#c9ced6"),
		Selected:   lipgloss.Color("#d8f0e3"),
	}

	errorColor = lipgloss.Color("#e53935")
)

type styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Dialog    lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Table     table.Styles
}

func newStyles(theme store.Theme) styles {
	p := darkPalette
	if theme == store.ThemeLight {
		p = lightPalette
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(p.Primary)
	ts.Selected = ts.Selected.
		Foreground(p.Foreground).
		Background(p.Selected).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(p.Foreground)

	return styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary).MarginBottom(1),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(p.Muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.Primary).Underline(true),
		Status:    lipgloss.NewStyle().Foreground(p.Primary),
		Error:     lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(p.Muted),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Primary).Padding(1, 2),
		Label:     lipgloss.NewStyle().Foreground(p.Muted).Width(26),
		Focused:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Width(26),
		Table:     ts,
	}
}
