package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	json "github.com/goccy/go-json"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindInt
	// kindRef is a nullable id such as informationSheetId.
	kindRef
)

// formField is one input of a dialog, keyed by internal field name.
type formField struct {
	Name  string
	Label string
	Kind  fieldKind
	Hint  string
}

type form struct {
	fields  []formField
	inputs  []textinput.Model
	initial []string
	focus   int
}

// newForm builds the inputs; values is the row in internal shape, nil when adding.
func newForm(defs []formField, values map[string]any) *form {
	f := &form{
		fields:  defs,
		inputs:  make([]textinput.Model, len(defs)),
		initial: make([]string, len(defs)),
	}
	for i, d := range defs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = d.Hint
		in.CharLimit = 255
		in.Width = 40
		f.initial[i] = display(values[d.Name])
		in.SetValue(f.initial[i])
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Update moves focus or edits the focused input. submit is true when the
// operator confirms the form.
func (f *form) Update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return true, nil
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return true, nil
		}
		return false, f.move(1)
	case "tab", "down":
		return false, f.move(1)
	case "shift+tab", "up":
		return false, f.move(-1)
	}
	if len(f.inputs) == 0 {
		return false, nil
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

func (f *form) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// set replaces the value of one input, for tests and prefilled forms.
func (f *form) set(name, value string) {
	for i, d := range f.fields {
		if d.Name == name {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

// Patch returns the typed values keyed by internal name. With changedOnly,
// inputs left as they were are omitted; otherwise empty inputs are.
func (f *form) Patch(changedOnly bool) (fields.Patch, error) {
	p := fields.Patch{}
	for i, d := range f.fields {
		raw := strings.TrimSpace(f.inputs[i].Value())
		if changedOnly && raw == f.initial[i] {
			continue
		}
		if !changedOnly && raw == "" {
			continue
		}

		switch d.Kind {
		case kindText:
			p[d.Name] = raw
		case kindInt:
			if raw == "" {
				p[d.Name] = 0
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: nombre entier attendu", d.Label)
			}
			p[d.Name] = n
		case kindRef:
			if raw == "" {
				p[d.Name] = nil
				continue
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%s: identifiant positif attendu", d.Label)
			}
			p[d.Name] = n
		}
	}
	return p, nil
}

func (f *form) View(st styles) string {
	var b strings.Builder
	for i, d := range f.fields {
		label := st.Label.Render(d.Label)
		if i == f.focus {
			label = st.Focused.Render("> " + d.Label)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, f.inputs[i].View()))
		b.WriteString("\n")
	}
	return b.String()
}

// display renders a value of an internal-shape object as input or cell text.
func display(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
