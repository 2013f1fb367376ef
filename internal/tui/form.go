package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field is one labelled text input of a form.
type field struct {
	label string
	input textinput.Model
}

func newField(label, placeholder string, limit int) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return field{label: label, input: in}
}

func newPasswordField(label string) field {
	f := newField(label, "password", 256)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

// form cycles focus over its fields with tab and shift+tab.
type form struct {
	fields []field
	focus  int
}

func newForm(fields ...field) form {
	f := form{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) trimmed(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) setValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

func (f *form) next() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) prev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// handleKey moves focus on tab and shift+tab and reports whether msg was
// consumed.
func (f *form) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab", "down":
		f.next()
		return true
	case "shift+tab", "up":
		f.prev()
		return true
	}
	return false
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f form) view() string {
	labelWidth := lipgloss.Width("Field")
	for _, fl := range f.fields {
		if w := lipgloss.Width(fl.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, fl := range f.fields {
		b.WriteString(cursor(i == f.focus))
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, fl.label))
		b.WriteString(fl.input.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// statusLine renders the submit button and the error of a form page.
func statusLine(action string, submitting bool, errMsg string) string {
	var b strings.Builder
	if submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
