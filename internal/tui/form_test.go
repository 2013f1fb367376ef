package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestForm_FocusCycles(t *testing.T) {
	f := newForm(newField("A", "", 10), newField("B", "", 10), newField("C", "", 10))
	assert.Equal(t, 0, f.focus)

	assert.True(t, f.handleKey(keyTab))
	assert.Equal(t, 1, f.focus)
	assert.True(t, f.handleKey(keyDown))
	assert.True(t, f.handleKey(keyTab))
	assert.Equal(t, 0, f.focus, "wraps forward")

	assert.True(t, f.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab}))
	assert.Equal(t, 2, f.focus, "wraps backward")

	assert.False(t, f.handleKey(runes("x")))
}

func TestForm_TypesIntoFocusedField(t *testing.T) {
	f := newForm(newField("A", "", 10), newField("B", "", 10))

	f.update(runes("a"))
	f.handleKey(keyTab)
	f.update(runes("b"))

	assert.Equal(t, "a", f.value(0))
	assert.Equal(t, "b", f.value(1))
	assert.True(t, f.fields[1].input.Focused())
	assert.False(t, f.fields[0].input.Focused())
}

func TestForm_Trimmed(t *testing.T) {
	f := newForm(newField("A", "", 20))
	f.setValue(0, "  Go  ")

	assert.Equal(t, "  Go  ", f.value(0))
	assert.Equal(t, "Go", f.trimmed(0))
}

func TestStatusLine(t *testing.T) {
	assert.Contains(t, statusLine("Save", false, ""), "[Save]")
	assert.Contains(t, statusLine("Save", true, ""), "[Save...]")
	assert.Contains(t, statusLine("Save", false, "boom"), "Error: boom")
}
