package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func keyMatches(msg tea.KeyMsg, bindings ...key.Binding) bool {
	return key.Matches(msg, bindings...)
}

// field is a single-line text input: a rune buffer with a cursor. Forms are
// small enough here that this beats pulling in a full text-input widget.
type field struct {
	label  string
	runes  []rune
	cursor int
}

func newField(label string) field {
	return field{label: label}
}

func (f field) Value() string { return string(f.runes) }

func (f *field) SetValue(s string) {
	f.runes = []rune(s)
	f.cursor = len(f.runes)
}

func (f *field) Reset() {
	f.runes = nil
	f.cursor = 0
}

// handleKey edits the buffer. Enter/Esc are left for the form to interpret.
func (f *field) handleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			f.insert(r)
		}

	case tea.KeyBackspace:
		if f.cursor > 0 {
			f.runes = append(f.runes[:f.cursor-1], f.runes[f.cursor:]...)
			f.cursor--
		}

	case tea.KeyDelete:
		if f.cursor < len(f.runes) {
			f.runes = append(f.runes[:f.cursor], f.runes[f.cursor+1:]...)
		}

	case tea.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}

	case tea.KeyRight:
		if f.cursor < len(f.runes) {
			f.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		f.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		f.cursor = len(f.runes)
	}
}

// view renders "label: value", with a reverse-video cursor cell when the
// field has focus.
func (f field) view(focused bool) string {
	label := headerStyle.Render(f.label + ": ")
	if !focused {
		return label + string(f.runes)
	}

	cursorStyle := lipgloss.NewStyle().Reverse(true)
	if f.cursor >= len(f.runes) {
		return label + string(f.runes) + cursorStyle.Render(" ")
	}
	before := string(f.runes[:f.cursor])
	at := cursorStyle.Render(string(f.runes[f.cursor : f.cursor+1]))
	after := string(f.runes[f.cursor+1:])
	return label + before + at + after
}

func (f *field) insert(r rune) {
	line := f.runes
	next := make([]rune, len(line)+1)
	copy(next, line[:f.cursor])
	next[f.cursor] = r
	copy(next[f.cursor+1:], line[f.cursor:])
	f.runes = next
	f.cursor++
}
