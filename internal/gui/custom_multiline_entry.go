package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CustomMultiLineEntry is the text input. Escape leaves the field and
// Ctrl+Enter saves the current text as a card.
type CustomMultiLineEntry struct {
	widget.Entry
	onEscape func()
	onSave   func()
}

// NewCustomMultiLineEntry creates a new custom multi-line entry
func NewCustomMultiLineEntry() *CustomMultiLineEntry {
	entry := &CustomMultiLineEntry{}
	entry.MultiLine = true
	entry.Wrapping = fyne.TextWrapWord
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey handles key events
func (e *CustomMultiLineEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut handles Ctrl+Enter, everything else goes to the entry
func (e *CustomMultiLineEntry) TypedShortcut(s fyne.Shortcut) {
	if ks, ok := s.(*desktop.CustomShortcut); ok && e.onSave != nil &&
		ks.Modifier == fyne.KeyModifierControl &&
		(ks.KeyName == fyne.KeyReturn || ks.KeyName == fyne.KeyEnter) {
		e.onSave()
		return
	}
	e.Entry.TypedShortcut(s)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *CustomMultiLineEntry) SetOnEscape(f func()) {
	e.onEscape = f
}

// SetOnSave sets the callback for Ctrl+Enter
func (e *CustomMultiLineEntry) SetOnSave(f func()) {
	e.onSave = f
}
