// Package gui provides the fyne desktop window: live conversion of typed
// text, saving cards and exporting them as an Anki deck.
package gui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/annatar/internal"
	"codeberg.org/snonux/annatar/internal/converter"
)

var modeLabels = map[string]string{
	converter.ModeTengwar:     "Tengwar",
	converter.ModeBlackSpeech: "Black Speech",
}

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	input            *CustomMultiLineEntry
	output           *widget.Entry
	notesEntry       *widget.Entry
	modeRadio        *widget.RadioGroup
	punctuationCheck *widget.Check
	statusLabel      *widget.Label
	logViewer        *LogViewer

	// Toolbar buttons
	prevCardBtn  *ttwidget.Button
	nextCardBtn  *ttwidget.Button
	saveButton   *ttwidget.Button
	copyButton   *ttwidget.Button
	clearButton  *ttwidget.Button
	deleteButton *ttwidget.Button
	exportButton *ttwidget.Button
	helpButton   *ttwidget.Button

	// State
	conv             converter.Converter
	existingCards    []savedCard
	currentCardIndex int
	loading          bool

	config *Config
}

// Config holds GUI application configuration
type Config struct {
	OutputDir   string
	Mode        string
	Punctuation bool
	DeckName    string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		// XDG Base Directory specification for state data
		OutputDir: filepath.Join(homeDir, ".local", "state", "annatar", "cards"),
		Mode:      converter.ModeTengwar,
		DeckName:  "Tengwar and Black Speech",
	}
}

// New creates a new GUI application
func New(config *Config) (*Application, error) {
	if config == nil {
		config = DefaultConfig()
	} else {
		// Fill in missing fields with defaults
		defaults := DefaultConfig()
		if config.OutputDir == "" {
			config.OutputDir = defaults.OutputDir
		}
		if config.Mode == "" {
			config.Mode = defaults.Mode
		}
		if config.DeckName == "" {
			config.DeckName = defaults.DeckName
		}
	}

	conv, err := converter.NewConverter(&converter.Config{Mode: config.Mode, Punctuation: config.Punctuation})
	if err != nil {
		return nil, err
	}
	config.Mode = conv.Name()

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	a := &Application{
		app:              app.NewWithID("org.codeberg.snonux.annatar"),
		config:           config,
		conv:             conv,
		currentCardIndex: -1,
	}

	a.setupUI()
	a.scanExistingCards()

	return a, nil
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("annatar v%s - Tengwar and Black Speech", internal.Version))
	a.window.Resize(fyne.NewSize(800, 600))

	// Input section
	a.input = NewCustomMultiLineEntry()
	a.input.SetPlaceHolder("English text... (Ctrl+Enter saves a card, Escape leaves the field)")
	a.input.OnChanged = func(string) { a.onConvert() }
	a.input.SetOnEscape(func() { a.window.Canvas().Unfocus() })
	a.input.SetOnSave(a.onSave)

	a.notesEntry = widget.NewEntry()
	a.notesEntry.SetPlaceHolder("Notes for the card (optional)")

	a.modeRadio = widget.NewRadioGroup(
		[]string{modeLabels[converter.ModeTengwar], modeLabels[converter.ModeBlackSpeech]},
		func(selected string) {
			for mode, label := range modeLabels {
				if label == selected {
					a.setMode(mode)
				}
			}
		})
	a.modeRadio.Horizontal = true
	a.modeRadio.Required = true
	a.modeRadio.SetSelected(modeLabels[a.config.Mode])

	a.punctuationCheck = widget.NewCheck("Tengwar punctuation", func(on bool) {
		a.config.Punctuation = on
		a.setMode(a.config.Mode)
	})
	a.punctuationCheck.SetChecked(a.config.Punctuation)

	// Output section; key codes are meant to be pasted into a document
	// set in the Tengwar Annatar font
	a.output = widget.NewMultiLineEntry()
	a.output.Wrapping = fyne.TextWrapWord
	a.output.SetPlaceHolder("Conversion appears here")

	// Toolbar buttons (tooltips are set after the tooltip layer exists)
	a.prevCardBtn = ttwidget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.onPrevCard)
	a.nextCardBtn = ttwidget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.onNextCard)
	a.saveButton = ttwidget.NewButtonWithIcon("", theme.DocumentSaveIcon(), a.onSave)
	a.copyButton = ttwidget.NewButtonWithIcon("", theme.ContentCopyIcon(), a.onCopy)
	a.clearButton = ttwidget.NewButtonWithIcon("", theme.ContentClearIcon(), a.onClear)
	a.deleteButton = ttwidget.NewButtonWithIcon("", theme.DeleteIcon(), a.onDelete)
	a.deleteButton.Importance = widget.DangerImportance
	a.exportButton = ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExport)
	a.helpButton = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	toolbar := container.NewHBox(
		a.prevCardBtn,
		a.nextCardBtn,
		widget.NewSeparator(),
		a.saveButton,
		a.copyButton,
		a.clearButton,
		a.deleteButton,
		widget.NewSeparator(),
		a.exportButton,
		a.helpButton,
	)

	options := container.NewHBox(a.modeRadio, widget.NewSeparator(), a.punctuationCheck)

	textSection := container.NewVSplit(
		container.NewBorder(widget.NewLabel("English:"), a.notesEntry, nil, nil, a.input),
		container.NewBorder(widget.NewLabel("Result:"), nil, nil, nil, a.output),
	)
	textSection.SetOffset(0.5)

	a.statusLabel = widget.NewLabel("Ready")
	a.logViewer = NewLogViewer()

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator(), options),
		container.NewVBox(widget.NewSeparator(), a.logViewer, a.statusLabel),
		nil, nil,
		textSection,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()
	a.setupKeyboardShortcuts()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.Canvas().Focus(a.input)
	a.window.ShowAndRun()
}

// setMode switches the converter and refreshes the result
func (a *Application) setMode(mode string) {
	if a.config == nil {
		return
	}
	conv, err := converter.NewConverter(&converter.Config{Mode: mode, Punctuation: a.config.Punctuation})
	if err != nil {
		a.showError(err)
		return
	}
	a.conv = conv
	a.config.Mode = conv.Name()
	if a.input != nil {
		a.onConvert()
	}
}

// onConvert converts the input with the current mode
func (a *Application) onConvert() {
	if a.output == nil || a.conv == nil {
		return
	}
	a.output.SetText(a.conv.Convert(a.input.Text))

	// Typing detaches the window from a loaded card
	if !a.loading && a.currentCardIndex >= 0 {
		a.currentCardIndex = -1
		a.updateNavigation()
	}
}

// onSave stores the input with both conversions as a card
func (a *Application) onSave() {
	text := strings.TrimSpace(a.input.Text)
	if text == "" {
		a.updateStatus("Nothing to save")
		return
	}

	dir, err := saveCard(a.config.OutputDir, text, strings.TrimSpace(a.notesEntry.Text), a.config.Punctuation)
	if err != nil {
		a.showError(fmt.Errorf("failed to save card: %w", err))
		return
	}
	a.logViewer.Log("Saved '%s' to %s", text, filepath.Base(dir))
	a.updateStatus("Saved card " + filepath.Base(dir))

	a.scanExistingCards()
	for i, c := range a.existingCards {
		if c.dir == dir {
			a.currentCardIndex = i
		}
	}
	a.updateNavigation()
}

// onCopy copies the result to the clipboard
func (a *Application) onCopy() {
	if a.output.Text == "" {
		return
	}
	a.window.Clipboard().SetContent(a.output.Text)
	a.updateStatus(fmt.Sprintf("Copied %s result to clipboard", modeLabels[a.config.Mode]))
}

// onClear empties the input and detaches from any loaded card
func (a *Application) onClear() {
	a.input.SetText("")
	a.notesEntry.SetText("")
	a.currentCardIndex = -1
	a.updateNavigation()
	a.updateStatus("Ready")
	a.window.Canvas().Focus(a.input)
}

// onExport asks for the deck format and location and exports all cards
func (a *Application) onExport() {
	if len(a.existingCards) == 0 {
		dialog.ShowInformation("No Cards", "No cards saved yet. Save some texts first!", a.window)
		return
	}

	formatOptions := []string{"APKG (Recommended)", "CSV"}
	formatSelect := widget.NewSelect(formatOptions, nil)
	formatSelect.SetSelected(formatOptions[0])

	deckNameEntry := widget.NewEntry()
	deckNameEntry.SetText(a.config.DeckName)

	homeDir, _ := os.UserHomeDir()
	selectedDir := filepath.Join(homeDir, "Downloads")
	dirLabel := widget.NewLabel(selectedDir)

	dirButton := widget.NewButton("Browse...", func() {
		folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			selectedDir = dir.Path()
			dirLabel.SetText(selectedDir)
		}, a.window)

		if uri, err := storage.ParseURI("file://" + selectedDir); err == nil {
			if listableURI, ok := uri.(fyne.ListableURI); ok {
				folderDialog.SetLocation(listableURI)
			}
		}
		folderDialog.Show()
	})

	content := container.NewVBox(
		widget.NewLabel("Export Format:"),
		formatSelect,
		widget.NewSeparator(),
		widget.NewLabel("Deck Name:"),
		deckNameEntry,
		widget.NewSeparator(),
		widget.NewLabel("Export Directory:"),
		container.NewBorder(nil, nil, nil, dirButton, dirLabel),
		widget.NewLabel(""),
		widget.NewRichTextFromMarkdown("The Tengwar field uses the **Tengwar Annatar** font, install it for Anki to show the script."),
	)

	exportDialog := dialog.NewCustomConfirm("Export to Anki", "Export", "Cancel", content, func(export bool) {
		if !export {
			return
		}
		deckName := strings.TrimSpace(deckNameEntry.Text)
		if deckName == "" {
			deckName = a.config.DeckName
		}

		csv := formatSelect.Selected != formatOptions[0]
		path, total, err := exportDeck(a.config.OutputDir, selectedDir, deckName, csv)
		if err != nil {
			a.showError(fmt.Errorf("failed to export deck: %w", err))
			return
		}
		a.logViewer.Log("Exported %d cards to %s", total, path)
		a.updateStatus(fmt.Sprintf("Exported %d cards to %s", total, path))
	}, a.window)

	exportDialog.Resize(fyne.NewSize(400, 300))
	exportDialog.Show()
}

// onShowHotkeys displays a dialog with all available keyboard shortcuts
func (a *Application) onShowHotkeys() {
	hotkeys := `## Editing
**Ctrl+Enter** Save card  
**Esc** Leave the text field  
**i** Focus the text field  

## Outside the text field
**s** Save card  
**c** Copy result  
**t** Toggle Tengwar / Black Speech  
**p** Toggle punctuation glyphs  
**←/→** Previous / next saved card  
**d** Delete card  
**x** Export deck  
**h** This help  

## Tengwar escapes
Uppercase **T D R S Z Q L W C K G X H N** inside a word force a
specific tengwa, e.g. **baTh** writes a voiceless th.`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	d := dialog.NewCustom("Keyboard Shortcuts", "Close", container.NewScroll(content), a.window)
	d.Resize(fyne.NewSize(420, 480))
	d.Show()
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.prevCardBtn.SetToolTip("Previous card (←)")
	a.nextCardBtn.SetToolTip("Next card (→)")
	a.saveButton.SetToolTip("Save card (s, Ctrl+Enter)")
	a.copyButton.SetToolTip("Copy result (c)")
	a.clearButton.SetToolTip("Clear")
	a.deleteButton.SetToolTip("Delete card (d)")
	a.exportButton.SetToolTip("Export to Anki (x)")
	a.helpButton.SetToolTip("Show hotkeys (h)")
}

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		// Let typed characters reach focused entries
		if a.window.Canvas().Focused() != nil {
			return
		}

		switch r {
		case 'i', 'I':
			a.window.Canvas().Focus(a.input)
		case 's', 'S':
			a.onSave()
		case 'c', 'C':
			a.onCopy()
		case 't', 'T':
			if a.config.Mode == converter.ModeTengwar {
				a.modeRadio.SetSelected(modeLabels[converter.ModeBlackSpeech])
			} else {
				a.modeRadio.SetSelected(modeLabels[converter.ModeTengwar])
			}
		case 'p', 'P':
			a.punctuationCheck.SetChecked(!a.punctuationCheck.Checked)
		case 'd', 'D':
			if !a.deleteButton.Disabled() {
				a.onDelete()
			}
		case 'x', 'X':
			a.onExport()
		case 'h', 'H', '?':
			a.onShowHotkeys()
		}
	})

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if a.window.Canvas().Focused() != nil {
			return
		}
		switch ev.Name {
		case fyne.KeyLeft:
			if !a.prevCardBtn.Disabled() {
				a.onPrevCard()
			}
		case fyne.KeyRight:
			if !a.nextCardBtn.Disabled() {
				a.onNextCard()
			}
		}
	})
}
