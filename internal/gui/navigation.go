package gui

import (
	"fmt"

	"fyne.io/fyne/v2/dialog"
)

// scanExistingCards loads the cards already saved in the output directory
func (a *Application) scanExistingCards() {
	cards, err := listCards(a.config.OutputDir)
	if err != nil {
		// Directory doesn't exist yet, that's OK
		cards = nil
	}
	a.existingCards = cards
	a.updateNavigation()
}

// updateNavigation updates the navigation button states
func (a *Application) updateNavigation() {
	n := len(a.existingCards)
	if a.currentCardIndex >= n {
		a.currentCardIndex = -1
	}

	if n == 0 {
		a.prevCardBtn.Disable()
		a.nextCardBtn.Disable()
		a.deleteButton.Disable()
		return
	}

	// Without a loaded card "previous" starts from the newest one
	if a.currentCardIndex == 0 {
		a.prevCardBtn.Disable()
	} else {
		a.prevCardBtn.Enable()
	}
	if a.currentCardIndex == -1 || a.currentCardIndex >= n-1 {
		a.nextCardBtn.Disable()
	} else {
		a.nextCardBtn.Enable()
	}
	if a.currentCardIndex >= 0 {
		a.deleteButton.Enable()
	} else {
		a.deleteButton.Disable()
	}
}

// onPrevCard loads the previous card
func (a *Application) onPrevCard() {
	switch {
	case a.currentCardIndex == -1 && len(a.existingCards) > 0:
		a.loadCardByIndex(len(a.existingCards) - 1)
	case a.currentCardIndex > 0:
		a.loadCardByIndex(a.currentCardIndex - 1)
	}
}

// onNextCard loads the next card
func (a *Application) onNextCard() {
	if a.currentCardIndex >= 0 && a.currentCardIndex < len(a.existingCards)-1 {
		a.loadCardByIndex(a.currentCardIndex + 1)
	}
}

// loadCardByIndex shows a saved card
func (a *Application) loadCardByIndex(index int) {
	if index < 0 || index >= len(a.existingCards) {
		return
	}

	saved := a.existingCards[index]
	a.currentCardIndex = index

	// SetText triggers the live conversion, the index must survive it
	a.loading = true
	a.input.SetText(saved.card.English)
	a.notesEntry.SetText(saved.card.Notes)
	a.loading = false
	a.updateNavigation()
	a.updateStatus(fmt.Sprintf("Card %d of %d", index+1, len(a.existingCards)))
}

// onDelete moves the current card to the trash after confirmation
func (a *Application) onDelete() {
	if a.currentCardIndex < 0 {
		return
	}
	saved := a.existingCards[a.currentCardIndex]

	dialog.ShowConfirm("Delete Card",
		fmt.Sprintf("Delete the card for '%s'?", saved.card.English),
		func(confirm bool) {
			if confirm {
				a.deleteCard(saved)
			}
		}, a.window)
}

func (a *Application) deleteCard(saved savedCard) {
	if err := trashCard(saved.dir); err != nil {
		a.showError(err)
		return
	}
	a.logViewer.Log("Deleted card '%s'", saved.card.English)

	index := a.currentCardIndex
	a.scanExistingCards()
	if len(a.existingCards) == 0 {
		a.onClear()
		return
	}
	if index >= len(a.existingCards) {
		index = len(a.existingCards) - 1
	}
	a.loadCardByIndex(index)
}
