// Package ui defines the display capability the game drives and a recording implementation
package ui

import "time"

// Surface receives every user-visible change of a game
// Calls arrive on the game loop goroutine; implementations that render elsewhere must synchronize
type Surface interface {
	SetScoreDisplay(score int)
	SetTimerDisplay(seconds int)
	SetCategoryTitle(title string)
	// ShowMessage displays text for d, a zero duration keeps it until replaced
	ShowMessage(text string, d time.Duration)
	RenderWordOnEntity(slot int, word string)
}

// Multi fans every call out to each surface in order
type Multi []Surface

func (m Multi) SetScoreDisplay(score int) {
	for _, s := range m {
		s.SetScoreDisplay(score)
	}
}

func (m Multi) SetTimerDisplay(seconds int) {
	for _, s := range m {
		s.SetTimerDisplay(seconds)
	}
}

func (m Multi) SetCategoryTitle(title string) {
	for _, s := range m {
		s.SetCategoryTitle(title)
	}
}

func (m Multi) ShowMessage(text string, d time.Duration) {
	for _, s := range m {
		s.ShowMessage(text, d)
	}
}

func (m Multi) RenderWordOnEntity(slot int, word string) {
	for _, s := range m {
		s.RenderWordOnEntity(slot, word)
	}
}
