// Package session implements the flashcard study-session state machine.
//
// A Session is a value. Every transition (Flip, Next, Prev, JumpTo, End)
// returns a new Session and leaves the receiver untouched, so hosts can keep
// history or compare states freely.
package session

import "github.com/abhisek/learnlab/internal/catalog"

// RecentWindowSize is the number of recently viewed cards retained.
const RecentWindowSize = 4

// ViewedCard is an entry in the recently-viewed window.
type ViewedCard struct {
	Front string
	Back  string

	// Index is the card's position in the deck, used to jump back to it.
	Index int
}

// Session is the state of one study session over a sampled deck.
type Session struct {
	// ID identifies the session. Empty when no session is active.
	ID string

	Subject catalog.Subject
	Course  catalog.Course

	// Deck is the sampled cards, fixed for the life of the session.
	Deck []catalog.Flashcard

	// Cursor is the index of the card on screen, in [0, len(Deck)-1].
	Cursor int

	// Flipped is true when the back of the current card is showing.
	Flipped bool

	// ProgressPercent is the progress bar value in [0, 100].
	ProgressPercent float64

	// RecentlyViewed holds at most RecentWindowSize cards, oldest first.
	RecentlyViewed []ViewedCard
}

// Active reports whether the session has been started and not ended.
func (s Session) Active() bool {
	return s.ID != ""
}

// Current returns the card under the cursor, or a zero card when the deck
// is empty.
func (s Session) Current() catalog.Flashcard {
	if s.Cursor < 0 || s.Cursor >= len(s.Deck) {
		return catalog.Flashcard{}
	}
	return s.Deck[s.Cursor]
}

// Face returns the visible side of the current card.
func (s Session) Face() string {
	c := s.Current()
	if s.Flipped {
		return c.Back
	}
	return c.Front
}

// Position returns the 1-based card number and the deck size.
func (s Session) Position() (int, int) {
	if len(s.Deck) == 0 {
		return 0, 0
	}
	return s.Cursor + 1, len(s.Deck)
}

// CanNext reports whether Next would move the cursor.
func (s Session) CanNext() bool {
	return s.Cursor < len(s.Deck)-1
}

// CanPrev reports whether Prev would move the cursor.
func (s Session) CanPrev() bool {
	return s.Cursor > 0
}
