package session

import (
	"github.com/abhisek/learnlab/internal/catalog"
	"github.com/google/uuid"
)

// Start begins a session over course. The deck holds
// EffectiveCount(course, requested) cards sampled with rng; a nil rng uses a
// clock-seeded generator.
func Start(subject catalog.Subject, course catalog.Course, requested int, rng Shuffler) Session {
	if rng == nil {
		rng = NewRand(0)
	}

	deck := SampleDeck(course.Flashcards, EffectiveCount(course, requested), rng)

	return Session{
		ID:              uuid.NewString(),
		Subject:         subject,
		Course:          course,
		Deck:            deck,
		ProgressPercent: startProgress(len(deck)),
		RecentlyViewed:  []ViewedCard{},
	}
}

// Flip toggles which side of the current card is showing.
func (s Session) Flip() Session {
	s.Flipped = !s.Flipped
	return s
}

// Next advances to the following card. It does nothing on the last card.
//
// The card being left is recorded in the recently-viewed window only when it
// was not flipped.
func (s Session) Next() Session {
	if !s.CanNext() {
		return s
	}

	before := s.Cursor
	if !s.Flipped {
		c := s.Deck[before]
		s.RecentlyViewed = pushRecent(s.RecentlyViewed, ViewedCard{
			Front: c.Front,
			Back:  c.Back,
			Index: before,
		})
	}

	s.Cursor = before + 1
	s.Flipped = false
	s.ProgressPercent = nextProgress(before, len(s.Deck))
	return s
}

// Prev steps back one card. It does nothing on the first card and never
// touches the recently-viewed window.
func (s Session) Prev() Session {
	if !s.CanPrev() {
		return s
	}

	before := s.Cursor
	s.Cursor = before - 1
	s.Flipped = false
	s.ProgressPercent = prevProgress(before, len(s.Deck))
	return s
}

// JumpTo moves the cursor to index and shows the front. Progress and the
// recently-viewed window are left as they were. Indices outside the deck
// are ignored.
func (s Session) JumpTo(index int) Session {
	if index < 0 || index >= len(s.Deck) {
		return s
	}
	s.Cursor = index
	s.Flipped = false
	return s
}

// JumpToRecent jumps to the k-th entry (0 = oldest) of the recently-viewed
// window. Out-of-range entries are ignored.
func (s Session) JumpToRecent(k int) Session {
	if k < 0 || k >= len(s.RecentlyViewed) {
		return s
	}
	return s.JumpTo(s.RecentlyViewed[k].Index)
}

// End discards the session. The result is inactive.
func (s Session) End() Session {
	return Session{}
}

// pushRecent returns a new window with card appended, evicting the oldest
// entries beyond RecentWindowSize. window is not modified.
func pushRecent(window []ViewedCard, card ViewedCard) []ViewedCard {
	if keep := RecentWindowSize - 1; len(window) > keep {
		window = window[len(window)-keep:]
	}
	out := make([]ViewedCard, 0, RecentWindowSize)
	out = append(out, window...)
	return append(out, card)
}
