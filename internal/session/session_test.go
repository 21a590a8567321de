package session

import (
	"fmt"
	"testing"

	"github.com/abhisek/learnlab/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identity leaves the deck in catalog order.
type identity struct{}

func (identity) Shuffle(int, func(i, j int)) {}

// reverse reverses the deck.
type reverse struct{}

func (reverse) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func testCourse(n int) catalog.Course {
	cards := make([]catalog.Flashcard, n)
	for i := range cards {
		cards[i] = catalog.Flashcard{
			Front: fmt.Sprintf("front-%d", i),
			Back:  fmt.Sprintf("back-%d", i),
		}
	}
	return catalog.Course{ID: "c", Name: "Course", Flashcards: cards}
}

func testSubject(course catalog.Course) catalog.Subject {
	return catalog.Subject{ID: "s", Name: "Subject", Courses: []catalog.Course{course}}
}

func start(t *testing.T, deck, requested int) Session {
	t.Helper()
	c := testCourse(deck)
	return Start(testSubject(c), c, requested, identity{})
}

func TestStart(t *testing.T) {
	s := start(t, 5, 0)

	assert.True(t, s.Active())
	assert.NotEmpty(t, s.ID)
	assert.Len(t, s.Deck, 5)
	assert.Equal(t, 0, s.Cursor)
	assert.False(t, s.Flipped)
	assert.Equal(t, 20.0, s.ProgressPercent)
	assert.NotNil(t, s.RecentlyViewed)
	assert.Empty(t, s.RecentlyViewed)
	assert.Equal(t, "front-0", s.Face())
}

func TestStart_UniqueIDs(t *testing.T) {
	a := start(t, 3, 0)
	b := start(t, 3, 0)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStart_DeckSizeClamping(t *testing.T) {
	tests := []struct {
		name      string
		cards     int
		requested int
		want      int
	}{
		{"request within course", 10, 4, 4},
		{"request above course size", 10, 20, 10},
		{"zero means max", 20, 0, catalog.MaxDeckSize},
		{"negative means max", 20, -3, catalog.MaxDeckSize},
		{"request above cap", 20, 16, catalog.MaxDeckSize},
		{"small course zero request", 3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := start(t, tt.cards, tt.requested)
			assert.Len(t, s.Deck, tt.want)
		})
	}
}

func TestStart_SampleIsDistinctSubset(t *testing.T) {
	c := testCourse(20)
	s := Start(testSubject(c), c, 0, NewRand(42))

	seen := map[string]bool{}
	for _, card := range s.Deck {
		assert.False(t, seen[card.Front], "duplicate card %q", card.Front)
		seen[card.Front] = true
		assert.Contains(t, c.Flashcards, card)
	}
	assert.Len(t, seen, catalog.MaxDeckSize)
}

func TestStart_SameSeedSameDeck(t *testing.T) {
	c := testCourse(12)
	a := Start(testSubject(c), c, 6, NewRand(7))
	b := Start(testSubject(c), c, 6, NewRand(7))
	assert.Equal(t, a.Deck, b.Deck)
}

func TestStart_DoesNotMutateCourse(t *testing.T) {
	c := testCourse(6)
	Start(testSubject(c), c, 0, reverse{})
	assert.Equal(t, testCourse(6).Flashcards, c.Flashcards)
}

func TestStart_NilRand(t *testing.T) {
	c := testCourse(4)
	s := Start(testSubject(c), c, 0, nil)
	assert.Len(t, s.Deck, 4)
}

func TestStart_EmptyCourse(t *testing.T) {
	s := start(t, 0, 5)

	assert.True(t, s.Active())
	assert.Empty(t, s.Deck)
	assert.Equal(t, 0.0, s.ProgressPercent)
	assert.Equal(t, "", s.Face())
	assert.False(t, s.CanNext())
	assert.False(t, s.CanPrev())

	assert.Equal(t, s, s.Next())
	assert.Equal(t, s, s.Prev())
}

func TestFlip(t *testing.T) {
	s := start(t, 3, 0)

	flipped := s.Flip()
	assert.True(t, flipped.Flipped)
	assert.Equal(t, "back-0", flipped.Face())
	assert.False(t, s.Flipped, "receiver must not change")

	assert.False(t, flipped.Flip().Flipped)
}

func TestFlipNextPrevSequence(t *testing.T) {
	s := start(t, 5, 0)
	require.Equal(t, 20.0, s.ProgressPercent)

	s = s.Flip().Next()
	assert.Equal(t, 1, s.Cursor)
	assert.False(t, s.Flipped)
	assert.Empty(t, s.RecentlyViewed, "flipped cards are not recorded")
	assert.Equal(t, 40.0, s.ProgressPercent)

	// Stepping back uses the cursor before the move: 1 of 5.
	s = s.Prev()
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 20.0, s.ProgressPercent)
	assert.Empty(t, s.RecentlyViewed)
}

func TestNext_RecordsUnflippedCard(t *testing.T) {
	s := start(t, 5, 0).Next()

	require.Len(t, s.RecentlyViewed, 1)
	assert.Equal(t, ViewedCard{Front: "front-0", Back: "back-0", Index: 0}, s.RecentlyViewed[0])
}

func TestNext_RecentWindowEvictsOldest(t *testing.T) {
	s := start(t, 8, 0)
	for range 5 {
		s = s.Next()
	}

	require.Len(t, s.RecentlyViewed, RecentWindowSize)
	for i, v := range s.RecentlyViewed {
		assert.Equal(t, i+1, v.Index)
		assert.Equal(t, fmt.Sprintf("front-%d", i+1), v.Front)
	}
}

func TestNext_DoesNotShareWindowWithReceiver(t *testing.T) {
	a := start(t, 8, 0)
	for range 4 {
		a = a.Next()
	}
	b := a.Next()
	c := a.Next()

	assert.Len(t, a.RecentlyViewed, 4)
	assert.Equal(t, 0, a.RecentlyViewed[0].Index)
	assert.Equal(t, b.RecentlyViewed, c.RecentlyViewed)
}

func TestNext_AtLastCardIsNoOp(t *testing.T) {
	s := start(t, 2, 0).Next()
	require.False(t, s.CanNext())

	assert.Equal(t, s, s.Next())
	assert.Equal(t, s, s.Next().Next())

	flipped := s.Flip()
	assert.Equal(t, flipped, flipped.Next(), "flip state is kept at the end")
}

func TestPrev_AtFirstCardIsNoOp(t *testing.T) {
	s := start(t, 3, 0).Flip()
	assert.Equal(t, s, s.Prev())
	assert.Equal(t, s, s.Prev().Prev())
}

func TestPrev_DoesNotRecord(t *testing.T) {
	s := start(t, 5, 0).Flip().Next().Flip().Next()
	require.Empty(t, s.RecentlyViewed)

	s = s.Prev()
	assert.Empty(t, s.RecentlyViewed)
	assert.Equal(t, 1, s.Cursor)
	assert.Equal(t, 40.0, s.ProgressPercent)
}

func TestJumpTo(t *testing.T) {
	s := start(t, 6, 0).Next().Next().Flip()
	before := s.ProgressPercent

	j := s.JumpTo(0)
	assert.Equal(t, 0, j.Cursor)
	assert.False(t, j.Flipped)
	assert.Equal(t, before, j.ProgressPercent)
	assert.Equal(t, s.RecentlyViewed, j.RecentlyViewed)
}

func TestJumpTo_OutOfRangeIsNoOp(t *testing.T) {
	s := start(t, 4, 0).Next()
	assert.Equal(t, s, s.JumpTo(-1))
	assert.Equal(t, s, s.JumpTo(4))
}

func TestJumpToRecent(t *testing.T) {
	s := start(t, 6, 0).Next().Next().Next()
	require.Len(t, s.RecentlyViewed, 3)

	j := s.JumpToRecent(1)
	assert.Equal(t, 1, j.Cursor)
	assert.Equal(t, "front-1", j.Face())

	assert.Equal(t, s, s.JumpToRecent(3))
	assert.Equal(t, s, s.JumpToRecent(-1))
}

func TestEnd(t *testing.T) {
	s := start(t, 3, 0).Next()
	ended := s.End()

	assert.False(t, ended.Active())
	assert.Equal(t, Session{}, ended)
	assert.True(t, s.Active())
}

func TestPosition(t *testing.T) {
	s := start(t, 4, 0)
	pos, total := s.Position()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 4, total)

	pos, total = s.Next().Next().Position()
	assert.Equal(t, 3, pos)
	assert.Equal(t, 4, total)
}

func TestBuildSummary(t *testing.T) {
	s := start(t, 3, 0).Next().Next()
	sum := BuildSummary(s)

	assert.Equal(t, s.ID, sum.SessionID)
	assert.Equal(t, "Subject", sum.SubjectName)
	assert.Equal(t, "Course", sum.CourseName)
	assert.Equal(t, 3, sum.DeckSize)
	assert.Equal(t, 3, sum.Position)
	assert.Equal(t, 2, sum.RecentlyViewed)
	assert.True(t, sum.Finished)
	assert.Equal(t, 100.0, sum.ProgressPercent)
}
