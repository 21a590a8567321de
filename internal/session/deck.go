package session

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/learnlab/internal/catalog"
)

// Shuffler is the random source used to sample decks. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed generator. The same non-zero seed always
// yields the same decks; seed 0 seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// EffectiveCount clamps a requested deck size to what the course can supply.
// A requested count of zero or less means "as many as allowed". Asking for
// more cards than exist is not an error; the count is silently clamped.
func EffectiveCount(course catalog.Course, requested int) int {
	available := catalog.AvailableCards(course)
	if requested <= 0 || requested > available {
		return available
	}
	return requested
}

// SampleDeck draws count distinct cards without replacement: it shuffles a
// copy of cards with rng and takes the first count. The input is not modified.
func SampleDeck(cards []catalog.Flashcard, count int, rng Shuffler) []catalog.Flashcard {
	count = max(0, min(count, len(cards)))

	shuffled := make([]catalog.Flashcard, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count:count]
}
