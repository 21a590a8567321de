package session

// percent returns n/total as a percentage. Multiplying before dividing keeps
// whole-number results exact (2 of 5 is 40, not 40.000000000000004).
func percent(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

// startProgress is the progress shown on the first card: one card of the
// deck is on screen.
func startProgress(deckSize int) float64 {
	return percent(1, deckSize)
}

// nextProgress is the progress after advancing from cursor before. It counts
// the card being advanced to plus one, so it runs ahead of the position.
func nextProgress(before, deckSize int) float64 {
	return percent(before+2, deckSize)
}

// prevProgress is the progress after stepping back from cursor before.
func prevProgress(before, deckSize int) float64 {
	return percent(before, deckSize)
}
