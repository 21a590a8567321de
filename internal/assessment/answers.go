package assessment

import (
	"fmt"
	"strings"
)

// SetOrderedSlot returns current with the slot at index replaced by value.
// An empty current answer starts as slots empty positions. Negative indices
// leave the answer unchanged; indices past the end pad with empty slots.
func SetOrderedSlot(current string, slots, index int, value string) string {
	if index < 0 {
		return current
	}

	var parts []string
	if current == "" {
		parts = make([]string, slots)
	} else {
		parts = strings.Split(current, ",")
	}
	for len(parts) <= index {
		parts = append(parts, "")
	}
	parts[index] = value
	return strings.Join(parts, ",")
}

// Set records a rating by key. Keys other than the two rating constants and
// values outside [1,5] are rejected.
func (r *Ratings) Set(key string, value int) error {
	if value < MinRating || value > MaxRating {
		return fmt.Errorf("%w: %s=%d", ErrRatingOutOfRange, key, value)
	}
	switch key {
	case RatingFollowInstructions:
		r.FollowInstructions = value
	case RatingSolvePuzzles:
		r.SolvePuzzles = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRating, key)
	}
	return nil
}

// Complete reports whether both ratings are set.
func (r Ratings) Complete() bool {
	return r.FollowInstructions >= MinRating && r.SolvePuzzles >= MinRating
}

// Total is the self-assessment score: the sum of both ratings.
func (r Ratings) Total() int {
	return r.FollowInstructions + r.SolvePuzzles
}
