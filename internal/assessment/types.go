// Package assessment selects and grades the age-banded learning assessment
// and aggregates the results into a LearningProfile.
package assessment

import "errors"

// QuestionType describes how the learner answers a question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeText           QuestionType = "text"
	TypePattern        QuestionType = "pattern"
	TypeRating         QuestionType = "rating"
	TypeOrderedText    QuestionType = "ordered-text"
	TypeOrderedNumber  QuestionType = "ordered-number"
	TypeLogicPuzzle    QuestionType = "logic-puzzle"
)

// Question IDs. Both bands use the same five IDs so answers can be graded
// without knowing which set the learner saw.
const (
	QuestionVerbal1    = "verbal1"
	QuestionVerbal2    = "verbal2"
	QuestionNonverbal1 = "nonverbal1"
	QuestionLogic1     = "logic1"
	QuestionLogic2     = "logic2"
)

// Question is a single assessment item.
type Question struct {
	// ID is one of the Question* constants.
	ID string

	// Prompt is the text shown to the learner.
	Prompt string

	// Type determines how the answer is collected and graded.
	Type QuestionType

	// Options lists the choices for choice, pattern and ordering questions.
	// For ordered-number questions there is one rank slot per option.
	Options []string

	// CorrectAnswer is the literal canonical answer. For ordered-number
	// questions it is a comma-joined list of ranks, e.g. "3,2,5,1,4".
	CorrectAnswer string

	// Hint is optional helper text shown under the question.
	Hint string

	// Scaffolding is optional pre-formatted material (a pattern grid, a
	// leading question) displayed with the prompt.
	Scaffolding string
}

// Band is an age partition that selects both the question set and its answers.
type Band string

const (
	BandPrimary   Band = "primary"
	BandSecondary Band = "secondary"
)

// Age bounds for each band, inclusive.
const (
	MinPrimaryAge   = 6
	MaxPrimaryAge   = 12
	MinSecondaryAge = 13
	MaxSecondaryAge = 18
)

// Answers maps a question ID to the learner's raw response. A missing entry
// means the learner has not answered.
type Answers map[string]string

// Get returns the answer for id, or "" when unanswered. Safe on a nil map.
func (a Answers) Get(id string) string {
	return a[id]
}

// Rating keys accepted by Ratings.Set.
const (
	RatingFollowInstructions = "followInstructions"
	RatingSolvePuzzles       = "solvePuzzles"
)

// Rating bounds. Zero means unrated.
const (
	MinRating = 1
	MaxRating = 5
)

// Ratings holds the learner's two self-assessment ratings.
type Ratings struct {
	FollowInstructions int `json:"followInstructions"`
	SolvePuzzles       int `json:"solvePuzzles"`
}

var (
	// ErrInvalidAgeBand is reported by hosts when an age falls outside every
	// band. The engine itself never returns it; it yields an empty set instead.
	ErrInvalidAgeBand = errors.New("age outside supported bands (6-18)")

	ErrUnknownRating    = errors.New("unknown rating key")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)
