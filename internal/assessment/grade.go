package assessment

import "strings"

// OrderingSlots is the number of positions in an ordering answer. Each
// correctly placed position is worth 1/OrderingSlots (0.2).
const OrderingSlots = 5

// GradeOrderingAnswer scores a comma-joined ordering answer against the
// expected sequence by position. Each position whose submitted token equals
// the expected token earns 0.2, independently of the others; empty or
// missing tokens never match. The result is in [0, 1].
func GradeOrderingAnswer(submitted, expected string) float64 {
	if submitted == "" || expected == "" {
		return 0
	}

	got := strings.Split(submitted, ",")
	want := strings.Split(expected, ",")

	matches := 0
	for i := 0; i < OrderingSlots && i < len(want) && i < len(got); i++ {
		if got[i] != "" && got[i] == want[i] {
			matches++
		}
	}

	// Divide rather than accumulate 0.2 so three matches is exactly 0.6.
	return float64(matches) / OrderingSlots
}

// GradeExactAnswer returns 1 when submitted equals expected exactly (case and
// punctuation included), else 0. An empty submission never earns credit.
func GradeExactAnswer(submitted, expected string) float64 {
	if submitted == "" || submitted != expected {
		return 0
	}
	return 1
}

// GradeQuestion scores a single answer according to the question's type.
// Free text and rating questions are collected but not graded.
func GradeQuestion(q Question, answer string) float64 {
	switch q.Type {
	case TypeOrderedNumber, TypeOrderedText:
		return GradeOrderingAnswer(answer, q.CorrectAnswer)
	case TypeMultipleChoice, TypePattern, TypeLogicPuzzle:
		return GradeExactAnswer(answer, q.CorrectAnswer)
	default:
		return 0
	}
}

// QuestionScore is the graded result of one question.
type QuestionScore struct {
	QuestionID string
	Type       QuestionType
	Answer     string
	Expected   string
	Score      float64
}

// ScoreAnswers grades every question in the learner's set. Ages outside every
// band produce no scores.
func ScoreAnswers(age int, answers Answers) []QuestionScore {
	questions := SelectQuestionSet(age)
	scores := make([]QuestionScore, 0, len(questions))
	for _, q := range questions {
		ans := answers.Get(q.ID)
		scores = append(scores, QuestionScore{
			QuestionID: q.ID,
			Type:       q.Type,
			Answer:     ans,
			Expected:   ExpectedAnswer(age, q.ID),
			Score:      GradeQuestion(q, ans),
		})
	}
	return scores
}
