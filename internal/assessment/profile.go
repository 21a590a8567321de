package assessment

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Score ceilings.
const (
	MaxVerbalScore    = 4.0
	MaxNonVerbalScore = 1.0
)

// LearningProfile is the aggregate result of one assessment submission.
// Field names on the wire match the profile endpoint.
type LearningProfile struct {
	Age            int     `json:"age" validate:"min=6,max=18"`
	VerbalScore    float64 `json:"verbal_score" validate:"min=0,max=4"`
	NonVerbalScore float64 `json:"non_verbal_score" validate:"min=0,max=1"`
	SelfAssessment int     `json:"self_assessment" validate:"min=2,max=10"`
}

var validate = validator.New()

// Validate checks that the profile is well-formed for submission: an age
// inside a band, scores within their ceilings and both ratings given.
func (p LearningProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid learning profile: %w", err)
	}
	return nil
}

// AggregateProfile grades a complete response set into a LearningProfile.
//
// The verbal score sums the ordering question (verbal1) and the three
// exact-answer questions verbal2, logic1 and logic2, for a maximum of 4.
// The non-verbal score is the pattern question alone. Expected answers
// follow the same age-band rule as SelectQuestionSet, so an age outside
// every band scores zero on both.
//
// Missing answers count as empty and earn nothing; AggregateProfile never fails.
func AggregateProfile(age int, answers Answers, ratings Ratings) LearningProfile {
	profile := LearningProfile{
		Age:            age,
		SelfAssessment: ratings.Total(),
	}

	band, ok := BandForAge(age)
	if !ok {
		return profile
	}
	key := answerKeys[band]

	profile.VerbalScore = GradeOrderingAnswer(answers.Get(QuestionVerbal1), key[QuestionVerbal1]) +
		GradeExactAnswer(answers.Get(QuestionVerbal2), key[QuestionVerbal2]) +
		GradeExactAnswer(answers.Get(QuestionLogic1), key[QuestionLogic1]) +
		GradeExactAnswer(answers.Get(QuestionLogic2), key[QuestionLogic2])
	profile.NonVerbalScore = GradeExactAnswer(answers.Get(QuestionNonverbal1), key[QuestionNonverbal1])

	return profile
}
