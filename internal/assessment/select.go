package assessment

// BandForAge returns the band an age belongs to. The second return value is
// false for ages outside [6,18].
func BandForAge(age int) (Band, bool) {
	switch {
	case age >= MinPrimaryAge && age <= MaxPrimaryAge:
		return BandPrimary, true
	case age >= MinSecondaryAge && age <= MaxSecondaryAge:
		return BandSecondary, true
	default:
		return "", false
	}
}

// SelectQuestionSet returns the questions for the learner's age. Ages outside
// every band yield an empty, non-nil slice; callers must handle a zero-length
// set rather than an error.
func SelectQuestionSet(age int) []Question {
	band, ok := BandForAge(age)
	if !ok {
		return []Question{}
	}
	return QuestionSet(band)
}

// QuestionSet returns a copy of the questions for a band. Unknown bands yield
// an empty slice.
func QuestionSet(band Band) []Question {
	switch band {
	case BandPrimary:
		return cloneQuestions(primaryQuestions)
	case BandSecondary:
		return cloneQuestions(secondaryQuestions)
	default:
		return []Question{}
	}
}

// ExpectedAnswer returns the canonical answer to questionID for the band the
// age falls in, or "" when the age has no band or the ID is unknown.
func ExpectedAnswer(age int, questionID string) string {
	band, ok := BandForAge(age)
	if !ok {
		return ""
	}
	return answerKeys[band][questionID]
}

func cloneQuestions(src []Question) []Question {
	out := make([]Question, len(src))
	for i, q := range src {
		if q.Options != nil {
			q.Options = append([]string(nil), q.Options...)
		}
		out[i] = q
	}
	return out
}
