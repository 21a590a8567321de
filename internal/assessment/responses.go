package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/learnlab/internal/schema"
)

// Responses is a learner's complete submission: answers keyed by question
// ID plus the two self-ratings.
type Responses struct {
	Answers Answers `json:"answers"`
	Ratings Ratings `json:"ratings"`
}

var ratingSchema = map[string]any{
	"type":    "integer",
	"minimum": MinRating,
	"maximum": MaxRating,
}

// ResponsesSchema describes a responses document.
var ResponsesSchema = &schema.Schema{
	Name: "responses",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"answers", "ratings"},
		"properties": map[string]any{
			"answers": map[string]any{
				"type": "object",
				"propertyNames": map[string]any{
					"enum": []string{
						QuestionVerbal1, QuestionVerbal2, QuestionNonverbal1,
						QuestionLogic1, QuestionLogic2,
					},
				},
				"additionalProperties": map[string]any{"type": "string"},
			},
			"ratings": map[string]any{
				"type": "object",
				"properties": map[string]any{
					RatingFollowInstructions: ratingSchema,
					RatingSolvePuzzles:       ratingSchema,
				},
				"additionalProperties": false,
			},
		},
		"additionalProperties": false,
	},
}

// ParseResponses validates raw against ResponsesSchema and decodes it.
// Ratings may be partial; check Ratings.Complete before submitting.
func ParseResponses(raw []byte) (Responses, error) {
	if err := schema.Validate(ResponsesSchema, raw); err != nil {
		return Responses{}, err
	}

	var doc struct {
		Answers Answers        `json:"answers"`
		Ratings map[string]int `json:"ratings"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Responses{}, fmt.Errorf("decode responses: %w", err)
	}

	r := Responses{Answers: doc.Answers}
	if r.Answers == nil {
		r.Answers = Answers{}
	}
	for key, value := range doc.Ratings {
		if err := r.Ratings.Set(key, value); err != nil {
			return Responses{}, err
		}
	}
	return r, nil
}

// Profile aggregates the responses for a learner of the given age.
func (r Responses) Profile(age int) LearningProfile {
	return AggregateProfile(age, r.Answers, r.Ratings)
}
