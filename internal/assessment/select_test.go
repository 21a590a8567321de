package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandForAge(t *testing.T) {
	tests := []struct {
		age    int
		want   Band
		wantOK bool
	}{
		{5, "", false},
		{6, BandPrimary, true},
		{9, BandPrimary, true},
		{12, BandPrimary, true},
		{13, BandSecondary, true},
		{18, BandSecondary, true},
		{19, "", false},
		{0, "", false},
		{-3, "", false},
	}

	for _, tt := range tests {
		got, ok := BandForAge(tt.age)
		assert.Equal(t, tt.want, got, "age %d", tt.age)
		assert.Equal(t, tt.wantOK, ok, "age %d", tt.age)
	}
}

func TestSelectQuestionSet_Primary(t *testing.T) {
	for age := MinPrimaryAge; age <= MaxPrimaryAge; age++ {
		qs := SelectQuestionSet(age)
		require.Len(t, qs, 5, "age %d", age)
		assert.Equal(t, "3,2,5,1,4", qs[0].CorrectAnswer)
		assert.Equal(t, "It was left in the sun", qs[3].CorrectAnswer)
	}
}

func TestSelectQuestionSet_Secondary(t *testing.T) {
	for age := MinSecondaryAge; age <= MaxSecondaryAge; age++ {
		qs := SelectQuestionSet(age)
		require.Len(t, qs, 5, "age %d", age)
		assert.Equal(t, "2,3,5,1,4", qs[0].CorrectAnswer)
		assert.Equal(t, "Yes", qs[3].CorrectAnswer)
	}
}

func TestSelectQuestionSet_OutOfBand(t *testing.T) {
	for _, age := range []int{-1, 0, 5, 19, 40} {
		qs := SelectQuestionSet(age)
		require.NotNil(t, qs)
		assert.Empty(t, qs, "age %d", age)
	}
}

func TestSelectQuestionSet_QuestionOrderAndIDs(t *testing.T) {
	want := []string{QuestionVerbal1, QuestionVerbal2, QuestionNonverbal1, QuestionLogic1, QuestionLogic2}
	for _, band := range []Band{BandPrimary, BandSecondary} {
		qs := QuestionSet(band)
		ids := make([]string, len(qs))
		for i, q := range qs {
			ids[i] = q.ID
		}
		assert.Equal(t, want, ids, "band %s", band)
		assert.Equal(t, TypeOrderedNumber, qs[0].Type)
		assert.Len(t, qs[0].Options, OrderingSlots)
	}
}

func TestSelectQuestionSet_ReturnsCopy(t *testing.T) {
	qs := SelectQuestionSet(7)
	qs[0].CorrectAnswer = "tampered"
	qs[1].Options[0] = "tampered"

	fresh := SelectQuestionSet(7)
	assert.Equal(t, "3,2,5,1,4", fresh[0].CorrectAnswer)
	assert.Equal(t, "To guess what will happen next", fresh[1].Options[0])
	assert.Equal(t, "3,2,5,1,4", ExpectedAnswer(7, QuestionVerbal1))
}

func TestQuestionSet_UnknownBand(t *testing.T) {
	assert.Empty(t, QuestionSet(Band("tertiary")))
}

func TestExpectedAnswer(t *testing.T) {
	tests := []struct {
		age  int
		id   string
		want string
	}{
		{6, QuestionVerbal2, "To guess what will happen next"},
		{12, QuestionNonverbal1, "△"},
		{12, QuestionLogic2, "Sock"},
		{13, QuestionVerbal2, "An educated guess"},
		{15, QuestionNonverbal1, "◻️"},
		{18, QuestionLogic2, "History"},
		{18, "unknown", ""},
		{25, QuestionLogic1, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpectedAnswer(tt.age, tt.id), "age %d id %s", tt.age, tt.id)
	}
}

func TestCorrectAnswersAreAmongOptions(t *testing.T) {
	for _, band := range []Band{BandPrimary, BandSecondary} {
		for _, q := range QuestionSet(band) {
			if q.Type == TypeOrderedNumber {
				continue
			}
			assert.Contains(t, q.Options, q.CorrectAnswer, "band %s question %s", band, q.ID)
		}
	}
}
