package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/learnlab/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	subjects := c.Subjects()
	require.Len(t, subjects, 3)
	assert.Equal(t, "math", subjects[0].ID)
	assert.Equal(t, "science", subjects[1].ID)
	assert.Equal(t, "english", subjects[2].ID)
	assert.Equal(t, 50, c.CardCount())
}

func TestCourseLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	subject, course, err := c.Course("math", "basic-arithmetic")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", subject.Name)
	assert.Equal(t, "Basic Arithmetic", course.Name)
	assert.Len(t, course.Flashcards, 10)
	assert.Equal(t, Flashcard{Front: "What is 2 + 2?", Back: "4"}, course.Flashcards[0])
}

func TestCourseLookup_NotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Subject("history")
	assert.ErrorIs(t, err, ErrSubjectNotFound)

	_, _, err = c.Course("history", "ancient")
	assert.ErrorIs(t, err, ErrSubjectNotFound)

	_, _, err = c.Course("math", "calculus")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestSubjects_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	subjects := c.Subjects()
	subjects[0].Name = "changed"

	s, err := c.Subject("math")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", s.Name)
}

func TestAvailableCards(t *testing.T) {
	tests := []struct {
		cards int
		want  int
	}{
		{0, 0},
		{1, 1},
		{10, 10},
		{15, 15},
		{20, 15},
	}

	for _, tt := range tests {
		course := Course{ID: "c", Flashcards: make([]Flashcard, tt.cards)}
		assert.Equal(t, tt.want, AvailableCards(course), "cards=%d", tt.cards)
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `subjects: []`},
		{"no subjects key", `{}`},
		{"empty subjects", `{"subjects": []}`},
		{"subject missing courses", `{"subjects": [{"id": "m", "name": "Math"}]}`},
		{"card missing back", `{"subjects": [{"id": "m", "name": "Math", "courses": [{"id": "a", "name": "A", "flashcards": [{"front": "q"}]}]}]}`},
		{"card empty front", `{"subjects": [{"id": "m", "name": "Math", "courses": [{"id": "a", "name": "A", "flashcards": [{"front": "", "back": "x"}]}]}]}`},
		{"card extra field", `{"subjects": [{"id": "m", "name": "Math", "courses": [{"id": "a", "name": "A", "flashcards": [{"front": "q", "back": "a", "hint": "h"}]}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			var invalid *schema.ErrInvalidDocument
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestParse_StructuralViolations(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			"duplicate subject",
			`{"subjects": [
				{"id": "m", "name": "Math", "courses": [{"id": "a", "name": "A", "flashcards": [{"front": "q", "back": "a"}]}]},
				{"id": "m", "name": "More Math", "courses": [{"id": "b", "name": "B", "flashcards": [{"front": "q", "back": "a"}]}]}
			]}`,
			`duplicate subject ID: "m"`,
		},
		{
			"duplicate course",
			`{"subjects": [{"id": "m", "name": "Math", "courses": [
				{"id": "a", "name": "A", "flashcards": [{"front": "q", "back": "a"}]},
				{"id": "a", "name": "A again", "flashcards": [{"front": "q", "back": "a"}]}
			]}]}`,
			`duplicate course ID "a"`,
		},
		{
			"empty course",
			`{"subjects": [{"id": "m", "name": "Math", "courses": [{"id": "a", "name": "A", "flashcards": []}]}]}`,
			`course "a" has no flashcards`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	doc := `{"subjects": [{"id": "art", "name": "Art", "icon": "🎨", "courses": [
		{"id": "colors", "name": "Colors", "flashcards": [
			{"front": "Red + yellow?", "back": "Orange"},
			{"front": "Red + blue?", "back": "Purple"}
		]}
	]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	_, course, err := c.Course("art", "colors")
	require.NoError(t, err)
	assert.Len(t, course.Flashcards, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_Reader(t *testing.T) {
	c, err := Load(strings.NewReader(string(defaultData)))
	require.NoError(t, err)
	assert.Len(t, c.Subjects(), 3)
}
