package catalog

// MaxDeckSize caps the number of cards sampled into a study deck, however
// many the course holds.
const MaxDeckSize = 15

// Flashcard is a single question/answer card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Course is an ordered collection of flashcards within a subject.
type Course struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Flashcards []Flashcard `json:"flashcards"`
}

// Subject groups related courses.
type Subject struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Icon    string   `json:"icon"`
	Courses []Course `json:"courses"`
}

// AvailableCards is the largest deck a course can supply:
// min(len(course.Flashcards), MaxDeckSize).
func AvailableCards(course Course) int {
	return min(len(course.Flashcards), MaxDeckSize)
}
