package session

// Summary is a snapshot of a session for display when the learner stops.
type Summary struct {
	SessionID       string
	SubjectName     string
	CourseName      string
	DeckSize        int
	Position        int
	ProgressPercent float64
	RecentlyViewed  int
	Finished        bool
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(s Session) Summary {
	pos, total := s.Position()
	return Summary{
		SessionID:       s.ID,
		SubjectName:     s.Subject.Name,
		CourseName:      s.Course.Name,
		DeckSize:        total,
		Position:        pos,
		ProgressPercent: s.ProgressPercent,
		RecentlyViewed:  len(s.RecentlyViewed),
		Finished:        total > 0 && !s.CanNext(),
	}
}
