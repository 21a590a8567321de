package catalog

import (
	"fmt"
	"strings"
)

// validateSubjects performs the structural checks a JSON schema cannot
// express. Returns a combined error describing all problems found.
func validateSubjects(subjects []Subject) error {
	var errs []string

	subjectIDs := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("subject %q has an empty ID", s.Name))
			continue
		}
		if subjectIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate subject ID: %q", s.ID))
		}
		subjectIDs[s.ID] = true

		courseIDs := make(map[string]bool, len(s.Courses))
		for _, c := range s.Courses {
			if c.ID == "" {
				errs = append(errs, fmt.Sprintf("subject %q has a course with an empty ID", s.ID))
				continue
			}
			if courseIDs[c.ID] {
				errs = append(errs, fmt.Sprintf("subject %q: duplicate course ID %q", s.ID, c.ID))
			}
			courseIDs[c.ID] = true

			if len(c.Flashcards) == 0 {
				errs = append(errs, fmt.Sprintf("course %q has no flashcards", c.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
