// Package catalog holds the read-only subject, course and flashcard content
// that study sessions sample from.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrCourseNotFound  = errors.New("course not found")
)

// Catalog is an immutable, indexed set of subjects.
type Catalog struct {
	subjects []Subject
	byID     map[string]int
}

// New validates subjects and builds a Catalog over them.
func New(subjects []Subject) (*Catalog, error) {
	if err := validateSubjects(subjects); err != nil {
		return nil, err
	}

	c := &Catalog{
		subjects: subjects,
		byID:     make(map[string]int, len(subjects)),
	}
	for i, s := range subjects {
		c.byID[s.ID] = i
	}
	return c, nil
}

// Subjects returns all subjects in catalog order.
func (c *Catalog) Subjects() []Subject {
	out := make([]Subject, len(c.subjects))
	copy(out, c.subjects)
	return out
}

// Subject returns the subject with the given ID.
func (c *Catalog) Subject(id string) (Subject, error) {
	i, ok := c.byID[id]
	if !ok {
		return Subject{}, fmt.Errorf("%w: %q", ErrSubjectNotFound, id)
	}
	return c.subjects[i], nil
}

// Course returns a course and its parent subject.
func (c *Catalog) Course(subjectID, courseID string) (Subject, Course, error) {
	subject, err := c.Subject(subjectID)
	if err != nil {
		return Subject{}, Course{}, err
	}
	for _, course := range subject.Courses {
		if course.ID == courseID {
			return subject, course, nil
		}
	}
	return Subject{}, Course{}, fmt.Errorf("%w: %q in subject %q", ErrCourseNotFound, courseID, subjectID)
}

// CardCount returns the total number of flashcards across all courses.
func (c *Catalog) CardCount() int {
	n := 0
	for _, s := range c.subjects {
		for _, course := range s.Courses {
			n += len(course.Flashcards)
		}
	}
	return n
}
