package models

import "fmt"

// Subjects is the fixed, ordered list of scored subjects. A user's record
// set always contains exactly one score per subject, in this order.
var Subjects = []string{
	"Math",
	"English",
	"Science",
	"History",
	"Geography",
	"Physics",
	"Chemistry",
}

const (
	MinMarks = 0
	MaxMarks = 100
)

// SubjectScore is one scored subject.
type SubjectScore struct {
	Subject string `json:"subject"`
	Marks   int    `json:"marks"`
}

// ValidateScores checks that scores covers exactly the fixed subject list in
// order and that every mark is within [MinMarks, MaxMarks].
func ValidateScores(scores []SubjectScore) error {
	if len(scores) != len(Subjects) {
		return fmt.Errorf("expected %d subjects, got %d", len(Subjects), len(scores))
	}
	for i, s := range scores {
		if s.Subject != Subjects[i] {
			return fmt.Errorf("subject at position %d must be %q, got %q", i, Subjects[i], s.Subject)
		}
		if s.Marks < MinMarks || s.Marks > MaxMarks {
			return fmt.Errorf("marks for %s out of range: %d", s.Subject, s.Marks)
		}
	}
	return nil
}
