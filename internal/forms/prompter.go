// Package forms collects user input for the interactive application.
package forms

import (
	"assessctl/internal/config"
	"assessctl/internal/models"
)

// Scores are the component marks entered for one student in one course.
type Scores struct {
	Attendance float64
	Assignment float64
	EndOfTerm  float64
}

// ScoresOf extracts the scores of a stored mark.
func ScoresOf(m models.StudentMark) Scores {
	return Scores{Attendance: m.Attendance, Assignment: m.Assignment, EndOfTerm: m.EndOfTerm}
}

// Apply copies s onto m.
func (s Scores) Apply(m models.StudentMark) models.StudentMark {
	m.Attendance, m.Assignment, m.EndOfTerm = s.Attendance, s.Assignment, s.EndOfTerm
	return m
}

// Prompter asks the user for records and decisions. Cancelling an input
// returns an INPUT_ABORTED error.
type Prompter interface {
	Course() (models.Course, error)
	Student() (models.Student, error)
	Mark(title string, limits config.Grading, current Scores) (Scores, error)
	Query(title string) (string, error)
	Confirm(msg string) bool
	Pause(msg string)
}
