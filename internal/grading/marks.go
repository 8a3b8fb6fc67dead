package grading

import (
	"math"
	"strconv"

	"assessctl/internal/models"
)

// Marks carries one student's component scores for a course.
type Marks struct {
	CreditHours int
	Attendance  float64
	Assignment  float64
	EndOfTerm   float64
}

// FromStudentMark copies the component scores of m.
func FromStudentMark(m models.StudentMark, creditHours int) Marks {
	return Marks{
		CreditHours: creditHours,
		Attendance:  m.Attendance,
		Assignment:  m.Assignment,
		EndOfTerm:   m.EndOfTerm,
	}
}

// TotalScore sums the components, rounded to two decimals.
func (m Marks) TotalScore() float64 {
	return round2(m.Attendance + m.Assignment + m.EndOfTerm)
}

// Grade grades the total against scale.
func (m Marks) Grade(scale Scale) GradePoint {
	return scale.Grade(m.TotalScore())
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }

// FormatScore prints a score with no trailing zeros.
func FormatScore(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// FormatPoint prints a grade point with two decimals.
func FormatPoint(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
