package grading

import (
	"fmt"

	"assessctl/internal/models"
	"assessctl/internal/system"
)

// Source is the read side of the data context used to build reports.
type Source interface {
	Course(id int) (models.Course, error)
	Student(id int) (models.Student, error)
	MarksForCourse(courseID int) []models.StudentMark
	MarksForStudent(studentID int) []models.StudentMark
}

// CourseReport lists every marked student of a course.
func CourseReport(src Source, scale Scale, courseID int) (models.Course, []StudentMarkRow, error) {
	c, err := src.Course(courseID)
	if err != nil {
		return c, nil, err
	}
	var rows []StudentMarkRow
	for _, m := range src.MarksForCourse(courseID) {
		s, err := src.Student(m.StudentID)
		if err != nil {
			system.Logger.Warn("mark references missing student", "student", m.StudentID, "course", courseID)
			continue
		}
		rows = append(rows, StudentRowFrom(scale, s, c, m))
	}
	return c, rows, nil
}

// StudentReport lists every marked course of a student.
func StudentReport(src Source, scale Scale, studentID int) (models.Student, []CourseMarkRow, error) {
	s, err := src.Student(studentID)
	if err != nil {
		return s, nil, err
	}
	var rows []CourseMarkRow
	for _, m := range src.MarksForStudent(studentID) {
		c, err := src.Course(m.CourseID)
		if err != nil {
			system.Logger.Warn("mark references missing course", "student", studentID, "course", m.CourseID)
			continue
		}
		rows = append(rows, CourseRowFrom(scale, c, m))
	}
	return s, rows, nil
}

// WeightedGPA is the credit-weighted mean grade point, 0 without credit.
func WeightedGPA(rows []CourseMarkRow) float64 {
	var points, credit float64
	for _, r := range rows {
		points += r.Result.Point * float64(r.CreditHours)
		credit += float64(r.CreditHours)
	}
	if credit == 0 {
		return 0
	}
	return round2(points / credit)
}

// AverageScore is the mean total score, 0 for no rows.
func AverageScore(rows []StudentMarkRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rows {
		sum += r.TotalScore()
	}
	return round2(sum / float64(len(rows)))
}

// GPAFooter and AverageFooter format report footers.
func GPAFooter(rows []CourseMarkRow) string {
	return fmt.Sprintf("GPA: %s", FormatPoint(WeightedGPA(rows)))
}

func AverageFooter(rows []StudentMarkRow) string {
	return fmt.Sprintf("Average: %s", FormatScore(AverageScore(rows)))
}
