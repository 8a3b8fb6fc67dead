package grading

import (
	"strconv"

	"assessctl/internal/models"
)

// StudentMarkHeaders label the columns of StudentMarkRow.Cells.
var StudentMarkHeaders = []string{
	"Id", "Name", "Attendance", "Assignment", "End of Term", "Total", "Grade", "Point",
}

// CourseMarkHeaders label the columns of CourseMarkRow.Cells.
var CourseMarkHeaders = []string{
	"Code", "Title", "Credit", "Attendance", "Assignment", "End of Term", "Total", "Grade", "Point",
}

// StudentMarkRow is one student's line in a course report.
type StudentMarkRow struct {
	Marks
	StudentID   int
	StudentName string
	Result      GradePoint
}

func (r StudentMarkRow) Cells() []string {
	return []string{
		strconv.Itoa(r.StudentID),
		r.StudentName,
		FormatScore(r.Attendance),
		FormatScore(r.Assignment),
		FormatScore(r.EndOfTerm),
		FormatScore(r.TotalScore()),
		r.Result.Grade,
		FormatPoint(r.Result.Point),
	}
}

// CourseMarkRow is one course's line in a student report.
type CourseMarkRow struct {
	Marks
	CourseID    int
	CourseCode  string
	CourseTitle string
	Result      GradePoint
}

func (r CourseMarkRow) Cells() []string {
	return []string{
		r.CourseCode,
		r.CourseTitle,
		strconv.Itoa(r.CreditHours),
		FormatScore(r.Attendance),
		FormatScore(r.Assignment),
		FormatScore(r.EndOfTerm),
		FormatScore(r.TotalScore()),
		r.Result.Grade,
		FormatPoint(r.Result.Point),
	}
}

// NumericColumns lists the right-aligned columns of each report.
var (
	StudentMarkNumeric = []int{0, 2, 3, 4, 5, 7}
	CourseMarkNumeric  = []int{2, 3, 4, 5, 6, 8}
)

// StudentRowFrom builds a course-report row for student s.
func StudentRowFrom(scale Scale, s models.Student, c models.Course, m models.StudentMark) StudentMarkRow {
	marks := FromStudentMark(m, c.CreditHours)
	return StudentMarkRow{
		Marks:       marks,
		StudentID:   s.ID,
		StudentName: s.FullName(),
		Result:      marks.Grade(scale),
	}
}

// CourseRowFrom builds a student-report row for course c.
func CourseRowFrom(scale Scale, c models.Course, m models.StudentMark) CourseMarkRow {
	marks := FromStudentMark(m, c.CreditHours)
	return CourseMarkRow{
		Marks:       marks,
		CourseID:    c.ID,
		CourseCode:  c.Code,
		CourseTitle: c.Title,
		Result:      marks.Grade(scale),
	}
}
