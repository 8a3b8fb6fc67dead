package grading

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "assessctl/internal/errors"
	"assessctl/internal/models"
	"assessctl/internal/store"
)

func TestDefaultScale(t *testing.T) {
	cases := []struct {
		total float64
		grade string
		point float64
	}{
		{100, "A", 4.0},
		{80, "A", 4.0},
		{79.99, "B+", 3.5},
		{75, "B+", 3.5},
		{70, "B", 3.0},
		{65, "C+", 2.5},
		{60, "C", 2.0},
		{55, "D+", 1.5},
		{50, "D", 1.0},
		{49.5, "F", 0},
		{0, "F", 0},
	}
	for _, tc := range cases {
		got := DefaultScale.Grade(tc.total)
		assert.Equal(t, tc.grade, got.Grade, "total %v", tc.total)
		assert.Equal(t, tc.point, got.Point, "total %v", tc.total)
	}
}

func TestNewScaleSortsBands(t *testing.T) {
	s := NewScale(GradePoint{"Fail", 0},
		Band{50, GradePoint{"Pass", 1}},
		Band{90, GradePoint{"Top", 2}},
	)
	assert.Equal(t, "Top", s.Grade(95).Grade)
	assert.Equal(t, "Pass", s.Grade(60).Grade)
	assert.Equal(t, "Fail", s.Grade(10).Grade)
	assert.Equal(t, 90.0, s.Bands()[0].Min)
}

func TestMarksTotal(t *testing.T) {
	m := Marks{Attendance: 2.5, Assignment: 10.25, EndOfTerm: 30.1}
	assert.Equal(t, 42.85, m.TotalScore())
	assert.Equal(t, "F", m.Grade(DefaultScale).Grade)
}

func TestRowCells(t *testing.T) {
	s := models.Student{ID: 7, FirstName: "Ama", LastName: "Mensah"}
	c := models.Course{ID: 2, Code: "CS101", Title: "Intro", CreditHours: 3}
	m := models.StudentMark{StudentID: 7, CourseID: 2, Attendance: 8, Assignment: 25, EndOfTerm: 50}

	sr := StudentRowFrom(DefaultScale, s, c, m)
	assert.Equal(t, []string{"7", "Ama Mensah", "8", "25", "50", "83", "A", "4.00"}, sr.Cells())
	assert.Len(t, sr.Cells(), len(StudentMarkHeaders))

	cr := CourseRowFrom(DefaultScale, c, m)
	assert.Equal(t, []string{"CS101", "Intro", "3", "8", "25", "50", "83", "A", "4.00"}, cr.Cells())
	assert.Len(t, cr.Cells(), len(CourseMarkHeaders))
}

func seed(t *testing.T) *store.DataContext {
	t.Helper()
	d, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	cs, err := d.AddCourse(models.Course{Code: "CS101", Title: "Intro", CreditHours: 3})
	require.NoError(t, err)
	ma, err := d.AddCourse(models.Course{Code: "MA101", Title: "Calculus", CreditHours: 2})
	require.NoError(t, err)
	ama, err := d.AddStudent(models.Student{FirstName: "Ama", LastName: "Mensah"})
	require.NoError(t, err)
	kofi, err := d.AddStudent(models.Student{FirstName: "Kofi", LastName: "Boateng"})
	require.NoError(t, err)

	for _, m := range []models.StudentMark{
		{StudentID: ama.ID, CourseID: cs.ID, Attendance: 8, Assignment: 25, EndOfTerm: 50},
		{StudentID: ama.ID, CourseID: ma.ID, Attendance: 5, Assignment: 20, EndOfTerm: 40},
		{StudentID: kofi.ID, CourseID: cs.ID, Attendance: 5, Assignment: 10, EndOfTerm: 20},
	} {
		_, err := d.RecordMark(m)
		require.NoError(t, err)
	}
	return d
}

func TestCourseReport(t *testing.T) {
	d := seed(t)

	c, rows, err := CourseReport(d, DefaultScale, 1)
	require.NoError(t, err)
	assert.Equal(t, "CS101", c.Code)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ama Mensah", rows[0].StudentName)
	assert.Equal(t, "A", rows[0].Result.Grade)
	assert.Equal(t, "F", rows[1].Result.Grade)
	assert.Equal(t, 59.0, AverageScore(rows))
	assert.Equal(t, "Average: 59", AverageFooter(rows))

	_, _, err = CourseReport(d, DefaultScale, 99)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestStudentReport(t *testing.T) {
	d := seed(t)

	s, rows, err := StudentReport(d, DefaultScale, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ama Mensah", s.FullName())
	require.Len(t, rows, 2)
	assert.Equal(t, "C+", rows[1].Result.Grade)
	assert.Equal(t, 3.4, WeightedGPA(rows))
	assert.Equal(t, "GPA: 3.40", GPAFooter(rows))

	_, _, err = StudentReport(d, DefaultScale, 42)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestEmptyAggregates(t *testing.T) {
	assert.Zero(t, WeightedGPA(nil))
	assert.Zero(t, WeightedGPA([]CourseMarkRow{{Result: GradePoint{"A", 4}}}))
	assert.Zero(t, AverageScore(nil))
}
