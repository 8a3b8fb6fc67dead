package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessctl/internal/config"
	"assessctl/internal/models"
)

func TestCheckClean(t *testing.T) {
	d := &DataContext{path: "data.json"}
	_, err := d.AddCourse(models.Course{Code: "CS101", Title: "Intro", CreditHours: 3})
	require.NoError(t, err)
	_, err = d.AddStudent(models.Student{FirstName: "Ama", LastName: "Mensah"})
	require.NoError(t, err)
	_, err = d.RecordMark(models.StudentMark{StudentID: 1, CourseID: 1, Attendance: 10, Assignment: 30, EndOfTerm: 60})
	require.NoError(t, err)

	rep := d.Check(config.DefaultGrading)
	assert.Equal(t, 3, rep.Records)
	assert.Empty(t, rep.Items)
	assert.Zero(t, rep.Errors)
	assert.Zero(t, rep.Warnings)
}

func TestCheckFindsProblems(t *testing.T) {
	d := &DataContext{
		Courses: []models.Course{
			{ID: 1, Code: "CS101", Title: "Intro", CreditHours: 3},
			{ID: 2, Code: "cs101", Title: "Copy"},
		},
		Students: []models.Student{{ID: 1, FirstName: "Ama"}, {ID: 1}},
		StudentMarks: []models.StudentMark{
			{StudentID: 1, CourseID: 1, Attendance: 12},
			{StudentID: 1, CourseID: 1},
			{StudentID: 9, CourseID: 7},
		},
	}

	rep := d.Check(config.DefaultGrading)
	byRecord := map[string]CheckItem{}
	for _, it := range rep.Items {
		byRecord[it.Record] = it
	}

	assert.Equal(t, []string{"code cs101 already used by course 1"}, byRecord["course 2"].Errors)
	assert.Equal(t, []string{"no credit hours; excluded from GPA"}, byRecord["course 2"].Warnings)
	assert.ElementsMatch(t, []string{"duplicate student id", "missing name"}, byRecord["student 1"].Errors)
	assert.Equal(t, []string{"unknown student", "unknown course"}, byRecord["mark 9/7"].Errors)
	assert.Equal(t, 6, rep.Errors)
	assert.Equal(t, 2, rep.Warnings)
}
