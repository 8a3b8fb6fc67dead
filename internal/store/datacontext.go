package store

import (
	"os"
	"slices"
	"strings"
	"time"

	"assessctl/internal/errors"
	"assessctl/internal/models"
	"assessctl/internal/system"
)

// DataContext is the whole data file held in memory. Changes are written
// back only by SaveChanges.
type DataContext struct {
	Students     []models.Student     `json:"students"`
	Courses      []models.Course      `json:"courses"`
	StudentMarks []models.StudentMark `json:"student_marks"`

	path    string
	modTime time.Time
}

// Open loads the data file at path. A missing or empty file yields an empty
// context that will be created on the first SaveChanges.
func Open(path string) (*DataContext, error) {
	d := &DataContext{path: path}
	found, err := loadJSON(path, d)
	if err != nil {
		return nil, errors.StoreFailed(path, err)
	}
	if !found {
		system.Logger.Debug("data file not found, starting empty", "path", path)
	}
	d.modTime = fileModTime(path)
	return d, nil
}

// Path is the file the context was opened from.
func (d *DataContext) Path() string { return d.path }

// SaveChanges writes the context back to its file.
func (d *DataContext) SaveChanges() error {
	if err := saveJSON(d.path, d); err != nil {
		return errors.StoreFailed(d.path, err)
	}
	d.modTime = fileModTime(d.path)
	system.Logger.Debug("data file saved", "path", d.path,
		"students", len(d.Students), "courses", len(d.Courses), "marks", len(d.StudentMarks))
	return nil
}

// Stale reports whether the file on disk was modified since this context
// last read or wrote it.
func (d *DataContext) Stale() bool {
	return !fileModTime(d.path).Equal(d.modTime)
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

// AddCourse assigns the next id to c and appends it. Codes are compared
// case-insensitively and must be unique.
func (d *DataContext) AddCourse(c models.Course) (models.Course, error) {
	c.Code = strings.TrimSpace(c.Code)
	c.Title = strings.TrimSpace(c.Title)
	if c.Code == "" {
		return c, errors.InvalidInput("course code", "required")
	}
	if _, err := d.CourseByCode(c.Code); err == nil {
		return c, errors.Duplicate("course", c.Code)
	}
	c.ID = 1
	for _, e := range d.Courses {
		c.ID = max(c.ID, e.ID+1)
	}
	d.Courses = append(d.Courses, c)
	return c, nil
}

// AddStudent assigns the next id to s and appends it.
func (d *DataContext) AddStudent(s models.Student) (models.Student, error) {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	if s.FullName() == "" {
		return s, errors.InvalidInput("student name", "required")
	}
	s.ID = 1
	for _, e := range d.Students {
		s.ID = max(s.ID, e.ID+1)
	}
	d.Students = append(d.Students, s)
	return s, nil
}

// RecordMark inserts m, or replaces the existing mark for the same student
// and course. It reports whether an existing mark was replaced.
func (d *DataContext) RecordMark(m models.StudentMark) (bool, error) {
	if _, err := d.Student(m.StudentID); err != nil {
		return false, err
	}
	if _, err := d.Course(m.CourseID); err != nil {
		return false, err
	}
	for i, e := range d.StudentMarks {
		if e.StudentID == m.StudentID && e.CourseID == m.CourseID {
			d.StudentMarks[i] = m
			return true, nil
		}
	}
	d.StudentMarks = append(d.StudentMarks, m)
	return false, nil
}

// Mark returns the mark recorded for a student in a course.
func (d *DataContext) Mark(studentID, courseID int) (models.StudentMark, bool) {
	for _, e := range d.StudentMarks {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e, true
		}
	}
	return models.StudentMark{StudentID: studentID, CourseID: courseID}, false
}

func (d *DataContext) Course(id int) (models.Course, error) {
	i := slices.IndexFunc(d.Courses, func(c models.Course) bool { return c.ID == id })
	if i < 0 {
		return models.Course{}, errors.NotFound("course", id)
	}
	return d.Courses[i], nil
}

func (d *DataContext) CourseByCode(code string) (models.Course, error) {
	code = strings.TrimSpace(code)
	i := slices.IndexFunc(d.Courses, func(c models.Course) bool { return strings.EqualFold(c.Code, code) })
	if i < 0 {
		return models.Course{}, errors.NotFound("course", code)
	}
	return d.Courses[i], nil
}

func (d *DataContext) Student(id int) (models.Student, error) {
	i := slices.IndexFunc(d.Students, func(s models.Student) bool { return s.ID == id })
	if i < 0 {
		return models.Student{}, errors.NotFound("student", id)
	}
	return d.Students[i], nil
}

// MarksForCourse returns the marks recorded for a course, in entry order.
func (d *DataContext) MarksForCourse(courseID int) []models.StudentMark {
	var out []models.StudentMark
	for _, m := range d.StudentMarks {
		if m.CourseID == courseID {
			out = append(out, m)
		}
	}
	return out
}

// MarksForStudent returns a student's marks, in entry order.
func (d *DataContext) MarksForStudent(studentID int) []models.StudentMark {
	var out []models.StudentMark
	for _, m := range d.StudentMarks {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out
}
