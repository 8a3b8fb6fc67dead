package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout used for dates on screen and in input prompts.
const DateLayout = "2006-01-02"

// Course is a taught course. Code is unique across the data file.
type Course struct {
	ID          int    `json:"id"`
	Code        string `json:"code" jsonschema:"minLength=1"`
	Title       string `json:"title" jsonschema:"minLength=1"`
	CreditHours int    `json:"credit_hours" jsonschema:"minimum=0"`
}

// CourseHeaders are the table headers matching Course.Cells.
var CourseHeaders = []string{"Id", "Code", "Title", "Credit Hours"}

func (c Course) String() string {
	return fmt.Sprintf("[%s] %s", c.Code, c.Title)
}

func (c Course) Cells() []string {
	return []string{strconv.Itoa(c.ID), c.Code, c.Title, strconv.Itoa(c.CreditHours)}
}

// Student is an enrolled student.
type Student struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name" jsonschema:"minLength=1"`
	LastName    string    `json:"last_name" jsonschema:"minLength=1"`
	DateOfBirth time.Time `json:"date_of_birth,omitzero"`
}

// StudentHeaders are the table headers matching Student.Cells.
var StudentHeaders = []string{"Id", "Name", "Date of Birth"}

// FullName joins the first and last names.
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func (s Student) String() string {
	return fmt.Sprintf("[%d] %s", s.ID, s.FullName())
}

func (s Student) Cells() []string {
	dob := ""
	if !s.DateOfBirth.IsZero() {
		dob = s.DateOfBirth.Format(DateLayout)
	}
	return []string{strconv.Itoa(s.ID), s.FullName(), dob}
}

// StudentMark holds one student's component scores for one course.
type StudentMark struct {
	StudentID  int     `json:"student_id"`
	CourseID   int     `json:"course_id"`
	Attendance float64 `json:"attendance" jsonschema:"minimum=0"`
	Assignment float64 `json:"assignment" jsonschema:"minimum=0"`
	EndOfTerm  float64 `json:"end_of_term" jsonschema:"minimum=0"`
}
