package store

import (
	"fmt"
	"strings"

	"assessctl/internal/config"
)

// CheckItem is one finding about a record in the data file.
type CheckItem struct {
	Record   string   `json:"record"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// CheckReport summarizes the integrity of a data file.
type CheckReport struct {
	Path     string      `json:"path"`
	Records  int         `json:"records"`
	Items    []CheckItem `json:"items"`
	Errors   int         `json:"errors"`
	Warnings int         `json:"warnings"`
}

func (r *CheckReport) add(it CheckItem) {
	if len(it.Errors) == 0 && len(it.Warnings) == 0 {
		return
	}
	r.Errors += len(it.Errors)
	r.Warnings += len(it.Warnings)
	r.Items = append(r.Items, it)
}

// Check looks for dangling references, duplicates and scores outside the
// grading limits. Only problems are listed in Items.
func (d *DataContext) Check(limits config.Grading) CheckReport {
	rep := CheckReport{
		Path:    d.path,
		Records: len(d.Courses) + len(d.Students) + len(d.StudentMarks),
	}

	courseIDs := map[int]bool{}
	codes := map[string]int{}
	for _, c := range d.Courses {
		it := CheckItem{Record: fmt.Sprintf("course %d", c.ID)}
		if courseIDs[c.ID] {
			it.Errors = append(it.Errors, "duplicate course id")
		}
		courseIDs[c.ID] = true
		code := strings.ToLower(strings.TrimSpace(c.Code))
		switch {
		case code == "":
			it.Errors = append(it.Errors, "missing code")
		case codes[code] != 0:
			it.Errors = append(it.Errors, fmt.Sprintf("code %s already used by course %d", c.Code, codes[code]))
		default:
			codes[code] = c.ID
		}
		if c.CreditHours <= 0 {
			it.Warnings = append(it.Warnings, "no credit hours; excluded from GPA")
		}
		rep.add(it)
	}

	studentIDs := map[int]bool{}
	for _, s := range d.Students {
		it := CheckItem{Record: fmt.Sprintf("student %d", s.ID)}
		if studentIDs[s.ID] {
			it.Errors = append(it.Errors, "duplicate student id")
		}
		studentIDs[s.ID] = true
		if s.FullName() == "" {
			it.Errors = append(it.Errors, "missing name")
		}
		rep.add(it)
	}

	type pair struct{ s, c int }
	seen := map[pair]bool{}
	for _, m := range d.StudentMarks {
		it := CheckItem{Record: fmt.Sprintf("mark %d/%d", m.StudentID, m.CourseID)}
		if !studentIDs[m.StudentID] {
			it.Errors = append(it.Errors, "unknown student")
		}
		if !courseIDs[m.CourseID] {
			it.Errors = append(it.Errors, "unknown course")
		}
		if seen[pair{m.StudentID, m.CourseID}] {
			it.Errors = append(it.Errors, "duplicate mark")
		}
		seen[pair{m.StudentID, m.CourseID}] = true
		it.Warnings = append(it.Warnings, outOfRange("attendance", m.Attendance, limits.MaxAttendance)...)
		it.Warnings = append(it.Warnings, outOfRange("assignment", m.Assignment, limits.MaxAssignment)...)
		it.Warnings = append(it.Warnings, outOfRange("end of term", m.EndOfTerm, limits.MaxEndOfTerm)...)
		rep.add(it)
	}
	return rep
}

func outOfRange(field string, v, limit float64) []string {
	if v < 0 || v > limit {
		return []string{fmt.Sprintf("%s %g outside 0-%g", field, v, limit)}
	}
	return nil
}
