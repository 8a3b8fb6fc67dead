// Package app runs the interactive assessment console: the main menu and
// the course, student, marks and report screens behind it.
package app

import (
	"errors"
	"fmt"
	"io"

	"assessctl/internal/config"
	"assessctl/internal/console"
	apperr "assessctl/internal/errors"
	"assessctl/internal/forms"
	"assessctl/internal/grading"
	"assessctl/internal/models"
	"assessctl/internal/search"
	"assessctl/internal/store"
	"assessctl/internal/system"
	"assessctl/internal/view"
)

// MainMenuTitle heads the main menu.
const MainMenuTitle = "Main Menu"

// App is one interactive session over a data file.
type App struct {
	store  *store.DataContext
	term   console.Terminal
	prompt forms.Prompter
	cfg    config.Config
	scale  grading.Scale

	changes ChangeSource
	menu    *view.Menu
	quit    bool
}

// ChangeSource reports rewrites of the data file by other processes.
type ChangeSource interface {
	Changed() bool
}

// WatchChanges makes the session reload the data file before showing the
// main menu whenever src reports a change the session did not write itself.
func (a *App) WatchChanges(src ChangeSource) { a.changes = src }

// New prepares a session. term is wrapped so that every cleared screen
// starts with the application banner.
func New(d *store.DataContext, term console.Terminal, p forms.Prompter, cfg config.Config) *App {
	a := &App{
		store:  d,
		term:   NewScreen(term),
		prompt: p,
		cfg:    cfg,
		scale:  grading.DefaultScale,
	}
	a.menu = view.NewMenu(MainMenuTitle,
		view.Item("Courses", a.listCourses),
		view.Item("Add course", a.addCourse),
		view.Separator(),
		view.Item("Students", a.listStudents),
		view.Item("Add student", a.addStudent),
		view.Item("Find student", a.findStudent),
		view.Separator(),
		view.Item("Record marks", a.recordMarks),
		view.Item("Course report", a.chooseCourseReport),
		view.Item("Student report", a.chooseStudentReport),
		view.Separator(),
		view.Item("Exit", a.exit),
	)
	return a
}

// Run shows the main menu until the user exits or cancels it. Errors from
// a menu action are shown and the menu comes back; a failure to read keys
// ends the session and is returned.
func (a *App) Run() error {
	system.Logger.Info("session started", "data", a.store.Path())
	for !a.quit {
		a.reloadIfChanged()
		idx, err := a.menu.Render(a.term)
		if err != nil {
			if idx == view.NoSelection || errors.Is(err, io.EOF) {
				return err
			}
			a.report(err)
			continue
		}
		if idx == view.NoSelection {
			break
		}
	}
	system.Logger.Info("session ended")
	return nil
}

func (a *App) reloadIfChanged() {
	if a.changes == nil || !a.changes.Changed() || !a.store.Stale() {
		return
	}
	d, err := store.Open(a.store.Path())
	if err != nil {
		a.report(err)
		return
	}
	a.store = d
	system.Logger.Info("data file reloaded", "path", d.Path())
}

func (a *App) report(err error) {
	if apperr.Is(err, apperr.CodeInputAborted) {
		system.Logger.Debug("input aborted", "err", err)
		return
	}
	system.Logger.Error("action failed", "code", apperr.GetCode(err), "err", err)
	a.prompt.Pause(err.Error())
}

func (a *App) exit() error {
	a.quit = true
	return nil
}

func (a *App) save() error {
	return a.store.SaveChanges()
}

// table builds a table and right-aligns the numeric columns.
func table[T view.Row](headers []string, items []T, title string, numeric ...int) (*view.Table[T], error) {
	t, err := view.NewTable(headers, items, title)
	if err != nil {
		return nil, err
	}
	for _, i := range numeric {
		t.Align(i, view.AlignRight)
	}
	return t, t.Err()
}

func (a *App) pickCourse(title string) (models.Course, bool, error) {
	t, err := table(models.CourseHeaders, a.store.Courses, title, 0, 3)
	if err != nil {
		return models.Course{}, false, err
	}
	return t.Selected(a.term)
}

func (a *App) pickStudent(title string, students []models.Student) (models.Student, bool, error) {
	t, err := table(models.StudentHeaders, students, title, 0)
	if err != nil {
		return models.Student{}, false, err
	}
	return t.Selected(a.term)
}

func (a *App) listCourses() error {
	c, ok, err := a.pickCourse("Courses")
	if err != nil || !ok {
		return err
	}
	return a.courseReport(c.ID)
}

func (a *App) listStudents() error {
	s, ok, err := a.pickStudent("Students", a.store.Students)
	if err != nil || !ok {
		return err
	}
	return a.studentReport(s.ID)
}

func (a *App) addCourse() error {
	c, err := a.prompt.Course()
	if err != nil {
		return err
	}
	added, err := a.store.AddCourse(c)
	if err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	system.Logger.Info("course added", "id", added.ID, "code", added.Code)
	a.prompt.Pause(fmt.Sprintf("Course %s added.", added))
	return nil
}

func (a *App) addStudent() error {
	s, err := a.prompt.Student()
	if err != nil {
		return err
	}
	added, err := a.store.AddStudent(s)
	if err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	system.Logger.Info("student added", "id", added.ID)
	a.prompt.Pause(fmt.Sprintf("Student %s added.", added))
	return nil
}

func (a *App) findStudent() error {
	q, err := a.prompt.Query("Find student")
	if err != nil {
		return err
	}
	found := search.Students(q, a.store.Students)
	if len(found) == 0 {
		a.prompt.Pause(fmt.Sprintf("No student matches %q.", q))
		return nil
	}
	s, ok, err := a.pickStudent(fmt.Sprintf("Students matching %q", q), found)
	if err != nil || !ok {
		return err
	}
	return a.studentReport(s.ID)
}

func (a *App) recordMarks() error {
	if len(a.store.Students) == 0 || len(a.store.Courses) == 0 {
		a.prompt.Pause("Add at least one student and one course first.")
		return nil
	}
	s, ok, err := a.pickStudent("Select student", a.store.Students)
	if err != nil || !ok {
		return err
	}
	c, ok, err := a.pickCourse("Select course for " + s.FullName())
	if err != nil || !ok {
		return err
	}
	return a.editMark(s, c)
}

func (a *App) editMark(s models.Student, c models.Course) error {
	current, _ := a.store.Mark(s.ID, c.ID)
	title := fmt.Sprintf("%s in %s", s.FullName(), c)
	scores, err := a.prompt.Mark(title, a.cfg.Grading, forms.ScoresOf(current))
	if err != nil {
		return err
	}
	replaced, err := a.store.RecordMark(scores.Apply(current))
	if err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	system.Logger.Info("marks recorded", "student", s.ID, "course", c.Code, "replaced", replaced)
	return nil
}

func (a *App) chooseCourseReport() error {
	c, ok, err := a.pickCourse("Course report")
	if err != nil || !ok {
		return err
	}
	return a.courseReport(c.ID)
}

func (a *App) chooseStudentReport() error {
	s, ok, err := a.pickStudent("Student report", a.store.Students)
	if err != nil || !ok {
		return err
	}
	return a.studentReport(s.ID)
}

// courseReport shows a course's marks until closed. Picking a row edits
// that student's marks.
func (a *App) courseReport(courseID int) error {
	for {
		c, rows, err := grading.CourseReport(a.store, a.scale, courseID)
		if err != nil {
			return err
		}
		t, err := table(grading.StudentMarkHeaders, rows, c.String(), grading.StudentMarkNumeric...)
		if err != nil {
			return err
		}
		t.AddFooter(grading.AverageFooter(rows))
		row, ok, err := t.Selected(a.term)
		if err != nil || !ok {
			return err
		}
		s, err := a.store.Student(row.StudentID)
		if err != nil {
			return err
		}
		if err := a.editMark(s, c); err != nil {
			return err
		}
	}
}

// studentReport shows a student's marks until closed. Picking a row edits
// the marks for that course.
func (a *App) studentReport(studentID int) error {
	for {
		s, rows, err := grading.StudentReport(a.store, a.scale, studentID)
		if err != nil {
			return err
		}
		t, err := table(grading.CourseMarkHeaders, rows, s.String(), grading.CourseMarkNumeric...)
		if err != nil {
			return err
		}
		t.AddFooter(grading.GPAFooter(rows))
		row, ok, err := t.Selected(a.term)
		if err != nil || !ok {
			return err
		}
		c, err := a.store.Course(row.CourseID)
		if err != nil {
			return err
		}
		if err := a.editMark(s, c); err != nil {
			return err
		}
	}
}
