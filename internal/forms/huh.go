package forms

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"assessctl/internal/config"
	apperr "assessctl/internal/errors"
	"assessctl/internal/models"
)

// HuhPrompter prompts with charmbracelet/huh forms.
type HuhPrompter struct {
	theme      *huh.Theme
	width      int
	accessible bool
}

// NewHuhPrompter returns a prompter using the application theme. Accessible
// mode replaces the TUI with plain line prompts.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	green := lipgloss.Color("#4d9375")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(16).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(16).Foreground(green).Bold(true)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)
	return &HuhPrompter{theme: theme, width: 60, accessible: accessible}
}

func (p *HuhPrompter) run(groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithTheme(p.theme).
		WithWidth(p.width).
		WithAccessible(p.accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return apperr.InputAborted(err)
		}
		return err
	}
	return nil
}

func (p *HuhPrompter) Course() (models.Course, error) {
	var code, title, credit string
	err := p.run(huh.NewGroup(
		huh.NewNote().Title("New course"),
		huh.NewInput().Title("*Code").Value(&code).Validate(Required("course code")),
		huh.NewInput().Title("*Title").Value(&title).Validate(Required("course title")),
		huh.NewInput().Title("*Credit hours").Value(&credit).Validate(discard(ParseCreditHours)),
	))
	if err != nil {
		return models.Course{}, err
	}
	hours, err := ParseCreditHours(credit)
	if err != nil {
		return models.Course{}, err
	}
	return models.Course{Code: code, Title: title, CreditHours: hours}, nil
}

func (p *HuhPrompter) Student() (models.Student, error) {
	var first, last, dob string
	parseDOB := func(s string) (any, error) { return ParseDate("date of birth", s) }
	err := p.run(huh.NewGroup(
		huh.NewNote().Title("New student"),
		huh.NewInput().Title("*First name").Value(&first).Validate(Required("first name")),
		huh.NewInput().Title("*Last name").Value(&last).Validate(Required("last name")),
		huh.NewInput().Title("Date of birth").Placeholder("yyyy-mm-dd").Value(&dob).Validate(discard(parseDOB)),
	))
	if err != nil {
		return models.Student{}, err
	}
	born, err := ParseDate("date of birth", dob)
	if err != nil {
		return models.Student{}, err
	}
	return models.Student{FirstName: first, LastName: last, DateOfBirth: born}, nil
}

func (p *HuhPrompter) Mark(title string, limits config.Grading, current Scores) (Scores, error) {
	fields := []struct {
		name  string
		limit float64
		value *float64
		text  string
	}{
		{"attendance", limits.MaxAttendance, &current.Attendance, ""},
		{"assignment", limits.MaxAssignment, &current.Assignment, ""},
		{"end of term", limits.MaxEndOfTerm, &current.EndOfTerm, ""},
	}
	inputs := []huh.Field{huh.NewNote().Title(title)}
	for i := range fields {
		f := &fields[i]
		f.text = strconv.FormatFloat(*f.value, 'f', -1, 64)
		inputs = append(inputs, huh.NewInput().
			Title(fmt.Sprintf("*%s (0-%g)", f.name, f.limit)).
			Value(&f.text).
			Validate(func(s string) error {
				_, err := ParseScore(f.name, s, f.limit)
				return err
			}))
	}
	if err := p.run(huh.NewGroup(inputs...)); err != nil {
		return current, err
	}
	for _, f := range fields {
		v, err := ParseScore(f.name, f.text, f.limit)
		if err != nil {
			return current, err
		}
		*f.value = v
	}
	return current, nil
}

func (p *HuhPrompter) Query(title string) (string, error) {
	var q string
	if err := p.run(huh.NewGroup(huh.NewInput().Title(title).Value(&q))); err != nil {
		return "", err
	}
	return q, nil
}

func (p *HuhPrompter) Confirm(msg string) bool {
	ok := false
	if err := p.run(huh.NewGroup(huh.NewConfirm().Title(msg).Value(&ok))); err != nil {
		return false
	}
	return ok
}

func (p *HuhPrompter) Pause(msg string) {
	_ = p.run(huh.NewGroup(huh.NewNote().Title(msg).Next(true).NextLabel("Continue")))
}
