// Package search finds students by approximate name.
package search

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"assessctl/internal/models"
)

type studentNames []models.Student

func (s studentNames) String(i int) string { return s[i].FullName() }
func (s studentNames) Len() int            { return len(s) }

// Students ranks students whose full name fuzzily matches query, best match
// first. A blank query returns every student ordered by id.
func Students(query string, students []models.Student) []models.Student {
	query = strings.TrimSpace(query)
	if query == "" {
		out := slices.Clone(students)
		slices.SortFunc(out, func(a, b models.Student) int { return a.ID - b.ID })
		return out
	}
	matches := fuzzy.FindFrom(query, studentNames(students))
	out := make([]models.Student, 0, len(matches))
	for _, m := range matches {
		out = append(out, students[m.Index])
	}
	return out
}
