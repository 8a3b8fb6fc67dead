package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assessctl/internal/models"
)

var roster = []models.Student{
	{ID: 3, FirstName: "Kofi", LastName: "Boateng"},
	{ID: 1, FirstName: "Ama", LastName: "Mensah"},
	{ID: 2, FirstName: "Abena", LastName: "Owusu"},
}

func ids(ss []models.Student) []int {
	out := make([]int, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.ID)
	}
	return out
}

func TestStudentsBlankQuery(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ids(Students("  ", roster)))
	assert.Equal(t, 3, roster[0].ID)
}

func TestStudentsMatch(t *testing.T) {
	assert.Equal(t, []int{3}, ids(Students("kofi", roster)))
	assert.Equal(t, []int{1}, ids(Students("mensah", roster)))
	assert.Empty(t, Students("zzz", roster))
}
