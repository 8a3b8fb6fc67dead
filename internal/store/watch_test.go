package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessctl/internal/models"
)

func TestStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	d, err := Open(path)
	require.NoError(t, err)
	assert.False(t, d.Stale())

	require.NoError(t, d.SaveChanges())
	assert.False(t, d.Stale())

	time.Sleep(10 * time.Millisecond)
	other, err := Open(path)
	require.NoError(t, err)
	_, err = other.AddCourse(models.Course{Code: "PH101", Title: "Physics"})
	require.NoError(t, err)
	require.NoError(t, other.SaveChanges())

	assert.True(t, d.Stale())
	assert.False(t, other.Stale())
}

func TestWatcherSeesRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	w, err := Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	assert.False(t, w.Changed())

	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.SaveChanges())

	require.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
	assert.False(t, w.Changed())
}
