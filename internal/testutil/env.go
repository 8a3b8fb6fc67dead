package testutil

import (
	"os"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// IsolateConfig points the user config and home directories at a fresh
// temp dir for the rest of the test and returns it.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Cleanup(WithEnv(t, "XDG_CONFIG_HOME", tmp))
	t.Cleanup(WithEnv(t, "HOME", tmp))
	return tmp
}
