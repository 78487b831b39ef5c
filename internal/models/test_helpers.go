package models

import (
	"os"
	"path/filepath"
	"testing"
)

// GetFixturePath returns the absolute path to a fixture file in the "testdata" directory relative to the project's root.
func GetFixturePath(t *testing.T, fixturePath string) string {
	t.Helper()

	dir, err := filepath.Abs(".")
	if err != nil {
		t.Fatalf("Failed to get absolute path to testdata/%s: %v", fixturePath, err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("Failed to locate project root for testdata/%s", fixturePath)
		}
		dir = parent
	}

	return filepath.Join(dir, "testdata", fixturePath)
}
