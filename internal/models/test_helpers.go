package models

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testdataDir resolves the repository's testdata directory from this source
// file, so callers in any package depth get the same location.
func testdataDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate testdata: no caller information")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata")
}

// GetFixturePath returns the absolute path of a file under testdata/, failing
// the test when it does not exist.
func GetFixturePath(t *testing.T, name string) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join(testdataDir(t), name))
	if err != nil {
		t.Fatalf("resolve testdata/%s: %v", name, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture testdata/%s: %v", name, err)
	}
	return path
}

// CopyFixture copies a testdata file into a fresh temp directory and returns
// the copy's path, for tests that modify or remove the file.
func CopyFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(GetFixturePath(t, name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("copy fixture %s: %v", name, err)
	}
	return path
}
