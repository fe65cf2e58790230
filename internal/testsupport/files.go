package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteText writes content to name inside dir and returns the full path.
func WriteText(t testing.TB, dir, name, content string) string {
	t.Helper()
	return WriteBytes(t, dir, name, []byte(content))
}

// WriteBytes writes raw bytes to name inside dir and returns the full path.
// It is useful for documents that must not be valid UTF-8.
func WriteBytes(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadText returns the contents of path or fails the test.
func ReadText(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
