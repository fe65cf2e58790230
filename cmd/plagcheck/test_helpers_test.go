package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagcheck/internal/testsupport"
)

type cliTestEnv struct {
	dir string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	testsupport.Isolate(t)
	t.Setenv("PLAGCHECK_LOG_LEVEL", "error")
	return &cliTestEnv{dir: t.TempDir()}
}

func (e *cliTestEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	return testsupport.WriteText(t, e.dir, name, content)
}

func (e *cliTestEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected %s to be absent, stat err = %v", path, err)
	}
}
