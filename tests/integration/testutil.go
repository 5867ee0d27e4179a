// Package integration runs the built contacts binary end to end.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// contactsBin is the path to the built contacts binary.
	contactsBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv is an isolated config directory and data file for one test.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataFile  string
	Backend   string
}

// NewTestEnv creates a test environment for backend.
func NewTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build contacts: %v", buildErr)
	}
	if contactsBin == "" {
		t.Fatal("contacts binary not built")
	}

	dir := t.TempDir()
	name := "contacts.json"
	if backend == "sqlite" {
		name = "contacts.db"
	}
	return &TestEnv{
		t:         t,
		ConfigDir: filepath.Join(dir, "config"),
		DataFile:  filepath.Join(dir, "data", name),
		Backend:   backend,
	}
}

// CmdResult holds the result of a contacts command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the contacts binary against the environment.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-file", e.DataFile, "--backend", e.Backend}, args...)
	cmd := exec.Command(contactsBin, allArgs...)
	cmd.Env = append(os.Environ(), "CONTACTS_LOG_LEVEL=error")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			e.t.Fatalf("failed to run contacts: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// MustRun executes the contacts binary and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("contacts %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// Element is one catalog document element as written by --json output.
type Element map[string]string

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
