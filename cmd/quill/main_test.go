package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
)

func stdio(stdout, stderr *bytes.Buffer) mainer.Stdio {
	return mainer.Stdio{Stdin: strings.NewReader(""), Stdout: stdout, Stderr: stderr}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"quill", "--version"}, stdio(&stdout, &stderr))

	if code != mainer.Success {
		t.Errorf("expected success, got %v (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "quill") {
		t.Errorf("expected version output, got %q", stdout.String())
	}
}

func TestRun_FileNotFound(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"quill", "nonexistent.quill"}, stdio(&stdout, &stderr))

	if code != mainer.Failure {
		t.Errorf("expected failure, got %v", code)
	}
	if !strings.Contains(stderr.String(), "quill:") {
		t.Errorf("expected error message in stderr, got %q", stderr.String())
	}
}

func TestRun_ScriptMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.quill")
	if err := os.WriteFile(path, []byte(`(displayln (+ 1 2))`), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"quill", path}, stdio(&stdout, &stderr))

	if code != mainer.Success {
		t.Errorf("expected success, got %v (stderr: %s)", code, stderr.String())
	}
	if stdout.String() != "3\n" {
		t.Errorf("expected \"3\\n\", got %q", stdout.String())
	}
}

func TestRun_ScriptModeUncaughtErrorFormatsPosition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.quill")
	if err := os.WriteFile(path, []byte(`(undefined-atom)`), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"quill", path}, stdio(&stdout, &stderr))

	if code != mainer.Failure {
		t.Errorf("expected failure, got %v", code)
	}
	if !strings.Contains(stderr.String(), filepath.Base(path)+":") {
		t.Errorf("expected filename:line:col in stderr, got %q", stderr.String())
	}
}

func TestRun_ScriptModeBindsArgv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "argv.quill")
	src := `(displayln (car (cdr ARGV)))`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"quill", path, "first", "second"}, stdio(&stdout, &stderr))

	if code != mainer.Success {
		t.Errorf("expected success, got %v (stderr: %s)", code, stderr.String())
	}
	if stdout.String() != "second\n" {
		t.Errorf("expected \"second\\n\", got %q", stdout.String())
	}
}
