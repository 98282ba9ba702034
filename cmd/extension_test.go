package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeScript writes an executable shell script named name in dir.
func writeScript(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+content), 0755); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "out.txt")
	writeScript(t, tempDir, "lsk-hello", `
echo "$LIFESTOCK_STORE" > "$1"
echo "$LIFESTOCK_CURRENCY" >> "$1"
echo "$LIFESTOCK_VERBOSE" >> "$1"
`)
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	expectedStore := filepath.Join(tempDir, "random_ledger.jsonl")
	withFlag(t, storeFile, expectedStore)
	withFlag(t, currency, "XYZ")
	t.Setenv(EnvVerbose, "true")

	found, code := RunExtension("hello", []string{out})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d; want true, 0", found, code)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	want := expectedStore + "\nXYZ\ntrue\n"
	if string(got) != want {
		t.Errorf("extension environment:\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestExtensionExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	tempDir := t.TempDir()
	writeScript(t, tempDir, "lsk-fail", "exit 3\n")
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("fail", nil)
	if !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d; want true, 3", found, code)
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, code := RunExtension(strings.Repeat("x", 12), nil)
	if found || code != 0 {
		t.Errorf("RunExtension() = %v, %d; want false, 0", found, code)
	}
}
