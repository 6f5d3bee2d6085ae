package e2e

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildJotBinary builds the jot binary in the specified directory and returns its path.
func buildJotBinary(t *testing.T, dir string) string {
	t.Helper()
	jotBin := filepath.Join(dir, "jot.exe")
	buildCmd := exec.Command("go", "build", "-o", jotBin, "../../cmd/jot")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build jot: %v\n%s", err, string(out))
	}
	return jotBin
}

// runJot executes the binary with a scrubbed environment so a developer's
// real config file can never leak in, and returns stdout.
func runJot(t *testing.T, dir string, input io.Reader, name string, args ...string) string {
	t.Helper()
	var stdout bytes.Buffer

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+dir, "XDG_CONFIG_HOME=", "XDG_DATA_HOME=")
	if input != nil {
		cmd.Stdin = input
	}
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("Command %s %v failed in %s: %v\n%s", name, args, dir, err, stdout.String())
	}
	return stdout.String()
}
