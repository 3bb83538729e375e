package grocerease

import (
	"bytes"
	"path/filepath"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grocerease.db")
	for i := 0; i < 2; i++ {
		runCommand(t, "--db", path, "init")
	}
}

func TestPantryAddAndListThroughCLI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grocerease.db")

	runCommand(t, "--db", path, "pantry", "add", "--name", "Milk", "--qty", "2", "--min", "1", "--unit", "bottle")
	out := runCommand(t, "--db", path, "pantry", "list")
	if !bytes.Contains([]byte(out), []byte("Milk")) {
		t.Fatalf("expected listing to contain Milk, got %q", out)
	}
}
