package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScanCmd_FlagsExist(t *testing.T) {
	cmd := scanCmd()

	expectedFlags := []string{"format", "config", "min-score"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestFixCmd_FlagsExist(t *testing.T) {
	cmd := fixCmd()

	expectedFlags := []string{"format", "config", "dry-run", "yes", "interactive", "min-score"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestFixCmd_ShortFlags(t *testing.T) {
	cmd := fixCmd()

	shortFlags := map[string]string{
		"f": "format",
		"c": "config",
		"y": "yes",
		"i": "interactive",
	}
	for short, long := range shortFlags {
		if cmd.Flags().ShorthandLookup(short) == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

// writeComponent lays out a minimal project with a single component
func writeComponent(t *testing.T, source string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "components", "docs.tsx")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

// a skipped heading level has no automatic fix, so the score stays below
// 100 even after a fix run
const skippedHeading = `export default function Docs() {
  return (
    <section>
      <h1>Guide</h1>
      <h4>Details</h4>
    </section>
  );
}
`

func TestFixCmd_MinScoreGate(t *testing.T) {
	root := writeComponent(t, skippedHeading)

	cmd := fixCmd()
	cmd.SetArgs([]string{root, "--min-score", "99", "--format", "json"})

	err := cmd.Execute()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected an exit error below the minimum score, got %v", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
}

func TestFixCmd_MinScoreMet(t *testing.T) {
	root := writeComponent(t, skippedHeading)

	cmd := fixCmd()
	cmd.SetArgs([]string{root, "--min-score", "50", "--format", "json"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("score above the minimum should pass: %v", err)
	}
}

func TestExitError_Error(t *testing.T) {
	err := &ExitError{Code: 1, Message: "below minimum"}
	if err.Error() != "below minimum" {
		t.Errorf("Error() should return the message, got %q", err.Error())
	}
}
