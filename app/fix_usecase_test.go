package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/fixer"
	"github.com/MaciejWiatr/next-a11y-sub000/service"
)

const brokenWidget = `export default function Widget() {
  return (
    <div>
      <img src="/hero.png" />
      <button onClick={go}>Go</button>
      <a href="https://x.test" target="_blank">Docs</a>
    </div>
  );
}
`

func runFix(t *testing.T, root string, req domain.ScanRequest, confirm fixer.ConfirmFunc) *domain.ScanResult {
	t.Helper()
	var buf bytes.Buffer
	if req.Paths == nil {
		req.Paths = []string{root}
	}
	req.OutputWriter = &buf
	if req.OutputFormat == "" {
		req.OutputFormat = domain.OutputFormatJSON
	}

	uc := NewFixUseCase(service.NewOutputFormatter(), &service.NoOpProgressManager{}, nil)
	result, err := uc.Execute(context.Background(), req, confirm)
	if err != nil {
		t.Fatalf("fix failed: %v", err)
	}
	return result
}

func TestFixExecute(t *testing.T) {
	root := writeProject(t, map[string]string{
		"components/widget.tsx": brokenWidget,
	})

	result := runFix(t, root, domain.ScanRequest{ApplyFixes: true}, nil)

	if result.FixedCount != 3 {
		t.Errorf("fixed count = %d, want 3", result.FixedCount)
	}
	// the reported state is a re-scan of the mutated sources
	if result.Summary.TotalViolations != 0 {
		t.Errorf("violations remain after fixing: %+v", result.Violations)
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100 after all fixes applied", result.Score)
	}

	fixed, err := os.ReadFile(filepath.Join(root, "components/widget.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`alt="Hero image"`,
		`type="button"`,
		`rel="noopener noreferrer"`,
	} {
		if !strings.Contains(string(fixed), want) {
			t.Errorf("missing %q in fixed source:\n%s", want, fixed)
		}
	}
}

func TestFixDryRun(t *testing.T) {
	root := writeProject(t, map[string]string{
		"components/widget.tsx": brokenWidget,
	})

	result := runFix(t, root, domain.ScanRequest{ApplyFixes: true, DryRun: true}, nil)

	if result.FixedCount != 3 {
		t.Errorf("fixed count = %d, want 3", result.FixedCount)
	}
	// a dry run reports the pre-fix state
	if result.Summary.TotalViolations != 3 {
		t.Errorf("violations = %d, want the pre-fix 3", result.Summary.TotalViolations)
	}

	after, err := os.ReadFile(filepath.Join(root, "components/widget.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != brokenWidget {
		t.Errorf("dry run modified the source:\n%s", after)
	}
}

func TestFixInteractiveRejectAll(t *testing.T) {
	root := writeProject(t, map[string]string{
		"components/widget.tsx": brokenWidget,
	})

	var asked int
	result := runFix(t, root, domain.ScanRequest{ApplyFixes: true, Interactive: true},
		func(v *domain.Violation) bool {
			asked++
			return false
		})

	if asked != 3 {
		t.Errorf("confirmation asked %d times, want 3", asked)
	}
	if result.FixedCount != 0 {
		t.Errorf("fixed count = %d, want 0 when every fix is declined", result.FixedCount)
	}

	after, err := os.ReadFile(filepath.Join(root, "components/widget.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != brokenWidget {
		t.Errorf("declined fixes still modified the source:\n%s", after)
	}
}

func TestFixInteractivePartial(t *testing.T) {
	root := writeProject(t, map[string]string{
		"components/widget.tsx": brokenWidget,
	})

	result := runFix(t, root, domain.ScanRequest{ApplyFixes: true, Interactive: true},
		func(v *domain.Violation) bool {
			return v.Rule == "button-type"
		})

	if result.FixedCount != 1 {
		t.Errorf("fixed count = %d, want 1", result.FixedCount)
	}

	after, err := os.ReadFile(filepath.Join(root, "components/widget.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(after), `type="button"`) {
		t.Errorf("approved fix not applied:\n%s", after)
	}
	if strings.Contains(string(after), "alt=") {
		t.Errorf("declined fix was applied:\n%s", after)
	}
}
