package rules

import (
	"strings"
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/testutil"
)

func TestInteractiveRoleRule(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    int
		missing string
	}{
		{"bare clickable div", `<div onClick={open}>Open</div>`, 1, "role and tabIndex"},
		{"role only", `<div onClick={open} role="button">Open</div>`, 1, "tabIndex"},
		{"tabIndex only", `<div onClick={open} tabIndex={0}>Open</div>`, 1, "role"},
		{"fully wired span", `<span onClick={open} role="button" tabIndex={0}>Open</span>`, 0, ""},
		{"no handler", `<div role="button">Open</div>`, 0, ""},
		{"real button ignored", `<button onClick={open}>Open</button>`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := testutil.ParseTSX(t, "c.tsx", `
export default function C({ open }) {
  return `+tt.src+`;
}
`)
			violations := (&InteractiveRoleRule{}).Scan(file, domain.RuleOptions{})
			if len(violations) != tt.want {
				t.Fatalf("expected %d violations, got %d", tt.want, len(violations))
			}
			if tt.want == 1 {
				if violations[0].Fix != nil {
					t.Error("interactive role violations are detect-only")
				}
				if !strings.Contains(violations[0].Message, tt.missing) {
					t.Errorf("message %q should name %q", violations[0].Message, tt.missing)
				}
			}
		})
	}
}
