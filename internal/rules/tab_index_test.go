package rules

import (
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/testutil"
)

func TestTabIndexRule(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"positive expression", `<div tabIndex={3}>x</div>`, 1},
		{"positive string", `<div tabIndex="2">x</div>`, 1},
		{"zero", `<div tabIndex={0}>x</div>`, 0},
		{"negative", `<div tabIndex={-1}>x</div>`, 0},
		{"symbolic", `<div tabIndex={order}>x</div>`, 0},
		{"absent", `<div>x</div>`, 0},
		{"lowercase attribute", `<div tabindex={5}>x</div>`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := testutil.ParseTSX(t, "c.tsx", `
export default function C({ order }) {
  return `+tt.src+`;
}
`)
			violations := (&TabIndexRule{}).Scan(file, domain.RuleOptions{})
			if len(violations) != tt.want {
				t.Fatalf("expected %d violations, got %d", tt.want, len(violations))
			}
			if tt.want == 1 {
				fix := violations[0].Fix
				if fix.Type != domain.FixReplaceAttr || fix.Value.Literal != "{0}" {
					t.Errorf("unexpected fix: %+v", fix)
				}
			}
		})
	}
}
