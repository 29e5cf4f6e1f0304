package rules

import (
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/testutil"
)

func TestFindEmoji(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no emoji", "Welcome back", nil},
		{"single emoji", "Deploy 🚀 now", []string{"🚀"}},
		{"two emoji", "🎉 Party 🔥", []string{"🎉", "🔥"}},
		{"adjacent emoji split", "🎉🔥", []string{"🎉", "🔥"}},
		{"variation selector kept", "warning ⚠️ ahead", []string{"⚠️"}},
		{"skin tone kept", "hi 👋🏽", []string{"👋🏽"}},
		{"zwj sequence one span", "family 👩‍💻 at work", []string{"👩‍💻"}},
		{"arrow is not emoji", "go → there", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := FindEmoji(tt.text)
			if len(spans) != len(tt.want) {
				t.Fatalf("expected %d spans, got %d: %+v", len(tt.want), len(spans), spans)
			}
			for i, span := range spans {
				if span.Emoji != tt.want[i] {
					t.Errorf("span %d = %q, want %q", i, span.Emoji, tt.want[i])
				}
				if got := tt.text[span.Start:span.End]; got != tt.want[i] {
					t.Errorf("span %d offsets select %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestEmojiName(t *testing.T) {
	tests := []struct {
		emoji string
		want  string
	}{
		{"🎉", "party popper"},
		{"🚀", "rocket"},
		{"⚠️", "warning"}, // variation selector stripped before lookup
		{"🦖", "emoji"},
	}
	for _, tt := range tests {
		if got := EmojiName(tt.emoji); got != tt.want {
			t.Errorf("EmojiName(%q) = %q, want %q", tt.emoji, got, tt.want)
		}
	}
}

func TestEmojiLabelRule(t *testing.T) {
	file := testutil.ParseTSX(t, "banner.tsx", `
export default function Banner() {
  return <p>Ship it 🚀 today 🎉</p>;
}
`)
	violations := (&EmojiLabelRule{}).Scan(file, domain.RuleOptions{})
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(violations))
	}

	first := violations[0]
	if first.Fix == nil || first.Fix.Type != domain.FixWrapElement {
		t.Fatalf("unexpected fix: %+v", first.Fix)
	}
	if first.Fix.Value.Literal != "rocket" {
		t.Errorf("first fix value = %q, want rocket", first.Fix.Value.Literal)
	}
	target, ok := first.Fix.Target.(*SpanTarget)
	if !ok {
		t.Fatalf("fix target should be a span, got %T", first.Fix.Target)
	}
	if got := string(file.Source[target.Start:target.End]); got != "🚀" {
		t.Errorf("span selects %q", got)
	}
}

func TestEmojiLabelRuleSkipsAccessibleSpan(t *testing.T) {
	file := testutil.ParseTSX(t, "banner.tsx", `
export default function Banner() {
  return <span role="img" aria-label="rocket">🚀</span>;
}
`)
	if got := (&EmojiLabelRule{}).Scan(file, domain.RuleOptions{}); len(got) != 0 {
		t.Errorf("already-labeled emoji span flagged: %d violations", len(got))
	}
}
