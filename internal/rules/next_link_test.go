package rules

import (
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/testutil"
)

func TestNextLinkRule(t *testing.T) {
	file := testutil.ParseTSX(t, "nav.tsx", `
import Link from "next/link";

export default function Nav() {
  return (
    <Link href="/about">
      <a className="nav-item">About</a>
    </Link>
  );
}
`)
	violations := (&NextLinkRule{}).Scan(file, domain.RuleOptions{})
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	fix := violations[0].Fix
	if fix.Type != domain.FixRemoveElement {
		t.Fatalf("fix type = %s", fix.Type)
	}
	target, ok := fix.Target.(*LinkTarget)
	if !ok {
		t.Fatalf("target should be a link target, got %T", fix.Target)
	}
	if target.Wrapper.Tag != "Link" || target.Anchor.Tag != "a" {
		t.Errorf("target pairs %s/%s", target.Wrapper.Tag, target.Anchor.Tag)
	}
}

func TestNextLinkRuleModernUsage(t *testing.T) {
	file := testutil.ParseTSX(t, "nav.tsx", `
import Link from "next/link";

export default function Nav() {
  return <Link href="/about" className="nav-item">About</Link>;
}
`)
	if got := (&NextLinkRule{}).Scan(file, domain.RuleOptions{}); len(got) != 0 {
		t.Errorf("modern Link usage flagged: %d violations", len(got))
	}
}

func TestNextLinkRuleIgnoresOtherLinks(t *testing.T) {
	file := testutil.ParseTSX(t, "nav.tsx", `
import Link from "./my-link";

export default function Nav() {
  return <Link href="/about"><a>About</a></Link>;
}
`)
	if got := (&NextLinkRule{}).Scan(file, domain.RuleOptions{}); len(got) != 0 {
		t.Errorf("non-next Link flagged: %d violations", len(got))
	}
}
