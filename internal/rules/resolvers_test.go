package rules

import (
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/testutil"
)

func TestHeuristicAlt(t *testing.T) {
	tests := []struct {
		src  string
		want string
		ok   bool
	}{
		{"/images/hero-banner.png", "Hero Banner image", true},
		{"golden_gate_bridge.jpg", "Golden Gate Bridge image", true},
		{"https://cdn.test/assets/team%20photo.webp", "Team Photo image", true},
		{"./logo.svg", "Logo image", true},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := HeuristicAlt(tt.src)
		if got != tt.want || ok != tt.ok {
			t.Errorf("HeuristicAlt(%q) = %q, %v; want %q, %v", tt.src, got, ok, tt.want, tt.ok)
		}
	}
}

func TestImageSrc(t *testing.T) {
	file := testutil.ParseTSX(t, "hero.tsx", `
import heroShot from "../assets/hero-shot.png";

export default function Hero() {
  return (
    <div>
      <img src="/public/waterfall.jpg" />
      <img src={heroShot} />
      <img src={heroShot.src} />
      <img src={unknownRef} />
    </div>
  );
}
`)
	var imgs []*ElementTarget
	for _, el := range file.Elements {
		if el.Tag == "img" {
			imgs = append(imgs, &ElementTarget{Element: el})
		}
	}
	if len(imgs) != 4 {
		t.Fatalf("expected 4 images, got %d", len(imgs))
	}

	if got := ImageSrc(imgs[0]); got != "/public/waterfall.jpg" {
		t.Errorf("literal src = %q", got)
	}
	if got := ImageSrc(imgs[1]); got != "../assets/hero-shot.png" {
		t.Errorf("imported identifier src = %q", got)
	}
	if got := ImageSrc(imgs[2]); got != "../assets/hero-shot.png" {
		t.Errorf(".src access = %q", got)
	}
	if got := ImageSrc(imgs[3]); got != "" {
		t.Errorf("unknown reference should be empty, got %q", got)
	}
}

func TestResolveImgAlt(t *testing.T) {
	file := testutil.ParseTSX(t, "hero.tsx", `
export default function Hero() {
  return <img src="/mountain-sunrise.png" />;
}
`)
	violations := (&ImgAltRule{}).Scan(file, domain.RuleOptions{})
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	text, ok := Resolve(violations[0].Fix)
	if !ok || text != "Mountain Sunrise image" {
		t.Errorf("Resolve = %q, %v", text, ok)
	}
}

func TestResolveIconLabel(t *testing.T) {
	file := testutil.ParseTSX(t, "nav.tsx", `
import { ShoppingCartIcon } from "./icons";

export default function Nav() {
  return <button><ShoppingCartIcon /></button>;
}
`)
	violations := (&ButtonLabelRule{}).Scan(file, domain.RuleOptions{})
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	text, ok := Resolve(violations[0].Fix)
	if !ok || text != "Shopping Cart" {
		t.Errorf("Resolve = %q, %v", text, ok)
	}
}

func TestResolveIconLabelAnonymousSVG(t *testing.T) {
	file := testutil.ParseTSX(t, "nav.tsx", `
export default function Nav() {
  return <button><svg viewBox="0 0 24 24" /></button>;
}
`)
	violations := (&ButtonLabelRule{}).Scan(file, domain.RuleOptions{})
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if _, ok := Resolve(violations[0].Fix); ok {
		t.Error("anonymous svg has no derivable label; the fix must be dropped")
	}
}

func TestResolveInputLabel(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`<input type="submit" />`, "Submit"},
		{`<input type="image" src="/go.png" />`, "Submit"},
		{`<input type="reset" />`, "Reset"},
	}
	for _, tt := range tests {
		file := testutil.ParseTSX(t, "form.tsx", `
export default function Form() {
  return `+tt.src+`;
}
`)
		violations := (&InputLabelRule{}).Scan(file, domain.RuleOptions{})
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation for %s, got %d", tt.src, len(violations))
		}
		text, ok := Resolve(violations[0].Fix)
		if !ok || text != tt.want {
			t.Errorf("Resolve(%s) = %q, %v; want %q", tt.src, text, ok, tt.want)
		}
	}
}

func TestResolvePageTitle(t *testing.T) {
	file := testutil.ParseTSX(t, "app/user-settings/page.tsx", `
export default function UserSettingsPage() {
  return <main />;
}
`)
	violations := (&PageTitleRule{}).Scan(file, domain.RuleOptions{})
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	text, ok := Resolve(violations[0].Fix)
	if !ok || text != "User Settings" {
		t.Errorf("Resolve = %q, %v", text, ok)
	}
}

func TestResolveLiteralFix(t *testing.T) {
	fix := &domain.Fix{
		Type:  domain.FixInsertAttr,
		Value: domain.LiteralValue("button"),
	}
	if _, ok := Resolve(fix); ok {
		t.Error("literal fixes are not resolvable")
	}
	if _, ok := Resolve(nil); ok {
		t.Error("nil fix must not resolve")
	}
}
