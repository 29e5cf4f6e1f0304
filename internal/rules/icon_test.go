package rules

import (
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/testutil"
)

func TestIconBaseName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"MenuIcon", "menu"},
		{"ShoppingCartIcon", "shopping cart"},
		{"FaHome", "home"},
		{"MdOutlineSettings", "outline settings"},
		{"Favorite", "favorite"},
		{"svg", ""},
	}
	for _, tt := range tests {
		if got := DefaultIcons.BaseName(tt.tag); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestIconIsIcon(t *testing.T) {
	for _, tag := range []string{"svg", "MenuIcon", "FaHome", "Sparkle"} {
		if !DefaultIcons.IsIcon(tag) {
			t.Errorf("IsIcon(%q) = false", tag)
		}
	}
	for _, tag := range []string{"div", "span", "img"} {
		if DefaultIcons.IsIcon(tag) {
			t.Errorf("IsIcon(%q) = true", tag)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"menu", "Menu"},
		{"shopping cart", "Shopping Cart"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIconNameOf(t *testing.T) {
	file := testutil.ParseTSX(t, "nav.tsx", `
import { ShoppingCartIcon } from "./icons";

export default function Nav() {
  return <button><ShoppingCartIcon /></button>;
}
`)
	button := testutil.FindElement(file, "button")
	if got := IconNameOf(button); got != "shopping cart" {
		t.Errorf("IconNameOf = %q", got)
	}
}

func TestIconNameOfAnonymousSVG(t *testing.T) {
	file := testutil.ParseTSX(t, "nav.tsx", `
export default function Nav() {
  return <button><svg viewBox="0 0 24 24" /></button>;
}
`)
	button := testutil.FindElement(file, "button")
	if got := IconNameOf(button); got != "" {
		t.Errorf("anonymous svg should yield no name, got %q", got)
	}
}
