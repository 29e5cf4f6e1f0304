package parser

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func parseTSX(t *testing.T, source string) *File {
	t.Helper()
	p := NewTypeScriptParser()
	defer p.Close()

	file, err := p.ParseFile("app/page.tsx", []byte(source))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	return file
}

func findElement(file *File, tag string) *Element {
	for _, el := range file.Elements {
		if el.Tag == tag {
			return el
		}
	}
	return nil
}

func TestParseElements(t *testing.T) {
	file := parseTSX(t, `
export default function Page() {
  return (
    <div className="wrap">
      <img src="/logo.png" alt="Company logo" />
      <button onClick={save}>Save</button>
    </div>
  );
}
`)

	if len(file.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(file.Elements))
	}

	img := findElement(file, "img")
	if img == nil {
		t.Fatal("img element not found")
	}
	if !img.SelfClosing {
		t.Error("img should be self-closing")
	}
	if alt := img.Attr("alt"); alt == nil || alt.Value != "Company logo" {
		t.Errorf("unexpected alt attribute: %+v", alt)
	}
	if img.Parent == nil || img.Parent.Tag != "div" {
		t.Error("img parent should be div")
	}

	button := findElement(file, "button")
	if button == nil {
		t.Fatal("button element not found")
	}
	if !button.HasTextContent() {
		t.Error("button should have text content")
	}
	if onClick := button.Attr("onClick"); onClick == nil || !onClick.IsExpr {
		t.Error("onClick should be an expression attribute")
	}
}

func TestParsePositions(t *testing.T) {
	source := `export default function Page() {
  return <img src="/a.png" />;
}
`
	file := parseTSX(t, source)
	img := findElement(file, "img")
	if img == nil {
		t.Fatal("img element not found")
	}
	if img.Line != 2 {
		t.Errorf("expected line 2, got %d", img.Line)
	}
	if got := string(file.Source[img.StartByte:img.EndByte]); got != `<img src="/a.png" />` {
		t.Errorf("element span mismatch: %q", got)
	}
	if got := string(file.Source[img.NameEnd-3 : img.NameEnd]); got != "img" {
		t.Errorf("NameEnd should sit just after the tag name, got %q before it", got)
	}
}

func TestParseImports(t *testing.T) {
	file := parseTSX(t, `
import Image from "next/image";
import Link from "next/link";
import { MenuIcon as Menu, CloseIcon } from "./icons";
import logo from "../assets/logo.png";

export default function Nav() {
  return <Image src={logo} alt="" />;
}
`)

	if got := file.ImportSourceOf("Image"); got != "next/image" {
		t.Errorf("Image should resolve to next/image, got %q", got)
	}
	if got := file.ImportSourceOf("Menu"); got != "./icons" {
		t.Errorf("aliased named import should resolve, got %q", got)
	}
	if got := file.ImportSourceOf("logo"); got != "../assets/logo.png" {
		t.Errorf("default import should resolve, got %q", got)
	}
	if got := file.ImportSourceOf("Missing"); got != "" {
		t.Errorf("unknown local should resolve to empty, got %q", got)
	}
	if file.LastImportEnd == 0 {
		t.Error("LastImportEnd should be set")
	}
}

func TestParseExports(t *testing.T) {
	file := parseTSX(t, `
export const metadata = {
  title: "Dashboard",
  description: "Overview",
};

export default function DashboardPage() {
  return <main><h1>Dashboard</h1></main>;
}
`)

	meta := file.ExportNamed("metadata")
	if meta == nil {
		t.Fatal("metadata export not found")
	}
	if meta.Kind != ExportObject {
		t.Errorf("metadata should be an object export, got %s", meta.Kind)
	}
	if !meta.HasKey("title") || !meta.HasKey("description") {
		t.Errorf("metadata keys missing: %v", meta.ObjectKeys)
	}
	if meta.ObjInsertPos == 0 {
		t.Error("ObjInsertPos should point past the opening brace")
	}
	if file.Source[meta.ObjInsertPos-1] != '{' {
		t.Errorf("ObjInsertPos should follow '{', found %q", file.Source[meta.ObjInsertPos-1])
	}

	if got := file.DefaultExportName(); got != "DashboardPage" {
		t.Errorf("default export name: got %q", got)
	}
}

func TestLoopCallbackTracking(t *testing.T) {
	file := parseTSX(t, `
export default function List({ items }) {
  return (
    <ul>
      {items.map((item) => (
        <li key={item.id}>
          <img src={item.image} alt={item.caption} />
        </li>
      ))}
    </ul>
  );
}
`)

	img := findElement(file, "img")
	if img == nil {
		t.Fatal("img element not found")
	}
	if !img.InLoopCallback() {
		t.Fatal("img should be inside a loop callback")
	}
	if img.LoopVar != "item" {
		t.Errorf("expected loop var item, got %q", img.LoopVar)
	}

	ul := findElement(file, "ul")
	if ul.InLoopCallback() {
		t.Error("ul is outside the callback")
	}
}

func TestExpressionAttributeInfo(t *testing.T) {
	file := parseTSX(t, `
export default function C({ data }) {
  return (
    <div>
      <img src="/a.png" alt={t("hero.alt")} />
      <img src="/b.png" alt={ok ? "Yes" : "No"} />
      <img src="/c.png" alt={data.caption} />
    </div>
  );
}
`)

	var imgs []*Element
	for _, el := range file.Elements {
		if el.Tag == "img" {
			imgs = append(imgs, el)
		}
	}
	if len(imgs) != 3 {
		t.Fatalf("expected 3 img elements, got %d", len(imgs))
	}

	if !imgs[0].Attr("alt").Info.HasCall {
		t.Error("call expression not detected")
	}
	if !imgs[1].Attr("alt").Info.HasTernary {
		t.Error("ternary expression not detected")
	}
	info := imgs[2].Attr("alt").Info
	if !info.BareAccess || info.HasCall || info.HasTernary {
		t.Errorf("bare property access misclassified: %+v", info)
	}
}

func TestInnerSource(t *testing.T) {
	file := parseTSX(t, `
export default function C() {
  return <a href="/about"><span>About us</span></a>;
}
`)
	a := findElement(file, "a")
	if a == nil {
		t.Fatal("anchor not found")
	}
	if got := a.InnerSource(); got != "<span>About us</span>" {
		t.Errorf("InnerSource: got %q", got)
	}
}

func TestPosition(t *testing.T) {
	file := parseTSX(t, "const a = 1;\nconst b = 2;\n")
	line, col := file.Position(strings.Index(string(file.Source), "b"))
	if line != 2 || col != 7 {
		t.Errorf("expected 2:7, got %d:%d", line, col)
	}
}

func TestHeadings(t *testing.T) {
	file := parseTSX(t, `
export default function C() {
  return (
    <article>
      <h1>Title</h1>
      <h3>Sub</h3>
    </article>
  );
}
`)
	headings := file.Headings()
	if len(headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(headings))
	}
	if headings[0].Tag != "h1" || headings[1].Tag != "h3" {
		t.Errorf("heading order wrong: %s, %s", headings[0].Tag, headings[1].Tag)
	}
}

func TestParseJSXGrammar(t *testing.T) {
	p := NewParser()
	defer p.Close()

	file, err := p.ParseFile("nav.jsx", []byte(`
export default function Nav() {
  return <nav><a href="/">Home</a></nav>;
}
`))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if findElement(file, "a") == nil {
		t.Error("anchor not found with javascript grammar")
	}
}

func TestSnippetTruncatesOnRuneBoundary(t *testing.T) {
	alt := strings.Repeat("日", 50)
	file := parseTSX(t, `export default function Page() {
  return <img alt="`+alt+`" src="/x.png" />;
}
`)
	snippet := findElement(file, "img").Snippet()
	if len(snippet) > maxSnippetLen {
		t.Errorf("snippet length %d exceeds the cap", len(snippet))
	}
	if !strings.HasSuffix(snippet, "...") {
		t.Errorf("long snippet not truncated: %q", snippet)
	}
	if !utf8.ValidString(snippet) {
		t.Errorf("truncation split a rune: %q", snippet)
	}
}
