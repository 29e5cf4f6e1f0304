package scanner

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("export default function C() { return null; }\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func defaultPatterns() ([]string, []string) {
	includes := []string{"**/*.jsx", "**/*.tsx"}
	excludes := []string{"node_modules", ".next", "**/*.test.tsx", "**/*.stories.tsx"}
	return includes, excludes
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"app/page.tsx",
		"components/nav.jsx",
		"components/nav.test.tsx",
		"components/nav.stories.tsx",
		"node_modules/pkg/index.tsx",
		".next/static/chunk.tsx",
		"lib/util.ts",
		"README.md",
	)

	includes, excludes := defaultPatterns()
	s := New(root, includes, excludes, false)
	found, err := s.Discover([]string{root})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "app/page.tsx"),
		filepath.Join(root, "components/nav.jsx"),
	}
	if !reflect.DeepEqual(found, want) {
		t.Errorf("Discover = %v, want %v", found, want)
	}
}

func TestDiscoverExplicitFileBypassesIncludes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "scratch/experiment.tsx", "scratch/experiment.test.tsx")

	s := New(root, []string{"src/**/*.tsx"}, []string{"**/*.test.tsx"}, false)

	found, err := s.Discover([]string{filepath.Join(root, "scratch/experiment.tsx")})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("explicit file should bypass includes, got %v", found)
	}

	found, err = s.Discover([]string{filepath.Join(root, "scratch/experiment.test.tsx")})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("explicit file must still honor excludes, got %v", found)
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	s := New(t.TempDir(), []string{"**/*.tsx"}, nil, false)
	if _, err := s.Discover([]string{"/no/such/path"}); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestDiscoverRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "app/page.tsx", "generated/types.tsx")
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	includes, _ := defaultPatterns()
	s := New(root, includes, nil, true)
	found, err := s.Discover([]string{root})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(found) != 1 || filepath.Base(found[0]) != "page.tsx" {
		t.Errorf("gitignored files should be skipped, got %v", found)
	}
}

func TestRead(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.tsx", "b.tsx", "c.tsx")
	paths := []string{
		filepath.Join(root, "a.tsx"),
		filepath.Join(root, "b.tsx"),
		filepath.Join(root, "c.tsx"),
	}

	s := New(root, []string{"**/*.tsx"}, nil, false)
	files, err := s.Read(context.Background(), paths)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	for i, f := range files {
		if f.Path != paths[i] {
			t.Errorf("order not preserved: files[%d] = %s", i, f.Path)
		}
		if len(f.Source) == 0 {
			t.Errorf("file %s read empty", f.Path)
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	s := New(t.TempDir(), nil, nil, false)
	if _, err := s.Read(context.Background(), []string{"/no/such/file.tsx"}); err == nil {
		t.Error("expected error for unreadable file")
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.tsx", "src/app/page.tsx", true},
		{"**/*.tsx", "src/app/page.jsx", false},
		{"**/*.test.tsx", "deep/nav.test.tsx", true},
		{"node_modules", "proj/node_modules/pkg/x.tsx", true},
		{"node_modules", "src/page.tsx", false},
		{"*.jsx", "nav.jsx", true},
	}
	for _, tt := range tests {
		if got := matchPattern(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}
