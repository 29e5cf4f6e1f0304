// Package scanner discovers the component files a run operates on.
// Discovery walks the target directories, applies include and exclude
// patterns plus the project's .gitignore, and reads matching files
// concurrently.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds parallel file reads during discovery
const maxConcurrentReads = 8

// SourceFile is one discovered file with its content
type SourceFile struct {
	Path   string
	Source []byte
}

// Scanner discovers JSX/TSX files under target paths
type Scanner struct {
	includePatterns []string
	excludePatterns []string
	gitignore       *gitignore.GitIgnore
}

// New creates a scanner. Root is where .gitignore is looked up; pass
// respectGitignore false to skip that.
func New(root string, includePatterns, excludePatterns []string, respectGitignore bool) *Scanner {
	s := &Scanner{
		includePatterns: includePatterns,
		excludePatterns: excludePatterns,
	}
	if respectGitignore {
		if ign, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			s.gitignore = ign
		}
	}
	return s
}

// Discover returns the matching file paths under the given targets in
// sorted order. Explicit file arguments bypass the include patterns but
// not the excludes.
func (s *Scanner) Discover(paths []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if isComponentFile(path) && !s.excluded(path) && !seen[path] {
				seen[path] = true
				out = append(out, path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if s.excludedDir(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if !s.included(p) || s.excluded(p) || seen[p] {
				return nil
			}
			seen[p] = true
			out = append(out, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}

// Read loads the discovered files concurrently, preserving order
func (s *Scanner) Read(ctx context.Context, paths []string) ([]SourceFile, error) {
	files := make([]SourceFile, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			files[i] = SourceFile{Path: path, Source: data}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Scanner) included(path string) bool {
	for _, pattern := range s.includePatterns {
		if matchPattern(pattern, path) {
			return true
		}
	}
	return false
}

func (s *Scanner) excluded(path string) bool {
	for _, pattern := range s.excludePatterns {
		if matchPattern(pattern, path) {
			return true
		}
	}
	if s.gitignore != nil && s.gitignore.MatchesPath(path) {
		return true
	}
	return false
}

// excludedDir prunes whole directories by name so node_modules never
// gets walked.
func (s *Scanner) excludedDir(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range s.excludePatterns {
		if pattern == name {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	if s.gitignore != nil && s.gitignore.MatchesPath(path) {
		return true
	}
	return false
}

// matchPattern matches a path against a pattern: "**/" prefixes match
// the base name at any depth, other patterns match base name or appear
// as a path segment.
func matchPattern(pattern, path string) bool {
	base := filepath.Base(path)
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if matched, _ := filepath.Match(rest, base); matched {
			return true
		}
		// also allow multi-segment remainders like **/fixtures/*.tsx
		if matched, _ := filepath.Match(rest, lastSegments(path, strings.Count(rest, "/")+1)); matched {
			return true
		}
		return false
	}
	if matched, _ := filepath.Match(pattern, base); matched {
		return true
	}
	return strings.Contains(filepath.ToSlash(path), pattern)
}

func lastSegments(path string, n int) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > n {
		parts = parts[len(parts)-n:]
	}
	return strings.Join(parts, "/")
}

func isComponentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".jsx" || ext == ".tsx"
}
