// Package fixer applies fixes to parsed source files. All edits are
// computed against the original byte offsets captured at scan time and
// spliced in reverse document order, so one pass needs no re-parsing.
// Files are only written back in a single batch at the end of the run.
package fixer

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
)

// edit is a single text splice: replace Source[Start:End) with Text
type edit struct {
	Start int
	End   int
	Text  string
}

// FileChange is the rewritten content of one file
type FileChange struct {
	Path    string
	Source  []byte
	Applied int
}

// Result summarizes an apply pass
type Result struct {
	Changes []FileChange
	Applied int
	Dropped int
	Skipped int
}

// ConfirmFunc decides whether a single fix should be applied.
// A nil ConfirmFunc approves everything.
type ConfirmFunc func(v *domain.Violation) bool

// Engine mutates sources according to violation fixes
type Engine struct {
	log *slog.Logger
}

// New creates a fix engine
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// ResolveDeferred runs the heuristic resolvers over any fix value still
// deferred, dropping fixes that cannot produce acceptable text. This is
// the non-AI resolution pass; with a configured provider the AI pipeline
// runs first and leaves only its failures deferred.
func (e *Engine) ResolveDeferred(violations []domain.Violation) int {
	dropped := 0
	for i := range violations {
		v := &violations[i]
		if v.Fix == nil || !v.Fix.Value.IsDeferred() {
			continue
		}
		text, ok := rules.Resolve(v.Fix)
		if !ok {
			e.log.Debug("dropping unresolvable fix", "rule", v.Rule, "location", v.Location())
			v.Fix = nil
			dropped++
			continue
		}
		v.Fix.Value = domain.LiteralValue(text)
	}
	return dropped
}

// Apply computes the rewritten sources for every fixable violation.
// Nothing is written to disk; see Flush.
func (e *Engine) Apply(violations []domain.Violation, confirm ConfirmFunc) *Result {
	res := &Result{}
	byFile := map[string][]edit{}
	sources := map[string][]byte{}

	for i := range violations {
		v := &violations[i]
		if v.Fix == nil {
			continue
		}
		// Placeholder guard: never persist the unresolved sentinel as
		// real alt text or a label.
		if v.Fix.Value.Literal == domain.UnresolvedPlaceholder {
			res.Dropped++
			continue
		}
		if confirm != nil && !confirm(v) {
			res.Skipped++
			continue
		}

		edits, src, err := e.editsFor(v.Fix)
		if err != nil {
			e.log.Warn("fix not applicable", "rule", v.Rule, "location", v.Location(), "error", err)
			res.Dropped++
			continue
		}
		if _, ok := sources[v.File]; !ok {
			sources[v.File] = src
		}
		byFile[v.File] = append(byFile[v.File], edits...)
		res.Applied++
	}

	for path, edits := range byFile {
		out, applied := splice(sources[path], edits)
		res.Changes = append(res.Changes, FileChange{Path: path, Source: out, Applied: applied})
	}
	sort.Slice(res.Changes, func(i, j int) bool { return res.Changes[i].Path < res.Changes[j].Path })
	return res
}

// Flush writes every change to disk. A write failure is fatal for the
// run; by this point no file has been partially updated in a way the
// caller could retry.
func (e *Engine) Flush(changes []FileChange) error {
	for _, c := range changes {
		info, err := os.Stat(c.Path)
		mode := os.FileMode(0o644)
		if err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(c.Path, c.Source, mode); err != nil {
			return fmt.Errorf("writing fixed file %s: %w", c.Path, err)
		}
		e.log.Info("wrote fixed file", "path", c.Path, "fixes", c.Applied)
	}
	return nil
}

// splice applies edits in reverse document order, skipping any edit that
// overlaps one already applied.
func splice(source []byte, edits []edit) ([]byte, int) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start > edits[j].Start
		}
		return edits[i].End > edits[j].End
	})

	out := append([]byte{}, source...)
	applied := 0
	lastStart := len(source) + 1
	for _, ed := range edits {
		if ed.Start < 0 || ed.End > len(source) || ed.Start > ed.End {
			continue
		}
		if ed.End > lastStart {
			continue // overlaps an applied edit
		}
		out = append(out[:ed.Start], append([]byte(ed.Text), out[ed.End:]...)...)
		lastStart = ed.Start
		applied++
	}
	return out, applied
}
