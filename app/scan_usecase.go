// Package app wires the scan and fix pipelines together: file
// discovery, parsing, rule execution, AI resolution, mutation, scoring,
// and reporting.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/cache"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/config"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/scanner"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/score"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/version"
)

// ScanUseCase runs a read-only audit and reports the result
type ScanUseCase struct {
	formatter domain.OutputFormatter
	progress  domain.ProgressManager
	log       *slog.Logger
}

// NewScanUseCase creates a new scan use case
func NewScanUseCase(formatter domain.OutputFormatter, progress domain.ProgressManager, log *slog.Logger) *ScanUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &ScanUseCase{formatter: formatter, progress: progress, log: log}
}

// Execute performs the scan and writes the report. The returned result
// is also handed back so callers can gate on the score.
func (uc *ScanUseCase) Execute(ctx context.Context, req domain.ScanRequest) (*domain.ScanResult, error) {
	cfg, err := config.Load(req.ConfigPath, firstPath(req.Paths))
	if err != nil {
		return nil, err
	}

	root := projectRoot(req.Paths)
	outcome, err := scanProject(ctx, cfg, root, req.Paths, uc.progress, uc.log)
	if err != nil {
		return nil, err
	}

	result := buildResult(outcome)

	// Score history lives in the cache store. A broken store costs the
	// delta, never the run.
	if store, err := cache.Open(cfg.CachePath(root), uc.log); err == nil {
		if prev, ok := store.LastScore(root); ok {
			result.PreviousScore = &prev
		}
		if err := store.SaveScore(root, result.Score); err != nil {
			uc.log.Warn("could not persist score", "error", err)
		}
		_ = store.Close()
	} else {
		uc.log.Warn("could not open cache store", "error", err)
	}

	if req.OutputWriter != nil {
		format := req.OutputFormat
		if format == "" {
			format = domain.OutputFormat(cfg.Output.Format)
		}
		if err := uc.formatter.Write(result, format, req.OutputWriter); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
	}
	return result, nil
}

// scanOutcome carries everything downstream stages need: the parsed
// files keep the byte offsets the fix engine edits against.
type scanOutcome struct {
	files      []*parser.File
	violations []domain.Violation
	summary    domain.ScanSummary
	cfg        *config.Config
	root       string
}

// scanProject discovers, parses, and audits the target paths
func scanProject(ctx context.Context, cfg *config.Config, root string, paths []string, progress domain.ProgressManager, log *slog.Logger) (*scanOutcome, error) {
	sc := scanner.New(root, cfg.Scanner.IncludePatterns, cfg.Scanner.ExcludePatterns, cfg.Scanner.RespectGitignore)
	found, err := sc.Discover(paths)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no JSX/TSX files found in the specified paths")
	}

	sources, err := sc.Read(ctx, found)
	if err != nil {
		return nil, fmt.Errorf("reading files: %w", err)
	}

	outcome := &scanOutcome{cfg: cfg, root: root}
	ruleSet := activeRules(cfg)

	task := progress.StartTask("Scanning", len(sources))
	defer task.Complete()

	p := parser.NewTypeScriptParser()
	defer p.Close()

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		task.SetDescription("Scanning " + filepath.Base(src.Path))

		file, err := parseSource(p, src)
		if err != nil {
			log.Warn("skipping unparseable file", "path", src.Path, "error", err)
			outcome.summary.FilesSkipped++
			task.Increment()
			continue
		}

		outcome.files = append(outcome.files, file)
		outcome.summary.FilesScanned++
		outcome.summary.ElementsScanned += len(file.Elements)

		for _, rule := range ruleSet {
			setting := cfg.RuleSetting(rule.ID())
			violations := runRule(rule, file, setting.Options, log)
			if setting.Level == domain.RuleLevelWarn {
				// warn-level rules report but never mutate
				for i := range violations {
					violations[i].Fix = nil
				}
			}
			outcome.violations = append(outcome.violations, violations...)
		}
		task.Increment()
	}

	sortViolations(outcome.violations)
	outcome.summary.TotalViolations = len(outcome.violations)
	for i := range outcome.violations {
		if outcome.violations[i].Fixable() {
			outcome.summary.FixableCount++
		}
	}
	return outcome, nil
}

// parseSource picks the grammar by extension. The tsx grammar handles
// plain jsx too, but jsx files with flow-style syntax parse better with
// the javascript grammar.
func parseSource(tsx *parser.Parser, src scanner.SourceFile) (*parser.File, error) {
	if filepath.Ext(src.Path) == ".jsx" {
		p := parser.NewParser()
		defer p.Close()
		return p.ParseFile(src.Path, src.Source)
	}
	return tsx.ParseFile(src.Path, src.Source)
}

// runRule isolates rule panics so one misbehaving rule cannot take down
// the whole run.
func runRule(rule rules.Rule, file *parser.File, opts domain.RuleOptions, log *slog.Logger) (violations []domain.Violation) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("rule panicked", "rule", rule.ID(), "path", file.Path, "panic", r)
			violations = nil
		}
	}()
	return rule.Scan(file, opts)
}

func activeRules(cfg *config.Config) []rules.Rule {
	var active []rules.Rule
	for _, rule := range rules.All(cfg.Locale) {
		if cfg.RuleSetting(rule.ID()).Level != domain.RuleLevelOff {
			active = append(active, rule)
		}
	}
	return active
}

func sortViolations(violations []domain.Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].File != violations[j].File {
			return violations[i].File < violations[j].File
		}
		if violations[i].Line != violations[j].Line {
			return violations[i].Line < violations[j].Line
		}
		return violations[i].Column < violations[j].Column
	})
}

func buildResult(outcome *scanOutcome) *domain.ScanResult {
	return &domain.ScanResult{
		Violations:  outcome.violations,
		Summary:     outcome.summary,
		Score:       score.Compute(outcome.violations),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version.GetVersion(),
	}
}

// projectRoot resolves the common project directory for the run: the
// first target's directory (or itself for directories).
func projectRoot(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	abs, err := filepath.Abs(paths[0])
	if err != nil {
		return "."
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs)
	}
	return abs
}

func firstPath(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}
