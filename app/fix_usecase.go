package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/ai"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/cache"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/config"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/fixer"
)

// FixUseCase runs a scan and then applies the resulting fixes
type FixUseCase struct {
	formatter domain.OutputFormatter
	progress  domain.ProgressManager
	log       *slog.Logger
}

// NewFixUseCase creates a new fix use case
func NewFixUseCase(formatter domain.OutputFormatter, progress domain.ProgressManager, log *slog.Logger) *FixUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &FixUseCase{formatter: formatter, progress: progress, log: log}
}

// Execute scans, resolves deferred fix values, mutates sources, and
// reports the post-fix state. Confirm is called per fix in interactive
// mode; pass nil to approve everything.
func (uc *FixUseCase) Execute(ctx context.Context, req domain.ScanRequest, confirm fixer.ConfirmFunc) (*domain.ScanResult, error) {
	cfg, err := config.Load(req.ConfigPath, firstPath(req.Paths))
	if err != nil {
		return nil, err
	}

	root := projectRoot(req.Paths)
	outcome, err := scanProject(ctx, cfg, root, req.Paths, uc.progress, uc.log)
	if err != nil {
		return nil, err
	}

	store := uc.openStore(cfg, root)
	defer store.Close()

	// Stage 1: cache, curated tables, and provider generation
	uc.resolveWithAI(ctx, cfg, root, store, outcome)

	// Stage 2: heuristic resolvers for whatever is still deferred
	engine := fixer.New(uc.log)
	if dropped := engine.ResolveDeferred(outcome.violations); dropped > 0 {
		uc.log.Info("dropped fixes with no derivable text", "count", dropped)
	}

	applyResult := engine.Apply(outcome.violations, confirm)
	if !req.DryRun && len(applyResult.Changes) > 0 {
		if err := engine.Flush(applyResult.Changes); err != nil {
			return nil, err
		}
	}

	result, err := uc.buildFixResult(ctx, cfg, root, req, outcome, applyResult)
	if err != nil {
		return nil, err
	}

	if prev, ok := store.LastScore(root); ok {
		result.PreviousScore = &prev
	}
	if !req.DryRun {
		if err := store.SaveScore(root, result.Score); err != nil {
			uc.log.Warn("could not persist score", "error", err)
		}
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

// openStore opens the persistent cache, degrading to an in-memory one
// when the directory is unusable.
func (uc *FixUseCase) openStore(cfg *config.Config, root string) *cache.Store {
	store, err := cache.Open(cfg.CachePath(root), uc.log)
	if err == nil {
		return store
	}
	uc.log.Warn("cache unavailable, generations will not persist", "error", err)
	store, err = cache.OpenInMemory(uc.log)
	if err != nil {
		// in-memory badger only fails on resource exhaustion
		panic(fmt.Sprintf("opening in-memory cache: %v", err))
	}
	return store
}

// resolveWithAI runs the generation pipeline when a provider is
// configured; without one only the cache and curated stages apply.
func (uc *FixUseCase) resolveWithAI(ctx context.Context, cfg *config.Config, root string, store *cache.Store, outcome *scanOutcome) {
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		uc.log.Warn("AI provider unavailable, using heuristics only", "provider", cfg.AI.Provider, "error", err)
	}
	if gen != nil {
		defer gen.Close()
	}

	pipeline := ai.New(store, gen, root, cfg.Locale, uc.log)
	stats := pipeline.Resolve(ctx, outcome.violations)
	uc.log.Info("resolved fix text",
		"cache_hits", stats.CacheHits,
		"curated", stats.Curated,
		"generated", stats.Generated,
		"fallback", stats.Failed)
}

// newGenerator builds the configured provider client, nil for none
func newGenerator(ctx context.Context, cfg *config.Config) (domain.Generator, error) {
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		return ai.NewGemini(ctx, cfg.APIKey(), cfg.Model())
	case config.ProviderOpenAI:
		return ai.NewOpenAI(cfg.APIKey(), cfg.Model())
	}
	return nil, nil
}

// buildFixResult reports the post-fix state. After a real write the
// project is re-scanned from disk so the score reflects what fixes
// actually landed; a dry run keeps the pre-fix violations.
func (uc *FixUseCase) buildFixResult(ctx context.Context, cfg *config.Config, root string, req domain.ScanRequest, outcome *scanOutcome, applyResult *fixer.Result) (*domain.ScanResult, error) {
	if req.DryRun || applyResult.Applied == 0 {
		result := buildResult(outcome)
		result.FixedCount = applyResult.Applied
		return result, nil
	}

	rescan, err := scanProject(ctx, cfg, root, req.Paths, uc.progress, uc.log)
	if err != nil {
		return nil, fmt.Errorf("re-scanning after fixes: %w", err)
	}
	result := buildResult(rescan)
	result.FixedCount = applyResult.Applied
	return result, nil
}
