// Package ai resolves deferred fix values into real text. Resolution is
// staged: content-addressed cache, curated translation tables, provider
// generation with retries, and finally the rule's own heuristic. A value
// that survives no stage keeps its placeholder and the fix is dropped
// later rather than applied.
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/cache"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/pagectx"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
)

const (
	maxAttempts = 3
	backoffUnit = time.Second
)

// Stats reports what each resolution stage contributed
type Stats struct {
	CacheHits int `json:"cache_hits"`
	Curated   int `json:"curated"`
	Generated int `json:"generated"`
	Failed    int `json:"failed"`
}

// Pipeline resolves deferred AI fix values. Generator may be nil, in
// which case only the cache and curated stages run. Generation is
// strictly sequential: one request in flight at a time.
type Pipeline struct {
	store  *cache.Store
	gen    domain.Generator
	images *ImageLoader
	locale string
	log    *slog.Logger

	// sleep is swapped out in tests to skip real backoff waits
	sleep func(time.Duration)
}

// New creates a resolution pipeline. Root is the project root used to
// resolve image sources.
func New(store *cache.Store, gen domain.Generator, root, locale string, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		store:  store,
		gen:    gen,
		images: NewImageLoader(root),
		locale: locale,
		log:    log,
		sleep:  time.Sleep,
	}
}

// Resolve fills the deferred fix values of AI-backed violations in
// place. Fixes it cannot resolve keep their placeholder; the fix
// engine's heuristic pass and placeholder guard handle those.
func (p *Pipeline) Resolve(ctx context.Context, violations []domain.Violation) Stats {
	var stats Stats
	for i := range violations {
		v := &violations[i]
		if v.Fix == nil || !v.Fix.Value.IsDeferred() {
			continue
		}
		if err := ctx.Err(); err != nil {
			break
		}
		p.resolveOne(ctx, v, &stats)
	}
	return stats
}

func (p *Pipeline) resolveOne(ctx context.Context, v *domain.Violation, stats *Stats) {
	req, key, maxLen, ok := p.plan(v)
	if !ok {
		return
	}

	if entry, hit := p.store.Get(key, p.locale); hit {
		v.Fix.Value = domain.LiteralValue(entry.Value)
		stats.CacheHits++
		return
	}

	if label, hit := p.curated(v); hit {
		v.Fix.Value = domain.LiteralValue(label)
		stats.Curated++
		return
	}

	if p.gen == nil {
		stats.Failed++
		return
	}

	text, err := p.generate(ctx, req, maxLen)
	if err != nil {
		p.log.Warn("generation failed, falling back to heuristic",
			"rule", v.Rule, "location", v.Location(), "error", err)
		stats.Failed++
		return
	}

	v.Fix.Value = domain.LiteralValue(text)
	p.store.Put(key, p.locale, cache.Entry{
		Value:       text,
		Model:       p.gen.Model(),
		Locale:      p.locale,
		Rule:        v.Rule,
		GeneratedAt: time.Now().UTC(),
	})
	stats.Generated++
}

// plan builds the generation request and cache key for one violation.
// Image-backed alt text is keyed by the image bytes so a renamed but
// unchanged image still hits; everything else is keyed by a fingerprint
// of the stable prompt inputs.
func (p *Pipeline) plan(v *domain.Violation) (req domain.GenerateRequest, key string, maxLen int, ok bool) {
	switch v.Fix.Value.ResolverID {
	case rules.ResolverImgAltFilename:
		target, isElem := v.Fix.Target.(*rules.ElementTarget)
		if !isElem {
			return req, "", 0, false
		}
		pc := pagectx.Extract(target.Element.File, p.locale)
		src := rules.ImageSrc(target)
		req.System, req.Prompt = AltPrompt(pc, src)
		if data, format, loaded := p.images.Load(src, rules.ImageIdent(target), target.Element.File.Path); loaded {
			req.Image = data
			req.ImageFormat = format
			key = hashBytes(data)
		} else {
			key = fingerprint(v.Rule, src, pc.Component)
		}
		return req, key, maxAltLen, true

	case rules.ResolverIconLabel:
		target, isElem := v.Fix.Target.(*rules.ElementTarget)
		if !isElem {
			return req, "", 0, false
		}
		pc := pagectx.Extract(target.Element.File, p.locale)
		icon := rules.IconNameOf(target.Element)
		req.System, req.Prompt = LabelPrompt(pc, controlKind(v.Rule), icon)
		return req, fingerprint(v.Rule, icon, pc.Component), maxLabelLen, true

	case rules.ResolverInputLabel:
		target, isElem := v.Fix.Target.(*rules.ElementTarget)
		if !isElem {
			return req, "", 0, false
		}
		pc := pagectx.Extract(target.Element.File, p.locale)
		inputType := ""
		if attr := target.Element.Attr("type"); attr != nil {
			inputType = attr.Value
		}
		req.System, req.Prompt = LabelPrompt(pc, "input of type "+inputType, "")
		return req, fingerprint(v.Rule, inputType, pc.Component), maxLabelLen, true

	case rules.ResolverPageTitle:
		target, isMeta := v.Fix.Target.(*rules.MetadataTarget)
		if !isMeta {
			return req, "", 0, false
		}
		pc := pagectx.Extract(target.File, p.locale)
		req.System, req.Prompt = TitlePrompt(pc)
		return req, fingerprint(v.Rule, pc.Route, pc.Component), maxTitleLen, true
	}
	return req, "", 0, false
}

// curated answers icon label lookups from the translation tables
func (p *Pipeline) curated(v *domain.Violation) (string, bool) {
	if v.Fix.Value.ResolverID != rules.ResolverIconLabel {
		return "", false
	}
	target, isElem := v.Fix.Target.(*rules.ElementTarget)
	if !isElem {
		return "", false
	}
	return CuratedLabel(rules.IconNameOf(target.Element), p.locale)
}

// generate calls the provider with linear backoff between attempts
func (p *Pipeline) generate(ctx context.Context, req domain.GenerateRequest, maxLen int) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			p.sleep(time.Duration(attempt+1) * backoffUnit)
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		result, err := p.gen.Generate(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if text := Sanitize(result.Text, maxLen); text != "" && text != domain.UnresolvedPlaceholder {
			return text, nil
		}
		lastErr = errEmptyGeneration
	}
	return "", lastErr
}

var errEmptyGeneration = &emptyGenerationError{}

type emptyGenerationError struct{}

func (e *emptyGenerationError) Error() string { return "provider returned empty text" }

func controlKind(ruleID string) string {
	switch ruleID {
	case rules.IDButtonLabel:
		return "button"
	case rules.IDLinkLabel:
		return "link"
	}
	return "control"
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func fingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
