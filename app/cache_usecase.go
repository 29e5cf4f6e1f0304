package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/cache"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/config"
)

// CacheUseCase inspects and maintains the generation cache
type CacheUseCase struct {
	log *slog.Logger
}

// NewCacheUseCase creates a new cache use case
func NewCacheUseCase(log *slog.Logger) *CacheUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &CacheUseCase{log: log}
}

// Stats prints entry count and stored size for the project's cache
func (uc *CacheUseCase) Stats(configPath, target string, w io.Writer) error {
	store, root, err := uc.open(configPath, target)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Cache for %s\n", root)
	fmt.Fprintf(w, "  entries: %d\n", stats.Entries)
	fmt.Fprintf(w, "  size:    %s\n", humanBytes(stats.Bytes))
	return nil
}

// Clear drops all cached generations, keeping score history
func (uc *CacheUseCase) Clear(configPath, target string, w io.Writer) error {
	store, _, err := uc.open(configPath, target)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Cache cleared")
	return nil
}

func (uc *CacheUseCase) open(configPath, target string) (*cache.Store, string, error) {
	cfg, err := config.Load(configPath, target)
	if err != nil {
		return nil, "", err
	}
	root := projectRoot([]string{target})
	store, err := cache.Open(cfg.CachePath(root), uc.log)
	if err != nil {
		return nil, "", err
	}
	return store, root, nil
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
