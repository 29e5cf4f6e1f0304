package ai

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxImageBytes caps how much image data a generation request may carry
const maxImageBytes = 5 << 20

// fetchTimeout bounds remote image downloads
const fetchTimeout = 10 * time.Second

// imageFormats maps file extensions to the MIME subtypes providers accept.
// SVG is deliberately absent: vision models want raster input.
var imageFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".webp": "webp",
	".gif":  "gif",
}

// ImageLoader resolves image source references to raw bytes. Root is the
// project root used for public/ assets and path aliases.
type ImageLoader struct {
	Root   string
	Client *http.Client
}

// NewImageLoader creates a loader rooted at the project directory
func NewImageLoader(root string) *ImageLoader {
	return &ImageLoader{
		Root:   root,
		Client: &http.Client{Timeout: fetchTimeout},
	}
}

// Load resolves src relative to the source file that referenced it and
// returns the image bytes with their format. Ident is the local
// identifier the source expression refers to, empty for literal srcs;
// it is needed to follow barrel re-exports. A false return means the
// image is unavailable or unsupported, not an error worth surfacing.
func (l *ImageLoader) Load(src, ident, fromFile string) ([]byte, string, bool) {
	if src == "" {
		return nil, "", false
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return l.fetch(src)
	}

	if _, ok := imageFormats[strings.ToLower(filepath.Ext(src))]; !ok {
		return l.loadBarrel(src, ident, fromFile)
	}
	for _, candidate := range l.candidates(src, fromFile) {
		if data, format, ok := l.loadLocal(candidate); ok {
			return data, format, true
		}
	}
	return nil, "", false
}

func (l *ImageLoader) loadLocal(path string) ([]byte, string, bool) {
	format, ok := imageFormats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", false
	}
	if len(data) > maxImageBytes {
		return nil, "", false
	}
	return data, format, true
}

// barrelIndexNames are the index files a directory import resolves to
var barrelIndexNames = []string{"index.ts", "index.tsx", "index.js", "index.jsx", "index.mjs"}

// loadBarrel follows one level of index-file re-exports: an imported
// module path without an image extension may name a directory whose
// index re-exports the identifier from an image file.
func (l *ImageLoader) loadBarrel(src, ident, fromFile string) ([]byte, string, bool) {
	if ident == "" {
		return nil, "", false
	}
	for _, dir := range l.candidates(src, fromFile) {
		target := barrelExportPath(dir, ident)
		if target == "" {
			continue
		}
		if data, format, ok := l.loadLocal(filepath.Join(dir, target)); ok {
			return data, format, true
		}
	}
	return nil, "", false
}

// barrelExportPath scans a directory's index file for an export of
// ident sourced from an image file and returns that relative path.
func barrelExportPath(dir, ident string) string {
	for _, name := range barrelIndexNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			if !strings.Contains(line, "export") || !containsWord(line, ident) {
				continue
			}
			if from := quotedImagePath(line); from != "" {
				return from
			}
		}
	}
	return ""
}

// containsWord reports whether line contains ident as a whole
// identifier, not as a substring of a longer one.
func containsWord(line, ident string) bool {
	for rest := line; ; {
		i := strings.Index(rest, ident)
		if i < 0 {
			return false
		}
		beforeOK := i == 0 || !isIdentByte(rest[i-1])
		after := i + len(ident)
		afterOK := after == len(rest) || !isIdentByte(rest[after])
		if beforeOK && afterOK {
			return true
		}
		rest = rest[after:]
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// quotedImagePath returns the first quoted string on the line whose
// extension is a supported image format.
func quotedImagePath(line string) string {
	for _, q := range []string{`"`, `'`} {
		parts := strings.Split(line, q)
		for i := 1; i < len(parts); i += 2 {
			if _, ok := imageFormats[strings.ToLower(filepath.Ext(parts[i]))]; ok {
				return parts[i]
			}
		}
	}
	return ""
}

// candidates lists filesystem paths a source reference may resolve to:
// public/ for absolute URLs, the importing file's directory for relative
// imports, and the project root (plus src/) for @/ and ~/ aliases.
func (l *ImageLoader) candidates(src, fromFile string) []string {
	switch {
	case strings.HasPrefix(src, "/"):
		return []string{filepath.Join(l.Root, "public", src)}
	case strings.HasPrefix(src, "./"), strings.HasPrefix(src, "../"):
		return []string{filepath.Join(filepath.Dir(fromFile), src)}
	case strings.HasPrefix(src, "@/"), strings.HasPrefix(src, "~/"):
		rel := src[2:]
		return []string{
			filepath.Join(l.Root, rel),
			filepath.Join(l.Root, "src", rel),
		}
	}
	return nil
}

func (l *ImageLoader) fetch(url string) ([]byte, string, bool) {
	resp, err := l.Client.Get(url)
	if err != nil {
		return nil, "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", false
	}

	format := formatFromContentType(resp.Header.Get("Content-Type"))
	if format == "" {
		format = imageFormats[strings.ToLower(filepath.Ext(url))]
	}
	if format == "" {
		return nil, "", false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil || len(data) > maxImageBytes {
		return nil, "", false
	}
	return data, format, true
}

func formatFromContentType(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	sub, found := strings.CutPrefix(strings.TrimSpace(ct), "image/")
	if !found {
		return ""
	}
	if sub == "jpg" {
		sub = "jpeg"
	}
	for _, known := range imageFormats {
		if known == sub {
			return sub
		}
	}
	return ""
}
