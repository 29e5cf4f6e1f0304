package ai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal valid PNG header, enough for byte-identity checks
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func writeImage(t *testing.T, root, rel string) string {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, pngBytes, 0o644))
	return full
}

func TestImageLoaderPublicPath(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "public/hero.png")

	data, format, ok := NewImageLoader(root).Load("/hero.png", "", filepath.Join(root, "app/page.tsx"))
	require.True(t, ok)
	assert.Equal(t, "png", format)
	assert.Equal(t, pngBytes, data)
}

func TestImageLoaderRelativePath(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "components/assets/icon.jpg")

	_, format, ok := NewImageLoader(root).Load("./assets/icon.jpg", "", filepath.Join(root, "components/widget.tsx"))
	require.True(t, ok)
	assert.Equal(t, "jpeg", format)
}

func TestImageLoaderAlias(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "src/assets/logo.webp")

	// @/ falls back to src/ when the root-level path does not exist
	_, format, ok := NewImageLoader(root).Load("@/assets/logo.webp", "", filepath.Join(root, "app/page.tsx"))
	require.True(t, ok)
	assert.Equal(t, "webp", format)
}

func TestImageLoaderMisses(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "public/hero.png")
	loader := NewImageLoader(root)
	from := filepath.Join(root, "app/page.tsx")

	tests := map[string]string{
		"empty src":         "",
		"missing file":      "/absent.png",
		"svg unsupported":   "/hero.svg",
		"bare module path":  "images/hero.png",
		"unknown extension": "/hero.bmp",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, ok := loader.Load(src, "", from)
			assert.False(t, ok)
		})
	}
}

func TestImageLoaderBarrelReExport(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "components/images/hero.png")
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "components/images/index.ts"),
		[]byte("export { default as logo } from \"./logo.svg\";\nexport { default as hero } from \"./hero.png\";\n"),
		0o644))

	from := filepath.Join(root, "components/widget.tsx")
	data, format, ok := NewImageLoader(root).Load("./images", "hero", from)
	require.True(t, ok)
	assert.Equal(t, "png", format)
	assert.Equal(t, pngBytes, data)

	// identifier not re-exported from an image file
	_, _, ok = NewImageLoader(root).Load("./images", "logo", from)
	assert.False(t, ok)

	// heroBanner must not match the hero export
	_, _, ok = NewImageLoader(root).Load("./images", "heroBanner", from)
	assert.False(t, ok)

	// a directory import without an identifier cannot be followed
	_, _, ok = NewImageLoader(root).Load("./images", "", from)
	assert.False(t, ok)
}

func TestImageLoaderBarrelAlias(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, "src/assets/banner.jpg")
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "src/assets/index.js"),
		[]byte("export { default as banner } from './banner.jpg';\n"),
		0o644))

	_, format, ok := NewImageLoader(root).Load("@/assets", "banner", filepath.Join(root, "app/page.tsx"))
	require.True(t, ok)
	assert.Equal(t, "jpeg", format)
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		ct   string
		want string
	}{
		{"image/png", "png"},
		{"image/jpeg; charset=binary", "jpeg"},
		{"image/jpg", "jpeg"},
		{"image/svg+xml", ""},
		{"text/html", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFromContentType(tt.ct), "content type %q", tt.ct)
	}
}
