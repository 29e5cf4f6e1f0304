package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory(nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMiss(t *testing.T) {
	store := openTestStore(t)
	entry, ok := store.Get("deadbeef", "en")
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestPutGet(t *testing.T) {
	store := openTestStore(t)
	store.Put("abc123", "en", Entry{
		Value:       "Mountain sunrise",
		Model:       "gemini-1.5-flash",
		Locale:      "en",
		Rule:        "img-alt",
		GeneratedAt: time.Now().UTC(),
	})

	entry, ok := store.Get("abc123", "en")
	require.True(t, ok)
	assert.Equal(t, "Mountain sunrise", entry.Value)
	assert.Equal(t, "gemini-1.5-flash", entry.Model)
	assert.Equal(t, "img-alt", entry.Rule)
}

func TestLocaleIsASeparateDimension(t *testing.T) {
	store := openTestStore(t)
	store.Put("abc123", "en", Entry{Value: "Close", Locale: "en"})
	store.Put("abc123", "pl", Entry{Value: "Zamknij", Locale: "pl"})

	en, ok := store.Get("abc123", "en")
	require.True(t, ok)
	assert.Equal(t, "Close", en.Value)

	pl, ok := store.Get("abc123", "pl")
	require.True(t, ok)
	assert.Equal(t, "Zamknij", pl.Value)

	_, ok = store.Get("abc123", "de")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries)

	store.Put("k1", "en", Entry{Value: "one"})
	store.Put("k2", "en", Entry{Value: "two"})
	store.Put("k2", "pl", Entry{Value: "dwa"})

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Entries)
	assert.Greater(t, stats.Bytes, int64(0))
}

func TestClearKeepsScores(t *testing.T) {
	store := openTestStore(t)
	store.Put("k1", "en", Entry{Value: "one"})
	require.NoError(t, store.SaveScore("/proj", 87))

	require.NoError(t, store.Clear())

	_, ok := store.Get("k1", "en")
	assert.False(t, ok, "generation entries should be gone")

	score, ok := store.LastScore("/proj")
	require.True(t, ok, "score history must survive a cache clear")
	assert.Equal(t, 87, score)
}

func TestScoreHistory(t *testing.T) {
	store := openTestStore(t)

	_, ok := store.LastScore("/proj")
	assert.False(t, ok)

	require.NoError(t, store.SaveScore("/proj", 72))
	require.NoError(t, store.SaveScore("/other", 95))

	score, ok := store.LastScore("/proj")
	require.True(t, ok)
	assert.Equal(t, 72, score)

	require.NoError(t, store.SaveScore("/proj", 80))
	score, ok = store.LastScore("/proj")
	require.True(t, ok)
	assert.Equal(t, 80, score, "newer score overwrites")
}

func TestOpenPersists(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, nil)
	require.NoError(t, err)
	store.Put("k1", "en", Entry{Value: "persisted"})
	require.NoError(t, store.Close())

	store, err = Open(dir, nil)
	require.NoError(t, err)
	defer store.Close()

	entry, ok := store.Get("k1", "en")
	require.True(t, ok)
	assert.Equal(t, "persisted", entry.Value)
}
