// Package cache persists generated text in an embedded BadgerDB so that
// unchanged content never triggers a second generation. Entries are
// keyed by content hash and locale; the same store also keeps the last
// accessibility score per project for run-over-run deltas.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	genPrefix   = "gen:"
	scorePrefix = "score:"
)

// Entry is one cached generation result
type Entry struct {
	Value       string    `json:"value"`
	Model       string    `json:"model"`
	Locale      string    `json:"locale"`
	Rule        string    `json:"rule"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Stats summarizes the cache contents
type Stats struct {
	Entries int    `json:"entries"`
	Bytes   int64  `json:"bytes"`
	Dir     string `json:"dir,omitempty"`
}

// Store is a badger-backed cache. All read paths treat storage errors
// as misses so a corrupt cache degrades to slower runs, never failures.
type Store struct {
	db  *badger.DB
	dir string
	log *slog.Logger
}

// badgerLogger routes badger's internal logging through slog at debug
type badgerLogger struct{ log *slog.Logger }

func (l badgerLogger) Errorf(f string, args ...interface{})   { l.log.Error(fmt.Sprintf(f, args...)) }
func (l badgerLogger) Warningf(f string, args ...interface{}) { l.log.Warn(fmt.Sprintf(f, args...)) }
func (l badgerLogger) Infof(f string, args ...interface{})    { l.log.Debug(fmt.Sprintf(f, args...)) }
func (l badgerLogger) Debugf(f string, args ...interface{})   { l.log.Debug(fmt.Sprintf(f, args...)) }

// Open opens or creates the cache at dir
func Open(dir string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(badgerLogger{log: log})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening cache at %s: %w", dir, err)
	}
	return &Store{db: db, dir: dir, log: log}, nil
}

// OpenInMemory opens a throwaway store with no disk backing
func OpenInMemory(log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(badgerLogger{log: log})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory cache: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func genKey(hash, locale string) []byte {
	return []byte(genPrefix + hash + ":" + locale)
}

// Get returns the cached entry for a content hash and locale. Any
// storage or decode error is a miss.
func (s *Store) Get(hash, locale string) (*Entry, bool) {
	var entry Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(genKey(hash, locale))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.log.Debug("cache read failed, treating as miss", "hash", hash, "error", err)
		}
		return nil, false
	}
	return &entry, true
}

// Put stores a generation result. Failures are logged and swallowed;
// a cache that cannot be written only costs future regenerations.
func (s *Store) Put(hash, locale string, entry Entry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		s.log.Warn("cache encode failed", "hash", hash, "error", err)
		return
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(genKey(hash, locale), raw)
	})
	if err != nil {
		s.log.Warn("cache write failed", "hash", hash, "error", err)
	}
}

// Stats counts generation entries and their stored size
func (s *Store) Stats() (Stats, error) {
	stats := Stats{Dir: s.dir}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(genPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			stats.Entries++
			stats.Bytes += item.EstimatedSize()
		}
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("reading cache stats: %w", err)
	}
	return stats, nil
}

// Clear drops all generation entries, keeping score history
func (s *Store) Clear() error {
	if err := s.db.DropPrefix([]byte(genPrefix)); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

// LastScore returns the previously persisted score for a project path
func (s *Store) LastScore(project string) (int, bool) {
	var score int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(scorePrefix + project))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			score, err = strconv.Atoi(string(val))
			return err
		})
	})
	if err != nil {
		return 0, false
	}
	return score, true
}

// SaveScore persists the score for a project path
func (s *Store) SaveScore(project string, score int) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(scorePrefix+project), []byte(strconv.Itoa(score)))
	})
	if err != nil {
		return fmt.Errorf("saving score: %w", err)
	}
	return nil
}
