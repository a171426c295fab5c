// Package dictionary loads ranked word lists into word indexes and keeps a
// process-wide cache of the default dictionary.
package dictionary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/exp/mmap"

	"github.com/ribbit/core/internal/parser"
	"github.com/ribbit/core/internal/telemetry"
	"github.com/ribbit/core/internal/wordindex"
)

// DefaultPath is used by LoadDefault until SetDefaultPath is called.
const DefaultPath = "/usr/share/dict/words"

// Load memory-maps the word list at path and indexes its first limit
// entries.
func Load(ctx context.Context, path string, limit int) (*wordindex.Index, error) {
	ctx, span := telemetry.Start(ctx, "dictionary.Load",
		attribute.String("dictionary.path", path),
		attribute.Int("dictionary.limit", limit),
	)
	idx, err := load(ctx, path, limit)
	if err == nil {
		span.SetAttributes(attribute.Int("dictionary.words", idx.Len()))
	}
	telemetry.End(span, err)
	return idx, err
}

func load(ctx context.Context, path string, limit int) (*wordindex.Index, error) {
	start := time.Now()

	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer r.Close()

	idx, err := Read(io.NewSectionReader(r, 0, int64(r.Len())), limit)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}

	slog.DebugContext(ctx, "dictionary loaded",
		slog.String("path", path),
		slog.Int("words", idx.Len()),
		slog.Duration("duration", time.Since(start)),
	)
	return idx, nil
}

// Read parses a ranked word list from r and builds its index.
func Read(r io.Reader, limit int) (*wordindex.Index, error) {
	words, err := parser.ParseWordList(r, parser.WordListOptions{Limit: limit})
	if err != nil {
		return nil, err
	}
	return wordindex.Build(words)
}

type cacheKey struct {
	path  string
	limit int
}

var (
	cacheMu     sync.Mutex
	defaultPath = DefaultPath
	cache       = make(map[cacheKey]*wordindex.Index)
)

// SetDefaultPath changes the file LoadDefault reads. Indexes already cached
// for other paths stay cached.
func SetDefaultPath(path string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	defaultPath = path
}

// LoadDefault loads the default dictionary once per limit and returns the
// cached index on later calls. Failed loads are not cached.
func LoadDefault(ctx context.Context, limit int) (*wordindex.Index, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	key := cacheKey{path: defaultPath, limit: limit}
	if idx, ok := cache[key]; ok {
		return idx, nil
	}

	idx, err := Load(ctx, key.path, limit)
	if err != nil {
		return nil, err
	}
	cache[key] = idx
	return idx, nil
}

// Reset empties the cache and restores DefaultPath.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[cacheKey]*wordindex.Index)
	defaultPath = DefaultPath
}
