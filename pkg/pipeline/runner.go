package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mleader/pkg/cache"
	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/document"
	mlerrors "github.com/matzehuels/mleader/pkg/errors"
	"github.com/matzehuels/mleader/pkg/mleader"
	"github.com/matzehuels/mleader/pkg/observability"
)

// Runner loads and converts documents, caching decoded documents and
// encoded outputs by the hash of their source.
//
// A Runner holds no per-call state. It is safe for concurrent use as long as
// its fields are not changed while calls are running.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Resolver resolves catalog handles. Nil resolves nothing.
	Resolver catalog.Resolver
	// CatalogHash distinguishes cache entries decoded against different
	// catalogs. SetCatalog fills it in.
	CatalogHash string
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means the default keyer and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// SetCatalog makes c the resolver and records its content hash for cache
// keys. A nil catalog clears both.
func (r *Runner) SetCatalog(c *catalog.Catalog) error {
	if c == nil {
		r.Resolver, r.CatalogHash = nil, ""
		return nil
	}
	var buf bytes.Buffer
	if err := catalog.Encode(&buf, c); err != nil {
		return fmt.Errorf("hash catalog: %w", err)
	}
	r.Resolver = c
	r.CatalogHash = cache.Hash(buf.Bytes())
	return nil
}

// Loaded is the result of [Runner.Load].
type Loaded struct {
	Document document.Document
	Roots    []*mleader.LeaderRoot
	CacheHit bool
	Duration time.Duration
}

// Load decodes src into a document and its core roots. Decoded documents are
// cached in canonical JSON form.
func (r *Runner) Load(ctx context.Context, src Source) (*Loaded, error) {
	start := time.Now()
	key := r.Keyer.DocumentKey(cache.Hash(src.Data), cache.DocumentKeyOpts{
		Format:      string(src.Format),
		CatalogHash: r.CatalogHash,
	})

	if doc, ok := r.cachedDocument(ctx, key); ok {
		roots, err := doc.ToRoots(r.Resolver)
		if err == nil {
			return &Loaded{Document: doc, Roots: roots, CacheHit: true, Duration: time.Since(start)}, nil
		}
		r.Logger.Debug("discarding cached document", "err", err)
	}

	doc, err := r.decode(ctx, src)
	if err != nil {
		return nil, err
	}
	roots, err := doc.ToRoots(r.Resolver)
	if err != nil {
		return nil, classify(err, mlerrors.ErrCodeInvalidFormat, "convert %s", src.Name)
	}
	if err := CheckLeaderIndices(roots); err != nil {
		return nil, classify(err, mlerrors.ErrCodeInvalidInput, "%s", src.Name)
	}

	if data, err := document.Marshal(doc, document.FormatJSON); err == nil {
		r.cacheSet(ctx, key, "document", data, cache.TTLDocument)
	}

	loaded := &Loaded{Document: doc, Roots: roots, Duration: time.Since(start)}
	r.Logger.Info("loaded document",
		"name", doc.Name,
		"roots", len(roots),
		"lines", doc.LineCount(),
		"duration", loaded.Duration)
	return loaded, nil
}

// Convert encodes src in format to. The second result reports a cache hit.
func (r *Runner) Convert(ctx context.Context, src Source, to document.Format) ([]byte, bool, error) {
	key := r.Keyer.ConversionKey(cache.Hash(src.Data), cache.ConversionKeyOpts{
		From:        string(src.Format),
		To:          string(to),
		CatalogHash: r.CatalogHash,
	})
	if data, ok := r.cacheGet(ctx, key, "conversion"); ok {
		return data, true, nil
	}

	loaded, err := r.Load(ctx, src)
	if err != nil {
		return nil, false, err
	}
	data, err := r.Encode(ctx, loaded.Document, to)
	if err != nil {
		return nil, false, err
	}
	r.cacheSet(ctx, key, "conversion", data, cache.TTLConversion)
	return data, false, nil
}

// Encode writes doc in format f, reporting to the codec hooks.
func (r *Runner) Encode(ctx context.Context, doc document.Document, f document.Format) ([]byte, error) {
	start := time.Now()
	observability.Codec().OnEncodeStart(ctx, string(f))
	data, err := document.Marshal(doc, f)
	observability.Codec().OnEncodeComplete(ctx, string(f), len(data), time.Since(start), err)
	if err != nil {
		return nil, classify(err, mlerrors.ErrCodeInternal, "encode %s", f)
	}
	r.Logger.Debug("encoded document", "format", f, "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

func (r *Runner) decode(ctx context.Context, src Source) (document.Document, error) {
	start := time.Now()
	observability.Codec().OnDecodeStart(ctx, string(src.Format))
	doc, err := document.Read(bytes.NewReader(src.Data), src.Format, r.Resolver)
	observability.Codec().OnDecodeComplete(ctx, string(src.Format), len(doc.Roots), time.Since(start), err)
	if err != nil {
		return document.Document{}, classify(err, mlerrors.ErrCodeInvalidFormat, "decode %s", src.Name)
	}
	if doc.Name == "" {
		doc.Name = src.Name
	}
	return doc, nil
}

func (r *Runner) cachedDocument(ctx context.Context, key string) (document.Document, bool) {
	data, ok := r.cacheGet(ctx, key, "document")
	if !ok {
		return document.Document{}, false
	}
	doc, err := document.Read(bytes.NewReader(data), document.FormatJSON, nil)
	if err != nil {
		r.Logger.Debug("discarding corrupt cache entry", "err", err)
		return document.Document{}, false
	}
	return doc, true
}

// cacheGet treats backend errors as misses; a broken cache never fails a
// load.
func (r *Runner) cacheGet(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		r.Logger.Debug("cache hit", "type", keyType)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return nil, false
}

func (r *Runner) cacheSet(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
