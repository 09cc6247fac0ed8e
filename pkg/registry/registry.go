package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/recordkit/pkg/cache"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/record"
)

const defaultCacheSize = 128

// Registry resolves schema names through a Store and caches parsed
// schemas. It is safe for concurrent use.
type Registry struct {
	store Store
	cache *cache.LRU[string, *record.Schema]
	log   *slog.Logger
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	cacheSize int
	log       *slog.Logger
}

// WithCacheSize bounds the number of cached schemas. Zero or less disables
// caching.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func New(store Store, opts ...Option) *Registry {
	o := options{cacheSize: defaultCacheSize, log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Registry{
		store: store,
		log:   o.log.With(logger.Component("registry")),
	}
	if o.cacheSize > 0 {
		r.cache = cache.NewLRU[string, *record.Schema](o.cacheSize)
	}
	return r
}

// Store returns the underlying store.
func (r *Registry) Store() Store { return r.store }

// Get returns the schema stored under name.
func (r *Registry) Get(ctx context.Context, name string) (*record.Schema, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if r.cache != nil {
		if schema, ok := r.cache.Get(name); ok {
			return schema, nil
		}
	}
	schema, err := r.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		r.cache.Put(name, schema)
	}
	return schema, nil
}

// Put stores schema under name, replacing any previous version.
func (r *Registry) Put(ctx context.Context, name string, schema *record.Schema) error {
	if err := checkName(name); err != nil {
		return err
	}
	if schema == nil {
		return ErrNilSchema
	}
	if err := r.store.Put(ctx, name, schema); err != nil {
		return err
	}
	r.Invalidate(name)
	r.log.InfoContext(ctx, "schema stored", logger.Schema(name), slog.Int("fields", schema.Len()))
	return nil
}

func (r *Registry) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, name); err != nil {
		return err
	}
	r.Invalidate(name)
	r.log.InfoContext(ctx, "schema deleted", logger.Schema(name))
	return nil
}

func (r *Registry) List(ctx context.Context) ([]string, error) {
	return r.store.List(ctx)
}

// Invalidate drops the named schemas from the cache, or the whole cache
// when no names are given.
func (r *Registry) Invalidate(names ...string) {
	if r.cache == nil {
		return
	}
	if len(names) == 0 {
		r.cache.Purge()
		return
	}
	for _, name := range names {
		r.cache.Remove(name)
	}
}

// CacheStats returns the cache counters. They are zero when caching is
// disabled.
func (r *Registry) CacheStats() cache.Stats {
	if r.cache == nil {
		return cache.Stats{}
	}
	return r.cache.Stats()
}

// Validate checks input against the schema stored under name. The error is
// reserved for lookup failures; a rejected record is reported through the
// Result.
func (r *Registry) Validate(ctx context.Context, name string, input map[string]any) (record.Result, error) {
	schema, err := r.Get(ctx, name)
	if err != nil {
		return record.Result{}, err
	}
	start := time.Now()
	res := schema.Validate(input)
	if !res.OK() {
		r.log.DebugContext(ctx, "record rejected",
			logger.Schema(name),
			logger.Violations(res.Violations().Fields()),
			logger.Duration(time.Since(start)),
		)
	}
	return res, nil
}
