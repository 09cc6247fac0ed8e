package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cacheKey struct {
	typ    reflect.Type
	prefix string
}

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = map[cacheKey]any{}
)

// Option tunes a Load call.
type Option func(*env.Options)

// WithPrefix prepends prefix to every variable name of the struct, so the
// same struct type can be loaded for several instances (e.g. "PRIMARY_").
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process
// environment. Results are not cached.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// Load parses environment variables into v. The result is cached per type
// and prefix; later calls copy the cached value into v.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	})

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	cacheable := o.Environment == nil
	key := cacheKey{typ: reflect.TypeFor[T](), prefix: o.Prefix}

	mu.Lock()
	defer mu.Unlock()

	if cacheable {
		if cached, ok := cache[key]; ok {
			*v = cached.(T)
			return nil
		}
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, o); err != nil {
		return errors.Join(ErrParse, err)
	}
	if cacheable {
		cache[key] = parsed
	}
	*v = parsed
	return nil
}

// MustLoad is like Load but panics on error. Use it for configuration the
// program cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Missing files are an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	return nil
}

// Reset drops all cached configurations.
func Reset() {
	mu.Lock()
	clear(cache)
	mu.Unlock()
}
