package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how a configuration struct is loaded.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag, e.g. "UACLASS_" turns
// `env:"HTTP_ADDR"` into UACLASS_HTTP_ADDR.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing. Variables that are
// already set are not overridden. Missing files are ignored.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// configCache stores parsed configuration copies keyed by type and prefix.
type configCache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load populates v from environment variables according to its `env` tags.
// The default .env file is read once per process. Each configuration type is
// parsed only once; later calls with the same type and prefix receive the
// cached copy.
//
// Example:
//
//	type ServerConfig struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})
	for _, file := range o.envFiles {
		_ = godotenv.Load(file)
	}

	key := o.prefix + getTypeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		typed, ok := cached.(T)
		if !ok {
			return ErrInvalidConfigType
		}
		*v = typed
		return nil
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration so the next Load parses again.
func Reset() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
