package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// options control a single Load call.
type options struct {
	prefix   string
	envFiles []string
}

// Option configures Load.
type Option func(*options)

// WithPrefix reads every variable as prefix+name, so `env:"LOG_LEVEL"` with
// prefix "VALIDKIT_" reads VALIDKIT_LOG_LEVEL.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files before parsing. Variables already
// present in the process environment win. Missing files are an error, unlike
// the default .env which is optional.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// configCache stores parsed configs keyed by type and prefix.
type configCache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` struct
// tags. The first call for a given type and prefix parses the environment;
// later calls copy the cached value, including its slice and map fields.
//
//	type Config struct {
//		LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
//		Locales  []string `env:"PHONE_LOCALES" envSeparator:","`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDKIT_")); err != nil {
//		return err
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
		// the default .env file is optional
		_ = godotenv.Load()
	})
	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	key := cacheKey[T](o.prefix)

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		detach(reflect.ValueOf(v).Elem())
		return nil
	}

	var cfg T
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.values[key] = cfg
	*v = cfg
	// slices and maps would otherwise share storage with the cached value
	detach(reflect.ValueOf(v).Elem())
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached config. Mostly useful in tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
}

// detach replaces every settable slice and map reachable through struct
// fields of v with a copy.
func detach(v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		for i := range v.NumField() {
			if f := v.Field(i); f.CanSet() {
				detach(f)
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			return
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(c, v)
		for i := range c.Len() {
			detach(c.Index(i))
		}
		v.Set(c)
	case reflect.Map:
		if v.IsNil() {
			return
		}
		c := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(iter.Key(), iter.Value())
		}
		v.Set(c)
	}
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
