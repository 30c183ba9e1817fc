package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> loaded config value
)

// Load populates cfg from environment variables using its env struct tags.
// A .env file in the working directory is loaded once per process before the
// first parse. Each configuration type is parsed only once; later calls with
// the same type receive the cached value.
func Load(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidConfigType, cfg)
	}

	t := v.Elem().Type()
	if cached, ok := cache.Load(t); ok {
		v.Elem().Set(cached.(reflect.Value))
		return nil
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; real environments set vars directly.
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParseFailed, t, err)
	}

	// Cache a detached copy so later mutations of cfg don't leak into it.
	loaded := reflect.New(t).Elem()
	loaded.Set(v.Elem())
	actual, _ := cache.LoadOrStore(t, loaded)
	v.Elem().Set(actual.(reflect.Value))
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
