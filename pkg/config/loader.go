package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache sync.Map // reflect.Type -> any (a T value)

	defaultEnvLoaded sync.Once
)

// LoadEnv reads the given .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v. Each type is parsed once; later
// calls copy the cached value into v.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Concurrent first loads race here; the first stored value wins so every
	// caller observes the same copy.
	actual, _ := cache.LoadOrStore(key, parsed)
	*v = actual.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload parses the environment again and replaces the cached value for T.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache.Store(reflect.TypeFor[T](), parsed)
	*v = parsed
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}
