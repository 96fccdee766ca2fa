// Package config loads typed configuration structs from environment
// variables.
//
// Struct fields are annotated with `env` tags understood by
// github.com/caarlos0/env/v11. The first call to Load also reads an optional
// `.env` file from the working directory through github.com/joho/godotenv.
// Extra files can be loaded explicitly with LoadEnv before the first Load.
//
//	type Config struct {
//	    Precision int `env:"CART_TOTAL_PRECISION" envDefault:"2"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each configuration type is parsed once per process and cached; later calls
// for the same type return the cached copy even if the environment changed.
// Reload bypasses the cache and ResetCache clears it, which tests rely on.
//
// Errors are wrapped with ErrParsingConfig or ErrLoadingEnvFile so callers
// can branch with errors.Is.
package config
