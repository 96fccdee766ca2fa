package cart

import "github.com/dmitrymomot/cartkit/pkg/config"

// DefaultPrecision is the number of decimal places totals are rounded to.
const DefaultPrecision = 2

// Config holds cart settings that can come from the environment.
type Config struct {
	Precision int `env:"CART_TOTAL_PRECISION" envDefault:"2"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
