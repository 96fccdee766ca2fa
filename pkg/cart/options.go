package cart

import "log/slog"

// Option configures a Cart.
type Option func(*Cart)

// WithLogger sets the logger used for mutation and rejection records.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cart) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPrecision sets the number of decimal places Total rounds to.
// Negative values are ignored.
func WithPrecision(places int) Option {
	return func(c *Cart) {
		if places >= 0 {
			c.precision = int32(places)
		}
	}
}

// WithConfig applies settings loaded with LoadConfig.
func WithConfig(cfg Config) Option {
	return WithPrecision(cfg.Precision)
}
