// Package logger is a thin factory around log/slog used by every cartkit
// component.
//
// New builds a *slog.Logger from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum level.
//   - WithOutput: destination writer.
//   - WithAttr: static attributes attached to every record.
//   - WithDevelopment / WithProduction: environment presets.
//   - WithConfig: apply a Config loaded from the environment.
//
// Components take a *slog.Logger through their own options and fall back to
// Discard, so logging is opt-in:
//
//	log := logger.New(logger.WithDevelopment("checkout"))
//	c := cart.New(cart.WithLogger(log))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally:
//
//	log.Warn("rejected item", logger.Error(err))
package logger
