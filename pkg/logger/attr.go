package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CartID records the cart identifier under the key "cart_id".
// If id is nil, it returns an empty Attr.
func CartID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("cart_id", id)
}

// Item records an item name under the key "item".
func Item(name string) slog.Attr {
	return slog.String("item", name)
}

// Price records a price under the key "price".
func Price(v float64) slog.Attr {
	return slog.Float64("price", v)
}

// Count records a size under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Lang records a language tag under the key "lang".
func Lang(tag string) slog.Attr {
	return slog.String("lang", tag)
}
