// Package cart implements an in-memory shopping cart that validates every
// mutation before applying it.
//
// A Cart maps a trimmed item name to a non-negative price. Adding a name that
// is already present overwrites its price and keeps its position, so a name
// never appears twice. Names are compared case-sensitively after trimming.
//
//	c := cart.New()
//	_ = c.Add("Apple", 1.50)
//	_ = c.Add("  Banana ", 0.75) // stored as "Banana"
//	c.Total()                    // 2.25
//
// Totals are summed in exact decimal arithmetic and rounded half away from
// zero to the configured precision (two places by default), so 0.1+0.2+0.3
// reports 0.60.
//
// # Errors
//
// Input failures are validator.ValidationErrors tagged with a kind from the
// validator package:
//
//   - validator.ErrInvalidType: AddValue/RemoveValue got a non-string name or a non-numeric price
//   - validator.ErrInvalidValue: empty name, negative or non-finite price
//
// Remove of an absent name returns ErrItemNotFound, which also matches
// validator.ErrNotFound.
//
// Validation runs before mutation; a failed call leaves the cart unchanged.
//
// # Concurrency
//
// A Cart is meant for a single owner and does no locking. Wrap it with
// NewGuarded when several goroutines share it.
package cart
