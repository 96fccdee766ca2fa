package cart

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/cartkit/pkg/logger"
	"github.com/dmitrymomot/cartkit/pkg/sanitizer"
	"github.com/dmitrymomot/cartkit/pkg/validator"
)

// Item is a single cart entry.
type Item struct {
	Name  string
	Price float64
}

type entry struct {
	price  float64
	amount decimal.Decimal
}

// Cart is an in-memory mapping from trimmed item name to price.
// The zero value is not usable; create carts with New.
type Cart struct {
	id        uuid.UUID
	items     map[string]entry
	order     []string
	precision int32
	logger    *slog.Logger
}

// New creates an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{
		id:        uuid.New(),
		items:     make(map[string]entry),
		precision: DefaultPrecision,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the random identifier used to correlate log records.
func (c *Cart) ID() uuid.UUID {
	return c.id
}

// Add stores price under the trimmed name, overwriting any previous price.
func (c *Cart) Add(name string, price float64) error {
	name = sanitizer.Trim(name)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.Finite("price", price),
		validator.NonNegative("price", price),
	); err != nil {
		c.reject("add", name, err)
		return err
	}

	if _, exists := c.items[name]; !exists {
		c.order = append(c.order, name)
	}
	c.items[name] = entry{price: price, amount: decimal.NewFromFloat(price)}

	c.logger.Debug("cart item added",
		logger.CartID(c.id),
		logger.Item(name),
		logger.Price(price),
	)
	return nil
}

// AddValue is Add for untyped input such as decoded JSON. It fails with
// validator.ErrInvalidType when name is not a string or price is not a number.
func (c *Cart) AddValue(name, price any) error {
	var errs validator.ValidationErrors

	n, err := validator.String("name", name)
	if err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}
	p, err := validator.Number("price", price)
	if err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}

	if !errs.IsEmpty() {
		c.reject("add", fmt.Sprint(name), errs)
		return errs
	}
	return c.Add(n, p)
}

// Remove deletes the entry stored under the trimmed name.
func (c *Cart) Remove(name string) error {
	name = sanitizer.Trim(name)

	if _, exists := c.items[name]; !exists {
		err := fmt.Errorf("%w: %q", ErrItemNotFound, name)
		c.reject("remove", name, err)
		return err
	}

	delete(c.items, name)
	if i := slices.Index(c.order, name); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}

	c.logger.Debug("cart item removed", logger.CartID(c.id), logger.Item(name))
	return nil
}

// RemoveValue is Remove for untyped input.
func (c *Cart) RemoveValue(name any) error {
	n, err := validator.String("name", name)
	if err != nil {
		c.reject("remove", fmt.Sprint(name), err)
		return err
	}
	return c.Remove(n)
}

// Total returns the sum of all prices rounded to the configured precision.
// An empty cart totals 0.
func (c *Cart) Total() float64 {
	sum := decimal.Zero
	for _, e := range c.items {
		sum = sum.Add(e.amount)
	}
	return sum.Round(c.precision).InexactFloat64()
}

// Items returns a copy of the name to price mapping.
func (c *Cart) Items() map[string]float64 {
	out := make(map[string]float64, len(c.items))
	for name, e := range c.items {
		out[name] = e.price
	}
	return out
}

// Entries returns a copy of the entries in insertion order.
func (c *Cart) Entries() []Item {
	out := make([]Item, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Item{Name: name, Price: c.items[name].price})
	}
	return out
}

// Len returns the number of distinct items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear removes every item.
func (c *Cart) Clear() {
	n := len(c.items)
	clear(c.items)
	c.order = c.order[:0]
	c.logger.Debug("cart cleared", logger.CartID(c.id), logger.Count(n))
}

func (c *Cart) reject(op, name string, err error) {
	c.logger.Warn("cart "+op+" rejected",
		logger.CartID(c.id),
		logger.Item(name),
		logger.Error(err),
	)
}
