package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Guarded wraps a Cart with a read/write mutex for shared use.
// Every method holds the lock for the duration of the wrapped call.
type Guarded struct {
	mu   sync.RWMutex
	cart *Cart
}

// NewGuarded wraps c. The caller must stop using c directly afterwards.
func NewGuarded(c *Cart) *Guarded {
	return &Guarded{cart: c}
}

func (g *Guarded) ID() uuid.UUID {
	return g.cart.ID()
}

func (g *Guarded) Add(name string, price float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cart.Add(name, price)
}

func (g *Guarded) AddValue(name, price any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cart.AddValue(name, price)
}

func (g *Guarded) Remove(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cart.Remove(name)
}

func (g *Guarded) RemoveValue(name any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cart.RemoveValue(name)
}

func (g *Guarded) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cart.Clear()
}

func (g *Guarded) Total() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cart.Total()
}

func (g *Guarded) Items() map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cart.Items()
}

func (g *Guarded) Entries() []Item {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cart.Entries()
}

func (g *Guarded) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cart.Len()
}

func (g *Guarded) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cart.IsEmpty()
}

// Do runs fn with exclusive access so several operations apply atomically.
// The *Cart passed to fn must not escape it.
func (g *Guarded) Do(fn func(c *Cart) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.cart)
}
