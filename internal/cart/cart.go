// Package cart owns the shopping cart: one line per product, each with a
// positive quantity, and totals derived from the current product prices.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/example/cleandrop/internal/models"
)

// MaxLineQuantity caps the quantity a single cart line may hold.
const MaxLineQuantity = 10000

var (
	// ErrInvalidQuantity is returned when a non-positive quantity is added.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrQuantityLimit is returned when an add would push a line past
	// MaxLineQuantity.
	ErrQuantityLimit = errors.New("quantity exceeds line limit")
)

// Resolver supplies the current version of a product. The catalog store
// satisfies it.
type Resolver interface {
	ByID(id string) (models.Product, bool)
}

// Line is one product-quantity pairing.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Subtotal is the line price at the product's current price.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type entry struct {
	product  models.Product
	quantity int
}

// Cart is safe for concurrent use.
type Cart struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	order    []string
	resolver Resolver
}

// Option configures a Cart.
type Option func(*Cart)

// WithResolver makes the cart read product prices live from r.
func WithResolver(r Resolver) Option {
	return func(c *Cart) {
		c.resolver = r
	}
}

// New returns an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{entries: make(map[string]*entry)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add puts quantity units of product in the cart, merging with an existing
// line for the same product. An add that would take the line above
// MaxLineQuantity is rejected and leaves the cart unchanged.
func (c *Cart) Add(product models.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > MaxLineQuantity {
		return ErrQuantityLimit
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[product.ID]; ok {
		if quantity > MaxLineQuantity-e.quantity {
			return ErrQuantityLimit
		}
		e.quantity += quantity
		return nil
	}

	c.entries[product.ID] = &entry{product: product, quantity: quantity}
	c.order = append(c.order, product.ID)
	return nil
}

// Remove deletes the line for productID. Unknown ids are ignored.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

// UpdateQuantity sets the quantity of an existing line, clamped to
// MaxLineQuantity. A quantity of zero or less removes the line. It reports
// whether a line for productID existed; a positive quantity for an unknown
// product changes nothing.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[productID]
	if !ok {
		return false
	}
	if quantity <= 0 {
		c.removeLocked(productID)
		return true
	}
	e.quantity = min(quantity, MaxLineQuantity)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	c.order = nil
}

// Lines returns the cart lines in the order they were first added.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		e := c.entries[id]
		lines = append(lines, Line{Product: c.current(e.product), Quantity: e.quantity})
	}
	return lines
}

// Quantity returns the quantity held for productID, zero if absent.
func (c *Cart) Quantity(productID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if e, ok := c.entries[productID]; ok {
		return e.quantity
	}
	return 0
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, e := range c.entries {
		total += e.quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines, priced now.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines() {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (c *Cart) current(p models.Product) models.Product {
	if c.resolver == nil {
		return p
	}
	if live, ok := c.resolver.ByID(p.ID); ok {
		return live
	}
	return p
}

func (c *Cart) removeLocked(productID string) {
	if _, ok := c.entries[productID]; !ok {
		return
	}
	delete(c.entries, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
