// Package cart implements the ephemeral shopping cart. Lines snapshot the
// product at add time; nothing here is persisted.
package cart

import (
	"github.com/hemshop/storefront/internal/model"
	"github.com/hemshop/storefront/internal/obs"
)

// Cart is an ordered list of lines. Lines with the same product, size, and
// color merge into one.
type Cart struct {
	lines []model.CartLine
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts a product in the cart. An empty color falls back to the product's
// first listed color. An existing (id, size, color) line gains quantity 1;
// otherwise a new line snapshots the product with quantity 1.
func (c *Cart) Add(p model.Product, size, color string) {
	if color == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}
	for i := range c.lines {
		l := &c.lines[i]
		if l.ID == p.ID && l.Size == size && l.Color == color {
			l.Quantity++
			return
		}
	}
	c.lines = append(c.lines, model.CartLine{
		Product:  p,
		Size:     size,
		Color:    color,
		Quantity: 1,
	})
}

// QuickAdd adds a product with its first listed size and color.
func (c *Cart) QuickAdd(p model.Product) {
	size := ""
	if len(p.Sizes) > 0 {
		size = p.Sizes[0]
	}
	c.Add(p, size, "")
}

// Remove drops the line at index i. Out-of-range indexes are ignored.
func (c *Cart) Remove(i int) {
	if i < 0 || i >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Adjust changes the quantity of line i by delta, but only when the result
// stays at least 1. A delta that would drop the quantity to zero or below
// leaves it unchanged; removal is always explicit via Remove.
func (c *Cart) Adjust(i, delta int) {
	if i < 0 || i >= len(c.lines) {
		return
	}
	if next := c.lines[i].Quantity + delta; next > 0 {
		c.lines[i].Quantity = next
	}
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Checkout clears the cart unconditionally. There is no payment step and
// product stock is deliberately left untouched.
func (c *Cart) Checkout() {
	obs.Logger.Info("checkout", "lines", len(c.lines), "total", c.Total())
	c.lines = nil
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
