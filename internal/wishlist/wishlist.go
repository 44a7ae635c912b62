// Package wishlist implements the ephemeral wishlist: product references
// toggled in and out by id, no duplicates, nothing persisted.
package wishlist

import "github.com/hemshop/storefront/internal/model"

// Wishlist is an ordered set of products keyed by id.
type Wishlist struct {
	items []model.Product
}

// New returns an empty wishlist.
func New() *Wishlist {
	return &Wishlist{}
}

// Toggle adds p when absent and removes it when present. Two toggles on the
// same product restore the original state.
func (w *Wishlist) Toggle(p model.Product) {
	for i, q := range w.items {
		if q.ID == p.ID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
	w.items = append(w.items, p)
}

// Contains reports membership by product id.
func (w *Wishlist) Contains(id int) bool {
	for _, q := range w.items {
		if q.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the wishlist in insertion order.
func (w *Wishlist) Items() []model.Product {
	out := make([]model.Product, len(w.items))
	copy(out, w.items)
	return out
}
