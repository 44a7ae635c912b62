// Package catalog holds the authoritative product collection and the guarded
// admin mutations over it. Every successful write re-persists the whole
// collection through the store adapter before returning, then records an
// activity entry.
package catalog

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/hemshop/storefront/internal/actlog"
	"github.com/hemshop/storefront/internal/model"
	"github.com/hemshop/storefront/internal/obs"
	"github.com/hemshop/storefront/internal/session"
	"github.com/hemshop/storefront/internal/store"
)

// ConfirmFunc asks the human to confirm an intent before a write proceeds.
// Returning false aborts the operation with ErrCancelled.
type ConfirmFunc func(intent string) bool

// ConfirmAll approves every intent. For tests and non-interactive callers
// that have confirmed elsewhere.
func ConfirmAll(string) bool { return true }

// Catalog is the in-memory product collection, insertion-ordered.
type Catalog struct {
	kv       store.KV
	log      *actlog.Log
	gate     *session.Gate
	confirm  ConfirmFunc
	matcher  *search.Matcher
	products []model.Product

	// lastID is the highest id ever observed this session, so deleting the
	// newest product cannot recycle its id.
	lastID int
}

// New wires a catalog to its collaborators. Call Load before use.
func New(kv store.KV, log *actlog.Log, gate *session.Gate, confirm ConfirmFunc) *Catalog {
	if confirm == nil {
		confirm = ConfirmAll
	}
	return &Catalog{
		kv:      kv,
		log:     log,
		gate:    gate,
		confirm: confirm,
		matcher: search.New(language.Und, search.IgnoreCase),
	}
}

// Load reads the persisted collection. When nothing is stored and seed is
// true, the demo catalog is loaded in memory; it is only written back on the
// first mutation.
func (c *Catalog) Load(seed bool) error {
	raw, ok, err := c.kv.Get(store.KeyProducts)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	if !ok {
		if seed {
			c.products = seedProducts()
		}
		c.markIDs()
		obs.Logger.Info("catalog_seeded", "count", len(c.products))
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &c.products); err != nil {
		return fmt.Errorf("decode products: %w", err)
	}
	c.markIDs()
	obs.Logger.Info("catalog_loaded", "count", len(c.products))
	return nil
}

func (c *Catalog) markIDs() {
	for _, p := range c.products {
		if p.ID > c.lastID {
			c.lastID = p.ID
		}
	}
}

// Products returns the full collection in insertion order. The slice is a
// copy; mutate through Create/Update/Delete only.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (model.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Related returns up to n other products, in catalog order. Shown alongside
// a product page.
func (c *Catalog) Related(id, n int) []model.Product {
	out := make([]model.Product, 0, n)
	for _, p := range c.products {
		if p.ID == id {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Filter returns the products matching all three predicates: exact category
// (empty matches everything), price at most maxPrice, and a case-insensitive
// name match on query. Recomputed on every call.
func (c *Catalog) Filter(category string, maxPrice float64, query string) []model.Product {
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if p.Price > maxPrice {
			continue
		}
		if query != "" {
			if start, _ := c.matcher.IndexString(p.Name, query); start < 0 {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Create commits a draft as a new product. Requires an active admin session
// and a confirmed intent. The new id is one past the current maximum and ids
// are never reused after deletion.
func (c *Catalog) Create(draft model.Draft) (model.Product, error) {
	if !c.gate.LoggedIn() {
		obs.Logger.Warn("product_create_denied")
		return model.Product{}, ErrPermissionDenied
	}
	if !c.confirm("add this new product") {
		return model.Product{}, ErrCancelled
	}
	p := draft.Product(c.nextID())
	next := append(c.Products(), p)
	if err := c.persist(next); err != nil {
		return model.Product{}, err
	}
	c.products = next
	if err := c.log.Append(model.ActionCreate, "Added new product: "+p.Name); err != nil {
		return model.Product{}, err
	}
	obs.Logger.Info("product_created", "id", p.ID, "name", p.Name)
	return p, nil
}

// Update replaces the product with the given id, keeping its id and position.
// Requires an active admin session and a confirmed intent; a missing id is
// ErrNotFound and leaves catalog, store, and activity log untouched.
func (c *Catalog) Update(id int, draft model.Draft) (model.Product, error) {
	if !c.gate.LoggedIn() {
		obs.Logger.Warn("product_update_denied", "id", id)
		return model.Product{}, ErrPermissionDenied
	}
	if !c.confirm("save changes to this product") {
		return model.Product{}, ErrCancelled
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return model.Product{}, fmt.Errorf("update product %d: %w", id, ErrNotFound)
	}
	p := draft.Product(id)
	next := c.Products()
	next[idx] = p
	if err := c.persist(next); err != nil {
		return model.Product{}, err
	}
	c.products = next
	if err := c.log.Append(model.ActionUpdate, "Updated product: "+p.Name); err != nil {
		return model.Product{}, err
	}
	obs.Logger.Info("product_updated", "id", id, "name", p.Name)
	return p, nil
}

// Delete removes the product with the given id. Requires an active admin
// session and a confirmed intent; a missing id is ErrNotFound.
func (c *Catalog) Delete(id int) error {
	if !c.gate.LoggedIn() {
		obs.Logger.Warn("product_delete_denied", "id", id)
		return ErrPermissionDenied
	}
	if !c.confirm("delete this item") {
		return ErrCancelled
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("delete product %d: %w", id, ErrNotFound)
	}
	name := c.products[idx].Name
	next := append(c.Products()[:idx], c.products[idx+1:]...)
	if err := c.persist(next); err != nil {
		return err
	}
	c.products = next
	if err := c.log.Append(model.ActionDelete, "Deleted product: "+name); err != nil {
		return err
	}
	obs.Logger.Info("product_deleted", "id", id, "name", name)
	return nil
}

func (c *Catalog) nextID() int {
	c.markIDs()
	c.lastID++
	return c.lastID
}

func (c *Catalog) indexOf(id int) int {
	for i, p := range c.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) persist(products []model.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if err := c.kv.Set(store.KeyProducts, string(raw)); err != nil {
		return fmt.Errorf("persist products: %w", err)
	}
	return nil
}
