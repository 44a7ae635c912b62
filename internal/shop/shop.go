// Package shop owns the application state: it wires the store adapter,
// catalog, activity log, admin gate, cart, wishlist, and blog into a single
// root the presentation layer talks to. All mutation goes through the
// component operations; the accessors hand out read-only views.
package shop

import (
	"fmt"

	"github.com/hemshop/storefront/internal/actlog"
	"github.com/hemshop/storefront/internal/blog"
	"github.com/hemshop/storefront/internal/cart"
	"github.com/hemshop/storefront/internal/catalog"
	"github.com/hemshop/storefront/internal/config"
	"github.com/hemshop/storefront/internal/session"
	"github.com/hemshop/storefront/internal/store"
	"github.com/hemshop/storefront/internal/wishlist"
)

// Shop is the storefront root. One per process.
type Shop struct {
	kv       store.KV
	catalog  *catalog.Catalog
	log      *actlog.Log
	gate     *session.Gate
	cart     *cart.Cart
	wishlist *wishlist.Wishlist
	blog     *blog.Blog
}

// Open builds the shop on a file-backed store at cfg.DBPath.
func Open(cfg config.Config, confirm catalog.ConfirmFunc) (*Shop, error) {
	kv, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s, err := build(cfg, kv, confirm)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return s, nil
}

// OpenEphemeral builds the shop on an in-memory store. Nothing survives the
// process; useful for demos and tests.
func OpenEphemeral(cfg config.Config, confirm catalog.ConfirmFunc) (*Shop, error) {
	return build(cfg, store.NewMemory(), confirm)
}

func build(cfg config.Config, kv store.KV, confirm catalog.ConfirmFunc) (*Shop, error) {
	log, err := actlog.Open(kv)
	if err != nil {
		return nil, err
	}
	gate := session.New(cfg.AdminPassword)
	cat := catalog.New(kv, log, gate, confirm)
	if err := cat.Load(cfg.SeedOnEmpty); err != nil {
		return nil, err
	}
	return &Shop{
		kv:       kv,
		catalog:  cat,
		log:      log,
		gate:     gate,
		cart:     cart.New(),
		wishlist: wishlist.New(),
		blog:     blog.New(),
	}, nil
}

// Close releases the underlying store.
func (s *Shop) Close() error { return s.kv.Close() }

func (s *Shop) Catalog() *catalog.Catalog { return s.catalog }

func (s *Shop) ActivityLog() *actlog.Log { return s.log }

func (s *Shop) Gate() *session.Gate { return s.gate }

func (s *Shop) Cart() *cart.Cart { return s.cart }

func (s *Shop) Wishlist() *wishlist.Wishlist { return s.wishlist }

func (s *Shop) Blog() *blog.Blog { return s.blog }
