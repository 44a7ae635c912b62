package catalog

import "errors"

var (
	// ErrPermissionDenied is returned when a catalog write is attempted
	// without an active admin session.
	ErrPermissionDenied = errors.New("only admin can modify products")

	// ErrNotFound is returned when updating or deleting a product id that is
	// not in the catalog.
	ErrNotFound = errors.New("product not found")

	// ErrCancelled is returned when the confirmation step declines a write.
	ErrCancelled = errors.New("operation cancelled")
)
