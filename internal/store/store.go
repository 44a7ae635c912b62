// Package store provides the durable key/value boundary behind the catalog
// and the activity log. Values are full-collection JSON snapshots keyed by
// string; the adapter never sees diffs.
package store

// KV is the persistence contract the rest of the storefront depends on.
type KV interface {
	// Get returns the value stored under key, with ok=false when absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}

// Fixed keys used by the storefront. Renaming them would orphan any
// previously written snapshots.
const (
	KeyProducts    = "hem_products"
	KeyActivityLog = "hem_activity_log"
)
