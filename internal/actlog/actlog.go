// Package actlog keeps the bounded admin activity log. Entries are ordered
// newest-first and the full log is re-persisted after every append.
package actlog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hemshop/storefront/internal/model"
	"github.com/hemshop/storefront/internal/obs"
	"github.com/hemshop/storefront/internal/store"
)

// MaxEntries caps the log; the oldest entries beyond it are dropped silently.
const MaxEntries = 50

const timestampLayout = "Jan 2, 2006 3:04:05 PM"

// Log is the activity log backed by a KV adapter.
type Log struct {
	kv      store.KV
	entries []model.ActivityEntry
	now     func() time.Time
}

// Open loads the persisted log, or starts empty when none is stored.
func Open(kv store.KV) (*Log, error) {
	l := &Log{kv: kv, now: time.Now}
	raw, ok, err := kv.Get(store.KeyActivityLog)
	if err != nil {
		return nil, fmt.Errorf("load activity log: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &l.entries); err != nil {
			return nil, fmt.Errorf("decode activity log: %w", err)
		}
	}
	return l, nil
}

// Append prepends an entry for action and persists the whole log. When the
// log would exceed MaxEntries the oldest entry is dropped first.
func (l *Log) Append(action model.Action, details string) error {
	entry := model.ActivityEntry{
		ID:        uuid.NewString(),
		Timestamp: l.now().Format(timestampLayout),
		Action:    action,
		Details:   details,
	}
	entries := make([]model.ActivityEntry, 0, len(l.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, l.entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	if err := l.persist(entries); err != nil {
		return err
	}
	l.entries = entries
	obs.Logger.Info("activity_logged", "action", string(action), "details", details)
	return nil
}

// Entries returns the log newest-first. The slice is a copy.
func (l *Log) Entries() []model.ActivityEntry {
	out := make([]model.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) persist(entries []model.ActivityEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode activity log: %w", err)
	}
	if err := l.kv.Set(store.KeyActivityLog, string(raw)); err != nil {
		return fmt.Errorf("persist activity log: %w", err)
	}
	return nil
}
