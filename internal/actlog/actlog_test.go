package actlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemshop/storefront/internal/model"
	"github.com/hemshop/storefront/internal/store"
)

func TestAppendPrependsNewestFirst(t *testing.T) {
	l, _ := openMem(t)
	require.NoError(t, l.Append(model.ActionCreate, "Added new product: A"))
	require.NoError(t, l.Append(model.ActionDelete, "Deleted product: A"))

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.ActionDelete, entries[0].Action)
	assert.Equal(t, model.ActionCreate, entries[1].Action)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestAppendCapsAtFifty(t *testing.T) {
	l, _ := openMem(t)
	for i := 1; i <= MaxEntries+1; i++ {
		require.NoError(t, l.Append(model.ActionUpdate, fmt.Sprintf("Updated product: p%d", i)))
	}
	entries := l.Entries()
	require.Len(t, entries, MaxEntries)
	// newest first; the very first append (p1) fell off the tail
	assert.Equal(t, "Updated product: p51", entries[0].Details)
	assert.Equal(t, "Updated product: p2", entries[MaxEntries-1].Details)
}

func TestAppendPersistsFullLog(t *testing.T) {
	l, kv := openMem(t)
	require.NoError(t, l.Append(model.ActionCreate, "Added new product: A"))

	reloaded, err := Open(kv)
	require.NoError(t, err)
	entries := reloaded.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Added new product: A", entries[0].Details)
}

func TestTimestampFormat(t *testing.T) {
	l, _ := openMem(t)
	l.now = func() time.Time {
		return time.Date(2026, time.March, 5, 14, 30, 9, 0, time.Local)
	}
	require.NoError(t, l.Append(model.ActionCreate, "x"))
	assert.Equal(t, "Mar 5, 2026 2:30:09 PM", l.Entries()[0].Timestamp)
}

func TestOpenRejectsCorruptPayload(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(store.KeyActivityLog, "{not json"))
	_, err := Open(kv)
	require.Error(t, err)
}

func openMem(t *testing.T) (*Log, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	l, err := Open(kv)
	require.NoError(t, err)
	return l, kv
}
