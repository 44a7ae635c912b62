package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("database file was not created")
	}
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open iteration %d: %v", i, err)
		}
		s.Close()
	}
}

func TestSQLiteGetAbsent(t *testing.T) {
	s := openTemp(t)
	_, ok, err := s.Get(KeyProducts)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected absent key")
	}
}

func TestSQLiteSetGetOverwrite(t *testing.T) {
	s := openTemp(t)
	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != "v2" {
		t.Fatalf("expected v2, got %q", got)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s1.Set(KeyProducts, `[{"id":1}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, ok, err := s2.Get(KeyProducts)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if got != `[{"id":1}]` {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if _, ok, _ := m.Get("k"); ok {
		t.Fatalf("expected absent")
	}
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, _ := m.Get("k")
	if !ok || got != "v" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "shop.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
