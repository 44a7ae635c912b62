package integration

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemshop/storefront/internal/actlog"
	"github.com/hemshop/storefront/internal/catalog"
	"github.com/hemshop/storefront/internal/config"
	"github.com/hemshop/storefront/internal/model"
	"github.com/hemshop/storefront/internal/shop"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "shop.db")
	return cfg
}

func TestAdminFlowSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	s1, err := shop.Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Gate().Login(cfg.AdminPassword))

	created, err := s1.Catalog().Create(model.Draft{
		Name: "Acid Windbreaker", Price: 95, Category: "Hoodies",
		SizesInput: "M, L", ColorsInput: "Acid, Black", Stock: 12, Material: "Nylon",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	_, err = s1.Catalog().Update(3, model.Draft{
		Name: "Tactical Cargo II", Price: 130, Category: "Pants",
		SizesInput: "30, 32", ColorsInput: "Olive", Stock: 6, Material: "Linen",
	})
	require.NoError(t, err)
	require.NoError(t, s1.Catalog().Delete(4))
	require.NoError(t, s1.Close())

	s2, err := shop.Open(cfg, nil)
	require.NoError(t, err)
	defer s2.Close()

	products := s2.Catalog().Products()
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 6}, ids)

	updated, ok := s2.Catalog().Get(3)
	require.True(t, ok)
	assert.Equal(t, "Tactical Cargo II", updated.Name)
	assert.Equal(t, 130.0, updated.Price)

	entries := s2.ActivityLog().Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, model.ActionDelete, entries[0].Action)
	assert.Equal(t, model.ActionUpdate, entries[1].Action)
	assert.Equal(t, model.ActionCreate, entries[2].Action)

	// the admin session itself never survives a restart
	assert.False(t, s2.Gate().LoggedIn())
}

func TestLogCapHoldsAcrossRestart(t *testing.T) {
	cfg := testConfig(t)

	s1, err := shop.Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Gate().Login(cfg.AdminPassword))
	for i := 0; i < 60; i++ {
		draft := model.Draft{Name: fmt.Sprintf("Drop %02d", i), Price: 10, Category: "Accessories"}
		_, err := s1.Catalog().Create(draft)
		require.NoError(t, err)
	}
	require.NoError(t, s1.Close())

	s2, err := shop.Open(cfg, nil)
	require.NoError(t, err)
	defer s2.Close()

	entries := s2.ActivityLog().Entries()
	require.Len(t, entries, actlog.MaxEntries)
	assert.Equal(t, "Added new product: Drop 59", entries[0].Details)
	assert.Equal(t, "Added new product: Drop 10", entries[actlog.MaxEntries-1].Details)
}

func TestGuardedWritesLeaveStoreUntouched(t *testing.T) {
	cfg := testConfig(t)

	s1, err := shop.Open(cfg, nil)
	require.NoError(t, err)
	_, err = s1.Catalog().Create(model.Draft{Name: "X", Price: 10})
	require.ErrorIs(t, err, catalog.ErrPermissionDenied)
	require.NoError(t, s1.Close())

	// nothing was persisted, so a fresh open reseeds the demo catalog
	s2, err := shop.Open(cfg, nil)
	require.NoError(t, err)
	defer s2.Close()
	assert.Len(t, s2.Catalog().Products(), 5)
	assert.Empty(t, s2.ActivityLog().Entries())
}

func TestDeclinedConfirmationPersistsNothing(t *testing.T) {
	cfg := testConfig(t)

	decline := func(string) bool { return false }
	s1, err := shop.Open(cfg, decline)
	require.NoError(t, err)
	require.NoError(t, s1.Gate().Login(cfg.AdminPassword))
	_, err = s1.Catalog().Create(model.Draft{Name: "X", Price: 10})
	require.ErrorIs(t, err, catalog.ErrCancelled)
	require.NoError(t, s1.Close())

	s2, err := shop.Open(cfg, nil)
	require.NoError(t, err)
	defer s2.Close()
	assert.Len(t, s2.Catalog().Products(), 5)
	assert.Empty(t, s2.ActivityLog().Entries())
}
