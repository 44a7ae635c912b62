package shop

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemshop/storefront/internal/config"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "shop.db")
	return cfg
}

func TestOpenSeedsAndStartsLoggedOut(t *testing.T) {
	s, err := Open(testConfig(t), nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Len(t, s.Catalog().Products(), 5)
	assert.False(t, s.Gate().LoggedIn())
	assert.Empty(t, s.Cart().Lines())
	assert.Empty(t, s.Wishlist().Items())
	assert.Len(t, s.Blog().Posts(), 3)
}

func TestOpenEphemeral(t *testing.T) {
	cfg := config.Default()
	s, err := OpenEphemeral(cfg, nil)
	require.NoError(t, err)
	defer s.Close()
	assert.Len(t, s.Catalog().Products(), 5)
}

func TestSessionStateDoesNotSurviveReopen(t *testing.T) {
	cfg := testConfig(t)
	s1, err := Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Gate().Login(cfg.AdminPassword))
	require.NoError(t, s1.Close())

	s2, err := Open(cfg, nil)
	require.NoError(t, err)
	defer s2.Close()
	assert.False(t, s2.Gate().LoggedIn())
}
