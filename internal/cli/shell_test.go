package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shellRun(t *testing.T, script string) string {
	t.Helper()
	out, err := run(t, script, "shell", "--ephemeral")
	require.NoError(t, err)
	return out
}

func TestShellListAndExit(t *testing.T) {
	out := shellRun(t, "list\nexit\n")
	assert.Contains(t, out, "Cyber Hoodie V1")
}

func TestShellCartFlow(t *testing.T) {
	out := shellRun(t, "add 1 M Black\nadd 1 M Black\ncart\ncheckout\ncart\nexit\n")
	assert.Contains(t, out, "ADDED TO CART")
	assert.Contains(t, out, "items: 2  total: $178")
	assert.Contains(t, out, "Thank you for your order!")
	assert.Contains(t, out, "items: 0  total: $0")
}

func TestShellWishlistToggle(t *testing.T) {
	out := shellRun(t, "wish 4\nwishlist\nwish 4\nwishlist\nexit\n")
	assert.Contains(t, out, "added to wishlist")
	assert.Contains(t, out, "Street Cap")
	assert.Contains(t, out, "removed from wishlist")
}

func TestShellAdminDeleteNeedsLogin(t *testing.T) {
	out := shellRun(t, "delete 1\nexit\n")
	assert.Contains(t, out, "only admin")
}

func TestShellAdminDeleteConfirmed(t *testing.T) {
	out := shellRun(t, "login G-pace2026\ndelete 4\ny\nlist\nlog\nexit\n")
	assert.Contains(t, out, "admin session active")
	assert.Contains(t, out, "deleted product 4")
	assert.NotContains(t, out, "Street Cap\t")
	assert.Contains(t, out, "Deleted product: Street Cap")
}

func TestShellAdminDeleteDeclined(t *testing.T) {
	out := shellRun(t, "login G-pace2026\ndelete 4\nn\nlist\nexit\n")
	assert.Contains(t, out, "cancelled")
	assert.Contains(t, out, "Street Cap")
}

func TestShellWrongPassword(t *testing.T) {
	out := shellRun(t, "login nope\nexit\n")
	assert.Contains(t, out, "access denied")
}

func TestShellFilter(t *testing.T) {
	out := shellRun(t, "filter Hoodies 100\nexit\n")
	assert.Contains(t, out, "Cyber Hoodie V1")
	assert.NotContains(t, out, "Oversized Puffer")
}

func TestShellQuantityFloor(t *testing.T) {
	out := shellRun(t, "add 2 M\nqty 0 5\nqty 0 -100\ncart\nexit\n")
	assert.Contains(t, out, "items: 6", "underflowing delta must be ignored")
}

func TestShellUnknownCommand(t *testing.T) {
	out := shellRun(t, "frobnicate\nexit\n")
	assert.Contains(t, out, "unknown command")
}

func TestShellEOFEndsSession(t *testing.T) {
	out := shellRun(t, "list\n")
	assert.Contains(t, out, "Cyber Hoodie V1")
}
