package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateStartsLoggedOut(t *testing.T) {
	g := New("secret")
	assert.False(t, g.LoggedIn())
}

func TestLoginWrongPassword(t *testing.T) {
	g := New("secret")
	err := g.Login("nope")
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, g.LoggedIn())
}

func TestLoginRightPassword(t *testing.T) {
	g := New("secret")
	require.NoError(t, g.Login("secret"))
	assert.True(t, g.LoggedIn())
}

func TestLogoutUnconditional(t *testing.T) {
	g := New("secret")
	require.NoError(t, g.Login("secret"))
	g.Logout()
	assert.False(t, g.LoggedIn())

	// logging out while already logged out is fine
	g.Logout()
	assert.False(t, g.LoggedIn())
}

func TestCaseSensitiveCompare(t *testing.T) {
	g := New("G-pace2026")
	require.ErrorIs(t, g.Login("g-pace2026"), ErrAccessDenied)
	require.NoError(t, g.Login("G-pace2026"))
}
