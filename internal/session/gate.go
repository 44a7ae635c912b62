// Package session implements the admin gate guarding catalog writes.
package session

import (
	"errors"

	"github.com/hemshop/storefront/internal/obs"
)

// ErrAccessDenied is returned by Login on a wrong password.
var ErrAccessDenied = errors.New("access denied")

// Gate tracks whether an admin is logged in. Sessions are process-local and
// never persisted; every process starts logged out.
//
// The credential is a verbatim string compare against a configured secret.
// That is the documented legacy behavior; a stronger scheme would have to be
// swapped in here, not in the catalog.
type Gate struct {
	secret   string
	loggedIn bool
}

// New returns a logged-out gate checking against secret.
func New(secret string) *Gate {
	return &Gate{secret: secret}
}

// Login transitions to logged-in when password matches the secret exactly.
// On mismatch the gate stays logged out and ErrAccessDenied is returned.
func (g *Gate) Login(password string) error {
	if password != g.secret {
		obs.Logger.Warn("admin_login_denied")
		return ErrAccessDenied
	}
	g.loggedIn = true
	obs.Logger.Info("admin_login")
	return nil
}

// Logout transitions to logged-out unconditionally.
func (g *Gate) Logout() {
	g.loggedIn = false
	obs.Logger.Info("admin_logout")
}

// LoggedIn reports the current state.
func (g *Gate) LoggedIn() bool { return g.loggedIn }
