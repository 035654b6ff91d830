// Package auth implements the credential check guarding catalog mutations.
// It is deliberately simple: plain equality against configured credentials,
// no hashing, no token lifecycle.
package auth

import "errors"

// ErrInvalidCredentials indicates the username/password pair did not match.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator checks credentials against a fixed user set.
type Authenticator struct {
	passwords map[string]string
}

// New creates an Authenticator from username/password pairs. With no users
// configured, Login always succeeds (open catalog).
func New(users map[string]string) *Authenticator {
	passwords := make(map[string]string, len(users))
	for username, password := range users {
		passwords[username] = password
	}
	return &Authenticator{passwords: passwords}
}

// Open reports whether the catalog requires no login at all.
func (a *Authenticator) Open() bool {
	return len(a.passwords) == 0
}

// Login checks the pair with plain equality and returns
// ErrInvalidCredentials on any mismatch or unknown username.
func (a *Authenticator) Login(username, password string) error {
	if a.Open() {
		return nil
	}
	stored, ok := a.passwords[username]
	if !ok || stored != password {
		return ErrInvalidCredentials
	}
	return nil
}
