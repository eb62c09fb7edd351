// Package pointers holds the values NIP-19 entities decode into.
package pointers

import (
	"slices"

	"nprofile.mleku.dev/pubkey"
)

// Profile points at a user: their public key and relays where their events may
// be found. The relay order is kept as given.
type Profile struct {
	PublicKey pubkey.T `json:"pubkey"`
	Relays    []string `json:"relays"`
}

// New creates a Profile with a copy of the given relays. Relays is never nil,
// an empty list stays an empty list.
func New(pk pubkey.T, relays ...string) (p *Profile) {
	p = &Profile{PublicKey: pk, Relays: make([]string, len(relays))}
	copy(p.Relays, relays)
	return
}

// Equal reports whether both profiles have the same key and the same relays in
// the same order. A nil and an empty relay list are the same.
func (p *Profile) Equal(o *Profile) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.PublicKey == o.PublicKey && slices.Equal(p.Relays, o.Relays)
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile { return New(p.PublicKey, p.Relays...) }
