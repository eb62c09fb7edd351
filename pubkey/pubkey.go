// Package pubkey holds the 32 byte x-only public key that identifies a nostr
// user. Only the raw bytes are handled here; parsing the key as a curve point
// is the business of the signer.
package pubkey

import (
	"bytes"

	"github.com/pkg/errors"

	"nprofile.mleku.dev/chk"
	"nprofile.mleku.dev/hex"
)

// Len is the number of bytes in a public key.
const Len = 32

// HexLen is the number of characters in a hex encoded public key.
const HexLen = Len * 2

// ErrInvalidLength is returned when a key is built from the wrong number of
// bytes.
var ErrInvalidLength = errors.New("public key must be 32 bytes")

// T is a public key. The zero value is the all zero key, which is a valid
// value for this type even though no secret key maps to it.
type T [Len]byte

// FromBytes copies b into a new key.
func FromBytes(b []byte) (pk T, err error) {
	if len(b) != Len {
		err = errors.Wrapf(ErrInvalidLength, "got %d", len(b))
		return
	}
	copy(pk[:], b)
	return
}

// FromHex decodes a 64 character hex string into a key. Upper and lower case
// are both accepted.
func FromHex[V string | []byte](h V) (pk T, err error) {
	if len(h) != HexLen {
		err = errors.Wrapf(ErrInvalidLength, "hex key is %d characters, must be %d",
			len(h), HexLen)
		return
	}
	var b []byte
	if b, err = hex.DecAppend(make([]byte, 0, Len), []byte(h)); chk.D(err) {
		err = errors.Wrap(err, "invalid hex public key")
		return
	}
	copy(pk[:], b)
	return
}

// Bytes returns a copy of the key bytes.
func (pk T) Bytes() []byte { return bytes.Clone(pk[:]) }

// Hex returns the lowercase hex encoding of the key.
func (pk T) Hex() string { return string(hex.EncAppend(nil, pk[:])) }

func (pk T) String() string { return pk.Hex() }

// Equal reports whether two keys are byte for byte the same.
func (pk T) Equal(o T) bool { return pk == o }

// MarshalText renders the key as hex, so it appears as a hex string in JSON.
func (pk T) MarshalText() ([]byte, error) { return hex.EncAppend(nil, pk[:]), nil }

// UnmarshalText parses a hex key.
func (pk *T) UnmarshalText(b []byte) (err error) {
	*pk, err = FromHex(b)
	return
}
