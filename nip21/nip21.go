// Package nip21 wraps NIP-19 entities in the nostr: URI scheme.
package nip21

import (
	"bytes"

	"github.com/pkg/errors"

	"nprofile.mleku.dev/bech32encoding"
	"nprofile.mleku.dev/bech32encoding/pointers"
	"nprofile.mleku.dev/chk"
)

// Scheme is the prefix of a nostr URI. It is matched exactly, case included.
const Scheme = "nostr:"

// ErrMissingScheme is returned when a URI does not start with Scheme.
var ErrMissingScheme = errors.New("missing nostr: scheme")

// ToURI prefixes an encoded entity with the nostr scheme.
func ToURI(entity []byte) (uri []byte) {
	uri = make([]byte, 0, len(Scheme)+len(entity))
	uri = append(uri, Scheme...)
	return append(uri, entity...)
}

// FromURI strips the nostr scheme. The remainder is not checked here.
func FromURI(uri []byte) (entity []byte, err error) {
	if !bytes.HasPrefix(uri, []byte(Scheme)) {
		err = errors.Wrapf(ErrMissingScheme, "'%.16s'", uri)
		return
	}
	return uri[len(Scheme):], nil
}

// EncodeProfile encodes a profile as a nostr:nprofile URI.
func EncodeProfile(p *pointers.Profile) (uri []byte, err error) {
	var s []byte
	if s, err = bech32encoding.EncodeProfile(p); chk.D(err) {
		return
	}
	return ToURI(s), nil
}

// DecodeProfile decodes a nostr:nprofile URI, running the full nprofile decode
// on what follows the scheme.
func DecodeProfile(uri []byte) (p *pointers.Profile, err error) {
	var s []byte
	if s, err = FromURI(uri); chk.D(err) {
		return
	}
	return bech32encoding.DecodeProfile(s)
}

// DecodeProfileAny accepts an nprofile either bare or as a nostr URI.
func DecodeProfileAny(s []byte) (p *pointers.Profile, err error) {
	if bytes.HasPrefix(s, []byte(Scheme)) {
		return DecodeProfile(s)
	}
	return bech32encoding.DecodeProfile(s)
}
