package bech32encoding

import (
	"github.com/pkg/errors"

	"nprofile.mleku.dev/bech32encoding/tlv"
)

var (
	// ErrMalformedTLV means the decoded payload could not be split into whole
	// TLV records.
	ErrMalformedTLV = tlv.ErrMalformed
	// ErrMalformedCharacters means the text is not a well formed bech32 string:
	// bad characters, mixed case, a misplaced separator, a bad length or
	// non-zero padding bits.
	ErrMalformedCharacters = errors.New("malformed bech32 characters")
	// ErrInvalidChecksum means the bech32 checksum did not match; the text is
	// corrupted or was tampered with.
	ErrInvalidChecksum = errors.New("invalid bech32 checksum")
	// ErrUnknownPrefix means the human-readable part is not the one expected.
	ErrUnknownPrefix = errors.New("unknown prefix")
	// ErrMissingPublicKey means no public key record was present.
	ErrMissingPublicKey = errors.New("missing public key")
	// ErrInvalidPublicKeyLength means the public key record was not 32 bytes.
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	// ErrInvalidRelayUTF8 means a relay record was not valid UTF-8.
	ErrInvalidRelayUTF8 = errors.New("relay is not valid UTF-8")
	// ErrEncodingTooLong means the encoded text, or one of its TLV values,
	// would exceed the length the format allows.
	ErrEncodingTooLong = errors.New("encoding too long")
)

var reasons = []struct {
	err  er
	name st
}{
	{ErrMalformedTLV, "MalformedTlv"},
	{ErrMalformedCharacters, "MalformedCharacters"},
	{ErrInvalidChecksum, "InvalidChecksum"},
	{ErrUnknownPrefix, "UnknownPrefix"},
	{ErrMissingPublicKey, "MissingPublicKey"},
	{ErrInvalidPublicKeyLength, "InvalidPublicKeyLength"},
	{ErrInvalidRelayUTF8, "InvalidRelayUtf8"},
	{ErrEncodingTooLong, "EncodingTooLong"},
}

// Reason returns the name of the failure err wraps, or an empty string if it
// is not one of the errors of this package.
func Reason(err er) (name st) {
	if err == nil {
		return
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.name
		}
	}
	return
}
