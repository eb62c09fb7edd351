package bech32encoding

import (
	"github.com/pkg/errors"

	"nprofile.mleku.dev/ec/bech32"
)

// Envelope is the text encoding a NIP-19 payload travels in. Implementations
// must report failures with the errors of this package: ErrInvalidChecksum for
// a checksum mismatch, ErrMalformedCharacters for any other unreadable text and
// ErrEncodingTooLong when the output would be too long.
type Envelope interface {
	// Encode turns a human-readable prefix and 8 bit payload into text.
	Encode(hrp, payload by) (text by, err er)
	// Decode returns the lowercase prefix and the 8 bit payload of text.
	Decode(text by) (hrp, payload by, err er)
}

// Bech32 is the BIP-173 Envelope. The zero value limits strings to
// bech32.MaxCodeLength characters, the longest for which the checksum still
// guarantees to catch any single error.
type Bech32 struct {
	MaxLen no
}

func (b Bech32) limit() no {
	if b.MaxLen <= 0 {
		return bech32.MaxCodeLength
	}
	return b.MaxLen
}

// Encode regroups payload into 5 bit values and encodes it under hrp.
func (b Bech32) Encode(hrp, payload by) (text by, err er) {
	if text, err = bech32.EncodeFromBase256(hrp, payload); chk.D(err) {
		return nil, classify(err)
	}
	if len(text) > b.limit() {
		return nil, errors.Wrapf(ErrEncodingTooLong, "%d characters, limit is %d",
			len(text), b.limit())
	}
	return
}

// Decode checks the text and its checksum and regroups the data into bytes.
// Padding bits left over from the regrouping must be zero.
func (b Bech32) Decode(text by) (hrp, payload by, err er) {
	if hrp, payload, err = bech32.DecodeToBase256(text, b.limit()); chk.D(err) {
		return nil, nil, classify(err)
	}
	return
}

// classify maps the errors of the bech32 package onto this package's errors.
func classify(err er) er {
	var cs bech32.ErrInvalidChecksum
	if errors.As(err, &cs) {
		return errors.Wrap(ErrInvalidChecksum, err.Error())
	}
	return errors.Wrap(ErrMalformedCharacters, err.Error())
}
