package bech32encoding

import (
	"github.com/pkg/errors"

	"nprofile.mleku.dev/pubkey"
)

// EncodeNpub encodes a public key as an npub string.
func (c Codec) EncodeNpub(pk pubkey.T) (s by, err er) {
	return c.Envelope.Encode(by(NpubHRP), pk[:])
}

// DecodeNpub decodes an npub string into a public key.
func (c Codec) DecodeNpub(s by) (pk pubkey.T, err er) {
	var hrp, data by
	if hrp, data, err = c.Envelope.Decode(s); chk.D(err) {
		return
	}
	if st(hrp) != NpubHRP {
		err = errors.Wrapf(ErrUnknownPrefix, "got '%s' want '%s'", hrp, NpubHRP)
		return
	}
	return npubFromPayload(data)
}

func npubFromPayload(data by) (pk pubkey.T, err er) {
	if pk, err = pubkey.FromBytes(data); chk.T(err) {
		err = errors.Wrapf(ErrInvalidPublicKeyLength, "npub payload is %d bytes",
			len(data))
	}
	return
}

// EncodeNpub encodes a public key as an npub string using the bech32 envelope.
func EncodeNpub(pk pubkey.T) (s by, err er) { return NewCodec().EncodeNpub(pk) }

// DecodeNpub decodes an npub string using the bech32 envelope.
func DecodeNpub(s by) (pk pubkey.T, err er) { return NewCodec().DecodeNpub(s) }

// ParsePublicKey accepts a public key as either 64 hex characters or an npub.
func ParsePublicKey(s st) (pk pubkey.T, err er) {
	if len(s) == pubkey.HexLen {
		return pubkey.FromHex(s)
	}
	return DecodeNpub(by(s))
}
