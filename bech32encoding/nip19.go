package bech32encoding

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"nprofile.mleku.dev/bech32encoding/pointers"
	"nprofile.mleku.dev/bech32encoding/tlv"
	"nprofile.mleku.dev/pubkey"
)

const (
	NpubHRP     = "npub"
	NprofileHRP = "nprofile"
)

// Codec encodes and decodes NIP-19 entities through an Envelope.
type Codec struct {
	Envelope
}

// NewCodec returns a Codec using the bech32 envelope with its default limit.
func NewCodec() Codec { return Codec{Envelope: Bech32{}} }

// ProfileToRecords lays out a profile as TLV records: the public key first,
// then one record per relay in the order given.
func ProfileToRecords(p *pointers.Profile) (records []tlv.Record) {
	records = make([]tlv.Record, 0, len(p.Relays)+1)
	records = append(records, tlv.Record{Type: tlv.Default, Value: p.PublicKey.Bytes()})
	for _, r := range p.Relays {
		records = append(records, tlv.Record{Type: tlv.Relay, Value: by(r)})
	}
	return
}

// ProfileFromRecords builds a profile from TLV records. The first type 0 record
// is the public key and any later ones are ignored; each type 1 record is a
// relay; records of any other type are skipped.
func ProfileFromRecords(records []tlv.Record) (p *pointers.Profile, err er) {
	p = &pointers.Profile{Relays: []st{}}
	var found bo
	for i, r := range records {
		switch r.Type {
		case tlv.Default:
			if found {
				log.T.F("ignoring extra public key in record %d", i)
				continue
			}
			if p.PublicKey, err = pubkey.FromBytes(r.Value); chk.T(err) {
				return nil, errors.Wrapf(ErrInvalidPublicKeyLength,
					"record %d is %d bytes", i, len(r.Value))
			}
			found = true
		case tlv.Relay:
			if !utf8.Valid(r.Value) {
				return nil, errors.Wrapf(ErrInvalidRelayUTF8, "record %d", i)
			}
			p.Relays = append(p.Relays, st(r.Value))
		default:
			log.T.F("skipping unknown TLV type %d in record %d", r.Type, i)
		}
	}
	if !found {
		return nil, errors.Wrap(ErrMissingPublicKey, "no type 0 record")
	}
	return
}

// EncodeProfile encodes a profile as an nprofile string.
func (c Codec) EncodeProfile(p *pointers.Profile) (s by, err er) {
	if p == nil {
		return nil, errors.Wrap(ErrMissingPublicKey, "nil profile")
	}
	for i, r := range p.Relays {
		if !utf8.ValidString(r) {
			return nil, errors.Wrapf(ErrInvalidRelayUTF8, "relay %d", i)
		}
	}
	var b by
	if b, err = tlv.Encode(ProfileToRecords(p)); chk.D(err) {
		return nil, errors.Wrap(ErrEncodingTooLong, err.Error())
	}
	return c.Envelope.Encode(by(NprofileHRP), b)
}

// DecodeProfile decodes an nprofile string. Text with any other prefix fails
// with ErrUnknownPrefix.
func (c Codec) DecodeProfile(s by) (p *pointers.Profile, err er) {
	var hrp, data by
	if hrp, data, err = c.Envelope.Decode(s); chk.D(err) {
		return
	}
	if st(hrp) != NprofileHRP {
		return nil, errors.Wrapf(ErrUnknownPrefix, "got '%s' want '%s'", hrp,
			NprofileHRP)
	}
	return decodeProfilePayload(data)
}

func decodeProfilePayload(data by) (p *pointers.Profile, err er) {
	var records []tlv.Record
	if records, err = tlv.Decode(data); chk.D(err) {
		return
	}
	return ProfileFromRecords(records)
}

// Decode decodes any of the supported entities, returning the prefix and a
// value whose type depends on it: pubkey.T for npub and *pointers.Profile for
// nprofile.
func (c Codec) Decode(s by) (prefix st, value any, err er) {
	var hrp, data by
	if hrp, data, err = c.Envelope.Decode(s); chk.D(err) {
		return
	}
	prefix = st(hrp)
	switch prefix {
	case NpubHRP:
		var pk pubkey.T
		if pk, err = npubFromPayload(data); err != nil {
			return
		}
		return prefix, pk, nil
	case NprofileHRP:
		var p *pointers.Profile
		if p, err = decodeProfilePayload(data); err != nil {
			return
		}
		return prefix, p, nil
	}
	return prefix, nil, errors.Wrapf(ErrUnknownPrefix, "'%s'", prefix)
}

// EncodeProfile encodes a profile as an nprofile string using the bech32
// envelope.
func EncodeProfile(p *pointers.Profile) (s by, err er) { return NewCodec().EncodeProfile(p) }

// DecodeProfile decodes an nprofile string using the bech32 envelope.
func DecodeProfile(s by) (p *pointers.Profile, err er) { return NewCodec().DecodeProfile(s) }

// Decode decodes an npub or nprofile string using the bech32 envelope.
func Decode(s by) (prefix st, value any, err er) { return NewCodec().Decode(s) }
