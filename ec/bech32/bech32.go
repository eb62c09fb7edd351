// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
)

// Charset is the set of characters used in the data section of bech32 strings.
// Note that this is ordered, such that for a given charset[i], i is the binary
// value of the character.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// Separator divides the human-readable part from the data part. The last
	// occurrence in the string is the one that counts, since the
	// human-readable part may itself contain it.
	Separator = '1'

	// ChecksumLen is the number of characters of checksum at the end of the
	// data part.
	ChecksumLen = 6

	// MaxLengthBIP173 is the maximum length of a bech32 string according to
	// BIP-173. NIP-19 entities with TLV payloads routinely exceed it.
	MaxLengthBIP173 = 90

	// MaxCodeLength is the length of the BCH code the checksum is computed
	// over; strings longer than this lose the error detection guarantees.
	MaxCodeLength = 1023
)

// gen encodes the generator polynomial for the bech32 BCH checksum.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev maps an ASCII byte to its 5 bit value, or -1 if it is not in
// Charset.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i := 0; i < len(Charset); i++ {
		charsetRev[Charset[i]] = int8(i)
	}
}

// polymod calculates the BCH checksum over the given values.
func polymod(values []byte) (chk uint32) {
	chk = 1
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return
}

// hrpExpand splits each human-readable part character into its high and low
// bits, separated by a zero, for feeding into polymod.
func hrpExpand(hrp []byte) (exp []byte) {
	exp = make([]byte, 0, len(hrp)*2+1)
	for _, c := range hrp {
		exp = append(exp, c>>5)
	}
	exp = append(exp, 0)
	for _, c := range hrp {
		exp = append(exp, c&31)
	}
	return
}

// writeChecksum computes the six 5 bit checksum values for hrp and data.
func writeChecksum(hrp, data []byte) (checksum []byte) {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, ChecksumLen)...)
	mod := polymod(values) ^ 1
	checksum = make([]byte, ChecksumLen)
	for i := range checksum {
		checksum[i] = byte(mod>>uint(5*(5-i))) & 31
	}
	return
}

// verifyChecksum checks data, which includes the trailing checksum values,
// against hrp.
func verifyChecksum(hrp, data []byte) bool {
	return polymod(append(hrpExpand(hrp), data...)) == 1
}

// toChars converts 5 bit values to their characters in Charset.
func toChars(data []byte) (chars []byte, err error) {
	chars = make([]byte, len(data))
	for i, b := range data {
		if b >= 32 {
			return nil, ErrInvalidDataByte(b)
		}
		chars[i] = Charset[b]
	}
	return
}

// toBytes converts characters in Charset to their 5 bit values.
func toBytes(chars []byte) (decoded []byte, err error) {
	decoded = make([]byte, len(chars))
	for i, c := range chars {
		if c >= 128 || charsetRev[c] == -1 {
			return nil, ErrNonCharsetChar(c)
		}
		decoded[i] = byte(charsetRev[c])
	}
	return
}

// checkCase returns the string lowercased, or an error if it mixes upper and
// lower case letters.
func checkCase(s []byte) (lower []byte, err error) {
	lower = bytes.ToLower(s)
	upper := bytes.ToUpper(s)
	if !bytes.Equal(s, lower) && !bytes.Equal(s, upper) {
		return nil, ErrMixedCase{}
	}
	return
}

// Encode encodes a byte slice of 5 bit values into a bech32 string with the
// given human-readable part. The human-readable part is lowercased in the
// output.
func Encode(hrp, data []byte) (encoded []byte, err error) {
	if len(hrp) < 1 {
		return nil, ErrInvalidSeparatorIndex(0)
	}
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return nil, ErrInvalidCharacter(c)
		}
	}
	if hrp, err = checkCase(hrp); err != nil {
		return
	}
	var chars, sum []byte
	if chars, err = toChars(data); err != nil {
		return
	}
	if sum, err = toChars(writeChecksum(hrp, data)); err != nil {
		return
	}
	encoded = make([]byte, 0, len(hrp)+1+len(chars)+ChecksumLen)
	encoded = append(encoded, hrp...)
	encoded = append(encoded, Separator)
	encoded = append(encoded, chars...)
	encoded = append(encoded, sum...)
	return
}

// DecodeWithLimit decodes a bech32 string, failing if it is longer than limit.
// A negative limit disables the length check.
func DecodeWithLimit(bech []byte, limit int) (hrp, data []byte, err error) {
	// the minimum is one character of hrp, the separator and the checksum.
	if len(bech) < ChecksumLen+2 || (limit >= 0 && len(bech) > limit) {
		return nil, nil, ErrInvalidLength(len(bech))
	}
	for _, c := range bech {
		if c < 33 || c > 126 {
			return nil, nil, ErrInvalidCharacter(c)
		}
	}
	var lower []byte
	if lower, err = checkCase(bech); err != nil {
		return
	}
	one := bytes.LastIndexByte(lower, Separator)
	if one < 1 || one+ChecksumLen+1 > len(lower) {
		return nil, nil, ErrInvalidSeparatorIndex(one)
	}
	hrp = lower[:one]
	var decoded []byte
	if decoded, err = toBytes(lower[one+1:]); err != nil {
		return nil, nil, err
	}
	if !verifyChecksum(hrp, decoded) {
		payload := decoded[:len(decoded)-ChecksumLen]
		expected, _ := toChars(writeChecksum(hrp, payload))
		return nil, nil, ErrInvalidChecksum{
			Expected: string(expected),
			Actual:   string(lower[len(lower)-ChecksumLen:]),
		}
	}
	data = decoded[:len(decoded)-ChecksumLen]
	return
}

// ConvertBits regroups a byte slice of fromBits sized values into toBits sized
// values, most significant bit first. With pad set a trailing incomplete group
// is zero padded; without it, leftover bits must be fewer than fromBits and
// all zero.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) (regrouped []byte, err error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}
	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1
	regrouped = make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, ErrInvalidDataByte(b)
		}
		acc = (acc<<fromBits | uint32(b)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
	}
	switch {
	case pad:
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
	case bits >= fromBits || acc<<(toBits-bits)&maxv != 0:
		return nil, ErrInvalidIncompleteGroup{}
	}
	return
}

// Convert8to5 regroups bytes into 5 bit values, zero padding the end.
func Convert8to5(data []byte, pad bool) ([]byte, error) { return ConvertBits(data, 8, 5, pad) }

// Convert5to8 regroups 5 bit values back into bytes.
func Convert5to8(data []byte, pad bool) ([]byte, error) { return ConvertBits(data, 5, 8, pad) }

// EncodeFromBase256 converts bytes to 5 bit values and encodes them.
func EncodeFromBase256(hrp, data []byte) (encoded []byte, err error) {
	var b5 []byte
	if b5, err = Convert8to5(data, true); err != nil {
		return
	}
	return Encode(hrp, b5)
}

// DecodeToBase256 decodes a bech32 string no longer than limit and regroups
// the data into bytes. Leftover padding bits must be zero.
func DecodeToBase256(bech []byte, limit int) (hrp, data []byte, err error) {
	var b5 []byte
	if hrp, b5, err = DecodeWithLimit(bech, limit); err != nil {
		return
	}
	if data, err = Convert5to8(b5, false); err != nil {
		return nil, nil, err
	}
	return
}
