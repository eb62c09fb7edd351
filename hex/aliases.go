// Package hex wraps the standard library hex codec with the SIMD accelerated
// xhex encoder for the append variants used on hot paths. Decoding goes
// through the standard library, which rejects characters that are not hex.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"

	"nprofile.mleku.dev/chk"
)

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the hex encoding of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend appends the bytes decoded from the hex in src to dst. src must be
// of even length and hold only hex digits, in either case.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = hex.ErrLength
		return
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if _, err = hex.Decode(b[l:], src); chk.D(err) {
		return dst, err
	}
	return
}
