package pubkey

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

const fiatjaf = "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d"

func TestFromHex(t *testing.T) {
	pk, err := FromHex(fiatjaf)
	require.NoError(t, err)
	require.Equal(t, fiatjaf, pk.Hex())
	require.Equal(t, byte(0x3b), pk[0])

	upper, err := FromHex(strings.ToUpper(fiatjaf))
	require.NoError(t, err)
	require.True(t, pk.Equal(upper))

	_, err = FromHex(fiatjaf[:62])
	require.True(t, errors.Is(err, ErrInvalidLength))

	_, err = FromHex("zz" + fiatjaf[2:])
	require.Error(t, err)
}

func TestFromBytes(t *testing.T) {
	b := frand.Bytes(Len)
	pk, err := FromBytes(b)
	require.NoError(t, err)
	require.Equal(t, b, pk.Bytes())
	// the key does not alias the input.
	b[0] ^= 0xff
	require.NotEqual(t, b, pk.Bytes())

	_, err = FromBytes(b[:31])
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = FromBytes(append(b, 0))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestJSON(t *testing.T) {
	pk, err := FromHex(fiatjaf)
	require.NoError(t, err)
	j, err := json.Marshal(struct {
		PK T `json:"pubkey"`
	}{pk})
	require.NoError(t, err)
	require.Equal(t, `{"pubkey":"`+fiatjaf+`"}`, string(j))
	var back struct {
		PK T `json:"pubkey"`
	}
	require.NoError(t, json.Unmarshal(j, &back))
	require.Equal(t, pk, back.PK)
}
