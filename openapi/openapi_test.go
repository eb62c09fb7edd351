package openapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"
)

const (
	fiatjafHex  = "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d"
	fiatjafNpub = "npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6"
	nip19       = "nprofile1qqsrhuxx8l9ex335q7he0f09aej04zpazpl0ne2cgukyawd24mayt8gpp4mhxue69uhhytnc9e3k7mgpz4mhxue69uhkg6nzv9ejuumpv34kytnrdaksjlyr9p"
)

type encoded struct {
	NProfile string `json:"nprofile"`
	URI      string `json:"uri"`
}

type decoded struct {
	PublicKey string   `json:"pubkey"`
	Npub      string   `json:"npub"`
	Relays    []string `json:"relays"`
}

func newTestAPI(t *testing.T, relays ...string) humatest.TestAPI {
	_, api := humatest.New(t)
	huma.AutoRegister(api, &Operations{path: "/api", relays: relays})
	return api
}

func TestEncode(t *testing.T) {
	api := newTestAPI(t)
	resp := api.Post("/api/nprofile/encode", map[string]any{
		"pubkey": fiatjafNpub,
		"relays": []string{"wss://r.x.com", "wss://djbas.sadkb.com"},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var out encoded
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, nip19, out.NProfile)
	require.Equal(t, "nostr:"+nip19, out.URI)
}

func TestEncodeDefaultRelays(t *testing.T) {
	api := newTestAPI(t, "wss://default.example.com")
	resp := api.Post("/api/nprofile/encode", map[string]any{"pubkey": fiatjafHex})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var out encoded
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	resp = api.Post("/api/nprofile/decode", map[string]any{"nprofile": out.URI})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var dec decoded
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &dec))
	require.Equal(t, []string{"wss://default.example.com"}, dec.Relays)
}

func TestEncodeBadKey(t *testing.T) {
	api := newTestAPI(t)
	resp := api.Post("/api/nprofile/encode", map[string]any{"pubkey": "npub1nope"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	// right length, not hex.
	resp = api.Post("/api/nprofile/encode", map[string]any{"pubkey": "zz" + fiatjafHex[2:]})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
	require.NotContains(t, resp.Body.String(), "nprofile1")
	resp = api.Post("/api/nprofile/encode", map[string]any{
		"pubkey": fiatjafHex,
		"relays": []string{"wss://" + strings.Repeat("x", 300)},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	require.Contains(t, resp.Body.String(), "EncodingTooLong")
}

func TestDecode(t *testing.T) {
	api := newTestAPI(t)
	resp := api.Post("/api/nprofile/decode", map[string]any{"nprofile": nip19})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var out decoded
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, fiatjafHex, out.PublicKey)
	require.Equal(t, fiatjafNpub, out.Npub)
	require.Equal(t, []string{"wss://r.x.com", "wss://djbas.sadkb.com"}, out.Relays)
}

func TestDecodeFailuresNamed(t *testing.T) {
	api := newTestAPI(t)
	tests := []struct {
		token, reason string
	}{
		{nip19[:len(nip19)-1] + "q", "InvalidChecksum"},
		{fiatjafNpub, "UnknownPrefix"},
		{"nprofile1bbbbbbbbbb", "MalformedCharacters"},
	}
	for _, test := range tests {
		resp := api.Post("/api/nprofile/decode", map[string]any{"nprofile": test.token})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		require.Contains(t, resp.Body.String(), test.reason)
	}
}

func TestServerWithCORS(t *testing.T) {
	sm := NewServeMux()
	New(sm, "nprofile", "test", "nprofile codec", "/api", nil)
	srv := httptest.NewServer(Handler(sm))
	defer srv.Close()

	body, _ := json.Marshal(map[string]any{"nprofile": "nostr:" + nip19})
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/nprofile/decode",
		bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	docs, err := http.Get(srv.URL + "/api")
	require.NoError(t, err)
	defer docs.Body.Close()
	require.Equal(t, http.StatusOK, docs.StatusCode)
	require.Equal(t, "text/html", docs.Header.Get("Content-Type"))
}
