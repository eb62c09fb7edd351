package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"nprofile.mleku.dev/bech32encoding"
	"nprofile.mleku.dev/config"
)

const nip19 = "nprofile1qqsrhuxx8l9ex335q7he0f09aej04zpazpl0ne2cgukyawd24mayt8gpp4mhxue69uhhytnc9e3k7mgpz4mhxue69uhkg6nzv9ejuumpv34kytnrdaksjlyr9p"

func TestEncodeCommand(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.C{}
	err := encode(&buf, cfg, &EncodeCmd{
		PublicKey: "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d",
		Relays:    []string{"wss://r.x.com", "wss://djbas.sadkb.com"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != nip19+"\n" {
		t.Fatalf("got %q", buf.String())
	}
	buf.Reset()
	cfg = &config.C{URI: true, Relays: []string{"wss://r.x.com", "wss://djbas.sadkb.com"}}
	err = encode(&buf, cfg, &EncodeCmd{
		PublicKey: "npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6",
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "nostr:"+nip19+"\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestDecodeCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := decode(&buf, &DecodeCmd{NProfile: "nostr:" + nip19}); err != nil {
		t.Fatal(err)
	}
	var out struct {
		PublicKey string   `json:"pubkey"`
		Npub      string   `json:"npub"`
		Relays    []string `json:"relays"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.PublicKey != "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d" ||
		!strings.HasPrefix(out.Npub, "npub1") || len(out.Relays) != 2 {
		t.Fatalf("unexpected output %s", buf.String())
	}
	err := decode(&buf, &DecodeCmd{NProfile: nip19[:len(nip19)-1] + "q"})
	if !errors.Is(err, bech32encoding.ErrInvalidChecksum) {
		t.Fatalf("expected checksum error, got %v", err)
	}
}
