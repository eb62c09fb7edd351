package main

import (
	"encoding/json"
	"fmt"
	"io"

	"nprofile.mleku.dev/bech32encoding"
	"nprofile.mleku.dev/bech32encoding/pointers"
	"nprofile.mleku.dev/chk"
	"nprofile.mleku.dev/config"
	"nprofile.mleku.dev/nip21"
	"nprofile.mleku.dev/pubkey"
)

// profileJSON is how a decoded profile is printed.
type profileJSON struct {
	PublicKey pubkey.T `json:"pubkey"`
	Npub      string   `json:"npub"`
	Relays    []string `json:"relays"`
}

func encode(w io.Writer, cfg *config.C, c *EncodeCmd) (err error) {
	var pk pubkey.T
	if pk, err = bech32encoding.ParsePublicKey(c.PublicKey); chk.D(err) {
		return
	}
	relays := c.Relays
	if len(relays) == 0 {
		relays = cfg.Relays
	}
	var s []byte
	if s, err = bech32encoding.EncodeProfile(pointers.New(pk, relays...)); chk.D(err) {
		return
	}
	if c.URI || cfg.URI {
		s = nip21.ToURI(s)
	}
	_, err = fmt.Fprintf(w, "%s\n", s)
	return
}

func decode(w io.Writer, c *DecodeCmd) (err error) {
	var p *pointers.Profile
	if p, err = nip21.DecodeProfileAny([]byte(c.NProfile)); chk.D(err) {
		return
	}
	var npub []byte
	if npub, err = bech32encoding.EncodeNpub(p.PublicKey); chk.E(err) {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(profileJSON{PublicKey: p.PublicKey, Npub: string(npub),
		Relays: p.Relays})
}
