package openapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"nprofile.mleku.dev/bech32encoding"
	"nprofile.mleku.dev/bech32encoding/pointers"
	"nprofile.mleku.dev/chk"
	"nprofile.mleku.dev/nip21"
)

// DecodeInput is the parameters for the Decode HTTP API method.
type DecodeInput struct {
	Body struct {
		NProfile string `json:"nprofile" doc:"nprofile string, bare or as a nostr: URI"`
	}
}

// DecodeOutput is the result of the Decode HTTP API method.
type DecodeOutput struct {
	Body struct {
		PublicKey string   `json:"pubkey" doc:"public key in hex"`
		Npub      string   `json:"npub" doc:"public key as an npub"`
		Relays    []string `json:"relays" doc:"relay hints in the order they were encoded"`
	}
}

// RegisterDecode is the implementation of the HTTP API Decode method.
func (x *Operations) RegisterDecode(api huma.API) {
	name := "Decode"
	description := "decode an nprofile into its public key and relay hints; " +
		"failures are reported as 422 with the name of the failure first in the detail"
	path := x.path + "/nprofile/decode"
	huma.Register(api, huma.Operation{
		OperationID: name,
		Summary:     name,
		Path:        path,
		Method:      http.MethodPost,
		Tags:        []string{"nprofile"},
		Description: description,
	}, func(ctx context.Context, input *DecodeInput) (output *DecodeOutput, err error) {
		var p *pointers.Profile
		if p, err = nip21.DecodeProfileAny([]byte(input.Body.NProfile)); chk.D(err) {
			return nil, failure(err)
		}
		var npub []byte
		if npub, err = bech32encoding.EncodeNpub(p.PublicKey); chk.E(err) {
			return nil, huma.Error500InternalServerError(err.Error())
		}
		output = &DecodeOutput{}
		output.Body.PublicKey = p.PublicKey.Hex()
		output.Body.Npub = string(npub)
		output.Body.Relays = p.Relays
		return
	})
}
