package openapi

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"nprofile.mleku.dev/bech32encoding"
	"nprofile.mleku.dev/bech32encoding/pointers"
	"nprofile.mleku.dev/chk"
	"nprofile.mleku.dev/log"
	"nprofile.mleku.dev/nip21"
	"nprofile.mleku.dev/pubkey"
)

// EncodeInput is the parameters for the Encode HTTP API method.
type EncodeInput struct {
	Body struct {
		PublicKey string   `json:"pubkey" doc:"public key, 64 hex characters or an npub"`
		Relays    []string `json:"relays,omitempty" doc:"relay URLs where the user's events may be found, in order"`
	}
}

// EncodeOutput is the result of the Encode HTTP API method.
type EncodeOutput struct {
	Body struct {
		NProfile string `json:"nprofile" doc:"bech32 nprofile string"`
		URI      string `json:"uri" doc:"the nprofile as a nostr: URI"`
	}
}

// RegisterEncode is the implementation of the HTTP API Encode method.
func (x *Operations) RegisterEncode(api huma.API) {
	name := "Encode"
	description := "encode a public key and relay hints as an nprofile"
	path := x.path + "/nprofile/encode"
	huma.Register(api, huma.Operation{
		OperationID: name,
		Summary:     name,
		Path:        path,
		Method:      http.MethodPost,
		Tags:        []string{"nprofile"},
		Description: description,
	}, func(ctx context.Context, input *EncodeInput) (output *EncodeOutput, err error) {
		var pk pubkey.T
		if pk, err = bech32encoding.ParsePublicKey(input.Body.PublicKey); chk.D(err) {
			return nil, failure(err)
		}
		relays := input.Body.Relays
		if len(relays) == 0 {
			relays = x.relays
		}
		var s []byte
		if s, err = bech32encoding.EncodeProfile(pointers.New(pk, relays...)); chk.D(err) {
			return nil, failure(err)
		}
		log.D.F("encoded %s with %d relays", pk, len(relays))
		output = &EncodeOutput{}
		output.Body.NProfile = string(s)
		output.Body.URI = string(nip21.ToURI(s))
		return
	})
}
