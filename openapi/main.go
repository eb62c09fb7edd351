// Package openapi is an HTTP API for encoding and decoding nprofile strings,
// described by an OpenAPI document generated with huma.
package openapi

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"nprofile.mleku.dev/bech32encoding"
)

// Operations carries what the API methods need. Relays are the relay hints
// used when an encode request gives none.
type Operations struct {
	path   string
	relays []string
}

// New creates the API on sm and registers the methods of Operations on it
// under path.
func New(sm *ServeMux, name, version, description, path string,
	relays []string) (api huma.API) {

	api = NewHuma(sm, name, version, description, path)
	huma.AutoRegister(api, &Operations{path: path, relays: relays})
	return
}

// failure turns a codec error into a 422 response that names the failure.
func failure(err error) huma.StatusError {
	reason := bech32encoding.Reason(err)
	if reason == "" {
		reason = "InvalidInput"
	}
	return huma.Error422UnprocessableEntity(fmt.Sprintf("%s: %s", reason, err))
}
