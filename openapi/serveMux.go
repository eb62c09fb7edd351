package openapi

import (
	"net/http"

	"nprofile.mleku.dev/log"
)

// ServeMux is the router of the HTTP API.
type ServeMux struct {
	*http.ServeMux
}

func NewServeMux() *ServeMux {
	return &ServeMux{http.NewServeMux()}
}

func (c *ServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.T.F("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
	c.ServeMux.ServeHTTP(w, r)
}
