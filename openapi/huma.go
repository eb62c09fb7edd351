package openapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
)

// NewHuma creates a huma.API on the router with a Scalar docs UI served at
// docsPath.
func NewHuma(router *ServeMux, name, version, description, docsPath string) (api huma.API) {
	config := huma.DefaultConfig(name, version)
	config.Info.Description = description
	config.DocsPath = ""
	if docsPath == "" {
		docsPath = "/docs"
	}
	router.ServeMux.HandleFunc(docsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="en">
  <head>
    <title>` + name + ` HTTP API</title>
    <meta charset="utf-8" />
    <meta
      name="viewport"
      content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script
      id="api-reference"
      data-url="/openapi.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>`))
	})
	api = humago.New(router, config)
	return
}

// Handler wraps the router so browsers on other origins may call the API.
func Handler(router *ServeMux) http.Handler {
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}
