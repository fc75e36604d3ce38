package api

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init --dir ../../cmd/antigone,./v1,./v1/dto,. --generalInfo main.go --output . --outputTypes json

//go:embed swagger.json
var swaggerSpec embed.FS

// documentedBasePath is the @BasePath the embedded document was generated with.
const documentedBasePath = "/AntigoneApp"

// SwaggerUIHTML returns the HTML page that renders the document at specURL.
func SwaggerUIHTML(specURL string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Antigone API Documentation</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" charset="UTF-8"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: "` + specURL + `",
                dom_id: '#swagger-ui',
                deepLinking: true
            });
        };
    </script>
</body>
</html>`
}

// DocsRouter serves Swagger UI and the API document.
type DocsRouter struct {
	specURL  string
	basePath string
}

// NewDocsRouter creates a DocsRouter. The served document advertises
// basePath so that "Try it out" hits the routes as mounted.
func NewDocsRouter(specURL, basePath string) *DocsRouter {
	if basePath == "" {
		basePath = "/"
	}
	return &DocsRouter{specURL: specURL, basePath: basePath}
}

// Routes returns the chi router for the documentation endpoints.
func (d *DocsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(SwaggerUIHTML(d.specURL)))
	})

	router.Get("/swagger.json", func(w http.ResponseWriter, _ *http.Request) {
		data, err := fs.ReadFile(swaggerSpec, "swagger.json")
		if err != nil {
			http.Error(w, "Spec not found", http.StatusNotFound)
			return
		}
		data = bytes.ReplaceAll(data,
			[]byte(`"basePath": `+strconv.Quote(documentedBasePath)),
			[]byte(`"basePath": `+strconv.Quote(d.basePath)),
		)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})

	return router
}
