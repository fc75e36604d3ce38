package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/helixml/antigone"
	apimiddleware "github.com/helixml/antigone/infrastructure/api/middleware"
	v1 "github.com/helixml/antigone/infrastructure/api/v1"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
	"github.com/helixml/antigone/internal/config"
	mcpinternal "github.com/helixml/antigone/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// APIServer provides the reader's HTTP API backed by an antigone Client.
type APIServer struct {
	client  *antigone.Client
	cfg     config.AppConfig
	version string
	server  *Server
	mounted bool
	logger  *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given Client.
func NewAPIServer(client *antigone.Client, cfg config.AppConfig, version string) *APIServer {
	return &APIServer{
		client:  client,
		cfg:     cfg,
		version: version,
		logger:  client.Logger(),
	}
}

// Router returns the chi router for customization before starting. Add
// middleware with router.Use() before the first call to Handler or
// ListenAndServe.
func (a *APIServer) Router() chi.Router {
	return a.httpServer().Router()
}

// Handler returns the API as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	router := a.Router()
	if !a.mounted {
		a.mountRoutes(router)
		a.mounted = true
	}
	return router
}

// mountRoutes wires the reader endpoints under the base path, plus the
// health check, the API docs and the MCP endpoint at the root. The health
// check is also served under the base path, where the API document places it.
func (a *APIServer) mountRoutes(router chi.Router) {
	c := a.client

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.cfg.CORSOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", apimiddleware.CorrelationIDHeader},
		ExposedHeaders: []string{apimiddleware.CorrelationIDHeader},
		MaxAge:         300,
	}))

	router.Get("/health", a.health)

	routes := func(r chi.Router) {
		r.Use(chimiddleware.Throttle(a.cfg.MaxConcurrentRequests()))
		r.Use(chimiddleware.Timeout(a.cfg.RequestTimeout()))

		v1.NewLinesRouter(c).Register(r)
		v1.NewWordsRouter(c).Register(r)
		v1.NewSearchRouter(c).Register(r)
	}
	if base := a.cfg.BasePath(); base != "" {
		router.Route(base, func(r chi.Router) {
			routes(r)
			r.Get("/health", a.health)
		})
	} else {
		router.Group(routes)
	}

	router.Mount("/docs", NewDocsRouter("/docs/swagger.json", a.cfg.BasePath()).Routes())

	mcpSrv := mcpinternal.NewServer(c.Reader, c.Lexicon, c.Search, a.version, a.logger)
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
}

// health handles GET /health.
//
//	@Summary		Health check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	dto.Health
//	@Router			/health [get]
func (a *APIServer) health(w http.ResponseWriter, _ *http.Request) {
	apimiddleware.WriteJSON(w, http.StatusOK, dto.Health{Status: "ok"})
}

// ListenAndServe starts the HTTP server on the configured address.
func (a *APIServer) ListenAndServe() error {
	a.Handler()
	return a.server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

func (a *APIServer) httpServer() *Server {
	if a.server == nil {
		a.server = NewServer(a.cfg.Addr(), a.logger)
	}
	return a.server
}
