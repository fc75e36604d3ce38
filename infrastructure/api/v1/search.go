package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/antigone"
	"github.com/helixml/antigone/infrastructure/api/middleware"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
)

// SearchRouter handles search and speaker endpoints.
type SearchRouter struct {
	client *antigone.Client
	logger *slog.Logger
}

// NewSearchRouter creates a new SearchRouter.
func NewSearchRouter(client *antigone.Client) *SearchRouter {
	return &SearchRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns a chi router serving the search endpoints.
func (r *SearchRouter) Routes() chi.Router {
	router := chi.NewRouter()
	r.Register(router)
	return router
}

// Register adds the search and speaker endpoints to router.
func (r *SearchRouter) Register(router chi.Router) {
	router.Get("/search", r.Search)
	router.Get("/get_all_speakers", r.Speakers)
}

// Search handles GET /search?mode={word|definition}&q={text}.
//
//	@Summary		Search the lexicon
//	@Description	Match lemmas by form or definitions by English gloss
//	@Tags			search
//	@Produce		json
//	@Param			mode	query		string	true	"Search mode"	Enums(word, definition)
//	@Param			q		query		string	false	"Search text"
//	@Success		200		{array}		[]interface{}	"Positional [info, case, definitions] entries"
//	@Failure		400		{object}	dto.Error
//	@Router			/search [get]
func (r *SearchRouter) Search(w http.ResponseWriter, req *http.Request) {
	params := req.URL.Query()

	entries, err := r.client.Search.Search(req.Context(), params.Get("mode"), params.Get("q"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewEntries(entries))
}

// Speakers handles GET /get_all_speakers.
//
//	@Summary		List speakers
//	@Description	Get every distinct speaker, sorted
//	@Tags			search
//	@Produce		json
//	@Success		200	{array}		string
//	@Failure		500	{object}	dto.Error
//	@Router			/get_all_speakers [get]
func (r *SearchRouter) Speakers(w http.ResponseWriter, req *http.Request) {
	speakers, err := r.client.Reader.Speakers(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, speakers)
}
