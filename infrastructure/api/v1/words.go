package v1

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/antigone"
	"github.com/helixml/antigone/infrastructure/api/middleware"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
)

// WordsRouter handles word lookup endpoints.
type WordsRouter struct {
	client *antigone.Client
	logger *slog.Logger
}

// NewWordsRouter creates a new WordsRouter.
func NewWordsRouter(client *antigone.Client) *WordsRouter {
	return &WordsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns a chi router serving the word endpoints.
func (r *WordsRouter) Routes() chi.Router {
	router := chi.NewRouter()
	r.Register(router)
	return router
}

// Register adds the word endpoints to router.
func (r *WordsRouter) Register(router chi.Router) {
	router.Get("/word-details/{word}", r.Details)
	router.Get("/api/word-details/{word}", r.Details)
}

// Details handles GET /word-details/{word}.
//
//	@Summary		Look up a word
//	@Description	Get every lexicon entry for a surface form, punctuation stripped
//	@Tags			words
//	@Produce		json
//	@Param			word	path		string	true	"Surface form"
//	@Success		200		{array}		[]interface{}	"Positional [info, case, definitions] entries"
//	@Failure		404		{object}	dto.Error
//	@Router			/word-details/{word} [get]
//	@Router			/api/word-details/{word} [get]
func (r *WordsRouter) Details(w http.ResponseWriter, req *http.Request) {
	word := chi.URLParam(req, "word")
	if unescaped, err := url.PathUnescape(word); err == nil {
		word = unescaped
	}

	entries, err := r.client.Lexicon.Lookup(req.Context(), word)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewEntries(entries))
}
