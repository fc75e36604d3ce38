package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/antigone"
	"github.com/helixml/antigone/infrastructure/api/middleware"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
)

// LinesRouter handles line and page endpoints.
type LinesRouter struct {
	client *antigone.Client
	logger *slog.Logger
}

// NewLinesRouter creates a new LinesRouter.
func NewLinesRouter(client *antigone.Client) *LinesRouter {
	return &LinesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns a chi router serving the line endpoints.
func (r *LinesRouter) Routes() chi.Router {
	router := chi.NewRouter()
	r.Register(router)
	return router
}

// Register adds the line endpoints to router. Paths are relative to the
// base path the router is mounted at.
func (r *LinesRouter) Register(router chi.Router) {
	router.Get("/lines/{start}", r.Line)
	router.Get("/lines/{start}/{end}", r.Range)
	router.Get("/read/{page}", r.Page)
	router.Get("/api/read/{page}", r.Page)
}

// Line handles GET /lines/{start}.
//
//	@Summary		Get a line
//	@Description	Get one line of the text with its speaker
//	@Tags			lines
//	@Produce		json
//	@Param			start	path		int	true	"Line number"
//	@Success		200		{array}		dto.Line
//	@Failure		400		{object}	dto.Error
//	@Failure		404		{object}	dto.Error
//	@Router			/lines/{start} [get]
func (r *LinesRouter) Line(w http.ResponseWriter, req *http.Request) {
	reader := r.client.Reader

	n, err := reader.ParseLineNumber(chi.URLParam(req, "start"), "start line")
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	line, err := reader.Line(req.Context(), n)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, []dto.Line{dto.NewLine(line)})
}

// Range handles GET /lines/{start}/{end}.
//
//	@Summary		Get a line range
//	@Description	Get every line in [start, end]; missing lines have null text and speaker
//	@Tags			lines
//	@Produce		json
//	@Param			start	path		int	true	"First line"
//	@Param			end		path		int	true	"Last line"
//	@Success		200		{array}		dto.Line
//	@Failure		400		{object}	dto.Error
//	@Router			/lines/{start}/{end} [get]
func (r *LinesRouter) Range(w http.ResponseWriter, req *http.Request) {
	reader := r.client.Reader

	start, err := reader.ParseLineNumber(chi.URLParam(req, "start"), "start line")
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	end, err := reader.ParseLineNumber(chi.URLParam(req, "end"), "end line")
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	lines, err := reader.Lines(req.Context(), start, end)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewLines(lines))
}

// Page handles GET /read/{page} and its legacy /api/read/{page} alias.
// A page that is not a number is reported as out of range.
//
//	@Summary		Read a page
//	@Description	Get the lines of a fixed-size reading page
//	@Tags			lines
//	@Produce		json
//	@Param			page	path		int	true	"Page number"
//	@Success		200		{array}		dto.Line
//	@Failure		400		{object}	dto.Error
//	@Router			/read/{page} [get]
//	@Router			/api/read/{page} [get]
func (r *LinesRouter) Page(w http.ResponseWriter, req *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(req, "page"))
	if err != nil {
		page = 0
	}

	lines, err := r.client.Reader.Page(req.Context(), page)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NewLines(lines))
}
