package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gridnav/pkg/engine/pathfinding"
	"gridnav/pkg/server"
	"gridnav/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus"
)

type PathfindingService interface {
	ShortestPath(ctx context.Context, cells [][]int,
		start, end pathfinding.Position, heuristicName string) ([]pathfinding.Position, bool, error)
}

type PathfindingHandler struct {
	svc          PathfindingService
	promeMetrics *metrics
}

func PathfindingRouter(r *chi.Mux, svc PathfindingService, m *metrics) {
	handler := &PathfindingHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/pathfinding", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Get("/hello", handler.Hello)
		})
	})
}

// CellPos model info
//
//	@Description	one grid cell coordinate (row, col)
type CellPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ShortestPathRequest model info
//
//	@Description	request body for a shortest path query between two cells of a grid snapshot
type ShortestPathRequest struct {
	Grid      [][]int  `json:"grid" validate:"required,min=1,dive,min=1"`
	Start     *CellPos `json:"start" validate:"required"`
	End       *CellPos `json:"end" validate:"required"`
	Heuristic string   `json:"heuristic" validate:"omitempty,oneof=manhattan chebyshev"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if len(s.Grid) == 0 || s.Start == nil || s.End == nil {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse	model info
//
//	@Description	response body for a shortest path query. found=false means no route exists through the submitted grid
type ShortestPathResponse struct {
	Found bool                   `json:"found"`
	Path  []pathfinding.Position `json:"path"`
	Cost  int                    `json:"cost"`
	Alg   string                 `json:"algorithm"`
}

func NewShortestPathResponse(path []pathfinding.Position, found bool) *ShortestPathResponse {
	cost := 0
	if found && len(path) > 0 {
		cost = len(path) - 1
	}
	return &ShortestPathResponse{
		Found: found,
		Path:  path,
		Cost:  cost,
		Alg:   "A* Algorithm",
	}
}

// shortestPath
//
//	@Summary		shortest path query between two cells of a 2D grid.
//	@Description	runs A* over the submitted grid snapshot. A cell value of 1 is solid, any other value is free. Movement is 4-directional with unit cost.
//	@Tags			pathfinding
//	@Param			body	body	ShortestPathRequest	true	"grid snapshot plus start and end cell"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/pathfinding/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *PathfindingHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	start := pathfinding.Position{Row: data.Start.Row, Col: data.Start.Col}
	end := pathfinding.Position{Row: data.End.Row, Col: data.End.Col}

	path, found, err := h.svc.ShortestPath(r.Context(), data.Grid, start, end, data.Heuristic)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	heuristicName := data.Heuristic
	if heuristicName == "" {
		heuristicName = service.HeuristicManhattan
	}
	h.promeMetrics.SPQueryCount.With(prometheus.Labels{"heuristic": heuristicName}).Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(path, found))
}

func (h *PathfindingHandler) Hello(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, "Hello, World!")
}

// ErrResponse model info
//
//	@Description	model for error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 422,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	} else {
		switch ierr.Code() {
		case server.ErrInternalServerError:
			return http.StatusInternalServerError
		case server.ErrNotFound:
			return http.StatusNotFound
		case server.ErrConflict:
			return http.StatusConflict
		case server.ErrBadParamInput:
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
