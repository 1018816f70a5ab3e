// Package httpapi exposes the arrangement engine over HTTP so a dashboard
// frontend can delegate layout decisions to the server.
//
// The API is stateless: every request carries the full layout and every
// response returns the resulting layout. Nothing is persisted between
// requests - layout lifecycle stays with the caller, matching the engine's
// contract.
//
// # Endpoints
//
//	GET  /v1/healthz          liveness probe
//	POST /v1/layout/compact   remove vertical gaps
//	POST /v1/layout/bounds    clip items into a column count
//	POST /v1/layout/move      move one item with cascading displacement
//	POST /v1/layout/classify  classify a drop pointer into a placeholder
//	POST /v1/layout/drop      apply a drop decision
//
// Validation failures return 400 with the structured error code; a layout
// that passes validation never fails arbitration, so other statuses are
// 404 (unknown route) and 500 (handler panic).
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/openlayout/gridarb/pkg/errors"
	"github.com/openlayout/gridarb/pkg/grid"
	"github.com/openlayout/gridarb/pkg/grid/drop"
	"github.com/openlayout/gridarb/pkg/layoutio"
	"github.com/openlayout/gridarb/pkg/observability"
)

// Server arbitrates layouts over HTTP.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// NewServer builds the router with its middleware chain. A nil logger
// falls back to the default logger.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/v1/healthz", s.handleHealthz)
	r.Post("/v1/layout/compact", s.handleCompact)
	r.Post("/v1/layout/bounds", s.handleBounds)
	r.Post("/v1/layout/move", s.handleMove)
	r.Post("/v1/layout/classify", s.handleClassify)
	r.Post("/v1/layout/drop", s.handleDrop)

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// requestLog tags each request with a correlation id, logs it, and feeds
// the server hooks.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		s.logger.Debug("request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed.Round(time.Microsecond),
		)
		observability.Server().OnRequest(r.Context(), r.URL.Path, ww.Status(), elapsed)
	})
}

// =============================================================================
// Payloads
// =============================================================================

type compactRequest struct {
	Items           []layoutio.WireItem `json:"items"`
	VerticalCompact *bool               `json:"verticalCompact,omitempty"`
}

type boundsRequest struct {
	Items []layoutio.WireItem `json:"items"`
	Cols  float64             `json:"cols"`
}

type moveRequest struct {
	Items            []layoutio.WireItem `json:"items"`
	ID               string              `json:"id"`
	X                *float64            `json:"x,omitempty"`
	Y                *float64            `json:"y,omitempty"`
	UserAction       bool                `json:"userAction"`
	PreventCollision bool                `json:"preventCollision"`
}

type classifyRequest struct {
	Items     []layoutio.WireItem `json:"items"`
	DraggedID string              `json:"draggedId"`
	X         float64             `json:"x"`
	Y         float64             `json:"y"`
}

type placeholderJSON struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Pos      string  `json:"pos"`
	TargetID string  `json:"targetId"`
}

type dropRequest struct {
	Items       []layoutio.WireItem `json:"items"`
	DraggedID   string              `json:"draggedId"`
	Placeholder placeholderJSON     `json:"placeholder"`
}

type layoutResponse struct {
	Items []layoutio.WireItem `json:"items"`
}

type classifyResponse struct {
	Placeholder *placeholderJSON `json:"placeholder"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCompact(w http.ResponseWriter, r *http.Request) {
	var req compactRequest
	l, ok := s.decodeLayout(w, r, &req, func() []layoutio.WireItem { return req.Items })
	if !ok {
		return
	}

	vertical := true
	if req.VerticalCompact != nil {
		vertical = *req.VerticalCompact
	}

	start := time.Now()
	observability.Layout().OnCompactStart(r.Context(), len(l))
	out := grid.Compact(l, vertical)
	observability.Layout().OnCompactComplete(r.Context(), time.Since(start))

	writeJSON(w, http.StatusOK, layoutResponse{Items: layoutio.ToWire(out)})
}

func (s *Server) handleBounds(w http.ResponseWriter, r *http.Request) {
	var req boundsRequest
	l, ok := s.decodeLayout(w, r, &req, func() []layoutio.WireItem { return req.Items })
	if !ok {
		return
	}
	if err := errors.ValidateColumns(req.Cols); err != nil {
		s.writeError(w, err)
		return
	}

	out := grid.CorrectBounds(l, req.Cols)
	writeJSON(w, http.StatusOK, layoutResponse{Items: layoutio.ToWire(out)})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	l, ok := s.decodeLayout(w, r, &req, func() []layoutio.WireItem { return req.Items })
	if !ok {
		return
	}
	if l.Find(req.ID) == nil {
		s.writeError(w, errors.New(errors.ErrCodeItemNotFound, "no item %q in layout", req.ID))
		return
	}

	to := grid.Position{}
	switch {
	case req.X != nil && req.Y != nil:
		to = grid.At(*req.X, *req.Y)
	case req.X != nil:
		to = grid.AtX(*req.X)
	case req.Y != nil:
		to = grid.AtY(*req.Y)
	}

	start := time.Now()
	observability.Layout().OnMoveStart(r.Context(), req.ID, len(l))
	out := grid.MoveElement(l, req.ID, to, req.UserAction, req.PreventCollision)
	rejected := req.PreventCollision && sameLayout(l, out)
	observability.Layout().OnMoveComplete(r.Context(), req.ID, time.Since(start), rejected)

	writeJSON(w, http.StatusOK, layoutResponse{Items: layoutio.ToWire(out)})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	l, ok := s.decodeLayout(w, r, &req, func() []layoutio.WireItem { return req.Items })
	if !ok {
		return
	}
	if err := errors.ValidatePoint(req.X, req.Y); err != nil {
		s.writeError(w, err)
		return
	}

	ph := drop.ClassifyPointer(l, req.DraggedID, req.X, req.Y)
	resp := classifyResponse{}
	if ph != nil {
		resp.Placeholder = &placeholderJSON{
			X: ph.X, Y: ph.Y, W: ph.W, H: ph.H,
			Pos:      string(ph.Pos),
			TargetID: ph.TargetID,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	l, ok := s.decodeLayout(w, r, &req, func() []layoutio.WireItem { return req.Items })
	if !ok {
		return
	}

	ph := &drop.Placeholder{
		X: req.Placeholder.X, Y: req.Placeholder.Y,
		W: req.Placeholder.W, H: req.Placeholder.H,
		Pos:      drop.Pos(req.Placeholder.Pos),
		TargetID: req.Placeholder.TargetID,
	}

	start := time.Now()
	out := drop.ApplyDrop(l, req.DraggedID, ph)
	observability.Layout().OnDropResolved(r.Context(), req.DraggedID, req.Placeholder.Pos, time.Since(start))

	writeJSON(w, http.StatusOK, layoutResponse{Items: layoutio.ToWire(out)})
}

// =============================================================================
// Helpers
// =============================================================================

// decodeLayout decodes the request body into req, then validates and
// converts the items returned by items(). On failure it writes the error
// response and returns ok=false.
func (s *Server) decodeLayout(w http.ResponseWriter, r *http.Request, req any, items func() []layoutio.WireItem) (grid.Layout, bool) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request"))
		return nil, false
	}
	l := layoutio.FromWire(items())
	if err := errors.ValidateLayout(l); err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return l, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeItemNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidItem,
		errors.ErrCodeDuplicateID, errors.ErrCodeInvalidColumns, errors.ErrCodeInvalidPosition,
		errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case "":
		code = errors.ErrCodeInternal
	}
	s.logger.Debug("request failed", "code", code, "err", err)
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// sameLayout reports whether two layouts agree on geometry slot by slot,
// used to detect a preventCollision rollback.
func sameLayout(a, b grid.Layout) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].X != b[i].X || a[i].Y != b[i].Y ||
			a[i].W != b[i].W || a[i].H != b[i].H {
			return false
		}
	}
	return true
}
