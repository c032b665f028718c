// Package api serves vector evaluations over HTTP.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/vecop/internal/hwcaps"
	"github.com/samcharles93/vecop/internal/logger"
	"github.com/samcharles93/vecop/internal/store"
	"github.com/samcharles93/vecop/internal/vecop"
)

type Server struct {
	dispatcher *vecop.Dispatcher
	store      store.Store
	log        logger.Logger
	clock      func() time.Time
	host       hwcaps.Features
}

func NewServer(d *vecop.Dispatcher, st store.Store, log logger.Logger) *Server {
	if st == nil {
		st = store.NewMemory()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		dispatcher: d,
		store:      st,
		log:        log,
		clock:      time.Now,
		host:       hwcaps.Detect(),
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.GET("/v1/tiers", s.handleTiers)

	e.POST("/v1/evaluations", s.handleCreateEvaluation)
	e.GET("/v1/evaluations", s.handleListEvaluations)
	e.GET("/v1/evaluations/:id", s.handleGetEvaluation)
	e.DELETE("/v1/evaluations/:id", s.handleDeleteEvaluation)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTiers(c *echo.Context) error {
	routes := s.dispatcher.Routes()
	resp := TiersResponse{
		Object:   "tiers",
		Host:     s.host,
		Compiled: []string{},
		Routes:   make([]vecop.RouteSummary, 0, len(routes)),
	}
	for _, t := range vecop.CompiledTiers() {
		resp.Compiled = append(resp.Compiled, t.String())
	}
	for _, r := range routes {
		resp.Routes = append(resp.Routes, r.Summary())
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCreateEvaluation(c *echo.Context) error {
	req, err := decodeJSON[EvaluationRequest](c.Request().Body)
	if err != nil {
		return writeDispatchError(c, err)
	}
	typ, err := vecop.ParseElementType(req.Type)
	if err != nil {
		return writeDispatchError(c, err)
	}
	op := vecop.ParseOperator(req.Op)
	width := vecop.Width(req.Width)

	result, sel, err := evaluate(s.dispatcher, typ, op, width, req.A, req.B)
	if err != nil {
		s.log.Debug("evaluation rejected", "type", typ, "op", req.Op, "width", req.Width, "error", err)
		return writeDispatchError(c, err)
	}

	ev := store.Evaluation{
		ID:             newEvaluationID(),
		Object:         "evaluation",
		CreatedAt:      s.clock().Unix(),
		Type:           typ.String(),
		Op:             op.String(),
		Width:          int(width),
		Tier:           sel.Tier.String(),
		Fallback:       sel.Fallback,
		ScalarByDesign: sel.ScalarByDesign(),
		A:              req.A,
		B:              req.B,
		Result:         result,
	}
	if err := s.store.Put(c.Request().Context(), ev); err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	s.log.Debug("evaluation stored", "id", ev.ID, "tier", ev.Tier, "fallback", ev.Fallback)
	return c.JSON(http.StatusOK, ev)
}

func (s *Server) handleListEvaluations(c *echo.Context) error {
	limit, err := parseLimit(c.Request().URL.Query().Get("limit"))
	if err != nil {
		return writeDispatchError(c, err)
	}
	evs, err := s.store.List(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	if evs == nil {
		evs = []store.Evaluation{}
	}
	return c.JSON(http.StatusOK, EvaluationList{Object: "list", Data: evs})
}

func (s *Server) handleGetEvaluation(c *echo.Context) error {
	ev, err := s.store.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return writeNotFound(c, "evaluation not found")
	}
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	return c.JSON(http.StatusOK, ev)
}

func (s *Server) handleDeleteEvaluation(c *echo.Context) error {
	id := c.Param("id")
	err := s.store.Delete(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return writeNotFound(c, "evaluation not found")
	}
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	return c.JSON(http.StatusOK, DeleteEvaluationResp{ID: id, Object: "evaluation", Deleted: true})
}
