package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/services"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	Get(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, identity *model.Identity, req model.EventRequest) (*model.Event, error)
	Update(ctx context.Context, id int64, req model.EventRequest) (*model.Event, error)
	Delete(ctx context.Context, id int64) error
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func RegisterEventRoutes(g *router.Group, h *EventHandler, mw *AuthMiddleware) {
	g.GET("/events", mw.Require(h.List))
	g.POST("/events", mw.Require(h.Create))
	g.GET("/events/{id}", mw.Require(h.Get))
	g.PUT("/events/{id}", mw.Require(h.Update))
	g.DELETE("/events/{id}", mw.Require(h.Delete))
}

func (h *EventHandler) List(ctx *xhttp.RequestCtx) {
	out, err := h.svc.List(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}

func (h *EventHandler) Get(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrEventNotFound)
	if !ok {
		return
	}
	e, err := h.svc.Get(ctx, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, e)
}

func (h *EventHandler) Create(ctx *xhttp.RequestCtx) {
	var req model.EventRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	e, err := h.svc.Create(ctx, IdentityFrom(ctx), req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, e)
}

func (h *EventHandler) Update(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrEventNotFound)
	if !ok {
		return
	}
	var req model.EventRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	e, err := h.svc.Update(ctx, id, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, e)
}

func (h *EventHandler) Delete(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrEventNotFound)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		handleError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Event removed")
}
