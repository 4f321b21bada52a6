package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/services"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type VolunteerService interface {
	List(ctx context.Context) ([]*model.Volunteer, error)
	Get(ctx context.Context, id int64) (*model.Volunteer, error)
	Create(ctx context.Context, identity *model.Identity, req model.VolunteerRequest) (*model.Volunteer, error)
	Update(ctx context.Context, id int64, req model.VolunteerRequest) (*model.Volunteer, error)
	Delete(ctx context.Context, id int64) error
}

type VolunteerHandler struct {
	svc VolunteerService
}

func NewVolunteerHandler(svc VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{svc: svc}
}

func RegisterVolunteerRoutes(g *router.Group, h *VolunteerHandler, mw *AuthMiddleware) {
	g.GET("/volunteers", mw.Require(h.List))
	g.POST("/volunteers", mw.Require(h.Create))
	g.GET("/volunteers/{id}", mw.Require(h.Get))
	g.PUT("/volunteers/{id}", mw.Require(h.Update))
	g.DELETE("/volunteers/{id}", mw.Require(h.Delete))
}

func (h *VolunteerHandler) List(ctx *xhttp.RequestCtx) {
	out, err := h.svc.List(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}

func (h *VolunteerHandler) Get(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrVolunteerNotFound)
	if !ok {
		return
	}
	v, err := h.svc.Get(ctx, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, v)
}

func (h *VolunteerHandler) Create(ctx *xhttp.RequestCtx) {
	var req model.VolunteerRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	v, err := h.svc.Create(ctx, IdentityFrom(ctx), req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, v)
}

func (h *VolunteerHandler) Update(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrVolunteerNotFound)
	if !ok {
		return
	}
	var req model.VolunteerRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	v, err := h.svc.Update(ctx, id, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, v)
}

func (h *VolunteerHandler) Delete(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrVolunteerNotFound)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		handleError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Volunteer removed")
}
