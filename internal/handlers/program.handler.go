package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/services"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type ProgramService interface {
	ListActive(ctx context.Context) ([]model.ProgramSummary, error)
	Featured(ctx context.Context) ([]*model.Program, error)
	ListAll(ctx context.Context) ([]*model.Program, error)
	GetBySlug(ctx context.Context, slug string) (*model.Program, error)
	Create(ctx context.Context, identity *model.Identity, req model.ProgramRequest) (*model.Program, error)
	Update(ctx context.Context, id int64, req model.ProgramRequest) (*model.Program, error)
	Delete(ctx context.Context, id int64) error
}

type ProgramHandler struct {
	svc ProgramService
}

func NewProgramHandler(svc ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

// RegisterProgramRoutes mounts the public catalogue and the staff routes.
// Reads address programs by slug, writes by numeric id.
func RegisterProgramRoutes(g *router.Group, h *ProgramHandler, mw *AuthMiddleware) {
	g.GET("/programs", h.ListActive)
	g.GET("/programs/featured", h.Featured)
	g.GET("/programs/admin/all", mw.Require(h.ListAll))
	g.GET("/programs/{slug}", h.GetBySlug)
	g.POST("/programs", mw.Require(h.Create))
	g.PUT("/programs/{id}", mw.Require(h.Update))
	g.DELETE("/programs/{id}", mw.Require(h.Delete))
}

func (h *ProgramHandler) ListActive(ctx *xhttp.RequestCtx) {
	out, err := h.svc.ListActive(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}

func (h *ProgramHandler) Featured(ctx *xhttp.RequestCtx) {
	out, err := h.svc.Featured(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}

func (h *ProgramHandler) ListAll(ctx *xhttp.RequestCtx) {
	out, err := h.svc.ListAll(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}

func (h *ProgramHandler) GetBySlug(ctx *xhttp.RequestCtx) {
	p, err := h.svc.GetBySlug(ctx, pathParam(ctx, "slug"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, p)
}

func (h *ProgramHandler) Create(ctx *xhttp.RequestCtx) {
	var req model.ProgramRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	p, err := h.svc.Create(ctx, IdentityFrom(ctx), req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, p)
}

func (h *ProgramHandler) Update(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrProgramNotFound)
	if !ok {
		return
	}
	var req model.ProgramRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	p, err := h.svc.Update(ctx, id, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, p)
}

func (h *ProgramHandler) Delete(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrProgramNotFound)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		handleError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Program removed")
}
