package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/services"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type BeneficiaryService interface {
	List(ctx context.Context) ([]*model.Beneficiary, error)
	Get(ctx context.Context, id int64) (*model.Beneficiary, error)
	Create(ctx context.Context, identity *model.Identity, req model.BeneficiaryRequest) (*model.Beneficiary, error)
	Update(ctx context.Context, id int64, req model.BeneficiaryRequest) (*model.Beneficiary, error)
	Delete(ctx context.Context, id int64) error
}

type ContactService interface {
	Submit(ctx context.Context, req model.ContactRequest) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
}

type BeneficiaryHandler struct {
	svc      BeneficiaryService
	contacts ContactService
}

func NewBeneficiaryHandler(svc BeneficiaryService, contacts ContactService) *BeneficiaryHandler {
	return &BeneficiaryHandler{svc: svc, contacts: contacts}
}

// RegisterBeneficiaryRoutes also mounts the public contact form, which
// shares the /beneficiaries prefix.
func RegisterBeneficiaryRoutes(g *router.Group, h *BeneficiaryHandler, mw *AuthMiddleware) {
	g.GET("/beneficiaries", mw.Require(h.List))
	g.POST("/beneficiaries", mw.Require(h.Create))
	g.POST("/beneficiaries/contact", h.SubmitContact)
	g.GET("/beneficiaries/contact/submissions", mw.Require(h.ListContacts))
	g.GET("/beneficiaries/{id}", mw.Require(h.Get))
	g.PUT("/beneficiaries/{id}", mw.Require(h.Update))
	g.DELETE("/beneficiaries/{id}", mw.Require(h.Delete))
}

type contactResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *model.Contact `json:"data"`
}

func (h *BeneficiaryHandler) List(ctx *xhttp.RequestCtx) {
	out, err := h.svc.List(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}

func (h *BeneficiaryHandler) Get(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrBeneficiaryNotFound)
	if !ok {
		return
	}
	b, err := h.svc.Get(ctx, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, b)
}

func (h *BeneficiaryHandler) Create(ctx *xhttp.RequestCtx) {
	var req model.BeneficiaryRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	b, err := h.svc.Create(ctx, IdentityFrom(ctx), req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, b)
}

func (h *BeneficiaryHandler) Update(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrBeneficiaryNotFound)
	if !ok {
		return
	}
	var req model.BeneficiaryRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	b, err := h.svc.Update(ctx, id, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, b)
}

func (h *BeneficiaryHandler) Delete(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrBeneficiaryNotFound)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		handleError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Beneficiary removed")
}

func (h *BeneficiaryHandler) SubmitContact(ctx *xhttp.RequestCtx) {
	var req model.ContactRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	c, err := h.contacts.Submit(ctx, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, contactResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    c,
	})
}

func (h *BeneficiaryHandler) ListContacts(ctx *xhttp.RequestCtx) {
	out, err := h.contacts.List(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}
