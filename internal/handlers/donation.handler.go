package handlers

import (
	"context"
	"errors"

	"github.com/fasthttp/router"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/services"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type DonationService interface {
	List(ctx context.Context) ([]*model.Donation, error)
	Get(ctx context.Context, id int64) (*model.Donation, error)
	Create(ctx context.Context, identity *model.Identity, req model.DonationCreateRequest) (*model.DonationReceipt, error)
	Update(ctx context.Context, id int64, req model.DonationUpdateRequest) (*model.Donation, error)
	Delete(ctx context.Context, id int64) error
	ConfirmPayment(ctx context.Context, id int64) (*model.Donation, error)
	FailPayment(ctx context.Context, id int64) (*model.Donation, error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{svc: svc}
}

func RegisterDonationRoutes(g *router.Group, h *DonationHandler, mw *AuthMiddleware) {
	g.GET("/donations", mw.Require(h.List))
	g.POST("/donations", mw.Optional(h.Create))
	g.GET("/donations/success/{donationId}", h.PaymentSuccess)
	g.GET("/donations/failed/{donationId}", h.PaymentFailed)
	g.GET("/donations/{id}", mw.Require(h.Get))
	g.PUT("/donations/{id}", mw.Require(h.Update))
	g.DELETE("/donations/{id}", mw.Require(h.Delete))
}

type paymentResult struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Error    string          `json:"error,omitempty"`
	Donation *model.Donation `json:"donation,omitempty"`
}

func (h *DonationHandler) List(ctx *xhttp.RequestCtx) {
	out, err := h.svc.List(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, out)
}

func (h *DonationHandler) Get(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrDonationNotFound)
	if !ok {
		return
	}
	d, err := h.svc.Get(ctx, id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, d)
}

// Create is public. A bearer token, when present, records the staff member.
func (h *DonationHandler) Create(ctx *xhttp.RequestCtx) {
	var req model.DonationCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeJSON(ctx, xhttp.StatusBadRequest, paymentResult{Error: "invalid JSON: " + err.Error()})
		return
	}
	receipt, err := h.svc.Create(ctx, IdentityFrom(ctx), req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			writeJSON(ctx, xhttp.StatusBadRequest, paymentResult{Error: ve.Message})
			return
		}
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, receipt)
}

func (h *DonationHandler) Update(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrDonationNotFound)
	if !ok {
		return
	}
	var req model.DonationUpdateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	d, err := h.svc.Update(ctx, id, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, d)
}

func (h *DonationHandler) Delete(ctx *xhttp.RequestCtx) {
	id, ok := pathID(ctx, "id", services.ErrDonationNotFound)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		handleError(ctx, err)
		return
	}
	writeMessage(ctx, xhttp.StatusOK, "Donation removed")
}

func (h *DonationHandler) PaymentSuccess(ctx *xhttp.RequestCtx) {
	h.settle(ctx, h.svc.ConfirmPayment, paymentResult{Success: true, Message: "Payment confirmed successfully"})
}

func (h *DonationHandler) PaymentFailed(ctx *xhttp.RequestCtx) {
	h.settle(ctx, h.svc.FailPayment, paymentResult{Success: false, Message: "Payment failed"})
}

func (h *DonationHandler) settle(ctx *xhttp.RequestCtx, apply func(context.Context, int64) (*model.Donation, error), result paymentResult) {
	notFound := paymentResult{Error: services.ErrDonationNotFound.Error()}
	id, err := parseID(pathParam(ctx, "donationId"))
	if err != nil {
		writeJSON(ctx, xhttp.StatusNotFound, notFound)
		return
	}
	d, err := apply(ctx, id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeJSON(ctx, xhttp.StatusNotFound, notFound)
		return
	case err != nil:
		handleError(ctx, err)
		return
	}
	result.Donation = d
	writeJSON(ctx, xhttp.StatusOK, result)
}
