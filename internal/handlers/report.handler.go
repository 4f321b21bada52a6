package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/nimasrn/ngo-backend/internal/model"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type ReportService interface {
	Summary(ctx context.Context) (*model.Summary, error)
	DonationTrends(ctx context.Context, period string) ([]model.TrendPoint, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func RegisterReportRoutes(g *router.Group, h *ReportHandler, mw *AuthMiddleware) {
	g.GET("/reports/summary", mw.Require(h.Summary))
	g.GET("/reports/donations/trends", mw.Require(h.DonationTrends))
}

func (h *ReportHandler) Summary(ctx *xhttp.RequestCtx) {
	s, err := h.svc.Summary(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, s)
}

// DonationTrends groups donations by ?period=daily|monthly|yearly.
func (h *ReportHandler) DonationTrends(ctx *xhttp.RequestCtx) {
	points, err := h.svc.DonationTrends(ctx, query(ctx, "period"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, points)
}
