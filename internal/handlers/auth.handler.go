package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/nimasrn/ngo-backend/internal/model"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
)

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Me(ctx context.Context, identity *model.Identity) (*model.User, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func RegisterAuthRoutes(g *router.Group, h *AuthHandler, mw *AuthMiddleware) {
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
	g.GET("/auth/me", mw.Require(h.Me))
}

func (h *AuthHandler) Register(ctx *xhttp.RequestCtx) {
	var req model.RegisterRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	resp, err := h.svc.Register(ctx, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, resp)
}

func (h *AuthHandler) Login(ctx *xhttp.RequestCtx) {
	var req model.LoginRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	resp, err := h.svc.Login(ctx, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, resp)
}

func (h *AuthHandler) Me(ctx *xhttp.RequestCtx) {
	u, err := h.svc.Me(ctx, IdentityFrom(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, u)
}
