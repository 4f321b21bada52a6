package handlers

import (
	"strings"

	"github.com/nimasrn/ngo-backend/internal/model"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/nimasrn/ngo-backend/pkg/logger"
)

const identityKey = "identity"

type TokenParser interface {
	Parse(raw string) (*model.Identity, error)
}

// AuthMiddleware resolves bearer tokens into request identities.
type AuthMiddleware struct {
	tokens TokenParser
}

func NewAuthMiddleware(tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Require rejects the request with 401 unless it carries a valid token.
func (m *AuthMiddleware) Require(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		raw, ok := bearerToken(ctx)
		if !ok {
			writeMessage(ctx, xhttp.StatusUnauthorized, "No token, authorization denied")
			return
		}
		identity, err := m.tokens.Parse(raw)
		if err != nil {
			logger.Debug("[auth] token rejected", "error", err, "request_id", xhttp.RequestID(ctx))
			writeMessage(ctx, xhttp.StatusUnauthorized, "Token is not valid")
			return
		}
		ctx.SetUserValue(identityKey, identity)
		next(ctx)
	}
}

// Optional attaches the identity when a valid token is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) Optional(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		if raw, ok := bearerToken(ctx); ok {
			if identity, err := m.tokens.Parse(raw); err == nil {
				ctx.SetUserValue(identityKey, identity)
			}
		}
		next(ctx)
	}
}

// IdentityFrom returns the caller attached by the auth middleware, or nil.
func IdentityFrom(ctx *xhttp.RequestCtx) *model.Identity {
	identity, _ := ctx.UserValue(identityKey).(*model.Identity)
	return identity
}

func bearerToken(ctx *xhttp.RequestCtx) (string, bool) {
	header := strings.TrimSpace(string(ctx.Request.Header.Peek("Authorization")))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
