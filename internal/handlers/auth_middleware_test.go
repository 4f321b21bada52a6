package handlers

import (
	"testing"

	"github.com/nimasrn/ngo-backend/internal/model"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Require(t *testing.T) {
	identity := &model.Identity{ID: 1, Name: "Admin", Role: model.RoleAdmin}
	mw := NewAuthMiddleware(stubTokens{token: "good", identity: identity})

	var seen *model.Identity
	next := mw.Require(func(ctx *xhttp.RequestCtx) {
		seen = IdentityFrom(ctx)
		ctx.SetStatusCode(xhttp.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		seen = nil
		ctx := setupTestContext("GET", "/api/events", nil)
		next(ctx)
		assert.Equal(t, xhttp.StatusUnauthorized, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, string(ctx.Response.Body()))
		assert.Nil(t, seen)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctx := setupTestContext("GET", "/api/events", nil)
		ctx.Request.Header.Set("Authorization", "Basic good")
		next(ctx)
		assert.Equal(t, xhttp.StatusUnauthorized, ctx.Response.StatusCode())
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx := setupTestContext("GET", "/api/events", nil)
		ctx.Request.Header.Set("Authorization", "Bearer bad")
		next(ctx)
		assert.Equal(t, xhttp.StatusUnauthorized, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"msg":"Token is not valid"}`, string(ctx.Response.Body()))
	})

	t.Run("valid token", func(t *testing.T) {
		ctx := setupTestContext("GET", "/api/events", nil)
		ctx.Request.Header.Set("Authorization", "bearer good")
		next(ctx)
		assert.Equal(t, xhttp.StatusOK, ctx.Response.StatusCode())
		require.NotNil(t, seen)
		assert.Equal(t, int64(1), seen.ID)
	})
}

func TestAuthMiddleware_Optional(t *testing.T) {
	mw := NewAuthMiddleware(stubTokens{token: "good", identity: &model.Identity{ID: 5}})

	var seen *model.Identity
	called := false
	next := mw.Optional(func(ctx *xhttp.RequestCtx) {
		called = true
		seen = IdentityFrom(ctx)
	})

	ctx := setupTestContext("POST", "/api/donations", nil)
	ctx.Request.Header.Set("Authorization", "Bearer bad")
	next(ctx)
	assert.True(t, called)
	assert.Nil(t, seen)

	ctx = setupTestContext("POST", "/api/donations", nil)
	ctx.Request.Header.Set("Authorization", "Bearer good")
	next(ctx)
	require.NotNil(t, seen)
	assert.Equal(t, int64(5), seen.ID)
}
