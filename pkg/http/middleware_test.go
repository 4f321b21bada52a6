package xhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func newCtx(method, path string) *RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	return ctx
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(func(ctx *RequestCtx) {
		panic("boom")
	})
	ctx := newCtx("GET", "/api/events")

	assert.NotPanics(t, func() { h(ctx) })
	assert.Equal(t, StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Server error"}`, string(ctx.Response.Body()))
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(func(ctx *RequestCtx) {
		seen = RequestID(ctx)
	})

	ctx := newCtx("GET", "/")
	h(ctx)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, string(ctx.Response.Header.Peek(HeaderRequestID)))

	ctx = newCtx("GET", "/")
	ctx.Request.Header.Set(HeaderRequestID, "caller-id")
	h(ctx)
	assert.Equal(t, "caller-id", seen)
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	next := func(ctx *RequestCtx) { called = true }

	t.Run("listed origin", func(t *testing.T) {
		h := CORSMiddleware([]string{"https://ngo.example.org"})(next)
		ctx := newCtx("GET", "/api/programs")
		ctx.Request.Header.Set("Origin", "https://NGO.example.org")
		h(ctx)
		assert.Equal(t, "https://NGO.example.org", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
		assert.Equal(t, "true", string(ctx.Response.Header.Peek("Access-Control-Allow-Credentials")))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		h := CORSMiddleware([]string{"https://ngo.example.org"})(next)
		ctx := newCtx("GET", "/api/programs")
		ctx.Request.Header.Set("Origin", "https://evil.example.com")
		h(ctx)
		assert.Empty(t, ctx.Response.Header.Peek("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called = false
		h := CORSMiddleware([]string{"*"})(next)
		ctx := newCtx("OPTIONS", "/api/donations")
		ctx.Request.Header.Set("Origin", "https://anywhere.org")
		h(ctx)
		assert.False(t, called)
		assert.Equal(t, StatusNoContent, ctx.Response.StatusCode())
		assert.Equal(t, "*", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
	})
}

func TestEngine_HandlerOrder(t *testing.T) {
	e := CreateServer(0, 0)
	var order []string
	mark := func(name string) MiddlewareFunc {
		return func(next RequestHandler) RequestHandler {
			return func(ctx *RequestCtx) {
				order = append(order, name)
				next(ctx)
			}
		}
	}
	e.Use(mark("outer"), mark("inner"))
	e.GET("/ping", func(ctx *RequestCtx) { order = append(order, "handler") })

	e.Handler()(newCtx("GET", "/ping"))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)

	ctx := newCtx("GET", "/missing")
	e.Handler()(ctx)
	assert.Equal(t, StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"msg":"Route not found"}`, string(ctx.Response.Body()))
}
