package xhttp

import (
	"github.com/fasthttp/router"
)

type Router = router.Router
type Group = router.Group

// NewRouter returns a new Router
func NewRouter() *Router {
	return router.New()
}

// CreateDefaultRouter returns a router that records the matched route path
// (used as the metrics label) and answers unknown routes with a JSON 404.
func CreateDefaultRouter() *Router {
	r := NewRouter()
	r.RedirectFixedPath = false
	r.RedirectTrailingSlash = true
	r.SaveMatchedRoutePath = true
	r.NotFound = NotFoundHandler
	r.MethodNotAllowed = MethodNotAllowedHandler
	r.HandleOPTIONS = false
	r.HandleMethodNotAllowed = true
	r.PanicHandler = func(ctx *RequestCtx, rcv interface{}) {
		panicResponse(ctx, rcv)
	}
	return r
}

// MatchedRoutePath returns the route template that served ctx, or "unmatched".
func MatchedRoutePath(ctx *RequestCtx) string {
	if v, ok := ctx.UserValue(router.MatchedRoutePathParam).(string); ok && v != "" {
		return v
	}
	return "unmatched"
}

func NotFoundHandler(ctx *RequestCtx) {
	writeMessage(ctx, StatusNotFound, "Route not found")
}

func MethodNotAllowedHandler(ctx *RequestCtx) {
	writeMessage(ctx, StatusMethodNotAllowed, StatusText(StatusMethodNotAllowed))
}

func writeMessage(ctx *RequestCtx, status int, msg string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBodyString(`{"msg":` + quote(msg) + `}`)
}
