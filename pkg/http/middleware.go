package xhttp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/ngo-backend/pkg/logger"
	"github.com/valyala/fasthttp"
)

const (
	slowThreshold   = 500 * time.Millisecond
	HeaderRequestID = "X-Request-Id"
	UserValueReqID  = "requestID"
)

var skipPaths = []string{"/health", "/metrics"}

type MiddlewareFunc func(next RequestHandler) RequestHandler
type RequestCtx = fasthttp.RequestCtx
type RequestHandler = fasthttp.RequestHandler

func CompressMiddleware(level int) MiddlewareFunc {
	return func(next RequestHandler) RequestHandler {
		return fasthttp.CompressHandlerBrotliLevel(next, fasthttp.CompressBrotliDefaultCompression, level)
	}
}

func RecoverMiddleware(next RequestHandler) RequestHandler {
	return func(ctx *RequestCtx) {
		defer func() {
			if rcv := recover(); rcv != nil {
				panicResponse(ctx, rcv)
			}
		}()
		next(ctx)
	}
}

func panicResponse(ctx *RequestCtx, rcv interface{}) {
	logger.Error("[xhttp] panic recovered", "error", fmt.Sprint(rcv), "path", string(ctx.Path()), "request_id", RequestID(ctx))
	ctx.Response.Reset()
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(StatusInternalServerError)
	ctx.SetBodyString(`{"error":"Server error"}`)
}

// RequestIDMiddleware reuses the caller's X-Request-Id or assigns a new uuid.
func RequestIDMiddleware(next RequestHandler) RequestHandler {
	return func(ctx *RequestCtx) {
		rid := string(ctx.Request.Header.Peek(HeaderRequestID))
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.SetUserValue(UserValueReqID, rid)
		ctx.Response.Header.Set(HeaderRequestID, rid)
		next(ctx)
	}
}

func RequestID(ctx *RequestCtx) string {
	if v, ok := ctx.UserValue(UserValueReqID).(string); ok {
		return v
	}
	return string(ctx.Request.Header.Peek(HeaderRequestID))
}

func RequestLoggerMiddleware(next RequestHandler) RequestHandler {
	return func(ctx *RequestCtx) {
		path := string(ctx.Path())
		if shouldSkip(path) {
			next(ctx)
			return
		}

		start := time.Now()
		next(ctx)
		latency := time.Since(start)
		status := ctx.Response.StatusCode()

		fields := []any{
			"status", status,
			"method", string(ctx.Method()),
			"path", path,
			"route", MatchedRoutePath(ctx),
			"latency", latency.String(),
			"bytes_in", len(ctx.PostBody()),
			"bytes_out", len(ctx.Response.Body()),
			"ip", ctx.RemoteIP().String(),
			"request_id", RequestID(ctx),
		}

		switch {
		case status >= 500:
			logger.Error("http_request", fields...)
		case status >= 400 || latency > slowThreshold:
			logger.Warn("http_request", fields...)
		default:
			logger.Info("http_request", fields...)
		}
	}
}

// CORSMiddleware adds Access-Control headers for allowed origins and
// answers preflight OPTIONS requests with 204.
func CORSMiddleware(allowedOrigins []string) MiddlewareFunc {
	allowAll := false
	normalized := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAll = true
			break
		}
		if origin != "" {
			normalized = append(normalized, strings.ToLower(origin))
		}
	}

	return func(next RequestHandler) RequestHandler {
		return func(ctx *RequestCtx) {
			origin := string(ctx.Request.Header.Peek("Origin"))
			if origin != "" && (allowAll || containsOrigin(normalized, origin)) {
				if allowAll {
					ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
				} else {
					ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
					ctx.Response.Header.Set("Access-Control-Allow-Credentials", "true")
				}
				ctx.Response.Header.Set("Vary", "Origin")
				ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-Id")
				ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			}

			if ctx.IsOptions() {
				ctx.SetStatusCode(StatusNoContent)
				return
			}
			next(ctx)
		}
	}
}

func containsOrigin(allowed []string, origin string) bool {
	origin = strings.ToLower(origin)
	for _, candidate := range allowed {
		if candidate == origin {
			return true
		}
	}
	return false
}

func shouldSkip(p string) bool {
	for _, sp := range skipPaths {
		if strings.HasPrefix(p, sp) {
			return true
		}
	}
	return false
}

func quote(s string) string {
	return strconv.Quote(s)
}
