package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/nimasrn/ngo-backend/internal/services"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/nimasrn/ngo-backend/pkg/logger"
)

// ShowErrorDetails adds the underlying error text to 500 responses.
// It is switched off in production.
var ShowErrorDetails = true

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("[handlers] encode response", "error", err, "path", string(ctx.Path()))
		ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
		ctx.Response.SetStatusCode(xhttp.StatusInternalServerError)
		ctx.Response.SetBodyString(`{"error":"Server error"}`)
		return
	}
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, errorResponse{Error: msg})
}

func writeMessage(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, messageResponse{Msg: msg})
}

func writeServerError(ctx *xhttp.RequestCtx, err error) {
	logger.Error("[handlers] request failed",
		"error", err,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"request_id", xhttp.RequestID(ctx),
	)
	resp := errorResponse{Error: "Server error"}
	if ShowErrorDetails {
		resp.Details = err.Error()
	}
	writeJSON(ctx, xhttp.StatusInternalServerError, resp)
}

// handleError maps service errors onto status codes.
func handleError(ctx *xhttp.RequestCtx, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(ctx, xhttp.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrNotFound):
		writeMessage(ctx, xhttp.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUserExists), errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(ctx, xhttp.StatusBadRequest, err.Error())
	default:
		writeServerError(ctx, err)
	}
}

// pathID parses the named route parameter. Anything that is not a
// positive integer cannot name a row, so it is answered with notFound.
func pathID(ctx *xhttp.RequestCtx, name string, notFound error) (int64, bool) {
	id, err := parseID(pathParam(ctx, name))
	if err != nil {
		writeMessage(ctx, xhttp.StatusNotFound, notFound.Error())
		return 0, false
	}
	return id, true
}

var errBadID = errors.New("invalid id")

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

func pathParam(ctx *xhttp.RequestCtx, name string) string {
	v, _ := ctx.UserValue(name).(string)
	return v
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}
