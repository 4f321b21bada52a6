package handlers

import (
	"encoding/json"
	"testing"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/services"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgramHandler_GetBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockProgramService)
		h := NewProgramHandler(svc)
		ctx := setupTestContext("GET", "/api/programs/clean-water", nil)
		ctx.SetUserValue("slug", "clean-water")

		svc.On("GetBySlug", mock.Anything, "clean-water").
			Return(&model.Program{ID: 2, Title: "Clean Water", Slug: "clean-water"}, nil)

		h.GetBySlug(ctx)

		assert.Equal(t, xhttp.StatusOK, ctx.Response.StatusCode())
		var got model.Program
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
		assert.Equal(t, "Clean Water", got.Title)
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(MockProgramService)
		h := NewProgramHandler(svc)
		ctx := setupTestContext("GET", "/api/programs/nope", nil)
		ctx.SetUserValue("slug", "nope")

		svc.On("GetBySlug", mock.Anything, "nope").Return(nil, services.ErrProgramNotFound)

		h.GetBySlug(ctx)

		assert.Equal(t, xhttp.StatusNotFound, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"msg":"Program not found"}`, string(ctx.Response.Body()))
	})
}

func TestProgramHandler_ListActive(t *testing.T) {
	svc := new(MockProgramService)
	h := NewProgramHandler(svc)
	ctx := setupTestContext("GET", "/api/programs", nil)

	svc.On("ListActive", mock.Anything).Return([]model.ProgramSummary{
		{ID: 1, Title: "Literacy", Slug: "literacy"},
	}, nil)

	h.ListActive(ctx)

	assert.Equal(t, xhttp.StatusOK, ctx.Response.StatusCode())
	var got []map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "literacy", got[0]["slug"])
	_, hasStatus := got[0]["status"]
	assert.False(t, hasStatus)
}

func TestProgramHandler_Delete(t *testing.T) {
	svc := new(MockProgramService)
	h := NewProgramHandler(svc)
	ctx := setupTestContext("DELETE", "/api/programs/4", nil)
	ctx.SetUserValue("id", "4")

	svc.On("Delete", mock.Anything, int64(4)).Return(nil)

	h.Delete(ctx)

	assert.Equal(t, xhttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"msg":"Program removed"}`, string(ctx.Response.Body()))
}
