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

func TestVolunteerHandler_Create(t *testing.T) {
	t.Run("created with caller as registrar", func(t *testing.T) {
		svc := new(MockVolunteerService)
		h := NewVolunteerHandler(svc)

		identity := &model.Identity{ID: 6, Role: model.RoleAdmin}
		ctx := setupTestContext("POST", "/api/volunteers", []byte(`{"name":"Asha","phone":"555-0101","skills":["teaching","first aid"]}`))
		ctx.SetUserValue(identityKey, identity)

		svc.On("Create", mock.Anything, identity, mock.MatchedBy(func(r model.VolunteerRequest) bool {
			return r.Name == "Asha" && r.Phone == "555-0101" && len(r.Skills) == 2
		})).Return(&model.Volunteer{ID: 1, Name: "Asha", Skills: []string{"teaching", "first aid"}, RegisteredBy: &identity.ID}, nil)

		h.Create(ctx)

		assert.Equal(t, xhttp.StatusCreated, ctx.Response.StatusCode())
		var got model.Volunteer
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
		assert.Equal(t, []string{"teaching", "first aid"}, got.Skills)
		require.NotNil(t, got.RegisteredBy)
		assert.Equal(t, int64(6), *got.RegisteredBy)
		svc.AssertExpectations(t)
	})

	t.Run("validation errors", func(t *testing.T) {
		for _, msg := range []string{
			"name is required",
			"phone is required",
			"status must be one of active, inactive, pending",
		} {
			svc := new(MockVolunteerService)
			h := NewVolunteerHandler(svc)
			ctx := setupTestContext("POST", "/api/volunteers", []byte(`{"name":"x","status":"retired"}`))

			svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, &services.ValidationError{Message: msg})

			h.Create(ctx)

			assert.Equal(t, xhttp.StatusBadRequest, ctx.Response.StatusCode())
			assert.JSONEq(t, `{"error":"`+msg+`"}`, string(ctx.Response.Body()))
		}
	})
}

func TestVolunteerHandler_NotFound(t *testing.T) {
	const notFound = `{"msg":"Volunteer not found"}`

	t.Run("get", func(t *testing.T) {
		svc := new(MockVolunteerService)
		h := NewVolunteerHandler(svc)
		ctx := setupTestContext("GET", "/api/volunteers/4", nil)
		ctx.SetUserValue("id", "4")

		svc.On("Get", mock.Anything, int64(4)).Return(nil, services.ErrVolunteerNotFound)

		h.Get(ctx)

		assert.Equal(t, xhttp.StatusNotFound, ctx.Response.StatusCode())
		assert.JSONEq(t, notFound, string(ctx.Response.Body()))
	})

	t.Run("update", func(t *testing.T) {
		svc := new(MockVolunteerService)
		h := NewVolunteerHandler(svc)
		ctx := setupTestContext("PUT", "/api/volunteers/4", []byte(`{"name":"x","phone":"1"}`))
		ctx.SetUserValue("id", "4")

		svc.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, services.ErrVolunteerNotFound)

		h.Update(ctx)

		assert.Equal(t, xhttp.StatusNotFound, ctx.Response.StatusCode())
		assert.JSONEq(t, notFound, string(ctx.Response.Body()))
	})

	t.Run("delete zero id", func(t *testing.T) {
		svc := new(MockVolunteerService)
		h := NewVolunteerHandler(svc)
		ctx := setupTestContext("DELETE", "/api/volunteers/0", nil)
		ctx.SetUserValue("id", "0")

		h.Delete(ctx)

		assert.Equal(t, xhttp.StatusNotFound, ctx.Response.StatusCode())
		assert.JSONEq(t, notFound, string(ctx.Response.Body()))
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete", func(t *testing.T) {
		svc := new(MockVolunteerService)
		h := NewVolunteerHandler(svc)
		ctx := setupTestContext("DELETE", "/api/volunteers/4", nil)
		ctx.SetUserValue("id", "4")

		svc.On("Delete", mock.Anything, int64(4)).Return(services.ErrVolunteerNotFound)

		h.Delete(ctx)

		assert.Equal(t, xhttp.StatusNotFound, ctx.Response.StatusCode())
		assert.JSONEq(t, notFound, string(ctx.Response.Body()))
	})
}

func TestVolunteerHandler_Delete(t *testing.T) {
	svc := new(MockVolunteerService)
	h := NewVolunteerHandler(svc)
	ctx := setupTestContext("DELETE", "/api/volunteers/2", nil)
	ctx.SetUserValue("id", "2")

	svc.On("Delete", mock.Anything, int64(2)).Return(nil)

	h.Delete(ctx)

	assert.Equal(t, xhttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"msg":"Volunteer removed"}`, string(ctx.Response.Body()))
}
