package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"conflict", NewConflictError("taken"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("no"), http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), http.StatusForbidden},
		{"not found", NewNotFoundError("Fishing record", "r-1"), http.StatusNotFound},
		{"wrapped", fmt.Errorf("ctx: %w", NewNotFoundError("User", "u")), http.StatusNotFound},
		{"internal", NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"fiber", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorResponse
	}{
		{"app error", NewConflictError("Username already taken"), ErrorResponse{Message: "Username already taken", Code: CodeConflict}},
		{"internal hides cause", NewInternalError(errors.New("pq: password leaked")), ErrorResponse{Message: "Internal server error", Code: CodeInternal}},
		{"fiber error", fiber.NewError(fiber.StatusNotFound, "Cannot GET /x"), ErrorResponse{Message: "Cannot GET /x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return RespondWithError(c, StatusFor(tt.err), tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var got ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NewNotFoundError("Fishing record", "abc")
	assert.Equal(t, "Fishing record with ID abc not found", err.Error())
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(errors.New("x"), CodeNotFound))
}

func TestWeightValue(t *testing.T) {
	tests := []struct {
		weight string
		want   float64
	}{
		{"8.5", 8.5},
		{"12.750", 12.75},
		{"3", 3},
		{"", 0},
		{"heavy", 0},
	}
	for _, tt := range tests {
		r := FishingRecord{Weight: tt.weight}
		assert.Equal(t, tt.want, r.WeightValue(), tt.weight)
	}
}

func TestUserJSONOmitsPassword(t *testing.T) {
	u := User{ID: "u-1", Username: "ion", Email: "ion@pescart.ro", Password: "$2a$10$hash", Role: RoleUser}
	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "password")

	assert.False(t, u.IsAdmin())
	u.Role = RoleAdmin
	assert.True(t, u.IsAdmin())

	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.Nil(t, nilUser.Summary())
}
