package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"pescart/internal/middleware"
	"pescart/internal/models"

	"github.com/gofiber/fiber/v2"
)

// fail answers with the status mapped from err. Server-side failures are
// logged here and reach the client as a generic message.
func fail(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, status, err)
}

func badRequest(c *fiber.Ctx, message string) error {
	return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(message))
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *fiber.Ctx) string {
	parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// currentUserID returns the authenticated user id, or "" on anonymous requests.
func currentUserID(c *fiber.Ctx) string {
	uid, _ := c.Locals("userID").(string)
	return uid
}

// decimalString accepts a JSON string or number and keeps its textual form,
// so "8.50" and 8.5 both decode.
type decimalString string

func (d *decimalString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = decimalString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("weight must be a string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*d = decimalString(n.String())
	return nil
}
