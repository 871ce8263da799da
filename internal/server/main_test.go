package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"pescart/internal/cache"
	"pescart/internal/config"
	"pescart/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testAdminEmail = "admin@pescart.ro"

func TestMain(m *testing.M) {
	// disables the per-route Redis rate limits
	_ = os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      "test-secret-that-is-long-enough-for-hs256",
		TokenTTLHours:  1,
		DBDriver:       "sqlite",
		SQLitePath:     ":memory:",
		AdminEmail:     testAdminEmail,
		AllowedOrigins: "*",
	}
}

// newTestApp wires a full server over an in-memory SQLite database.
func newTestApp(t *testing.T, redisClient *redis.Client) (*fiber.App, *gorm.DB) {
	t.Helper()
	if redisClient == nil {
		cache.SetClient(nil)
	}

	cfg := testConfig()
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	srv, err := NewServerWithDeps(cfg, db, redisClient)
	require.NoError(t, err)
	return srv.NewApp(), db
}

// doRequest sends body as JSON (strings are sent verbatim) and returns the
// response with its body read.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

type authBody struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	} `json:"user"`
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func register(t *testing.T, app *fiber.App, username, email string) authBody {
	t.Helper()
	resp, data := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username":  username,
		"email":     email,
		"password":  "secret123",
		"firstName": "Ion",
		"lastName":  "Popescu",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	return decode[authBody](t, data)
}

type recordBody struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Species    string `json:"species"`
	Weight     string `json:"weight"`
	Verified   bool   `json:"verified"`
	County     string `json:"county"`
	WaterType  string `json:"waterType"`
	LocationID string `json:"locationId"`
}

func submitRecord(t *testing.T, app *fiber.App, token string, payload map[string]any) recordBody {
	t.Helper()
	resp, data := doRequest(t, app, http.MethodPost, "/api/fishing-records", payload, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	return decode[recordBody](t, data)
}

func carpPayload(weight any) map[string]any {
	return map[string]any{
		"species":    "Crap",
		"weight":     weight,
		"location":   "Lacul Snagov",
		"county":     "Ilfov",
		"waterType":  "lake",
		"dateCaught": "2024-05-01",
	}
}
