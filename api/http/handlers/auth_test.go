package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeai/pkg/auth"
	"github.com/artem13815/resumeai/pkg/kvstore"
)

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, u auth.User) (string, error) {
	return "token-for-" + u.Email, nil
}

func newAuthApp() *fiber.App {
	repo := auth.NewKVUserRepository(kvstore.NewMemory())
	svc := auth.NewAuthService(repo, staticTokens{})
	h := NewAuthHandler(svc)

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	app := newAuthApp()

	resp := postJSON(t, app, "/auth/register", `{"email":"jane@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Token string    `json:"token"`
		User  auth.User `json:"user"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "token-for-jane@example.com", out.Token)
	assert.True(t, out.User.IsAdmin)

	// password hash never leaves the server
	resp = postJSON(t, app, "/auth/login", `{"email":"jane@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/auth/register", `{"email":"jane@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, app, "/auth/register", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	app := newAuthApp()

	resp := postJSON(t, app, "/auth/register", `{"email":"jane@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", `{"email":"jane@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", `{"email":"ghost@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
