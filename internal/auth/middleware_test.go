package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanstreet/complaint-service/internal/domain"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }
func (r *stubUserRepo) Delete(_ context.Context, _ string) error       { return nil }
func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error)  { return nil, nil }
func (r *stubUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func newGateApp(t *testing.T, tm *TokenManager, repo *stubUserRepo) *fiber.App {
	t.Helper()
	// Map domain errors to their HTTP status the way the server's error
	// middleware does; the default fiber handler would flatten them to 500.
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	gate := NewGate(tm, repo)
	app.Use(gate.Handle)

	app.Get("/public", func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); ok {
			return c.SendString("authenticated")
		}
		return c.SendString("anonymous")
	})
	app.Get("/protected", RequireRole(domain.RoleUser, domain.RoleAdmin), func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		return c.SendString(string(principal.Role))
	})
	app.Get("/admin", RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("admin")
	})
	return app
}

func TestGateBindsPrincipal(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	repo := &stubUserRepo{byEmail: map[string]*domain.User{
		"citizen@example.com": {ID: "u1", Email: "citizen@example.com", Role: domain.RoleUser},
	}}
	app := newGateApp(t, tm, repo)

	token, _, err := tm.Issue("citizen@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	repo := &stubUserRepo{byEmail: map[string]*domain.User{
		"citizen@example.com": {ID: "u1", Email: "citizen@example.com", Role: domain.RoleUser},
	}}
	app := newGateApp(t, tm, repo)

	token, _, err := tm.Issue("citizen@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGateMissingTokenLeavesRequestUnauthenticated(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newGateApp(t, tm, &stubUserRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateExpiredTokenOnPublicRoute(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}
	repo := &stubUserRepo{byEmail: map[string]*domain.User{
		"citizen@example.com": {ID: "u1", Email: "citizen@example.com", Role: domain.RoleUser},
	}}
	app := newGateApp(t, tm, repo)

	token, _, err := tm.Issue("citizen@example.com", domain.RoleUser)
	require.NoError(t, err)

	// Public routes ignore identity; an expired token must not fail them.
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The same token on a protected route is an authentication failure.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateTokenForDeletedAccount(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	app := newGateApp(t, tm, &stubUserRepo{})

	token, _, err := tm.Issue("ghost@example.com", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
		{"abc", "", false},
	}
	for _, tc := range tests {
		got, ok := bearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, "header %q", tc.header)
		assert.Equal(t, tc.want, got, "header %q", tc.header)
	}
}
