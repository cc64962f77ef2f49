package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/observability"
	"github.com/spec-kit/billing-admin/internal/session"
)

func newGuardedApp(t *testing.T, store session.Store) *fiber.App {
	t.Helper()
	mw := NewMiddleware(session.NewGuard(store, nil), observability.NewMetrics())

	app := fiber.New()
	app.Post("/auth/signin", mw.RedirectIfAuthenticated, func(c *fiber.Ctx) error {
		return c.SendString("signin form")
	})
	app.Get("/dashboard", mw.RequireSession, func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		return c.SendString(claims.UserID)
	})
	app.Get("/staff", mw.RequireSession, RequireRole(string(domain.StaffRoleOwner)), func(c *fiber.Ctx) error {
		return c.SendString("staff list")
	})
	return app
}

func signIn(t *testing.T, store session.Store, role domain.StaffRole) {
	t.Helper()
	staff := &domain.StaffMember{ID: "staff-1", FullName: "Ada", Email: "ada@example.com", Role: role, Active: true}
	token, ttl, err := NewTokenIssuer("secret", 30).Issue(staff)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), token, ttl))
}

func TestRequireSession_RedirectsAnonymous(t *testing.T) {
	app := newGuardedApp(t, session.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, SignInPath, resp.Header.Get("Location"))
}

func TestRequireSession_RedirectsExpired(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "whatever", -time.Minute))
	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, SignInPath, resp.Header.Get("Location"))
}

func TestRequireSession_AllowsAuthenticated(t *testing.T) {
	store := session.NewMemoryStore()
	signIn(t, store, domain.StaffRoleStaff)
	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_UnderPrivilegedGoesToDashboard(t *testing.T) {
	store := session.NewMemoryStore()
	signIn(t, store, domain.StaffRoleStaff)
	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/staff", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, DashboardPath, resp.Header.Get("Location"), "role denial must not bounce to sign-in")
}

func TestRequireRole_OwnerAllowed(t *testing.T) {
	store := session.NewMemoryStore()
	signIn(t, store, domain.StaffRoleOwner)
	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/staff", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	store := session.NewMemoryStore()
	app := newGuardedApp(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/auth/signin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "anonymous client may enter the sign-in flow")

	signIn(t, store, domain.StaffRoleStaff)
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/auth/signin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, DashboardPath, resp.Header.Get("Location"))
}
