package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/observability"
	"github.com/spec-kit/billing-admin/internal/session"
)

const claimsKey = "session_claims"

// Redirect targets for guard decisions. A failed session check goes to
// sign-in; a failed role check goes to the authenticated landing page, since
// the operator is signed in but under-privileged.
const (
	SignInPath    = "/signin"
	DashboardPath = "/dashboard"
)

// Middleware guards routes with the session guard. Any guard failure
// resolves to a redirect instruction, never an error response.
type Middleware struct {
	guard   *session.Guard
	metrics *observability.Metrics
}

// NewMiddleware constructs guard middleware.
func NewMiddleware(guard *session.Guard, metrics *observability.Metrics) *Middleware {
	return &Middleware{guard: guard, metrics: metrics}
}

// RequireSession renders the protected route only for an authenticated
// session; Anonymous and Expired both redirect to sign-in.
func (m *Middleware) RequireSession(c *fiber.Ctx) error {
	status := m.guard.Status(c.UserContext())
	if status.Kind != session.StatusAuthenticated {
		m.metrics.RecordRedirect(c.Path(), status.Kind.String())
		return c.Redirect(SignInPath, fiber.StatusFound)
	}
	c.Locals(claimsKey, status.Claims)
	return c.Next()
}

// RedirectIfAuthenticated inverts the check for public auth routes: an
// already-authenticated session is sent to the dashboard instead of
// re-entering the sign-in flow.
func (m *Middleware) RedirectIfAuthenticated(c *fiber.Ctx) error {
	if m.guard.Status(c.UserContext()).Kind == session.StatusAuthenticated {
		return c.Redirect(DashboardPath, fiber.StatusFound)
	}
	return c.Next()
}

// RequireRole restricts a route to holders of the given role tag. Runs after
// RequireSession.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := ClaimsFromContext(c)
		if !session.Authorize(claims, role) {
			return c.Redirect(DashboardPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// ClaimsFromContext retrieves the claims stored by RequireSession.
func ClaimsFromContext(c *fiber.Ctx) (*session.Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*session.Claims)
	return claims, ok
}
