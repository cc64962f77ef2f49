package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/api/http/handlers"
	"github.com/spec-kit/billing-admin/internal/auth"
	"github.com/spec-kit/billing-admin/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Users     *handlers.UsersHandler
	Staff     *handlers.StaffHandler
	Customers *handlers.CustomersHandler
	Products  *handlers.ProductsHandler
	Invoices  *handlers.InvoicesHandler
	Guard     *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Protected routes render only for an
// authenticated session; staff management additionally requires the owner
// role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signin", cfg.Guard.RedirectIfAuthenticated, cfg.Auth.SignIn)
	authGroup.Get("/session", cfg.Auth.Session)
	authGroup.Post("/signout", cfg.Guard.RequireSession, cfg.Auth.SignOut)

	protected := app.Group("", cfg.Guard.RequireSession)
	protected.Get("/dashboard", cfg.Dashboard.Summary)

	users := protected.Group("/users")
	users.Get("", cfg.Users.List)
	users.Post("", cfg.Users.Create)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	staff := protected.Group("/staff", auth.RequireRole(string(domain.StaffRoleOwner)))
	staff.Get("", cfg.Staff.List)
	staff.Post("", cfg.Staff.Create)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Delete)

	customers := protected.Group("/customers")
	customers.Get("", cfg.Customers.List)
	customers.Post("", cfg.Customers.Create)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Put("/:id", cfg.Customers.Update)
	customers.Delete("/:id", cfg.Customers.Delete)

	products := protected.Group("/products")
	products.Get("", cfg.Products.List)
	products.Post("", cfg.Products.Create)
	products.Get("/:id", cfg.Products.Get)
	products.Put("/:id", cfg.Products.Update)
	products.Delete("/:id", cfg.Products.Delete)

	invoices := protected.Group("/invoices")
	invoices.Get("", cfg.Invoices.List)
	invoices.Post("", cfg.Invoices.Create)
	invoices.Get("/:id", cfg.Invoices.Get)
	invoices.Post("/:id/status", cfg.Invoices.ChangeStatus)
	invoices.Delete("/:id", cfg.Invoices.Delete)
}
