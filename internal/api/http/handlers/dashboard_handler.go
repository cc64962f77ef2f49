package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/auth"
	"github.com/spec-kit/billing-admin/internal/repository"
)

// DashboardHandler renders the default authenticated landing page.
type DashboardHandler struct {
	users     repository.UserRepository
	staff     repository.StaffRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	invoices  repository.InvoiceRepository
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(
	users repository.UserRepository,
	staff repository.StaffRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
) *DashboardHandler {
	return &DashboardHandler{
		users:     users,
		staff:     staff,
		customers: customers,
		products:  products,
		invoices:  invoices,
	}
}

// Summary handles GET /dashboard.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	counts := fiber.Map{}
	type counter struct {
		name  string
		count func() (int, error)
	}
	ctx := c.Context()
	for _, entry := range []counter{
		{"users", func() (int, error) { return h.users.Count(ctx) }},
		{"staff", func() (int, error) { return h.staff.Count(ctx) }},
		{"customers", func() (int, error) { return h.customers.Count(ctx) }},
		{"products", func() (int, error) { return h.products.Count(ctx) }},
		{"invoices", func() (int, error) { return h.invoices.Count(ctx) }},
	} {
		n, err := entry.count()
		if err != nil {
			return err
		}
		counts[entry.name] = n
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"operator": fiber.Map{
			"full_name": claims.FullName,
			"role_name": claims.RoleName,
		},
		"counts": counts,
	}})
}
