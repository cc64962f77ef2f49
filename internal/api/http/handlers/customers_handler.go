package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/api/dto"
	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/service"
	"github.com/spec-kit/billing-admin/internal/view"
)

// CustomersHandler exposes the customer screens.
type CustomersHandler struct {
	billing  *service.BillingService
	pageSize int
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(billing *service.BillingService, pageSize int) *CustomersHandler {
	return &CustomersHandler{billing: billing, pageSize: pageSize}
}

func customerCollection(customers []domain.Customer, pageSize int) *view.Collection[domain.Customer] {
	return view.NewCollection(customers, view.Config[domain.Customer]{
		Searchable: []func(domain.Customer) string{
			func(cu domain.Customer) string { return cu.Name },
			func(cu domain.Customer) string { return cu.Email },
			func(cu domain.Customer) string { return cu.Phone },
			func(cu domain.Customer) string { return cu.Address },
		},
		SortKeys: map[string]view.SortKey[domain.Customer]{
			"name":  func(cu domain.Customer) (string, bool) { return cu.Name, true },
			"email": func(cu domain.Customer) (string, bool) { return cu.Email, true },
		},
		DefaultSort: "name",
		PageSize:    pageSize,
	})
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.billing.ListCustomers(c.Context())
	if err != nil {
		return err
	}

	page := applyListQuery(customerCollection(customers, h.pageSize), parseListQuery(c))

	items := make([]dto.CustomerResponse, 0, len(page.Items))
	for _, customer := range page.Items {
		items = append(items, customerResponse(&customer))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page)})
}

// Get handles GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.billing.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customerResponse(customer)})
}

// Create handles POST /customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	customer := &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		ShopID:  req.ShopID,
	}
	if err := h.billing.CreateCustomer(c.Context(), customer); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": customerResponse(customer)})
}

// Update handles PUT /customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	customer, err := h.billing.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.ShopID != nil {
		customer.ShopID = req.ShopID
	}

	if err := h.billing.UpdateCustomer(c.Context(), customer); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customerResponse(customer)})
}

// Delete handles DELETE /customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if err := h.billing.DeleteCustomer(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func customerResponse(customer *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		ShopID:    customer.ShopID,
		CreatedAt: customer.CreatedAt,
	}
}
