package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/api/dto"
	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/service"
	"github.com/spec-kit/billing-admin/internal/view"
)

// ProductsHandler exposes the catalog screens.
type ProductsHandler struct {
	billing  *service.BillingService
	pageSize int
}

// NewProductsHandler constructs handler.
func NewProductsHandler(billing *service.BillingService, pageSize int) *ProductsHandler {
	return &ProductsHandler{billing: billing, pageSize: pageSize}
}

func productCollection(products []domain.Product, pageSize int) *view.Collection[domain.Product] {
	return view.NewCollection(products, view.Config[domain.Product]{
		Searchable: []func(domain.Product) string{
			func(p domain.Product) string { return p.Name },
			func(p domain.Product) string { return p.SKU },
			func(p domain.Product) string { return p.Description },
		},
		SortKeys: map[string]view.SortKey[domain.Product]{
			"name": func(p domain.Product) (string, bool) { return p.Name, true },
			"sku":  func(p domain.Product) (string, bool) { return p.SKU, true },
			"unit_price": func(p domain.Product) (string, bool) {
				return fmt.Sprintf("%020d", p.UnitPriceCents), true
			},
		},
		DefaultSort: "name",
		PageSize:    pageSize,
	})
}

// List handles GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.billing.ListProducts(c.Context())
	if err != nil {
		return err
	}

	page := applyListQuery(productCollection(products, h.pageSize), parseListQuery(c))

	items := make([]dto.ProductResponse, 0, len(page.Items))
	for _, product := range page.Items {
		items = append(items, productResponse(&product))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page)})
}

// Get handles GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.billing.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.SKU == "" {
		return fiber.NewError(http.StatusBadRequest, "name and sku required")
	}
	if req.UnitPriceCents < 0 {
		return fiber.NewError(http.StatusBadRequest, "unit_price_cents must not be negative")
	}

	product := &domain.Product{
		Name:           req.Name,
		SKU:            req.SKU,
		Description:    req.Description,
		UnitPriceCents: req.UnitPriceCents,
		Stock:          req.Stock,
		Active:         true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if err := h.billing.CreateProduct(c.Context(), product); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": productResponse(product)})
}

// Update handles PUT /products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	product, err := h.billing.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.SKU != "" {
		product.SKU = req.SKU
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.UnitPriceCents > 0 {
		product.UnitPriceCents = req.UnitPriceCents
	}
	if req.Stock >= 0 {
		product.Stock = req.Stock
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.billing.UpdateProduct(c.Context(), product); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// Delete handles DELETE /products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.billing.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func productResponse(product *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		SKU:            product.SKU,
		Description:    product.Description,
		UnitPriceCents: product.UnitPriceCents,
		Stock:          product.Stock,
		Active:         product.Active,
		CreatedAt:      product.CreatedAt,
	}
}
