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

// InvoicesHandler exposes the invoice screens.
type InvoicesHandler struct {
	billing  *service.BillingService
	pageSize int
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(billing *service.BillingService, pageSize int) *InvoicesHandler {
	return &InvoicesHandler{billing: billing, pageSize: pageSize}
}

func invoiceCollection(invoices []domain.Invoice, pageSize int) *view.Collection[domain.Invoice] {
	return view.NewCollection(invoices, view.Config[domain.Invoice]{
		Searchable: []func(domain.Invoice) string{
			func(inv domain.Invoice) string { return inv.Number },
			func(inv domain.Invoice) string { return inv.CustomerName },
			func(inv domain.Invoice) string { return string(inv.Status) },
		},
		SortKeys: map[string]view.SortKey[domain.Invoice]{
			"number":   func(inv domain.Invoice) (string, bool) { return inv.Number, true },
			"customer": func(inv domain.Invoice) (string, bool) { return inv.CustomerName, true },
			"status":   func(inv domain.Invoice) (string, bool) { return string(inv.Status), true },
			"total": func(inv domain.Invoice) (string, bool) {
				return fmt.Sprintf("%020d", inv.TotalCents), true
			},
			"due_at": func(inv domain.Invoice) (string, bool) {
				if inv.DueAt == nil {
					return "", false
				}
				return inv.DueAt.UTC().Format("2006-01-02T15:04:05.000Z"), true
			},
		},
		DefaultSort: "number",
		PageSize:    pageSize,
	})
}

// List handles GET /invoices.
func (h *InvoicesHandler) List(c *fiber.Ctx) error {
	invoices, err := h.billing.ListInvoices(c.Context())
	if err != nil {
		return err
	}

	page := applyListQuery(invoiceCollection(invoices, h.pageSize), parseListQuery(c))

	items := make([]dto.InvoiceResponse, 0, len(page.Items))
	for _, invoice := range page.Items {
		items = append(items, invoiceResponse(&invoice))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page)})
}

// Get handles GET /invoices/:id.
func (h *InvoicesHandler) Get(c *fiber.Ctx) error {
	invoice, err := h.billing.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// Create handles POST /invoices.
func (h *InvoicesHandler) Create(c *fiber.Ctx) error {
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CustomerID == "" || len(req.Items) == 0 {
		return fiber.NewError(http.StatusBadRequest, "customer_id and items required")
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.InvoiceItem{
			ProductID:      item.ProductID,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	invoice, err := h.billing.CreateInvoice(c.Context(), req.CustomerID, req.DueAt, items)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// ChangeStatus handles POST /invoices/:id/status.
func (h *InvoicesHandler) ChangeStatus(c *fiber.Ctx) error {
	var req dto.InvoiceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	next := domain.InvoiceStatus(req.Status)
	switch next {
	case domain.InvoiceStatusSent, domain.InvoiceStatusPaid, domain.InvoiceStatusVoid:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown status")
	}

	invoice, err := h.billing.ChangeInvoiceStatus(c.Context(), c.Params("id"), next)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// Delete handles DELETE /invoices/:id.
func (h *InvoicesHandler) Delete(c *fiber.Ctx) error {
	if err := h.billing.DeleteInvoice(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func invoiceResponse(invoice *domain.Invoice) dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			AmountCents:    item.AmountCents,
		})
	}
	return dto.InvoiceResponse{
		ID:            invoice.ID,
		Number:        invoice.Number,
		CustomerID:    invoice.CustomerID,
		CustomerName:  invoice.CustomerName,
		Status:        string(invoice.Status),
		Items:         items,
		SubtotalCents: invoice.SubtotalCents,
		TaxCents:      invoice.TaxCents,
		TotalCents:    invoice.TotalCents,
		IssuedAt:      invoice.IssuedAt,
		DueAt:         invoice.DueAt,
		CreatedAt:     invoice.CreatedAt,
	}
}
