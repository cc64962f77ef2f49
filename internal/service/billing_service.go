package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/events"
	"github.com/spec-kit/billing-admin/internal/repository"
	apperrors "github.com/spec-kit/billing-admin/pkg/util"
)

// TaxRateBasisPoints is the flat tax applied to invoice subtotals.
const TaxRateBasisPoints = 900

// BillingService manages customers, products and invoices.
type BillingService struct {
	customers  repository.CustomerRepository
	products   repository.ProductRepository
	invoices   repository.InvoiceRepository
	dispatcher events.Dispatcher
}

// NewBillingService builds the service.
func NewBillingService(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
	dispatcher events.Dispatcher,
) *BillingService {
	return &BillingService{
		customers:  customers,
		products:   products,
		invoices:   invoices,
		dispatcher: dispatcher,
	}
}

// ListCustomers returns every customer.
func (s *BillingService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return customers, nil
}

// GetCustomer fetches one customer.
func (s *BillingService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

// CreateCustomer registers a billable party.
func (s *BillingService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	return apperrors.MapError(s.customers.Create(ctx, customer))
}

// UpdateCustomer applies changes to a customer.
func (s *BillingService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return apperrors.MapError(s.customers.Update(ctx, customer))
}

// DeleteCustomer removes a customer.
func (s *BillingService) DeleteCustomer(ctx context.Context, id string) error {
	return apperrors.MapError(s.customers.Delete(ctx, id))
}

// ListProducts returns the catalog.
func (s *BillingService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return products, nil
}

// GetProduct fetches one catalog entry.
func (s *BillingService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return product, nil
}

// CreateProduct adds a catalog entry.
func (s *BillingService) CreateProduct(ctx context.Context, product *domain.Product) error {
	return apperrors.MapError(s.products.Create(ctx, product))
}

// UpdateProduct applies changes to a catalog entry.
func (s *BillingService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return apperrors.MapError(s.products.Update(ctx, product))
}

// DeleteProduct removes a catalog entry.
func (s *BillingService) DeleteProduct(ctx context.Context, id string) error {
	return apperrors.MapError(s.products.Delete(ctx, id))
}

// ListInvoices returns every invoice header.
func (s *BillingService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return invoices, nil
}

// GetInvoice fetches one invoice with its line items.
func (s *BillingService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return invoice, nil
}

// CreateInvoice prices the lines, computes totals and persists the invoice
// as a draft. Lines that reference a product inherit its current unit price
// when none is given.
func (s *BillingService) CreateInvoice(ctx context.Context, customerID string, dueAt *time.Time, items []domain.InvoiceItem) (*domain.Invoice, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("invoice requires at least one line item", nil)
	}
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, apperrors.MapError(err)
	}

	for i := range items {
		item := &items[i]
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidationError("line quantity must be positive", map[string]any{"line": i + 1})
		}
		if item.ProductID != nil {
			product, err := s.products.GetByID(ctx, *item.ProductID)
			if err != nil {
				return nil, apperrors.MapError(err)
			}
			if item.UnitPriceCents == 0 {
				item.UnitPriceCents = product.UnitPriceCents
			}
			if item.Description == "" {
				item.Description = product.Name
			}
		}
		item.AmountCents = int64(item.Quantity) * item.UnitPriceCents
	}

	invoice := &domain.Invoice{
		Number:     newInvoiceNumber(),
		CustomerID: customerID,
		Status:     domain.InvoiceStatusDraft,
		Items:      items,
		IssuedAt:   time.Now(),
		DueAt:      dueAt,
	}
	invoice.SubtotalCents, invoice.TaxCents, invoice.TotalCents = ComputeTotals(items)

	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventInvoiceCreated, invoice.ID, nil)
	return invoice, nil
}

// ChangeInvoiceStatus moves an invoice through its lifecycle. Paid and void
// invoices are terminal.
func (s *BillingService) ChangeInvoiceStatus(ctx context.Context, id string, next domain.InvoiceStatus) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if invoice.Status == domain.InvoiceStatusPaid || invoice.Status == domain.InvoiceStatusVoid {
		return nil, apperrors.NewConflict(
			fmt.Sprintf("invoice is %s and cannot change status", invoice.Status), nil)
	}

	old := invoice.Status
	invoice.Status = next
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventInvoiceStatusChanged, invoice.ID, events.InvoiceStatusChangedPayload{
		OldStatus: string(old),
		NewStatus: string(next),
	})
	return invoice, nil
}

// DeleteInvoice removes an invoice and its lines.
func (s *BillingService) DeleteInvoice(ctx context.Context, id string) error {
	return apperrors.MapError(s.invoices.Delete(ctx, id))
}

// ComputeTotals sums line amounts and applies the flat tax rate.
func ComputeTotals(items []domain.InvoiceItem) (subtotal, tax, total int64) {
	for _, item := range items {
		subtotal += item.AmountCents
	}
	tax = subtotal * TaxRateBasisPoints / 10000
	total = subtotal + tax
	return subtotal, tax, total
}

func newInvoiceNumber() string {
	return "INV-" + uuid.NewString()[:8]
}

func (s *BillingService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
