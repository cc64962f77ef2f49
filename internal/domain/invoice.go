package domain

import "time"

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	InvoiceStatusSent  InvoiceStatus = "SENT"
	InvoiceStatusPaid  InvoiceStatus = "PAID"
	InvoiceStatusVoid  InvoiceStatus = "VOID"
)

// Invoice aggregates billable line items for a customer.
type Invoice struct {
	ID            string
	Number        string
	CustomerID    string
	CustomerName  string
	Status        InvoiceStatus
	Items         []InvoiceItem
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	IssuedAt      time.Time
	DueAt         *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceItem is a single billable line on an invoice.
type InvoiceItem struct {
	ID             string
	InvoiceID      string
	ProductID      *string
	Description    string
	Quantity       int
	UnitPriceCents int64
	AmountCents    int64
}
