package dto

import "time"

// CustomerRequest payload for creating or updating a customer.
type CustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	ShopID  *string `json:"shop_id"`
}

// CustomerResponse is the customer display record.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	ShopID    *string   `json:"shop_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductRequest payload for creating or updating a product.
type ProductRequest struct {
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	Description    string `json:"description"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Stock          int    `json:"stock"`
	Active         *bool  `json:"active"`
}

// ProductResponse is the product display record.
type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	Description    string    `json:"description"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Stock          int       `json:"stock"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// InvoiceItemRequest is one requested invoice line.
type InvoiceItemRequest struct {
	ProductID      *string `json:"product_id"`
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
}

// InvoiceRequest payload for creating an invoice.
type InvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	DueAt      *time.Time           `json:"due_at"`
	Items      []InvoiceItemRequest `json:"items"`
}

// InvoiceStatusRequest payload for status transitions.
type InvoiceStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceItemResponse is one invoice line.
type InvoiceItemResponse struct {
	ID             string  `json:"id"`
	ProductID      *string `json:"product_id,omitempty"`
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	AmountCents    int64   `json:"amount_cents"`
}

// InvoiceResponse is the invoice display record.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	CustomerID    string                `json:"customer_id"`
	CustomerName  string                `json:"customer_name"`
	Status        string                `json:"status"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
	SubtotalCents int64                 `json:"subtotal_cents"`
	TaxCents      int64                 `json:"tax_cents"`
	TotalCents    int64                 `json:"total_cents"`
	IssuedAt      time.Time             `json:"issued_at"`
	DueAt         *time.Time            `json:"due_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
