package domain

import "time"

// Customer is a billable party invoices are addressed to.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	ShopID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
