package domain

import "time"

// Product is a sellable catalog entry referenced by invoice lines.
type Product struct {
	ID             string
	Name           string
	SKU            string
	Description    string
	UnitPriceCents int64
	Stock          int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
