package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/billing-admin/internal/domain"
)

func TestComputeTotals(t *testing.T) {
	items := []domain.InvoiceItem{
		{AmountCents: 1000},
		{AmountCents: 2500},
		{AmountCents: 499},
	}

	subtotal, tax, total := ComputeTotals(items)
	assert.Equal(t, int64(3999), subtotal)
	assert.Equal(t, int64(359), tax, "flat 9 percent tax, truncated")
	assert.Equal(t, int64(4358), total)
}

func TestComputeTotals_Empty(t *testing.T) {
	subtotal, tax, total := ComputeTotals(nil)
	assert.Zero(t, subtotal)
	assert.Zero(t, tax)
	assert.Zero(t, total)
}
