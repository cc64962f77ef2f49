package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/billing-admin/internal/domain"
)

// InvoiceRepository defines persistence access for invoices and their line
// items.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Count(ctx context.Context) (int, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository returns a Postgres-backed implementation.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        INSERT INTO invoices (number, customer_id, status, subtotal_cents, tax_cents, total_cents, issued_at, due_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, query,
		invoice.Number,
		invoice.CustomerID,
		invoice.Status,
		invoice.SubtotalCents,
		invoice.TaxCents,
		invoice.TotalCents,
		invoice.IssuedAt,
		invoice.DueAt,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt); err != nil {
		return err
	}

	if err := r.insertItems(ctx, tx, invoice); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        UPDATE invoices
        SET number=$1, customer_id=$2, status=$3, subtotal_cents=$4, tax_cents=$5, total_cents=$6,
            issued_at=$7, due_at=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := tx.Exec(ctx, query,
		invoice.Number,
		invoice.CustomerID,
		invoice.Status,
		invoice.SubtotalCents,
		invoice.TaxCents,
		invoice.TotalCents,
		invoice.IssuedAt,
		invoice.DueAt,
		invoice.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id=$1`, invoice.ID); err != nil {
		return err
	}
	if err := r.insertItems(ctx, tx, invoice); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *invoiceRepository) insertItems(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) error {
	const query = `
        INSERT INTO invoice_items (invoice_id, product_id, description, quantity, unit_price_cents, amount_cents)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.InvoiceID = invoice.ID
		if err := tx.QueryRow(ctx, query,
			item.InvoiceID,
			item.ProductID,
			item.Description,
			item.Quantity,
			item.UnitPriceCents,
			item.AmountCents,
		).Scan(&item.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	const query = `
        SELECT i.id, i.number, i.customer_id, c.name, i.status, i.subtotal_cents, i.tax_cents, i.total_cents,
               i.issued_at, i.due_at, i.created_at, i.updated_at
        FROM invoices i JOIN customers c ON c.id = i.customer_id
        WHERE i.id=$1`

	var invoice domain.Invoice
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.Number,
		&invoice.CustomerID,
		&invoice.CustomerName,
		&invoice.Status,
		&invoice.SubtotalCents,
		&invoice.TaxCents,
		&invoice.TotalCents,
		&invoice.IssuedAt,
		&invoice.DueAt,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	const query = `
        SELECT i.id, i.number, i.customer_id, c.name, i.status, i.subtotal_cents, i.tax_cents, i.total_cents,
               i.issued_at, i.due_at, i.created_at, i.updated_at
        FROM invoices i JOIN customers c ON c.id = i.customer_id
        ORDER BY i.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.Number,
			&invoice.CustomerID,
			&invoice.CustomerName,
			&invoice.Status,
			&invoice.SubtotalCents,
			&invoice.TaxCents,
			&invoice.TotalCents,
			&invoice.IssuedAt,
			&invoice.DueAt,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, invoice)
	}
	return result, rows.Err()
}

func (r *invoiceRepository) itemsFor(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	const query = `
        SELECT id, invoice_id, product_id, description, quantity, unit_price_cents, amount_cents
        FROM invoice_items WHERE invoice_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		var item domain.InvoiceItem
		if err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.ProductID,
			&item.Description,
			&item.Quantity,
			&item.UnitPriceCents,
			&item.AmountCents,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *invoiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	return count, err
}
