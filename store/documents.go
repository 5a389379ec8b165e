// Package store reads billing documents, the company profile and logo bytes
// for the renderer. Everything here is read-only; documents are created and
// edited elsewhere.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/db/sqldb"
)

var (
	ErrNotFound  = errors.New("store: document not found")
	ErrInvalidID = errors.New("store: invalid document id")
)

// Store reads documents and the company profile from the SQL database.
// Queries use '?' placeholders; the driver rewrites them for its dialect.
type Store struct {
	DB sqldb.Client
}

const invoiceQuery = `
SELECT i.id, i.invoice_number, i.issue_date, i.due_date, i.status, i.currency,
       i.total_amount, i.notes,
       c.name, c.surname, c.address, c.postal_code, c.city
FROM invoices i
JOIN clients c ON c.id = i.client_id
WHERE i.id = ?`

const invoiceItemsQuery = `
SELECT service_name, description, quantity, unit_price, amount
FROM invoice_items
WHERE invoice_id = ?
ORDER BY sort_order, id`

const quoteQuery = `
SELECT q.id, q.quote_number, q.issue_date, q.valid_until, q.status, q.currency,
       q.total_amount, q.notes,
       c.name, c.surname, c.address, c.postal_code, c.city
FROM quotes q
JOIN clients c ON c.id = q.client_id
WHERE q.id = ?`

const quoteItemsQuery = `
SELECT service_name, description, quantity, unit_price, amount
FROM quote_items
WHERE quote_id = ?
ORDER BY sort_order, id`

func (s *Store) Invoice(ctx context.Context, id string) (*billing.DocumentRecord, error) {
	return s.document(ctx, billing.KindInvoice, invoiceQuery, invoiceItemsQuery, id)
}

func (s *Store) Quote(ctx context.Context, id string) (*billing.DocumentRecord, error) {
	return s.document(ctx, billing.KindQuote, quoteQuery, quoteItemsQuery, id)
}

// Document dispatches on kind; share links carry the kind alongside the id
func (s *Store) Document(ctx context.Context, kind billing.DocumentKind, id string) (*billing.DocumentRecord, error) {
	switch kind {
	case billing.KindInvoice:
		return s.Invoice(ctx, id)
	case billing.KindQuote:
		return s.Quote(ctx, id)
	default:
		return nil, ErrInvalidID
	}
}

func (s *Store) document(ctx context.Context, kind billing.DocumentKind, docQuery, itemsQuery, id string) (*billing.DocumentRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	doc, err := sqldb.QueryItem[billing.DocumentRecord, *billing.DocumentRecord](ctx, s.DB, docQuery, id)
	if err != nil {
		if errors.Is(err, sqldb.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: query %s: %w", kind, err)
	}
	doc.Kind = kind
	items, err := sqldb.QueryItems[billing.LineItem, *billing.LineItem](ctx, s.DB, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("store: query %s items: %w", kind, err)
	}
	doc.LineItems = make([]billing.LineItem, 0, len(items))
	for _, it := range items {
		doc.LineItems = append(doc.LineItems, *it)
	}
	return doc, nil
}
