package billing

import (
	"fmt"

	"github.com/zeptools/findoc-core/nullable"
)

// DocumentKind discriminates the two billing document flavors sharing one
// rendering pipeline
type DocumentKind string

const (
	KindInvoice DocumentKind = "invoice"
	KindQuote   DocumentKind = "quote"
)

func (k DocumentKind) Valid() bool {
	return k == KindInvoice || k == KindQuote
}

// Label - document title as printed on the PDF and used in filenames
func (k DocumentKind) Label() string {
	if k == KindQuote {
		return "Preventivo"
	}
	return "Fattura"
}

// LineItem is one ordered row of a billing document. Amount is displayed as
// stored; it normally equals Quantity*UnitPrice but legacy/edited rows may
// disagree and are not corrected here.
type LineItem struct {
	ServiceName nullable.String `json:"service_name"`
	Description string          `json:"description"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   float64         `json:"unit_price"`
	Amount      float64         `json:"amount"`
}

// TargetFields in SELECT column order: service_name, description, quantity, unit_price, amount
func (li *LineItem) TargetFields() []any {
	return []any{&li.ServiceName, &li.Description, &li.Quantity, &li.UnitPrice, &li.Amount}
}

// Value - the row total used for fallback document totals
func (li *LineItem) Value() float64 {
	if li.Amount != 0 {
		return li.Amount
	}
	return li.Quantity * li.UnitPrice
}

// Recipient - the billed client, joined onto the document by the store
type Recipient struct {
	Name       string          `json:"name"`
	Surname    nullable.String `json:"surname"`
	Address    nullable.String `json:"address"`
	PostalCode nullable.String `json:"postal_code"`
	City       nullable.String `json:"city"`
}

func (r *Recipient) FullName() string {
	if r.Surname.IsNil() {
		return r.Name
	}
	return r.Name + " " + r.Surname.String
}

// DocumentRecord is a read-only snapshot of an invoice or quote, already
// joined with its recipient and ordered line items. Nothing here is written
// back; renders consume it as-is.
type DocumentRecord struct {
	ID          string          `json:"id"`
	Kind        DocumentKind    `json:"kind"`
	Number      string          `json:"number"`
	IssueDate   nullable.Time   `json:"issue_date"`
	DueDate     nullable.Time   `json:"due_date"`
	Status      string          `json:"status"`
	Currency    string          `json:"currency"`
	TotalAmount nullable.Float  `json:"total_amount"`
	Notes       nullable.String `json:"notes"`
	Recipient   Recipient       `json:"recipient"`
	LineItems   []LineItem      `json:"line_items"`
}

// TargetFields in SELECT column order:
// id, number, issue_date, due_date, status, currency, total_amount, notes,
// client name, surname, address, postal_code, city
func (d *DocumentRecord) TargetFields() []any {
	return []any{
		&d.ID, &d.Number, &d.IssueDate, &d.DueDate, &d.Status, &d.Currency,
		&d.TotalAmount, &d.Notes,
		&d.Recipient.Name, &d.Recipient.Surname, &d.Recipient.Address,
		&d.Recipient.PostalCode, &d.Recipient.City,
	}
}

// Total returns the stored total verbatim when present; otherwise the sum of
// the line item values. The fallback is order-independent.
func (d *DocumentRecord) Total() float64 {
	if !d.TotalAmount.IsNil() {
		return d.TotalAmount.Float64
	}
	sum := 0.0
	for i := range d.LineItems {
		sum += d.LineItems[i].Value()
	}
	return sum
}

// Filename - suggested attachment name, e.g. "Fattura_F-2024-001.pdf"
func (d *DocumentRecord) Filename(ext string) string {
	return fmt.Sprintf("%s_%s.%s", d.Kind.Label(), d.Number, ext)
}
