package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

func init() {
	// The SPA expects money as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DraftNumber is the placeholder carried by drafts until they are issued.
const DraftNumber = "RASCUNHO"

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice status %q", ErrInvalidArgument, string(s))
	}
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// draft → issued → paid; draft and issued may be cancelled; paid and
// cancelled are terminal.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft:
		return next == InvoiceStatusIssued || next == InvoiceStatusCancelled
	case InvoiceStatusIssued:
		return next == InvoiceStatusPaid || next == InvoiceStatusCancelled
	default:
		return false
	}
}

type InvoiceLine struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // Snapshot of the product price at add-time.
	TaxRate     uint32          `json:"tax_rate"`   // Percent, snapshot.
	LineTotal   decimal.Decimal `json:"line_total"`
}

// TaxAmount returns line_total * tax_rate / 100 rounded to 2 decimal places.
func (l InvoiceLine) TaxAmount() decimal.Decimal {
	if l.TaxRate == 0 {
		return decimal.Zero
	}

	rate := decimal.New(int64(l.TaxRate), -2)

	return l.LineTotal.Mul(rate).Round(2)
}

type Invoice struct {
	ID       uuid.UUID       `json:"id"`
	Number   string          `json:"number"`
	Client   Client          `json:"client"` // Full snapshot, not a reference.
	Status   InvoiceStatus   `json:"status"`
	Date     time.Time       `json:"date"`
	DueDate  time.Time       `json:"due_date"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
	Lines    []InvoiceLine   `json:"lines"`
	Discount decimal.Decimal `json:"discount"`

	// Compliance fields, stamped only on non-draft invoices.
	ATCUD               string `json:"atcud,omitempty"`
	Hash                string `json:"hash,omitempty"`
	HashControl         string `json:"hash_control,omitempty"`
	CertificationNumber string `json:"certification_number,omitempty"`
}

// ComputeTotal returns Σ line_total + Σ line_total*tax_rate/100 − discount.
func (i Invoice) ComputeTotal() decimal.Decimal {
	total := decimal.Zero

	for _, l := range i.Lines {
		total = total.Add(l.LineTotal).Add(l.TaxAmount())
	}

	return total.Sub(i.Discount).Round(2)
}
