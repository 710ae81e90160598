package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// FirstProductCode is the code assigned when no numeric codes exist yet.
const FirstProductCode int64 = 1001

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     uint32          `json:"tax_rate"` // Percent.
	Barcode     string          `json:"barcode,omitempty"`
	Active      bool            `json:"active"`
}

type ProductPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	TaxRate     *uint32          `json:"tax_rate"`
	Barcode     *string          `json:"barcode"`
	Active      *bool            `json:"active"`
}

// Apply merges the patch onto p. ID and Code are never patched: the code is
// system-assigned and stays with the product for its whole life.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}

	if pp.Description != nil {
		p.Description = *pp.Description
	}

	if pp.UnitPrice != nil {
		p.UnitPrice = *pp.UnitPrice
	}

	if pp.TaxRate != nil {
		p.TaxRate = *pp.TaxRate
	}

	if pp.Barcode != nil {
		p.Barcode = *pp.Barcode
	}

	if pp.Active != nil {
		p.Active = *pp.Active
	}
}
