package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/clique360/backend/internal/entity"
)

func TestInvoice_ComputeTotal(t *testing.T) {
	t.Parallel()

	line := func(total int64, taxRate uint32) entity.InvoiceLine {
		return entity.InvoiceLine{
			LineTotal: decimal.NewFromInt(total),
			TaxRate:   taxRate,
		}
	}

	tests := []struct {
		name     string
		lines    []entity.InvoiceLine
		discount decimal.Decimal
		want     string
	}{
		{
			name:  "single line no tax",
			lines: []entity.InvoiceLine{line(1500, 0)},
			want:  "1500",
		},
		{
			name:  "single line with tax",
			lines: []entity.InvoiceLine{line(1500, 23)},
			want:  "1845",
		},
		{
			name:     "two untaxed lines with discount",
			lines:    []entity.InvoiceLine{line(2000, 0), line(1500, 0)},
			discount: decimal.NewFromInt(500),
			want:     "3000",
		},
		{
			name:  "mixed tax rates",
			lines: []entity.InvoiceLine{line(100, 23), line(200, 6)},
			want:  "335",
		},
		{
			name: "fractional tax rounds to cents",
			lines: []entity.InvoiceLine{{
				LineTotal: decimal.RequireFromString("33.33"),
				TaxRate:   23,
			}},
			want: "41", // 33.33 + 7.67
		},
		{
			name:     "discount exceeds lines",
			lines:    []entity.InvoiceLine{line(100, 0)},
			discount: decimal.NewFromInt(150),
			want:     "-50",
		},
		{
			name: "no lines",
			want: "0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := entity.Invoice{Lines: tt.lines, Discount: tt.discount}

			got := inv.ComputeTotal()
			require.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	allowed := map[entity.InvoiceStatus][]entity.InvoiceStatus{
		entity.InvoiceStatusDraft:     {entity.InvoiceStatusIssued, entity.InvoiceStatusCancelled},
		entity.InvoiceStatusIssued:    {entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled},
		entity.InvoiceStatusPaid:      {},
		entity.InvoiceStatusCancelled: {},
	}

	all := []entity.InvoiceStatus{
		entity.InvoiceStatusDraft,
		entity.InvoiceStatusIssued,
		entity.InvoiceStatusPaid,
		entity.InvoiceStatusCancelled,
	}

	for from, targets := range allowed {
		for _, to := range all {
			want := false

			for _, target := range targets {
				if to == target {
					want = true
				}
			}

			require.Equal(t, want, from.CanTransitionTo(to), "%s to %s", from, to)
		}
	}
}

func TestInvoiceStatus_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, entity.InvoiceStatusDraft.Validate())
	require.NoError(t, entity.InvoiceStatusPaid.Validate())
	require.ErrorIs(t, entity.InvoiceStatus("refunded").Validate(), entity.ErrInvalidArgument)
}
