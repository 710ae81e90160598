package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clique360/backend/internal/entity"
)

func TestFunctionCall_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call entity.FunctionCall
		want entity.Action
	}{
		{
			name: "navigate_to",
			call: entity.FunctionCall{
				Name: entity.FunctionNavigateTo,
				Args: json.RawMessage(`{"view":"invoices"}`),
			},
			want: entity.NavigateTo{View: entity.ViewInvoices},
		},
		{
			name: "start_creating_invoice with client hint",
			call: entity.FunctionCall{
				Name: entity.FunctionStartCreatingInvoice,
				Args: json.RawMessage(`{"clientName":"Kappy Bara"}`),
			},
			want: entity.StartCreatingInvoice{ClientName: "Kappy Bara"},
		},
		{
			name: "start_creating_invoice without args",
			call: entity.FunctionCall{Name: entity.FunctionStartCreatingInvoice},
			want: entity.StartCreatingInvoice{},
		},
		{
			name: "start_creating_client",
			call: entity.FunctionCall{Name: entity.FunctionStartCreatingClient},
			want: entity.StartCreatingClient{},
		},
		{
			name: "start_creating_product",
			call: entity.FunctionCall{Name: entity.FunctionStartCreatingProduct},
			want: entity.StartCreatingProduct{},
		},
		{
			name: "find_client_to_edit",
			call: entity.FunctionCall{
				Name: entity.FunctionFindClientToEdit,
				Args: json.RawMessage(`{"client_name":"Digital Wave"}`),
			},
			want: entity.FindClientToEdit{ClientName: "Digital Wave"},
		},
		{
			name: "find_product_to_edit",
			call: entity.FunctionCall{
				Name: entity.FunctionFindProductToEdit,
				Args: json.RawMessage(`{"product_name_or_code":"SEO-CON"}`),
			},
			want: entity.FindProductToEdit{ProductNameOrCode: "SEO-CON"},
		},
		{
			name: "create_client",
			call: entity.FunctionCall{
				Name: entity.FunctionCreateClient,
				Args: json.RawMessage(`{"name":"Acme","email":"a@acme.com","tax_id":"123","city":"Lisboa"}`),
			},
			want: entity.CreateClient{Name: "Acme", Email: "a@acme.com", TaxID: "123", City: "Lisboa"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.call.Decode()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFunctionCall_Decode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		call    entity.FunctionCall
		wantErr error
	}{
		{
			name:    "unknown function",
			call:    entity.FunctionCall{Name: "delete_everything"},
			wantErr: entity.ErrUnknownFunction,
		},
		{
			name: "unknown view",
			call: entity.FunctionCall{
				Name: entity.FunctionNavigateTo,
				Args: json.RawMessage(`{"view":"admin"}`),
			},
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name:    "find_client_to_edit without name",
			call:    entity.FunctionCall{Name: entity.FunctionFindClientToEdit},
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name:    "find_product_to_edit without term",
			call:    entity.FunctionCall{Name: entity.FunctionFindProductToEdit},
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name: "create_client missing tax_id",
			call: entity.FunctionCall{
				Name: entity.FunctionCreateClient,
				Args: json.RawMessage(`{"name":"Acme","email":"a@acme.com"}`),
			},
			wantErr: entity.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.call.Decode()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
