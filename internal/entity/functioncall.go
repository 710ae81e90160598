package entity

import (
	"encoding/json"
	"fmt"
)

// View identifies a section of the application the assistant may navigate to.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewInvoices  View = "invoices"
	ViewClients   View = "clients"
	ViewProducts  View = "products"
	ViewCompany   View = "company"
	ViewSettings  View = "settings"
)

func (v View) Validate() error {
	switch v {
	case ViewDashboard, ViewInvoices, ViewClients, ViewProducts, ViewCompany, ViewSettings:
		return nil
	default:
		return fmt.Errorf("%w: unknown view %q", ErrInvalidArgument, string(v))
	}
}

// Function names the model may request.
const (
	FunctionNavigateTo           = "navigate_to"
	FunctionStartCreatingInvoice = "start_creating_invoice"
	FunctionStartCreatingClient  = "start_creating_client"
	FunctionStartCreatingProduct = "start_creating_product"
	FunctionFindClientToEdit     = "find_client_to_edit"
	FunctionFindProductToEdit    = "find_product_to_edit"
	FunctionCreateClient         = "create_client"
)

// FunctionCall is a structured request emitted by the model. Args stay raw
// until Decode validates the name and produces the typed action.
type FunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Action is the tagged union of the operations the dispatcher understands.
type Action interface {
	isAction()
}

type NavigateTo struct {
	View View `json:"view"`
}

type StartCreatingInvoice struct {
	ClientName string `json:"clientName"`
}

type StartCreatingClient struct{}

type StartCreatingProduct struct{}

type FindClientToEdit struct {
	ClientName string `json:"client_name"`
}

type FindProductToEdit struct {
	ProductNameOrCode string `json:"product_name_or_code"`
}

type CreateClient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (NavigateTo) isAction()           {}
func (StartCreatingInvoice) isAction() {}
func (StartCreatingClient) isAction()  {}
func (StartCreatingProduct) isAction() {}
func (FindClientToEdit) isAction()     {}
func (FindProductToEdit) isAction()    {}
func (CreateClient) isAction()         {}

// Decode validates the function name and unmarshals the arguments into the
// matching action. Unknown names fail with ErrUnknownFunction.
func (c FunctionCall) Decode() (Action, error) {
	args := c.Args
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	switch c.Name {
	case FunctionNavigateTo:
		var a NavigateTo
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", c.Name, err)
		}

		if err := a.View.Validate(); err != nil {
			return nil, err
		}

		return a, nil

	case FunctionStartCreatingInvoice:
		var a StartCreatingInvoice
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", c.Name, err)
		}

		return a, nil

	case FunctionStartCreatingClient:
		return StartCreatingClient{}, nil

	case FunctionStartCreatingProduct:
		return StartCreatingProduct{}, nil

	case FunctionFindClientToEdit:
		var a FindClientToEdit
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", c.Name, err)
		}

		if a.ClientName == "" {
			return nil, fmt.Errorf("%w: %s requires client_name", ErrInvalidArgument, c.Name)
		}

		return a, nil

	case FunctionFindProductToEdit:
		var a FindProductToEdit
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", c.Name, err)
		}

		if a.ProductNameOrCode == "" {
			return nil, fmt.Errorf("%w: %s requires product_name_or_code", ErrInvalidArgument, c.Name)
		}

		return a, nil

	case FunctionCreateClient:
		var a CreateClient
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decode %s args: %w", c.Name, err)
		}

		if a.Name == "" || a.Email == "" || a.TaxID == "" {
			return nil, fmt.Errorf("%w: %s requires name, email and tax_id", ErrInvalidArgument, c.Name)
		}

		return a, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, c.Name)
	}
}
