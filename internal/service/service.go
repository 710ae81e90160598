package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clique360/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=../mocks/service.go -package=mocks -typed github.com/clique360/backend/internal/service Producer,Provider

// Store is the record repository. Both backends (memory, postgres) keep
// clients and products in insertion order and return invoices newest first.
type Store interface {
	Clients(ctx context.Context) ([]entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	CreateClient(ctx context.Context, c entity.Client) error
	UpdateClient(ctx context.Context, c entity.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	Products(ctx context.Context) ([]entity.Product, error)
	Product(ctx context.Context, id uuid.UUID) (entity.Product, error)
	CreateProduct(ctx context.Context, p entity.Product) error
	UpdateProduct(ctx context.Context, p entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	Invoices(ctx context.Context) ([]entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	CreateInvoice(ctx context.Context, i entity.Invoice) error
	UpdateInvoice(ctx context.Context, i entity.Invoice) error

	PaymentMethods(ctx context.Context) (entity.PaymentMethods, error)
	SavePaymentMethods(ctx context.Context, m entity.PaymentMethods) error
}

type Producer interface {
	SendRecordEvent(ctx context.Context, entity, action, recordID string)
}

type Service struct {
	store    Store
	producer Producer
	validate *validator.Validate
}

func New(store Store, producer Producer) *Service {
	return &Service{
		store:    store,
		producer: producer,
		validate: validator.New(),
	}
}

type ClientInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	TaxID   string `json:"tax_id" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	return s.store.Clients(ctx)
}

func (s *Service) CreateClient(ctx context.Context, in ClientInput) (entity.Client, error) {
	err := s.validate.Struct(in)
	if err != nil {
		return entity.Client{}, fmt.Errorf("%w: %s", entity.ErrValidation, err)
	}

	c := entity.Client{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      in.Name,
		Email:     in.Email,
		TaxID:     in.TaxID,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Country:   in.Country,
		CreatedAt: time.Now().UTC(),
	}

	err = s.store.CreateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	s.producer.SendRecordEvent(ctx, "client", "created", c.ID.String())

	return c, nil
}

func (s *Service) UpdateClient(ctx context.Context, id uuid.UUID, patch entity.ClientPatch) (entity.Client, error) {
	c, err := s.store.Client(ctx, id)
	if err != nil {
		return entity.Client{}, fmt.Errorf("get client %s: %w", id, err)
	}

	patch.Apply(&c)

	err = s.validate.Struct(ClientInput{Name: c.Name, Email: c.Email, TaxID: c.TaxID})
	if err != nil {
		return entity.Client{}, fmt.Errorf("%w: %s", entity.ErrValidation, err)
	}

	err = s.store.UpdateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client %s: %w", id, err)
	}

	s.producer.SendRecordEvent(ctx, "client", "updated", c.ID.String())

	return c, nil
}

func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteClient(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}

	s.producer.SendRecordEvent(ctx, "client", "deleted", id.String())

	return nil
}

type ProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     uint32          `json:"tax_rate" validate:"lte=100"`
	Barcode     string          `json:"barcode"`
}

func (s *Service) Products(ctx context.Context) ([]entity.Product, error) {
	return s.store.Products(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (entity.Product, error) {
	err := s.validate.Struct(in)
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: %s", entity.ErrValidation, err)
	}

	if !in.UnitPrice.IsPositive() {
		return entity.Product{}, fmt.Errorf("%w: unit_price must be positive", entity.ErrValidation)
	}

	code, err := s.nextProductCode(ctx)
	if err != nil {
		return entity.Product{}, fmt.Errorf("allocate product code: %w", err)
	}

	p := entity.Product{
		ID:          uuid.Must(uuid.NewV4()),
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		TaxRate:     in.TaxRate,
		Barcode:     in.Barcode,
		Active:      true,
	}

	err = s.store.CreateProduct(ctx, p)
	if err != nil {
		return entity.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.producer.SendRecordEvent(ctx, "product", "created", p.ID.String())

	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (entity.Product, error) {
	p, err := s.store.Product(ctx, id)
	if err != nil {
		return entity.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}

	patch.Apply(&p)

	if p.Name == "" {
		return entity.Product{}, fmt.Errorf("%w: name is required", entity.ErrValidation)
	}

	if !p.UnitPrice.IsPositive() {
		return entity.Product{}, fmt.Errorf("%w: unit_price must be positive", entity.ErrValidation)
	}

	if p.TaxRate > 100 {
		return entity.Product{}, fmt.Errorf("%w: tax_rate must not exceed 100", entity.ErrValidation)
	}

	err = s.store.UpdateProduct(ctx, p)
	if err != nil {
		return entity.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}

	s.producer.SendRecordEvent(ctx, "product", "updated", p.ID.String())

	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	s.producer.SendRecordEvent(ctx, "product", "deleted", id.String())

	return nil
}

// nextProductCode allocates max(numeric codes)+1. Codes that do not parse as
// numbers (imported legacy codes) are ignored. The first allocated code is
// entity.FirstProductCode.
func (s *Service) nextProductCode(ctx context.Context) (string, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return "", err
	}

	next := entity.FirstProductCode

	for _, p := range products {
		n, err := strconv.ParseInt(p.Code, 10, 64)
		if err != nil {
			continue
		}

		if n+1 > next {
			next = n + 1
		}
	}

	return strconv.FormatInt(next, 10), nil
}

type InvoiceLineInput struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity" validate:"required,gt=0"`
}

type InvoiceInput struct {
	ClientID uuid.UUID            `json:"client_id" validate:"required"`
	Status   entity.InvoiceStatus `json:"status"`
	Date     time.Time            `json:"date"`
	DueDate  time.Time            `json:"due_date"`
	Currency string               `json:"currency"`
	Discount decimal.Decimal      `json:"discount"`
	Lines    []InvoiceLineInput   `json:"lines" validate:"required,min=1,dive"`
}

func (s *Service) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	return s.store.Invoices(ctx)
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	return s.store.Invoice(ctx, id)
}

// CreateInvoice snapshots the client and the product prices at creation time.
// Drafts carry the RASCUNHO placeholder; any other status gets a sequential
// number and the compliance stamp immediately.
func (s *Service) CreateInvoice(ctx context.Context, in InvoiceInput) (entity.Invoice, error) {
	err := s.validate.Struct(in)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("%w: %s", entity.ErrValidation, err)
	}

	if in.Discount.IsNegative() {
		return entity.Invoice{}, fmt.Errorf("%w: discount must not be negative", entity.ErrValidation)
	}

	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}

	err = status.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	client, err := s.store.Client(ctx, in.ClientID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get client %s: %w", in.ClientID, err)
	}

	lines := make([]entity.InvoiceLine, 0, len(in.Lines))

	for _, l := range in.Lines {
		product, err := s.store.Product(ctx, l.ProductID)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("get product %s: %w", l.ProductID, err)
		}

		description := l.Description
		if description == "" {
			description = product.Name
		}

		line := entity.InvoiceLine{
			ID:          uuid.Must(uuid.NewV4()),
			ProductID:   product.ID,
			Description: description,
			Quantity:    l.Quantity,
			UnitPrice:   product.UnitPrice,
			TaxRate:     product.TaxRate,
			LineTotal:   product.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)),
		}

		lines = append(lines, line)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	dueDate := in.DueDate
	if dueDate.IsZero() {
		dueDate = date.AddDate(0, 0, 30)
	}

	currency := in.Currency
	if currency == "" {
		currency = "EUR"
	}

	inv := entity.Invoice{
		ID:       uuid.Must(uuid.NewV4()),
		Number:   entity.DraftNumber,
		Client:   client,
		Status:   status,
		Date:     date,
		DueDate:  dueDate,
		Currency: currency,
		Lines:    lines,
		Discount: in.Discount,
	}

	inv.Total = inv.ComputeTotal()

	if status != entity.InvoiceStatusDraft {
		err = s.stampInvoice(ctx, &inv)
		if err != nil {
			return entity.Invoice{}, err
		}
	}

	err = s.store.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("invoice %s created for client %s, total %s %s",
		inv.Number, client.Name, inv.Total, inv.Currency))

	s.producer.SendRecordEvent(ctx, "invoice", "created", inv.ID.String())

	return inv, nil
}

// TransitionInvoice moves an invoice through its lifecycle. The draft→issued
// step assigns the definitive number and the compliance stamp.
func (s *Service) TransitionInvoice(ctx context.Context, id uuid.UUID, next entity.InvoiceStatus) (entity.Invoice, error) {
	err := next.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err := s.store.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	if !inv.Status.CanTransitionTo(next) {
		return entity.Invoice{}, fmt.Errorf("%w: %s to %s", entity.ErrInvalidStatus, inv.Status, next)
	}

	if inv.Status == entity.InvoiceStatusDraft && next == entity.InvoiceStatusIssued {
		err = s.stampInvoice(ctx, &inv)
		if err != nil {
			return entity.Invoice{}, err
		}
	}

	inv.Status = next

	err = s.store.UpdateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update invoice %s: %w", id, err)
	}

	s.producer.SendRecordEvent(ctx, "invoice", "status_changed", inv.ID.String())

	return inv, nil
}

func (s *Service) stampInvoice(ctx context.Context, inv *entity.Invoice) error {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}

	var seq int64 = 1

	for _, existing := range invoices {
		if existing.Number != entity.DraftNumber {
			seq++
		}
	}

	inv.Number = fmt.Sprintf("FT %d/%d", inv.Date.Year(), seq)
	inv.ATCUD = entity.ATCUD(seq)
	inv.Hash = entity.DocumentHash()
	inv.HashControl = entity.HashControl()
	inv.CertificationNumber = entity.CertificationNumber

	return nil
}

func (s *Service) PaymentMethods(ctx context.Context) (entity.PaymentMethods, error) {
	return s.store.PaymentMethods(ctx)
}

func (s *Service) UpdatePaymentMethods(ctx context.Context, patch entity.PaymentMethodsPatch) (entity.PaymentMethods, error) {
	m, err := s.store.PaymentMethods(ctx)
	if err != nil {
		return entity.PaymentMethods{}, fmt.Errorf("get payment methods: %w", err)
	}

	patch.Apply(&m)

	err = s.store.SavePaymentMethods(ctx, m)
	if err != nil {
		return entity.PaymentMethods{}, fmt.Errorf("save payment methods: %w", err)
	}

	s.producer.SendRecordEvent(ctx, "payment_methods", "updated", "company")

	return m, nil
}
