package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/clique360/backend/internal/dispatch"
	"github.com/clique360/backend/internal/entity"
	"github.com/clique360/backend/internal/service"
)

// @title Clique 360 API
// @version 1.0
// @description Invoicing backend for the Clique 360 application: clients, products, invoices, company settings and the AI assistant chat relay.
// @BasePath /api

type Service interface {
	Clients(ctx context.Context) ([]entity.Client, error)
	CreateClient(ctx context.Context, in service.ClientInput) (entity.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, patch entity.ClientPatch) (entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error

	Products(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, in service.ProductInput) (entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	Invoices(ctx context.Context) ([]entity.Invoice, error)
	CreateInvoice(ctx context.Context, in service.InvoiceInput) (entity.Invoice, error)
	TransitionInvoice(ctx context.Context, id uuid.UUID, next entity.InvoiceStatus) (entity.Invoice, error)

	PaymentMethods(ctx context.Context) (entity.PaymentMethods, error)
	UpdatePaymentMethods(ctx context.Context, patch entity.PaymentMethodsPatch) (entity.PaymentMethods, error)
}

type ChatService interface {
	Stream(ctx context.Context, message string, history []entity.ChatMessage) (<-chan entity.ChatChunk, error)
}

type Handler struct {
	s          Service
	chat       ChatService
	dispatcher *dispatch.Dispatcher
}

func NewHandler(s Service, chat ChatService, dispatcher *dispatch.Dispatcher) *Handler {
	return &Handler{
		s:          s,
		chat:       chat,
		dispatcher: dispatcher,
	}
}

// Health reports process liveness
// @Summary Health check
// @Tags system
// @Success 200 {string} string "ok"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, "ok")
}

// Clients lists all clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} entity.Client
// @Router /clients [get]
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, clients)
}

// CreateClient creates a client
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body service.ClientInput true "Client fields"
// @Success 201 {object} entity.Client
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /clients [post]
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in service.ClientInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	client, err := h.s.CreateClient(ctx, in)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, client)
}

// UpdateClient partially updates a client
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client id"
// @Param client body entity.ClientPatch true "Fields to update"
// @Success 200 {object} entity.Client
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /clients/{id} [put]
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Identificador inválido")
		return
	}

	var patch entity.ClientPatch

	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	client, err := h.s.UpdateClient(ctx, id, patch)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

// DeleteClient deletes a client
// @Summary Delete client
// @Tags clients
// @Param id path string true "Client id"
// @Success 204
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /clients/{id} [delete]
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Identificador inválido")
		return
	}

	err = h.s.DeleteClient(ctx, id)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Products lists all products
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} entity.Product
// @Router /products [get]
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.s.Products(ctx)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, products)
}

// CreateProduct creates a product with a system-assigned code
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.ProductInput true "Product fields"
// @Success 201 {object} entity.Product
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in service.ProductInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	product, err := h.s.CreateProduct(ctx, in)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, product)
}

// UpdateProduct partially updates a product
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param product body entity.ProductPatch true "Fields to update"
// @Success 200 {object} entity.Product
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Identificador inválido")
		return
	}

	var patch entity.ProductPatch

	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	product, err := h.s.UpdateProduct(ctx, id, patch)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, product)
}

// DeleteProduct deletes a product
// @Summary Delete product
// @Tags products
// @Param id path string true "Product id"
// @Success 204
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Identificador inválido")
		return
	}

	err = h.s.DeleteProduct(ctx, id)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Invoices lists invoices, newest first
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {array} entity.Invoice
// @Router /invoices [get]
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoices, err := h.s.Invoices(ctx)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoices)
}

// CreateInvoice creates an invoice from client and product references
// @Summary Create invoice
// @Description Snapshots the client and product prices. Drafts get the RASCUNHO placeholder; other statuses are numbered and stamped immediately.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body service.InvoiceInput true "Invoice fields"
// @Success 201 {object} entity.Invoice
// @Failure 404 {object} ErrorResponse "Client or product not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in service.InvoiceInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	invoice, err := h.s.CreateInvoice(ctx, in)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, invoice)
}

type TransitionInvoiceRequest struct {
	Status entity.InvoiceStatus `json:"status"`
}

// TransitionInvoice moves an invoice through its lifecycle
// @Summary Change invoice status
// @Description draft→issued→paid; draft and issued may be cancelled. Issuing a draft assigns its number and compliance stamp.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Param transition body TransitionInvoiceRequest true "Target status"
// @Success 200 {object} entity.Invoice
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Router /invoices/{id}/status [post]
func (h *Handler) TransitionInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Identificador inválido")
		return
	}

	var req TransitionInvoiceRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	invoice, err := h.s.TransitionInvoice(ctx, id, req.Status)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoice)
}

// PaymentMethods returns the company payment methods
// @Summary Get payment methods
// @Tags company
// @Produce json
// @Success 200 {object} entity.PaymentMethods
// @Router /company/payment-methods [get]
func (h *Handler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	methods, err := h.s.PaymentMethods(ctx)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, methods)
}

// UpdatePaymentMethods merges the provided booleans onto the company record
// @Summary Update payment methods
// @Tags company
// @Accept json
// @Produce json
// @Param methods body entity.PaymentMethodsPatch true "Methods to change"
// @Success 200 {object} entity.PaymentMethods
// @Router /company/payment-methods [post]
func (h *Handler) UpdatePaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch entity.PaymentMethodsPatch

	err := json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	methods, err := h.s.UpdatePaymentMethods(ctx, patch)
	if err != nil {
		h.sendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, methods)
}

func (h *Handler) sendErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Registo não encontrado")
	case errors.Is(err, entity.ErrValidation):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Dados inválidos")
	case errors.Is(err, entity.ErrInvalidStatus):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Transição de estado não permitida")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Argumento inválido")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Erro interno do servidor")
	}
}
