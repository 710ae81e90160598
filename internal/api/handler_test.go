package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clique360/backend/internal/api"
	"github.com/clique360/backend/internal/dispatch"
	"github.com/clique360/backend/internal/entity"
	"github.com/clique360/backend/internal/mocks"
	"github.com/clique360/backend/internal/repository/memory"
	"github.com/clique360/backend/internal/service"
)

func TestHandler_ClientCRUD(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	var clients []entity.Client
	resp := ts.do(t, http.MethodGet, "/api/clients", nil, &clients)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, clients, 4)

	var created entity.Client
	resp = ts.do(t, http.MethodPost, "/api/clients", map[string]string{
		"name":   "Acme",
		"email":  "a@acme.com",
		"tax_id": "123",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Acme", created.Name)
	require.False(t, created.CreatedAt.IsZero())

	var updated entity.Client
	resp = ts.do(t, http.MethodPut, "/api/clients/"+created.ID.String(), map[string]string{
		"phone": "+351 21 999 9999",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "+351 21 999 9999", updated.Phone)
	require.Equal(t, "Acme", updated.Name)

	resp = ts.do(t, http.MethodDelete, "/api/clients/"+created.ID.String(), nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.do(t, http.MethodDelete, "/api/clients/"+created.ID.String(), nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_CreateClient_Errors(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	resp := ts.doRaw(t, http.MethodPost, "/api/clients", []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/api/clients", map[string]string{"name": "Sem Email"}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = ts.do(t, http.MethodPut, "/api/clients/not-a-uuid", map[string]string{"name": "X"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ProductCRUD(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	var created entity.Product
	resp := ts.do(t, http.MethodPost, "/api/products", map[string]any{
		"name":       "Suporte Premium",
		"unit_price": 300,
		"tax_rate":   23,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "1001", created.Code)
	require.True(t, created.Active)

	resp = ts.do(t, http.MethodPost, "/api/products", map[string]any{
		"name":       "Grátis",
		"unit_price": 0,
	}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var products []entity.Product
	resp = ts.do(t, http.MethodGet, "/api/products", nil, &products)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, products, 5)
}

func TestHandler_Invoices(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	var clients []entity.Client
	ts.do(t, http.MethodGet, "/api/clients", nil, &clients)

	var products []entity.Product
	ts.do(t, http.MethodGet, "/api/products", nil, &products)

	var created entity.Invoice
	resp := ts.do(t, http.MethodPost, "/api/invoices", map[string]any{
		"client_id": clients[0].ID,
		"lines": []map[string]any{
			{"product_id": products[0].ID, "quantity": 1},
		},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, entity.InvoiceStatusDraft, created.Status)
	require.Equal(t, entity.DraftNumber, created.Number)

	var issued entity.Invoice
	resp = ts.do(t, http.MethodPost, fmt.Sprintf("/api/invoices/%s/status", created.ID), map[string]string{
		"status": "issued",
	}, &issued)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.InvoiceStatusIssued, issued.Status)
	require.NotEqual(t, entity.DraftNumber, issued.Number)
	require.NotEmpty(t, issued.ATCUD)

	// issued → draft does not exist.
	resp = ts.do(t, http.MethodPost, fmt.Sprintf("/api/invoices/%s/status", created.ID), map[string]string{
		"status": "draft",
	}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var invoices []entity.Invoice
	resp = ts.do(t, http.MethodGet, "/api/invoices", nil, &invoices)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for i := 1; i < len(invoices); i++ {
		require.False(t, invoices[i-1].Date.Before(invoices[i].Date))
	}
}

func TestHandler_PaymentMethods(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	var methods entity.PaymentMethods
	resp := ts.do(t, http.MethodGet, "/api/company/payment-methods", nil, &methods)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, methods.Multicaixa)

	resp = ts.do(t, http.MethodPost, "/api/company/payment-methods", map[string]bool{
		"cash": true,
	}, &methods)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, methods.Cash)
	require.True(t, methods.Multicaixa)
	require.True(t, methods.BankTransfer)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	ts := newServer(t)

	resp := ts.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

type tester struct {
	server   *httptest.Server
	provider *mocks.MockProvider
}

func newServer(t *testing.T) *tester {
	t.Helper()

	ctrl := gomock.NewController(t)

	producer := mocks.NewMockProducer(ctrl)
	producer.EXPECT().SendRecordEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	provider := mocks.NewMockProvider(ctrl)

	svc := service.New(memory.New(slog.Default(), ""), producer)
	chat := service.NewChat(provider)

	handler := api.NewHandler(svc, chat, dispatch.New(svc))
	router := api.NewRouter(handler, api.NewMiddleware(), "/api")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &tester{server: server, provider: provider}
}

func (ts *tester) do(t *testing.T, method, path string, body, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.server.URL+path, &buf)
	require.NoError(t, err)

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return resp
}

func (ts *tester) doRaw(t *testing.T, method, path string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp
}
