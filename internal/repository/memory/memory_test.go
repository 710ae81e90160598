package memory_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/clique360/backend/internal/entity"
	"github.com/clique360/backend/internal/repository/memory"
)

func TestStore_Seed(t *testing.T) {
	t.Parallel()

	s := memory.New(slog.Default(), "")

	clients, err := s.Clients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 4)
	require.Equal(t, "Kappy Bara", clients[0].Name)

	products, err := s.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	methods, err := s.PaymentMethods(context.Background())
	require.NoError(t, err)
	require.True(t, methods.Multicaixa)
	require.True(t, methods.BankTransfer)
	require.False(t, methods.Cash)
}

func TestStore_ClientCRUD(t *testing.T) {
	t.Parallel()

	s := memory.New(slog.Default(), "")
	ctx := context.Background()

	c := entity.Client{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "Teste Lda",
		Email:     "geral@teste.pt",
		TaxID:     "500111222",
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, s.CreateClient(ctx, c))

	got, err := s.Client(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c, got)

	c.Email = "faturas@teste.pt"
	require.NoError(t, s.UpdateClient(ctx, c))

	got, err = s.Client(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "faturas@teste.pt", got.Email)

	require.NoError(t, s.DeleteClient(ctx, c.ID))

	_, err = s.Client(ctx, c.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = s.DeleteClient(ctx, c.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestStore_InvoicesSortedByDateDesc(t *testing.T) {
	t.Parallel()

	s := memory.New(slog.Default(), "")

	invoices, err := s.Invoices(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, invoices)

	for i := 1; i < len(invoices); i++ {
		require.False(t, invoices[i-1].Date.Before(invoices[i].Date))
	}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "db.json")
	ctx := context.Background()

	s := memory.New(slog.Default(), file)

	c := entity.Client{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "Persistente SA",
		Email:     "ola@persistente.pt",
		TaxID:     "500999888",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.CreateClient(ctx, c))

	require.NoError(t, s.SavePaymentMethods(ctx, entity.PaymentMethods{Cash: true}))

	// A second store over the same file must see the mutations.
	reopened := memory.New(slog.Default(), file)

	got, err := reopened.Client(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.Name, got.Name)
	require.Equal(t, c.TaxID, got.TaxID)

	methods, err := reopened.PaymentMethods(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentMethods{Cash: true}, methods)
}

func TestStore_CorruptSnapshotFallsBackToSeed(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o644))

	s := memory.New(slog.Default(), file)

	clients, err := s.Clients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 4)
}

func TestStore_UpdateInvoice(t *testing.T) {
	t.Parallel()

	s := memory.New(slog.Default(), "")
	ctx := context.Background()

	invoices, err := s.Invoices(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, invoices)

	inv := invoices[0]
	inv.Total = decimal.NewFromInt(42)
	require.NoError(t, s.UpdateInvoice(ctx, inv))

	got, err := s.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.True(t, got.Total.Equal(decimal.NewFromInt(42)))

	inv.ID = uuid.Must(uuid.NewV4())
	err = s.UpdateInvoice(ctx, inv)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
