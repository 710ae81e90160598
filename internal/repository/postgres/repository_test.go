package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/clique360/backend/internal/entity"
	"github.com/clique360/backend/internal/repository/postgres"
	pg "github.com/clique360/backend/pkg/postgres"
)

func TestRepository_ClientCRUD(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	c := entity.Client{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "Atlântico Serviços Lda",
		Email:     "geral@atlantico.pt",
		TaxID:     "500123123",
		Phone:     "+351 21 000 0000",
		City:      "Lisboa",
		Country:   "Portugal",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	require.NoError(t, repo.CreateClient(ctx, c))

	got, err := repo.Client(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c, got)

	c.Email = "faturacao@atlantico.pt"
	require.NoError(t, repo.UpdateClient(ctx, c))

	got, err = repo.Client(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.Email, got.Email)

	require.NoError(t, repo.DeleteClient(ctx, c.ID))

	_, err = repo.Client(ctx, c.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_InvoiceRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	inv := entity.Invoice{
		ID:     uuid.Must(uuid.NewV4()),
		Number: "FT 2026/901",
		Client: entity.Client{
			ID:        uuid.Must(uuid.NewV4()),
			Name:      "Cliente Snapshot",
			Email:     "snapshot@cliente.pt",
			TaxID:     "509000111",
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		},
		Status:   entity.InvoiceStatusIssued,
		Date:     time.Now().UTC().Truncate(time.Millisecond),
		DueDate:  time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Millisecond),
		Total:    decimal.New(184500, -2),
		Currency: "EUR",
		Lines: []entity.InvoiceLine{
			{
				ID:          uuid.Must(uuid.NewV4()),
				ProductID:   uuid.Must(uuid.NewV4()),
				Description: "Consultoria",
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(1500),
				TaxRate:     23,
				LineTotal:   decimal.NewFromInt(1500),
			},
		},
		Discount:            decimal.Zero,
		ATCUD:               entity.ATCUD(901),
		Hash:                entity.DocumentHash(),
		HashControl:         entity.HashControl(),
		CertificationNumber: entity.CertificationNumber,
	}

	require.NoError(t, repo.CreateInvoice(ctx, inv))

	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.Number, got.Number)
	require.Equal(t, inv.Client.Name, got.Client.Name)
	require.Len(t, got.Lines, 1)
	require.True(t, inv.Total.Equal(got.Total))

	got.Status = entity.InvoiceStatusPaid
	require.NoError(t, repo.UpdateInvoice(ctx, got))

	got, err = repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, got.Status)
}

func TestRepository_PaymentMethods(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	m, err := repo.PaymentMethods(ctx)
	require.NoError(t, err)

	m.Cash = !m.Cash
	require.NoError(t, repo.SavePaymentMethods(ctx, m))

	got, err := repo.PaymentMethods(ctx)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func newRepository(t *testing.T) *postgres.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	require.NoError(t, pg.UpMigrations(dsn))

	pool, err := pg.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return postgres.New(pool)
}
