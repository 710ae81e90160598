package memory

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clique360/backend/internal/entity"
)

// seed is the dataset a fresh deployment starts with, so the application is
// demonstrable before the first real record is entered.
func seed() snapshot {
	clients := []entity.Client{
		{
			ID:        uuid.Must(uuid.FromString("6f1f2f3a-0001-4c61-9f4e-aa11bb22cc01")),
			Name:      "Kappy Bara",
			Email:     "Pay@Kappybara.ai",
			TaxID:     "501238920",
			Phone:     "+1 808-123-4567",
			Address:   "95-1249 Meheula Pkwy",
			City:      "Mililani",
			State:     "Hawaii",
			Zip:       "96789",
			Country:   "USA",
			CreatedAt: time.Date(2024, 1, 24, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        uuid.Must(uuid.FromString("6f1f2f3a-0002-4c61-9f4e-aa11bb22cc02")),
			Name:      "Digital Wave Lda",
			Email:     "hello@digitalwave.com",
			TaxID:     "508765432",
			Phone:     "+351 22 987 6543",
			Address:   "Avenida da Liberdade, 45",
			City:      "Porto",
			State:     "Porto",
			Zip:       "4000-002",
			Country:   "Portugal",
			CreatedAt: time.Date(2023, 2, 20, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.Must(uuid.FromString("6f1f2f3a-0003-4c61-9f4e-aa11bb22cc03")),
			Name:      "Quantum Leap SA",
			Email:     "support@quantum.io",
			TaxID:     "510987654",
			Phone:     "+351 21 555 1234",
			Address:   "Praça do Comércio, 78",
			City:      "Lisboa",
			State:     "Lisboa",
			Zip:       "1100-148",
			Country:   "Portugal",
			CreatedAt: time.Date(2023, 3, 10, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:        uuid.Must(uuid.FromString("6f1f2f3a-0004-4c61-9f4e-aa11bb22cc04")),
			Name:      "Inova Tech Unipessoal",
			Email:     "contact@inova.tech",
			TaxID:     "509123456",
			Phone:     "+351 21 876 5432",
			Address:   "Rua das Flores, 123",
			City:      "Lisboa",
			State:     "Lisboa",
			Zip:       "1000-001",
			Country:   "Portugal",
			CreatedAt: time.Date(2023, 1, 15, 9, 30, 0, 0, time.UTC),
		},
	}

	products := []entity.Product{
		{
			ID:          uuid.Must(uuid.FromString("8a2b3c4d-0001-4e5f-8899-dd11ee22ff01")),
			Code:        "WEB-DEV",
			Name:        "Serviços de Desenvolvimento Web",
			Description: "Desenvolvimento de websites à medida",
			UnitPrice:   decimal.NewFromInt(5000),
			TaxRate:     23,
			Barcode:     "1111111111111",
			Active:      true,
		},
		{
			ID:          uuid.Must(uuid.FromString("8a2b3c4d-0002-4e5f-8899-dd11ee22ff02")),
			Code:        "SEO-CON",
			Name:        "Consultoria de SEO",
			Description: "Estratégia de Otimização para Motores de Busca",
			UnitPrice:   decimal.NewFromInt(1500),
			TaxRate:     23,
			Barcode:     "2222222222222",
			Active:      true,
		},
		{
			ID:          uuid.Must(uuid.FromString("8a2b3c4d-0003-4e5f-8899-dd11ee22ff03")),
			Code:        "CLOUD-HST",
			Name:        "Alojamento na Cloud",
			Description: "Alojamento mensal em servidor na cloud",
			UnitPrice:   decimal.NewFromInt(100),
			TaxRate:     23,
			Barcode:     "3333333333333",
			Active:      true,
		},
		{
			ID:          uuid.Must(uuid.FromString("8a2b3c4d-0004-4e5f-8899-dd11ee22ff04")),
			Code:        "UIUX-PKG",
			Name:        "Pacote de Design UI/UX",
			Description: "Design de interface e experiência do utilizador",
			UnitPrice:   decimal.NewFromInt(3500),
			TaxRate:     23,
			Barcode:     "4444444444444",
			Active:      true,
		},
	}

	invoices := []entity.Invoice{
		{
			ID:       uuid.Must(uuid.FromString("b1c2d3e4-0001-4f60-9122-331144225501")),
			Number:   "FT 2024/1",
			Client:   clients[0],
			Status:   entity.InvoiceStatusPaid,
			Date:     time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC),
			DueDate:  time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
			Total:    decimal.NewFromInt(3000),
			Currency: "EUR",
			Discount: decimal.NewFromInt(500),
			Lines: []entity.InvoiceLine{
				{
					ID:          uuid.Must(uuid.FromString("c1d2e3f4-1001-4a70-8233-44115522ee01")),
					ProductID:   products[3].ID,
					Description: "UI Design Work",
					Quantity:    2,
					UnitPrice:   decimal.NewFromInt(1000),
					TaxRate:     0,
					LineTotal:   decimal.NewFromInt(2000),
				},
				{
					ID:          uuid.Must(uuid.FromString("c1d2e3f4-1002-4a70-8233-44115522ee02")),
					ProductID:   products[0].ID,
					Description: "No-code Development",
					Quantity:    1,
					UnitPrice:   decimal.NewFromInt(1500),
					TaxRate:     0,
					LineTotal:   decimal.NewFromInt(1500),
				},
			},
			ATCUD:               entity.ATCUD(1),
			Hash:                entity.DocumentHash(),
			HashControl:         entity.HashControl(),
			CertificationNumber: entity.CertificationNumber,
		},
		{
			ID:       uuid.Must(uuid.FromString("b1c2d3e4-0002-4f60-9122-331144225502")),
			Number:   "FT 2024/2",
			Client:   clients[1],
			Status:   entity.InvoiceStatusIssued,
			Date:     time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			DueDate:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Total:    decimal.NewFromInt(1845),
			Currency: "EUR",
			Lines: []entity.InvoiceLine{
				{
					ID:          uuid.Must(uuid.FromString("c1d2e3f4-2001-4a70-8233-44115522ee03")),
					ProductID:   products[1].ID,
					Description: "SEO Consulting",
					Quantity:    1,
					UnitPrice:   decimal.NewFromInt(1500),
					TaxRate:     23,
					LineTotal:   decimal.NewFromInt(1500),
				},
			},
			ATCUD:               entity.ATCUD(2),
			Hash:                entity.DocumentHash(),
			HashControl:         entity.HashControl(),
			CertificationNumber: entity.CertificationNumber,
		},
		{
			ID:       uuid.Must(uuid.FromString("b1c2d3e4-0003-4f60-9122-331144225503")),
			Number:   entity.DraftNumber,
			Client:   clients[2],
			Status:   entity.InvoiceStatusDraft,
			Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			DueDate:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Total:    decimal.NewFromInt(4305),
			Currency: "EUR",
			Lines: []entity.InvoiceLine{
				{
					ID:          uuid.Must(uuid.FromString("c1d2e3f4-3001-4a70-8233-44115522ee04")),
					ProductID:   products[3].ID,
					Description: "UI/UX Design Package",
					Quantity:    1,
					UnitPrice:   decimal.NewFromInt(3500),
					TaxRate:     23,
					LineTotal:   decimal.NewFromInt(3500),
				},
			},
		},
		{
			ID:       uuid.Must(uuid.FromString("b1c2d3e4-0004-4f60-9122-331144225504")),
			Number:   "FT 2024/3",
			Client:   clients[3],
			Status:   entity.InvoiceStatusCancelled,
			Date:     time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
			DueDate:  time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			Total:    decimal.NewFromInt(123),
			Currency: "EUR",
			Lines: []entity.InvoiceLine{
				{
					ID:          uuid.Must(uuid.FromString("c1d2e3f4-4001-4a70-8233-44115522ee05")),
					ProductID:   products[2].ID,
					Description: "Cloud Hosting",
					Quantity:    1,
					UnitPrice:   decimal.NewFromInt(100),
					TaxRate:     23,
					LineTotal:   decimal.NewFromInt(100),
				},
			},
			ATCUD:               entity.ATCUD(3),
			Hash:                entity.DocumentHash(),
			HashControl:         entity.HashControl(),
			CertificationNumber: entity.CertificationNumber,
		},
	}

	return snapshot{
		Clients:  clients,
		Products: products,
		Invoices: invoices,
		PaymentMethods: entity.PaymentMethods{
			Multicaixa:   true,
			BankTransfer: true,
			Cash:         false,
		},
	}
}
