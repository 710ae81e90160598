// Package postgres backs the store with PostgreSQL. The invoice client
// snapshot and its lines live in JSONB columns: they are immutable copies,
// never joined against.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clique360/backend/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) Clients(ctx context.Context) ([]entity.Client, error) {
	q := selectClient + " ORDER BY position"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []entity.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *Repository) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1"
	return scanClient(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) CreateClient(ctx context.Context, c entity.Client) error {
	const q = `
	INSERT INTO clients (id, name, email, tax_id, phone, address, city, state, zip, country, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.Name,
		c.Email,
		c.TaxID,
		zeronull.Text(c.Phone),
		zeronull.Text(c.Address),
		zeronull.Text(c.City),
		zeronull.Text(c.State),
		zeronull.Text(c.Zip),
		zeronull.Text(c.Country),
		c.CreatedAt,
	)

	return err
}

func (r *Repository) UpdateClient(ctx context.Context, c entity.Client) error {
	const q = `
	UPDATE clients SET
		name = $1,
		email = $2,
		tax_id = $3,
		phone = $4,
		address = $5,
		city = $6,
		state = $7,
		zip = $8,
		country = $9
	WHERE id = $10
	`

	result, err := r.db.Exec(
		ctx,
		q,
		c.Name,
		c.Email,
		c.TaxID,
		zeronull.Text(c.Phone),
		zeronull.Text(c.Address),
		zeronull.Text(c.City),
		zeronull.Text(c.State),
		zeronull.Text(c.Zip),
		zeronull.Text(c.Country),
		c.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM clients WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Products(ctx context.Context) ([]entity.Product, error) {
	q := selectProduct + " ORDER BY position"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *Repository) Product(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	q := selectProduct + " WHERE id = $1"
	return scanProduct(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) CreateProduct(ctx context.Context, p entity.Product) error {
	const q = `
	INSERT INTO products (id, code, name, description, unit_price, tax_rate, barcode, active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.Code,
		p.Name,
		p.Description,
		p.UnitPrice,
		p.TaxRate,
		zeronull.Text(p.Barcode),
		p.Active,
	)

	return err
}

func (r *Repository) UpdateProduct(ctx context.Context, p entity.Product) error {
	const q = `
	UPDATE products SET
		name = $1,
		description = $2,
		unit_price = $3,
		tax_rate = $4,
		barcode = $5,
		active = $6
	WHERE id = $7
	`

	result, err := r.db.Exec(
		ctx,
		q,
		p.Name,
		p.Description,
		p.UnitPrice,
		p.TaxRate,
		zeronull.Text(p.Barcode),
		p.Active,
		p.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	stmt := sq.Select(
		"id",
		"number",
		"client",
		"status",
		"date",
		"due_date",
		"total",
		"currency",
		"lines",
		"discount",
		"atcud",
		"hash",
		"hash_control",
		"certification_number",
	).From("invoices").OrderBy("date DESC", "id DESC").PlaceholderFormat(sq.Dollar)

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"
	return scanInvoice(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) error {
	const q = `
	INSERT INTO invoices (
		id,
		number,
		client,
		status,
		date,
		due_date,
		total,
		currency,
		lines,
		discount,
		atcud,
		hash,
		hash_control,
		certification_number
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	client, lines, err := marshalSnapshots(inv)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		q,
		inv.ID,
		inv.Number,
		client,
		inv.Status,
		inv.Date,
		inv.DueDate,
		inv.Total,
		inv.Currency,
		lines,
		inv.Discount,
		inv.ATCUD,
		inv.Hash,
		inv.HashControl,
		inv.CertificationNumber,
	)

	return err
}

func (r *Repository) UpdateInvoice(ctx context.Context, inv entity.Invoice) error {
	const q = `
	UPDATE invoices SET
		number = $1,
		client = $2,
		status = $3,
		date = $4,
		due_date = $5,
		total = $6,
		currency = $7,
		lines = $8,
		discount = $9,
		atcud = $10,
		hash = $11,
		hash_control = $12,
		certification_number = $13
	WHERE id = $14
	`

	client, lines, err := marshalSnapshots(inv)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(
		ctx,
		q,
		inv.Number,
		client,
		inv.Status,
		inv.Date,
		inv.DueDate,
		inv.Total,
		inv.Currency,
		lines,
		inv.Discount,
		inv.ATCUD,
		inv.Hash,
		inv.HashControl,
		inv.CertificationNumber,
		inv.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) PaymentMethods(ctx context.Context) (entity.PaymentMethods, error) {
	const q = `SELECT multicaixa, bank_transfer, cash FROM payment_methods`

	var m entity.PaymentMethods

	err := r.db.QueryRow(ctx, q).Scan(&m.Multicaixa, &m.BankTransfer, &m.Cash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.PaymentMethods{}, entity.ErrNotFound
		}

		return entity.PaymentMethods{}, err
	}

	return m, nil
}

func (r *Repository) SavePaymentMethods(ctx context.Context, m entity.PaymentMethods) error {
	const q = `UPDATE payment_methods SET multicaixa = $1, bank_transfer = $2, cash = $3`

	_, err := r.db.Exec(ctx, q, m.Multicaixa, m.BankTransfer, m.Cash)

	return err
}

func marshalSnapshots(inv entity.Invoice) (client, lines []byte, err error) {
	client, err = json.Marshal(inv.Client)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal client snapshot: %w", err)
	}

	lines, err = json.Marshal(inv.Lines)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal lines: %w", err)
	}

	return client, lines, nil
}

func scanClient(row pgx.Row) (c entity.Client, err error) {
	err = row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.TaxID,
		(*zeronull.Text)(&c.Phone),
		(*zeronull.Text)(&c.Address),
		(*zeronull.Text)(&c.City),
		(*zeronull.Text)(&c.State),
		(*zeronull.Text)(&c.Zip),
		(*zeronull.Text)(&c.Country),
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return c, nil
}

func scanProduct(row pgx.Row) (p entity.Product, err error) {
	err = row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.UnitPrice,
		&p.TaxRate,
		(*zeronull.Text)(&p.Barcode),
		&p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Product{}, entity.ErrNotFound
		}

		return entity.Product{}, err
	}

	return p, nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	var client, lines []byte

	err = row.Scan(
		&inv.ID,
		&inv.Number,
		&client,
		&inv.Status,
		&inv.Date,
		&inv.DueDate,
		&inv.Total,
		&inv.Currency,
		&lines,
		&inv.Discount,
		&inv.ATCUD,
		&inv.Hash,
		&inv.HashControl,
		&inv.CertificationNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	err = json.Unmarshal(client, &inv.Client)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("unmarshal client snapshot: %w", err)
	}

	err = json.Unmarshal(lines, &inv.Lines)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("unmarshal lines: %w", err)
	}

	return inv, nil
}
