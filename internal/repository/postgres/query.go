package postgres

const (
	selectClient = `SELECT
		id,
		name,
		email,
		tax_id,
		phone,
		address,
		city,
		state,
		zip,
		country,
		created_at
	FROM clients`

	selectProduct = `SELECT
		id,
		code,
		name,
		description,
		unit_price,
		tax_rate,
		barcode,
		active
	FROM products`

	selectInvoice = `SELECT
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
	FROM invoices`
)
