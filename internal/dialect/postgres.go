package dialect

import "strconv"

type postgres struct{}

// Postgres returns the PostgreSQL dialect.
func Postgres() Dialect {
	return &postgres{}
}

func (d *postgres) Name() string       { return "postgres" }
func (d *postgres) DriverName() string { return "postgres" }

func (d *postgres) QuoteIdent(name string) string {
	return quoteWith(name, `"`)
}

func (d *postgres) Placeholder(index int) string {
	return "$" + strconv.Itoa(index)
}

func (d *postgres) DefaultSchema() string { return "public" }
