package dialect

type mysql struct{}

// MySQL returns the MySQL/MariaDB dialect.
func MySQL() Dialect {
	return &mysql{}
}

func (d *mysql) Name() string       { return "mysql" }
func (d *mysql) DriverName() string { return "mysql" }

func (d *mysql) QuoteIdent(name string) string {
	return quoteWith(name, "`")
}

func (d *mysql) Placeholder(int) string { return "?" }

// DefaultSchema is empty: MySQL reads the database name from the DSN.
func (d *mysql) DefaultSchema() string { return "" }
