package dialect

type sqlite struct{}

// SQLite returns the SQLite dialect.
func SQLite() Dialect {
	return &sqlite{}
}

func (d *sqlite) Name() string { return "sqlite" }

// DriverName is the name modernc.org/sqlite registers.
func (d *sqlite) DriverName() string { return "sqlite" }

func (d *sqlite) QuoteIdent(name string) string {
	return quoteWith(name, `"`)
}

func (d *sqlite) Placeholder(int) string { return "?" }

func (d *sqlite) DefaultSchema() string { return "main" }
