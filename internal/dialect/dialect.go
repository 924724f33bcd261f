// Package dialect describes the database backends modelgen can introspect.
// A Dialect knows its database/sql driver name, how to quote identifiers
// and how to write bind placeholders; catalog queries live in introspect.
package dialect

import "strings"

// Dialect is one supported database backend.
type Dialect interface {
	// Name returns the canonical dialect name (mysql, postgres, sqlite).
	Name() string

	// DriverName returns the database/sql driver registered for the dialect.
	DriverName() string

	// QuoteIdent quotes an identifier (table/column name) for the dialect.
	// MySQL: `name`
	// PostgreSQL/SQLite: "name"
	QuoteIdent(name string) string

	// Placeholder returns a parameter placeholder for the given index (1-based).
	// PostgreSQL: $1, $2, ...
	// MySQL/SQLite: ?
	Placeholder(index int) string

	// DefaultSchema returns the catalog schema used when none is configured.
	// Empty means the schema comes from the connection itself.
	DefaultSchema() string
}

// aliases maps accepted spellings (including Laravel DB_CONNECTION values)
// to canonical names.
var aliases = map[string]string{
	"mysql":      "mysql",
	"mariadb":    "mysql",
	"postgres":   "postgres",
	"postgresql": "postgres",
	"pgsql":      "postgres",
	"sqlite":     "sqlite",
	"sqlite3":    "sqlite",
}

// Normalize returns the canonical dialect name for name, or "" if unknown.
func Normalize(name string) string {
	return aliases[strings.ToLower(strings.TrimSpace(name))]
}

// Get returns the dialect implementation for the given name or alias.
// Returns nil if the dialect is not supported.
func Get(name string) Dialect {
	switch Normalize(name) {
	case "mysql":
		return MySQL()
	case "postgres":
		return Postgres()
	case "sqlite":
		return SQLite()
	default:
		return nil
	}
}

// Names returns the list of canonical dialect names.
func Names() []string {
	return []string{"mysql", "postgres", "sqlite"}
}

// quoteWith wraps name in q, doubling any embedded q.
func quoteWith(name string, q string) string {
	return q + strings.ReplaceAll(name, q, q+q) + q
}
