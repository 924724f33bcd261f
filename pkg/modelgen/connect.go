package modelgen

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/hlop3z/modelgen/internal/dialect"
)

// detectDialect auto-detects the database dialect from the connection URL.
//
// Detection rules:
//   - mysql:// or mariadb:// or a DSN with tcp( -> mysql
//   - postgres:// or postgresql:// -> postgres
//   - sqlite:// or file: or path ending with .db/.sqlite/.sqlite3 -> sqlite
func detectDialect(rawURL string) string {
	u := strings.ToLower(rawURL)

	switch {
	case strings.HasPrefix(u, "mysql://"),
		strings.HasPrefix(u, "mariadb://"),
		strings.Contains(u, "@tcp("):
		return "mysql"

	case strings.HasPrefix(u, "postgres://"),
		strings.HasPrefix(u, "postgresql://"):
		return "postgres"

	case strings.HasPrefix(u, "sqlite://"),
		strings.HasPrefix(u, "sqlite3://"),
		strings.HasPrefix(u, "file:"),
		strings.HasSuffix(u, ".db"),
		strings.HasSuffix(u, ".sqlite"),
		strings.HasSuffix(u, ".sqlite3"):
		return "sqlite"
	}

	// Laravel's default connection
	return "mysql"
}

// openDatabase opens a connection for d. It also returns the schema implied
// by the URL (the MySQL database name), or "".
func openDatabase(rawURL string, d dialect.Dialect) (*sql.DB, string, error) {
	var dsn, schema string

	switch d.Name() {
	case "mysql":
		var err error
		if dsn, schema, err = mysqlDSN(rawURL); err != nil {
			return nil, "", err
		}
	case "postgres":
		dsn = rawURL
	case "sqlite":
		dsn = convertSQLiteURL(rawURL)
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedDialect, d.Name())
	}

	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, "", err
	}
	return db, schema, nil
}

// mysqlDSN converts a mysql:// URL into a go-sql-driver DSN and returns the
// database name. Input that is already a DSN is validated and passed through.
func mysqlDSN(rawURL string) (string, string, error) {
	if !strings.Contains(rawURL, "://") {
		cfg, err := mysql.ParseDSN(rawURL)
		if err != nil {
			return "", "", err
		}
		return cfg.FormatDSN(), cfg.DBName, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}

	cfg := mysql.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = net.JoinHostPort(u.Hostname(), "3306")
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")

	if q := u.Query(); len(q) > 0 {
		cfg.Params = make(map[string]string, len(q))
		for k := range q {
			cfg.Params[k] = q.Get(k)
		}
	}
	return cfg.FormatDSN(), cfg.DBName, nil
}

// convertSQLiteURL converts a sqlite:// URL to a file path, or returns the path as-is.
func convertSQLiteURL(rawURL string) string {
	rawURL = strings.TrimPrefix(rawURL, "sqlite://")
	rawURL = strings.TrimPrefix(rawURL, "sqlite3://")
	return strings.TrimPrefix(rawURL, "file:")
}

// redactURL removes the password from a database URL or DSN for display.
func redactURL(rawURL string) string {
	start := strings.Index(rawURL, "://")
	if start == -1 {
		start = 0
	} else {
		start += 3
	}

	end := strings.LastIndex(rawURL, "@")
	if end < start {
		return rawURL
	}

	credentials := rawURL[start:end]
	if colon := strings.Index(credentials, ":"); colon != -1 {
		return rawURL[:start] + credentials[:colon] + ":***" + rawURL[end:]
	}
	return rawURL
}
