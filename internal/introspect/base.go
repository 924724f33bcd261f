package introspect

import (
	"context"
	"database/sql"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
)

// frameworkTables are Laravel bookkeeping tables that never get a model.
var frameworkTables = map[string]bool{
	"migrations":             true,
	"password_reset_tokens":  true,
	"password_resets":        true,
	"failed_jobs":            true,
	"personal_access_tokens": true,
	"sessions":               true,
	"jobs":                   true,
	"job_batches":            true,
	"cache":                  true,
	"cache_locks":            true,
	"sqlite_sequence":        true,
}

// IsFrameworkTable reports whether name is on the bookkeeping denylist.
// Matching is exact.
func IsFrameworkTable(name string) bool {
	return frameworkTables[name]
}

// withoutFrameworkTables drops denylisted names, preserving order.
func withoutFrameworkTables(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !IsFrameworkTable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Select splits requested into the names present in available (in request
// order, without duplicates) and the names that are not.
func Select(available, requested []string) (found, missing []string) {
	known := make(map[string]bool, len(available))
	for _, n := range available {
		known[n] = true
	}

	seen := make(map[string]bool, len(requested))
	for _, n := range requested {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		if known[n] {
			found = append(found, n)
		} else {
			missing = append(missing, n)
		}
	}
	return found, missing
}

// filterTables applies the ListTables contract to a raw catalog listing.
func filterTables(all []string, filter []string) []string {
	all = withoutFrameworkTables(all)
	if len(filter) == 0 {
		return all
	}
	found, _ := Select(all, filter)
	return found
}

// queryStrings runs a single-column query and collects the values.
func queryStrings(ctx context.Context, db *sql.DB, op, table, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, alerr.WrapSQL(err, op, table)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, alerr.WrapSQL(err, op, table)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.WrapSQL(err, op, table)
	}
	return out, nil
}

// queryColumns runs a (name, type, nullable) catalog query. The nullable
// column holds "YES"/"NO" as information_schema reports it.
func queryColumns(ctx context.Context, db *sql.DB, table, query string, args ...any) ([]*ast.ColumnDef, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, alerr.WrapSQL(err, "list columns", table)
	}
	defer rows.Close()

	var cols []*ast.ColumnDef
	for rows.Next() {
		var name, typ, nullable string
		if err := rows.Scan(&name, &typ, &nullable); err != nil {
			return nil, alerr.WrapSQL(err, "scan column", table)
		}
		cols = append(cols, &ast.ColumnDef{
			Name:     name,
			Type:     typ,
			Nullable: nullable == "YES",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.WrapSQL(err, "list columns", table)
	}
	return cols, nil
}

// queryForeignKeys runs a (table, column, ref_table, ref_column) catalog query.
func queryForeignKeys(ctx context.Context, db *sql.DB, op, table, query string, args ...any) ([]*ast.ForeignKeyDef, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, alerr.WrapSQL(err, op, table)
	}
	defer rows.Close()

	var fks []*ast.ForeignKeyDef
	for rows.Next() {
		fk := &ast.ForeignKeyDef{}
		if err := rows.Scan(&fk.Table, &fk.Column, &fk.RefTable, &fk.RefColumn); err != nil {
			return nil, alerr.WrapSQL(err, "scan foreign key", table)
		}
		fks = append(fks, fk)
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.WrapSQL(err, op, table)
	}
	return fks, nil
}
