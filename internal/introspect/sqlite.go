package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/dialect"
)

// sqliteIntrospector reads PRAGMA table_info and foreign_key_list. SQLite has
// no reverse key index, so incoming keys are found by scanning every table.
type sqliteIntrospector struct {
	db      *sql.DB
	dialect dialect.Dialect
}

func (s *sqliteIntrospector) Dialect() dialect.Dialect { return s.dialect }

func (s *sqliteIntrospector) ListTables(ctx context.Context, filter ...string) ([]string, error) {
	tables, err := s.allTables(ctx)
	if err != nil {
		return nil, err
	}
	return filterTables(tables, filter), nil
}

// allTables lists every table, denylisted ones included.
func (s *sqliteIntrospector) allTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`
	return queryStrings(ctx, s.db, "list tables", "", query)
}

func (s *sqliteIntrospector) Columns(ctx context.Context, table string) ([]*ast.ColumnDef, error) {
	// Returns: cid, name, type, notnull, dflt_value, pk
	query := fmt.Sprintf("PRAGMA table_info(%s)", s.dialect.QuoteIdent(table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, alerr.WrapSQL(err, "list columns", table)
	}
	defer rows.Close()

	var cols []*ast.ColumnDef
	for rows.Next() {
		var cid, notNull, pk int
		var name, typ string
		var dflt sql.NullString

		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, alerr.WrapSQL(err, "scan column", table)
		}

		cols = append(cols, &ast.ColumnDef{
			Name: name,
			Type: typ,
			// PK columns are never nullable
			Nullable: notNull == 0 && pk == 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.WrapSQL(err, "list columns", table)
	}
	return cols, nil
}

func (s *sqliteIntrospector) OutgoingForeignKeys(ctx context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	// Returns: id, seq, table, from, to, on_update, on_delete, match
	query := fmt.Sprintf("PRAGMA foreign_key_list(%s)", s.dialect.QuoteIdent(table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, alerr.WrapSQL(err, "list foreign keys", table)
	}
	defer rows.Close()

	var fks []*ast.ForeignKeyDef
	for rows.Next() {
		var id, seq int
		var refTable, from string
		var to, onUpdate, onDelete, match sql.NullString

		if err := rows.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return nil, alerr.WrapSQL(err, "scan foreign key", table)
		}

		// A NULL target means the parent's primary key.
		refColumn := "id"
		if to.Valid && to.String != "" {
			refColumn = to.String
		}

		fks = append(fks, &ast.ForeignKeyDef{
			Table:     table,
			Column:    from,
			RefTable:  refTable,
			RefColumn: refColumn,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.WrapSQL(err, "list foreign keys", table)
	}
	return fks, nil
}

func (s *sqliteIntrospector) IncomingForeignKeys(ctx context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	// Collect names first; the listing rows must be closed before the
	// per-table pragmas run.
	tables, err := s.allTables(ctx)
	if err != nil {
		return nil, err
	}

	var incoming []*ast.ForeignKeyDef
	for _, other := range tables {
		fks, err := s.OutgoingForeignKeys(ctx, other)
		if err != nil {
			return nil, err
		}
		for _, fk := range fks {
			if strings.EqualFold(fk.RefTable, table) {
				incoming = append(incoming, fk)
			}
		}
	}
	return incoming, nil
}
