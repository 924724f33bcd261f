package introspect

import (
	"context"
	"database/sql"

	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/dialect"
)

// mysqlIntrospector reads information_schema. COLUMN_TYPE is used rather
// than DATA_TYPE so display widths such as tinyint(1) survive.
type mysqlIntrospector struct {
	db      *sql.DB
	dialect dialect.Dialect
	schema  string
}

func (m *mysqlIntrospector) Dialect() dialect.Dialect { return m.dialect }

func (m *mysqlIntrospector) ListTables(ctx context.Context, filter ...string) ([]string, error) {
	query := `
		SELECT TABLE_NAME FROM information_schema.TABLES
		WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME
	`
	tables, err := queryStrings(ctx, m.db, "list tables", "", query, m.schema)
	if err != nil {
		return nil, err
	}
	return filterTables(tables, filter), nil
}

func (m *mysqlIntrospector) Columns(ctx context.Context, table string) ([]*ast.ColumnDef, error) {
	query := `
		SELECT COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE
		FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION
	`
	return queryColumns(ctx, m.db, table, query, m.schema, table)
}

func (m *mysqlIntrospector) OutgoingForeignKeys(ctx context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	query := `
		SELECT TABLE_NAME, COLUMN_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME
		FROM information_schema.KEY_COLUMN_USAGE
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
			AND REFERENCED_TABLE_NAME IS NOT NULL
		ORDER BY CONSTRAINT_NAME, ORDINAL_POSITION
	`
	return queryForeignKeys(ctx, m.db, "list foreign keys", table, query, m.schema, table)
}

func (m *mysqlIntrospector) IncomingForeignKeys(ctx context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	query := `
		SELECT TABLE_NAME, COLUMN_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME
		FROM information_schema.KEY_COLUMN_USAGE
		WHERE REFERENCED_TABLE_SCHEMA = ? AND REFERENCED_TABLE_NAME = ?
		ORDER BY TABLE_NAME, ORDINAL_POSITION
	`
	return queryForeignKeys(ctx, m.db, "list referencing keys", table, query, m.schema, table)
}
