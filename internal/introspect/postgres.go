package introspect

import (
	"context"
	"database/sql"

	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/dialect"
)

type postgresIntrospector struct {
	db      *sql.DB
	dialect dialect.Dialect
	schema  string
}

func (p *postgresIntrospector) Dialect() dialect.Dialect { return p.dialect }

func (p *postgresIntrospector) ListTables(ctx context.Context, filter ...string) ([]string, error) {
	query := `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`
	tables, err := queryStrings(ctx, p.db, "list tables", "", query, p.schema)
	if err != nil {
		return nil, err
	}
	return filterTables(tables, filter), nil
}

func (p *postgresIntrospector) Columns(ctx context.Context, table string) ([]*ast.ColumnDef, error) {
	query := `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`
	return queryColumns(ctx, p.db, table, query, p.schema, table)
}

// fkSelect joins the constraint views into (table, column, ref_table, ref_column) rows.
const fkSelect = `
		SELECT tc.table_name, kcu.column_name, ccu.table_name, ccu.column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
`

func (p *postgresIntrospector) OutgoingForeignKeys(ctx context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	query := fkSelect + `
			AND tc.table_name = $2
		ORDER BY tc.constraint_name, kcu.ordinal_position
	`
	return queryForeignKeys(ctx, p.db, "list foreign keys", table, query, p.schema, table)
}

func (p *postgresIntrospector) IncomingForeignKeys(ctx context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	query := fkSelect + `
			AND ccu.table_name = $2
		ORDER BY tc.table_name, kcu.ordinal_position
	`
	return queryForeignKeys(ctx, p.db, "list referencing keys", table, query, p.schema, table)
}
