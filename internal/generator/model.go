package generator

import (
	"context"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/relations"
	"github.com/hlop3z/modelgen/internal/strutil"
	"github.com/hlop3z/modelgen/internal/types"
)

// reservedColumns are managed by the framework and never mass-assignable.
var reservedColumns = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"deleted_at":     true,
	"remember_token": true,
}

// readOnlyColumns are documented as @property-read.
var readOnlyColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

const collectionType = `\Illuminate\Database\Eloquent\Collection`

// Model builds the model for table. Relation warnings are returned alongside
// the model; the error is set only when the columns cannot be read.
func (g *Generator) Model(ctx context.Context, table string) (*ast.ModelDef, []error, error) {
	return g.model(ctx, table, g.newInferencer(nil))
}

func (g *Generator) model(ctx context.Context, table string, in *relations.Inferencer) (*ast.ModelDef, []error, error) {
	cols, err := g.src.Columns(ctx, table)
	if err != nil {
		return nil, nil, alerr.Wrap(alerr.ErrIntrospection, err, "failed to read columns").WithTable(table)
	}
	def := &ast.TableDef{Name: table, Columns: cols}
	g.logger.Debug("columns", "table", table, "count", len(cols))

	m := buildModel(def, g.opts.Namespace)

	var warnings []error
	if g.opts.Relationships {
		res := in.Infer(ctx, table)
		m.Relations = res.Relations
		warnings = res.Warnings
		for _, r := range m.Relations {
			m.Doc = append(m.Doc, ast.DocProperty{
				Name:   r.Method,
				Type:   relationDocType(g.opts.Namespace, r),
				Access: ast.ReadOnly,
			})
		}
	}
	return m, warnings, nil
}

// buildModel derives everything but the relations from the table's columns.
func buildModel(t *ast.TableDef, namespace string) *ast.ModelDef {
	m := &ast.ModelDef{
		ClassName:   strutil.ClassName(t.Name),
		Namespace:   namespace,
		Table:       t.Name,
		Fillable:    []string{},
		SoftDeletes: t.HasColumn("deleted_at"),
		Timestamps:  t.HasColumn("created_at") && t.HasColumn("updated_at"),
	}

	for _, c := range t.Columns {
		mapping := types.Classify(c.Name, c.Type, c.Nullable)

		if !reservedColumns[c.Name] {
			m.Fillable = append(m.Fillable, c.Name)
		}
		if mapping.Cast != "" {
			m.Casts = append(m.Casts, ast.CastDef{Column: c.Name, Cast: mapping.Cast})
		}

		access := ast.ReadWrite
		if readOnlyColumns[c.Name] {
			access = ast.ReadOnly
		}
		m.Doc = append(m.Doc, ast.DocProperty{Name: c.Name, Type: mapping.DocType, Access: access})
	}
	return m
}

// relationDocType is the doc block type of a relation property:
// \NS\Post|null for single relations, a typed collection for to-many ones.
func relationDocType(namespace string, r ast.RelationDef) string {
	class := `\` + namespace + `\` + r.Related
	if namespace == "" {
		class = `\` + r.Related
	}
	if r.Kind.ToMany() {
		return collectionType + "|" + class + "[]"
	}
	return class + "|null"
}
