// Package relations derives Eloquent relationships for a table from its
// foreign keys and from junction tables that look like pivots.
//
// Discovery order is belongs-to (outgoing keys), has-many (incoming keys),
// belongs-to-many (pivot tables), then configured extras. Method names are
// unique per table ignoring case and the first relation for a name wins.
package relations

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/introspect"
	"github.com/hlop3z/modelgen/internal/strutil"
)

// Result is the outcome of inferring one table's relationships.
type Result struct {
	Relations []ast.RelationDef
	// Warnings are degradations that did not stop inference: catalog
	// failures (the table then has no inferred relations) and ambiguous
	// pivot candidates.
	Warnings []error
}

// Inferencer builds relationships from catalog metadata.
type Inferencer struct {
	src    introspect.Introspector
	extras map[string][]ast.RelationDef
	tables []string
	logger *slog.Logger
}

// Option configures an Inferencer.
type Option func(*Inferencer)

// WithExtras layers fixed relations on top of the inferred set, keyed by table.
func WithExtras(extras map[string][]ast.RelationDef) Option {
	return func(in *Inferencer) {
		in.extras = extras
	}
}

// WithTables supplies the catalog listing used for pivot candidates, saving
// a listing query per table.
func WithTables(tables []string) Option {
	return func(in *Inferencer) {
		in.tables = tables
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(in *Inferencer) {
		in.logger = l
	}
}

// New creates an Inferencer reading from src.
func New(src introspect.Introspector, opts ...Option) *Inferencer {
	in := &Inferencer{src: src}
	for _, opt := range opts {
		opt(in)
	}
	if in.logger == nil {
		in.logger = slog.Default()
	}
	return in
}

// Infer returns the relationships for table. It never fails: a catalog
// error leaves the table with only its configured extras and is reported
// as a warning.
func (in *Inferencer) Infer(ctx context.Context, table string) Result {
	var res Result
	set := ast.NewRelationSet()

	if err := in.infer(ctx, table, set, &res); err != nil {
		res.Warnings = append(res.Warnings, alerr.Wrap(alerr.ErrIntrospection, err, "relationships skipped").
			WithTable(table))
		set = ast.NewRelationSet()
	}

	for _, extra := range in.extras[table] {
		if !set.Add(extra) {
			in.logger.Debug("extra relation shadowed", "table", table, "method", extra.Method)
		}
	}

	res.Relations = set.Items()
	return res
}

func (in *Inferencer) infer(ctx context.Context, table string, set *ast.RelationSet, res *Result) error {
	outgoing, err := in.src.OutgoingForeignKeys(ctx, table)
	if err != nil {
		return err
	}
	for _, fk := range outgoing {
		set.Add(BelongsTo(fk))
	}

	incoming, err := in.src.IncomingForeignKeys(ctx, table)
	if err != nil {
		return err
	}
	for _, fk := range incoming {
		set.Add(HasMany(fk))
	}

	in.logger.Debug("foreign keys", "table", table, "outgoing", len(outgoing), "incoming", len(incoming))

	return in.inferPivots(ctx, table, set, res)
}

// BelongsTo builds the relation for an outgoing key: comments.post_id -> post().
func BelongsTo(fk *ast.ForeignKeyDef) ast.RelationDef {
	return ast.RelationDef{
		Kind:       ast.BelongsTo,
		Method:     strutil.BelongsToName(fk.Column),
		Related:    strutil.ClassName(fk.RefTable),
		ForeignKey: fk.Column,
		LocalKey:   fk.RefColumn,
	}
}

// HasMany builds the relation for an incoming key: posts <- comments.post_id
// gives comments(). The local key is always id.
func HasMany(fk *ast.ForeignKeyDef) ast.RelationDef {
	return ast.RelationDef{
		Kind:       ast.HasMany,
		Method:     strutil.RelationName(fk.Table),
		Related:    strutil.ClassName(fk.Table),
		ForeignKey: fk.Column,
		LocalKey:   "id",
	}
}

// -----------------------------------------------------------------------------
// Pivot detection
// -----------------------------------------------------------------------------

func (in *Inferencer) inferPivots(ctx context.Context, table string, set *ast.RelationSet, res *Result) error {
	tables := in.tables
	if tables == nil {
		var err error
		if tables, err = in.src.ListTables(ctx); err != nil {
			return err
		}
	}

	names := tableNames(table)
	fromPivot := map[string]string{} // method -> pivot table

	for _, candidate := range PivotCandidates(table, tables) {
		cols, err := in.src.Columns(ctx, candidate)
		if err != nil {
			return err
		}
		in.logger.Debug("pivot candidate", "table", table, "candidate", candidate, "columns", len(cols))

		rel, reason, ok := matchPivot(names, candidate, cols)
		if reason != "" {
			res.Warnings = append(res.Warnings, alerr.NewAmbiguousPivotError(table, candidate, reason))
			continue
		}
		if !ok {
			continue
		}

		key := strings.ToLower(rel.Method)
		if earlier, dup := fromPivot[key]; dup {
			res.Warnings = append(res.Warnings, alerr.NewAmbiguousPivotError(table, candidate,
				"method "+rel.Method+" already inferred from "+earlier))
			continue
		}
		if set.Add(rel) {
			fromPivot[key] = candidate
		}
	}
	return nil
}

// tableNames returns the names a pivot may use for table: the table itself
// and its singular (posts -> post, for post_tag).
func tableNames(table string) []string {
	names := []string{table}
	if s := strutil.Singularize(table); s != table {
		names = append(names, s)
	}
	return names
}

// PivotCandidates returns the tables that might be junction tables for
// table: their name contains the table name (or its singular), differs from
// it, and has several underscore-separated segments or a digit.
func PivotCandidates(table string, tables []string) []string {
	names := tableNames(table)

	var out []string
	for _, t := range tables {
		if t == table || !looksLikeJunction(t) {
			continue
		}
		for _, n := range names {
			if strings.Contains(t, n) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func looksLikeJunction(name string) bool {
	return strings.Contains(name, "_") || strings.IndexFunc(name, unicode.IsDigit) >= 0
}

// matchPivot inspects a candidate's columns. It returns the relation when the
// candidate is a pivot, or a non-empty reason when it is ambiguous.
//
// A pivot has exactly two key-like (*_id*) columns, one of which belongs to
// the local table. The other names the related table. Explicit pivot keys
// are emitted only when the local key is exactly {table}_id (or the
// singular form) and the other is {related}_id.
func matchPivot(names []string, candidate string, cols []*ast.ColumnDef) (rel ast.RelationDef, reason string, ok bool) {
	var keys []string
	for _, c := range cols {
		if c.IsKeyLike() {
			keys = append(keys, c.Name)
		}
	}

	var locals, others []string
	for _, k := range keys {
		if isLocalKey(k, names) {
			locals = append(locals, k)
		} else {
			others = append(others, k)
		}
	}

	switch {
	case len(locals) == 0:
		return rel, "", false
	case len(keys) > 2:
		return rel, strings.Join(keys, ", ") + " are all key columns", false
	case len(keys) < 2:
		return rel, "", false
	case len(others) == 0:
		return rel, "both key columns reference the table", false
	}

	local, other := locals[0], others[0]
	related := strings.TrimSuffix(other, "_id")

	rel = ast.RelationDef{
		Kind:    ast.BelongsToMany,
		Method:  strutil.RelationName(related),
		Related: strutil.ClassName(related),
		Pivot:   candidate,
	}
	if isExactKey(local, names) && other == related+"_id" {
		rel.ForeignKey = local
		rel.RelatedKey = other
	}
	return rel, "", true
}

func isLocalKey(column string, names []string) bool {
	for _, n := range names {
		if strings.Contains(column, strutil.FKColumn(n)) {
			return true
		}
	}
	return false
}

func isExactKey(column string, names []string) bool {
	for _, n := range names {
		if column == strutil.FKColumn(n) {
			return true
		}
	}
	return false
}
