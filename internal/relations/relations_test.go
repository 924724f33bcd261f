package relations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/dialect"
	"github.com/hlop3z/modelgen/internal/introspect"
	"github.com/hlop3z/modelgen/internal/testutil"
)

// fakeSource is an in-memory catalog.
type fakeSource struct {
	tables   []string
	columns  map[string][]string
	outgoing map[string][]*ast.ForeignKeyDef
	incoming map[string][]*ast.ForeignKeyDef
	fail     map[string]error // keyed by "op:table"
}

func (f *fakeSource) Dialect() dialect.Dialect { return dialect.SQLite() }

func (f *fakeSource) ListTables(_ context.Context, filter ...string) ([]string, error) {
	if err := f.fail["list:"]; err != nil {
		return nil, err
	}
	return f.tables, nil
}

func (f *fakeSource) Columns(_ context.Context, table string) ([]*ast.ColumnDef, error) {
	if err := f.fail["columns:"+table]; err != nil {
		return nil, err
	}
	var cols []*ast.ColumnDef
	for _, c := range f.columns[table] {
		cols = append(cols, &ast.ColumnDef{Name: c, Type: "integer"})
	}
	return cols, nil
}

func (f *fakeSource) OutgoingForeignKeys(_ context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	if err := f.fail["outgoing:"+table]; err != nil {
		return nil, err
	}
	return f.outgoing[table], nil
}

func (f *fakeSource) IncomingForeignKeys(_ context.Context, table string) ([]*ast.ForeignKeyDef, error) {
	if err := f.fail["incoming:"+table]; err != nil {
		return nil, err
	}
	return f.incoming[table], nil
}

func fk(table, column, refTable string) *ast.ForeignKeyDef {
	return &ast.ForeignKeyDef{Table: table, Column: column, RefTable: refTable, RefColumn: "id"}
}

func methods(rels []ast.RelationDef) []string {
	out := make([]string, len(rels))
	for i, r := range rels {
		out[i] = r.Method
	}
	return out
}

// -----------------------------------------------------------------------------
// Belongs-to / Has-many
// -----------------------------------------------------------------------------

func TestBelongsToAndHasMany(t *testing.T) {
	src := &fakeSource{
		tables: []string{"comments", "posts", "users"},
		outgoing: map[string][]*ast.ForeignKeyDef{
			"posts": {fk("posts", "user_id", "users")},
		},
		incoming: map[string][]*ast.ForeignKeyDef{
			"posts": {fk("comments", "post_id", "posts")},
		},
	}

	res := New(src).Infer(context.Background(), "posts")
	require.Empty(t, res.Warnings)
	require.Len(t, res.Relations, 2)

	assert.Equal(t, ast.RelationDef{
		Kind: ast.BelongsTo, Method: "user", Related: "User", ForeignKey: "user_id", LocalKey: "id",
	}, res.Relations[0])
	assert.Equal(t, ast.RelationDef{
		Kind: ast.HasMany, Method: "comments", Related: "Comment", ForeignKey: "post_id", LocalKey: "id",
	}, res.Relations[1])
}

func TestHasManyNaming(t *testing.T) {
	tests := []struct {
		table      string
		wantMethod string
		wantClass  string
	}{
		{"comments", "comments", "Comment"},
		{"order_items", "orderItems", "OrderItem"},
		{"people", "people", "Person"},
		{"categories", "categories", "Category"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			rel := HasMany(fk(tt.table, "owner_id", "owners"))
			assert.Equal(t, tt.wantMethod, rel.Method)
			assert.Equal(t, tt.wantClass, rel.Related)
		})
	}
}

func TestBelongsToNaming(t *testing.T) {
	rel := BelongsTo(&ast.ForeignKeyDef{Table: "posts", Column: "author_uuid", RefTable: "people", RefColumn: "uuid"})
	assert.Equal(t, "author", rel.Method)
	assert.Equal(t, "Person", rel.Related)
	assert.Equal(t, "uuid", rel.LocalKey)
}

func TestDeduplicationOutgoingWins(t *testing.T) {
	// posts.comments_id gives belongsTo "comments", which collides with the
	// has-many derived from the incoming comments.post_id key.
	src := &fakeSource{
		outgoing: map[string][]*ast.ForeignKeyDef{
			"posts": {fk("posts", "comments_id", "comments")},
		},
		incoming: map[string][]*ast.ForeignKeyDef{
			"posts": {
				fk("comments", "post_id", "posts"),
				fk("Comments", "reply_post_id", "posts"),
				fk("likes", "post_id", "posts"),
				fk("likes", "liked_post_id", "posts"),
			},
		},
	}

	res := New(src, WithTables([]string{})).Infer(context.Background(), "posts")
	require.Empty(t, res.Warnings)
	assert.Equal(t, []string{"comments", "likes"}, methods(res.Relations))
	assert.Equal(t, ast.BelongsTo, res.Relations[0].Kind, "outgoing key wins")
	assert.Equal(t, "post_id", res.Relations[1].ForeignKey, "first incoming key wins")
}

// -----------------------------------------------------------------------------
// Pivot detection
// -----------------------------------------------------------------------------

func TestPivotCandidates(t *testing.T) {
	tables := []string{"item", "item_tag", "items2", "itemized", "tag", "post_tag", "items", "order_item_notes"}

	got := PivotCandidates("item", tables)
	assert.Equal(t, []string{"item_tag", "items2", "order_item_notes"}, got)

	got = PivotCandidates("posts", []string{"posts", "post_tag", "postscript"})
	assert.Equal(t, []string{"post_tag"}, got, "singular name matches, no-segment names do not")
}

func TestPivotExplicitKeys(t *testing.T) {
	src := &fakeSource{
		tables: []string{"item", "item_tag", "tag"},
		columns: map[string][]string{
			"item_tag": {"item_id", "tag_id"},
		},
	}

	res := New(src).Infer(context.Background(), "item")
	require.Empty(t, res.Warnings)
	require.Len(t, res.Relations, 1)
	assert.Equal(t, ast.RelationDef{
		Kind:       ast.BelongsToMany,
		Method:     "tags",
		Related:    "Tag",
		Pivot:      "item_tag",
		ForeignKey: "item_id",
		RelatedKey: "tag_id",
	}, res.Relations[0])
}

func TestPivotPluralTableUsesSingularKey(t *testing.T) {
	src := &fakeSource{
		tables:  []string{"post_tag", "posts", "tags"},
		columns: map[string][]string{"post_tag": {"post_id", "tag_id"}},
	}

	res := New(src).Infer(context.Background(), "tags")
	require.Len(t, res.Relations, 1)
	rel := res.Relations[0]
	assert.Equal(t, "posts", rel.Method)
	assert.Equal(t, "Post", rel.Related)
	assert.Equal(t, "tag_id", rel.ForeignKey)
	assert.Equal(t, "post_id", rel.RelatedKey)
}

func TestPivotImplicitKeys(t *testing.T) {
	// Local key only contains item_id, so the framework infers the keys.
	src := &fakeSource{
		tables:  []string{"item", "item_tag_links"},
		columns: map[string][]string{"item_tag_links": {"id", "parent_item_id", "tag_id"}},
	}

	res := New(src).Infer(context.Background(), "item")
	require.Len(t, res.Relations, 1)
	assert.False(t, res.Relations[0].HasPivotKeys())
	assert.Equal(t, "item_tag_links", res.Relations[0].Pivot)
}

func TestPivotRejectsAndAmbiguity(t *testing.T) {
	tests := []struct {
		name        string
		columns     []string
		wantRel     bool
		wantWarning bool
	}{
		{"one key column", []string{"item_id", "note"}, false, false},
		{"no local key", []string{"order_id", "tag_id"}, false, false},
		{"three key columns", []string{"item_id", "tag_id", "user_id"}, false, true},
		{"both keys local", []string{"item_id", "parent_item_id"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{
				tables:  []string{"item", "item_tag"},
				columns: map[string][]string{"item_tag": tt.columns},
			}
			res := New(src).Infer(context.Background(), "item")
			assert.Equal(t, tt.wantRel, len(res.Relations) > 0)
			if tt.wantWarning {
				require.Len(t, res.Warnings, 1)
				testutil.AssertError(t, res.Warnings[0], alerr.ErrAmbiguousPivot)
			} else {
				assert.Empty(t, res.Warnings)
			}
		})
	}
}

func TestPivotSameMethodFromTwoTables(t *testing.T) {
	src := &fakeSource{
		tables: []string{"item", "item_tag", "item_tags_v2"},
		columns: map[string][]string{
			"item_tag":     {"item_id", "tag_id"},
			"item_tags_v2": {"item_id", "tag_id"},
		},
	}

	res := New(src).Infer(context.Background(), "item")
	require.Len(t, res.Relations, 1)
	assert.Equal(t, "item_tag", res.Relations[0].Pivot)
	require.Len(t, res.Warnings, 1)
	testutil.AssertError(t, res.Warnings[0], alerr.ErrAmbiguousPivot)
}

// -----------------------------------------------------------------------------
// Degradation and extras
// -----------------------------------------------------------------------------

func TestCatalogFailureDegradesToEmpty(t *testing.T) {
	boom := errors.New("lost connection")

	for _, key := range []string{"outgoing:posts", "incoming:posts", "list:", "columns:post_tag"} {
		t.Run(key, func(t *testing.T) {
			src := &fakeSource{
				outgoing: map[string][]*ast.ForeignKeyDef{"posts": {fk("posts", "user_id", "users")}},
				tables:   []string{"post_tag", "posts"},
				columns:  map[string][]string{"post_tag": {"post_id", "tag_id"}},
				fail:     map[string]error{key: boom},
			}

			res := New(src).Infer(context.Background(), "posts")
			assert.Empty(t, res.Relations)
			require.Len(t, res.Warnings, 1)
			testutil.AssertError(t, res.Warnings[0], alerr.ErrIntrospection)
			assert.ErrorIs(t, res.Warnings[0], boom)
		})
	}
}

func TestExtrasAppliedLast(t *testing.T) {
	src := &fakeSource{
		outgoing: map[string][]*ast.ForeignKeyDef{"users": {fk("users", "team_id", "teams")}},
		fail:     map[string]error{"incoming:users": errors.New("denied")},
	}
	extras := map[string][]ast.RelationDef{
		"users": {
			{Kind: ast.HasOne, Method: "profile", Related: "Profile", ForeignKey: "user_id", LocalKey: "id"},
			{Kind: ast.HasMany, Method: "Profile", Related: "Other"},
		},
	}

	res := New(src, WithExtras(extras)).Infer(context.Background(), "users")
	assert.Equal(t, []string{"profile"}, methods(res.Relations), "inferred relations dropped, extras kept")
	assert.Len(t, res.Warnings, 1)

	src.fail = nil
	res = New(src, WithExtras(extras), WithTables(nil)).Infer(context.Background(), "users")
	assert.Equal(t, []string{"team", "profile"}, methods(res.Relations))
}

// -----------------------------------------------------------------------------
// SQLite end to end
// -----------------------------------------------------------------------------

func TestInferLaravelSchema(t *testing.T) {
	db := testutil.SetupSQLite(t)
	testutil.LoadLaravelSchema(t, db)

	src, err := introspect.New(db, dialect.SQLite(), introspect.Config{})
	require.NoError(t, err)
	in := New(src)
	ctx := context.Background()

	tests := []struct {
		table string
		want  []string
	}{
		{"users", []string{"comments", "posts"}},
		{"posts", []string{"user", "comments", "postTags", "tags"}},
		{"comments", []string{"post", "user"}},
		{"tags", []string{"postTags", "posts"}},
		{"products", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			res := in.Infer(ctx, tt.table)
			require.Empty(t, res.Warnings)
			assert.ElementsMatch(t, tt.want, methods(res.Relations))
		})
	}
}
