package eloquent

import (
	"testing"

	"github.com/hlop3z/modelgen/internal/ast"
)

func render(t *testing.T, m *ast.ModelDef) string {
	t.Helper()

	out, err := Render(m)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return out
}

// postModel is a fully featured model: doc block, soft deletes, casts and
// one relation of each inferred kind.
func postModel() *ast.ModelDef {
	return &ast.ModelDef{
		ClassName: "Post",
		Namespace: `App\Models`,
		Table:     "posts",
		Fillable:  []string{"user_id", "title", "meta"},
		Casts: []ast.CastDef{
			{Column: "user_id", Cast: "integer"},
			{Column: "meta", Cast: "array"},
			{Column: "created_at", Cast: "datetime"},
		},
		Relations: []ast.RelationDef{
			{Kind: ast.BelongsTo, Method: "user", Related: "User", ForeignKey: "user_id", LocalKey: "id"},
			{Kind: ast.HasMany, Method: "comments", Related: "Comment", ForeignKey: "post_id", LocalKey: "id"},
			{Kind: ast.BelongsToMany, Method: "tags", Related: "Tag", Pivot: "post_tag", ForeignKey: "post_id", RelatedKey: "tag_id"},
		},
		Doc: []ast.DocProperty{
			{Name: "id", Type: "int", Access: ast.ReadOnly},
			{Name: "user_id", Type: "int"},
			{Name: "title", Type: "string"},
			{Name: "meta", Type: "array|null"},
			{Name: "created_at", Type: `\Carbon\Carbon|null`, Access: ast.ReadOnly},
			{Name: "user", Type: `\App\Models\User|null`, Access: ast.ReadOnly},
		},
		SoftDeletes: true,
		Timestamps:  true,
	}
}

// productModel has no doc block, no relations and no updated_at column.
func productModel() *ast.ModelDef {
	return &ast.ModelDef{
		ClassName: "Product",
		Namespace: `App\Models`,
		Table:     "products",
		Fillable:  []string{"name", "price"},
		Casts: []ast.CastDef{
			{Column: "price", Cast: "float"},
			{Column: "created_at", Cast: "datetime"},
		},
	}
}
