// Package eloquent renders Laravel Eloquent model classes and patches
// existing model files in place.
//
// Render and Patch build their declarations from the same fragment
// functions, so a freshly rendered file is already complete: patching it
// with the same model is a no-op.
package eloquent

import (
	"strings"

	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/strutil"
)

// indent is one PHP indentation level.
const indent = "    "

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// DocBlock returns the class doc block, or "" when the model documents no
// properties.
//
//	/**
//	 * @property int $id
//	 * @property-read \App\Models\User|null $user
//	 */
func DocBlock(m *ast.ModelDef) string {
	if len(m.Doc) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for _, p := range m.Doc {
		b.WriteString(" * ")
		b.WriteString(p.Access.Tag())
		b.WriteString(" ")
		b.WriteString(p.Type)
		b.WriteString(" $")
		b.WriteString(p.Name)
		b.WriteString("\n")
	}
	b.WriteString(" */")
	return b.String()
}

// TableDecl returns the table property declaration.
func TableDecl(m *ast.ModelDef) string {
	return "protected $table = " + strutil.QuoteLiteral(m.Table) + ";"
}

// FillableDecl returns the fillable property declaration. An empty list
// renders as [].
func FillableDecl(m *ast.ModelDef) string {
	items := make([]string, len(m.Fillable))
	for i, col := range m.Fillable {
		items[i] = strutil.QuoteLiteral(col)
	}
	return "protected $fillable = " + phpArray(items) + ";"
}

// CastsDecl returns the casts property declaration, or "" without casts.
func CastsDecl(m *ast.ModelDef) string {
	if len(m.Casts) == 0 {
		return ""
	}
	items := make([]string, len(m.Casts))
	for i, c := range m.Casts {
		items[i] = strutil.QuoteLiteral(c.Column) + " => " + strutil.QuoteLiteral(c.Cast)
	}
	return "protected $casts = " + phpArray(items) + ";"
}

// phpArray lays out a short array literal with one item per line.
func phpArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteString("[\n")
	for _, item := range items {
		b.WriteString(indent + indent)
		b.WriteString(item)
		b.WriteString(",\n")
	}
	b.WriteString(indent + "]")
	return b.String()
}

// -----------------------------------------------------------------------------
// Relation methods
// -----------------------------------------------------------------------------

// Method returns the indented relation method for r.
//
//	public function post()
//	{
//	    return $this->belongsTo(Post::class, 'post_id', 'id');
//	}
func Method(r ast.RelationDef) string {
	return indent + "public function " + r.Method + "()\n" +
		indent + "{\n" +
		indent + indent + "return $this->" + r.Kind.String() + "(" + strings.Join(relationArgs(r), ", ") + ");\n" +
		indent + "}"
}

// relationArgs returns the call arguments for r. Trailing keys that are not
// set are left out so the framework applies its defaults.
func relationArgs(r ast.RelationDef) []string {
	args := []string{r.Related + "::class"}

	var keys []string
	switch r.Kind {
	case ast.BelongsToMany:
		if r.Pivot == "" {
			break
		}
		args = append(args, strutil.QuoteLiteral(r.Pivot))
		if r.HasPivotKeys() {
			keys = []string{r.ForeignKey, r.RelatedKey}
		}
	default:
		keys = []string{r.ForeignKey, r.LocalKey}
	}

	for _, k := range keys {
		if k == "" {
			break
		}
		args = append(args, strutil.QuoteLiteral(k))
	}
	return args
}
