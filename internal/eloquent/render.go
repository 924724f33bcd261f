package eloquent

import (
	"embed"
	"strings"
	"text/template"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
)

//go:embed templates/*
var templates embed.FS

// modelTemplate is parsed once; the embedded file is fixed at compile time.
var modelTemplate = template.Must(template.New("model.php.tmpl").Funcs(template.FuncMap{
	"docBlock":     DocBlock,
	"tableDecl":    TableDecl,
	"fillableDecl": FillableDecl,
	"castsDecl":    CastsDecl,
	"method":       Method,
}).ParseFS(templates, "templates/model.php.tmpl"))

// Render returns the complete model file for m. Output depends only on m, so
// rendering the same model twice yields identical text.
func Render(m *ast.ModelDef) (string, error) {
	var b strings.Builder
	if err := modelTemplate.Execute(&b, m); err != nil {
		return "", alerr.Wrap(alerr.ErrRender, err, "failed to render model").
			WithTable(m.Table).
			With("class", m.ClassName)
	}
	return b.String(), nil
}
