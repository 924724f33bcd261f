package eloquent

import (
	"regexp"
	"strings"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
)

// ChangeKind reports what Patch did to a file.
type ChangeKind int

const (
	// NoChange means every declaration and method was already present.
	NoChange ChangeKind = iota
	// Completed means only structural declarations were added.
	Completed
	// UpdatedWithRelationships means at least one relation method was added.
	UpdatedWithRelationships
)

func (k ChangeKind) String() string {
	switch k {
	case Completed:
		return "completed"
	case UpdatedWithRelationships:
		return "updated"
	default:
		return "no changes"
	}
}

// -----------------------------------------------------------------------------
// Anchors
// -----------------------------------------------------------------------------

var (
	classDeclRe = regexp.MustCompile(`(?m)^[ \t]*((?:(?:abstract|final|readonly)[ \t]+)*class[ \t]+\w+)`)
	tableRe     = regexp.MustCompile(`protected\s+\$table\b`)
	fillableRe  = regexp.MustCompile(`protected\s+\$fillable\b`)
	castsRe     = regexp.MustCompile(`protected\s+\$casts\b|function\s+casts\s*\(`)
)

// anchor is a named insertion point. locate returns the byte offset to insert
// at, or false when the point does not exist in content.
type anchor struct {
	name   string
	locate func(content string) (int, bool)
}

var (
	beforeClass = anchor{"before class declaration", func(content string) (int, bool) {
		loc := classDeclRe.FindStringSubmatchIndex(content)
		if loc == nil {
			return 0, false
		}
		return loc[2], true
	}}

	afterClassOpen = anchor{"after class body open", func(content string) (int, bool) {
		loc := classDeclRe.FindStringIndex(content)
		if loc == nil {
			return 0, false
		}
		brace := strings.IndexByte(content[loc[1]:], '{')
		if brace < 0 {
			return 0, false
		}
		return loc[1] + brace + 1, true
	}}

	afterTable    = afterDecl("after table declaration", tableRe)
	afterFillable = afterDecl("after fillable declaration", fillableRe)

	beforeClassClose = anchor{"before class body close", func(content string) (int, bool) {
		if _, ok := afterClassOpen.locate(content); !ok {
			return 0, false
		}
		i := strings.LastIndexByte(content, '}')
		return i, i >= 0
	}}
)

// afterDecl locates the end of the statement matched by re, falling back to
// the class body open when the declaration is absent.
func afterDecl(name string, re *regexp.Regexp) anchor {
	return anchor{name, func(content string) (int, bool) {
		if loc := re.FindStringIndex(content); loc != nil {
			if end := strings.IndexByte(content[loc[1]:], ';'); end >= 0 {
				return loc[1] + end + 1, true
			}
		}
		return afterClassOpen.locate(content)
	}}
}

// methodExists reports whether content defines a function named name,
// ignoring case.
func methodExists(content, name string) bool {
	re := regexp.MustCompile(`(?i)\bfunction\s+` + regexp.QuoteMeta(name) + `\s*\(`)
	return re.MatchString(content)
}

// -----------------------------------------------------------------------------
// Patch
// -----------------------------------------------------------------------------

// step inserts text at an anchor unless present reports the content already
// has it.
type step struct {
	present  func(content string) bool
	at       anchor
	text     string
	relation bool
}

func contains(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

// steps lists the insertions for m in order.
func steps(m *ast.ModelDef) []step {
	var out []step

	if doc := DocBlock(m); doc != "" {
		out = append(out, step{
			present: func(c string) bool { return strings.Contains(c, "/**") },
			at:      beforeClass,
			text:    doc + "\n",
		})
	}

	out = append(out,
		step{present: contains(tableRe), at: afterClassOpen, text: "\n" + indent + TableDecl(m)},
		step{present: contains(fillableRe), at: afterTable, text: "\n\n" + indent + FillableDecl(m)},
	)

	if casts := CastsDecl(m); casts != "" {
		out = append(out, step{present: contains(castsRe), at: afterFillable, text: "\n\n" + indent + casts})
	}

	for _, r := range m.Relations {
		method := r.Method
		out = append(out, step{
			present:  func(c string) bool { return methodExists(c, method) },
			at:       beforeClassClose,
			text:     "\n" + Method(r) + "\n",
			relation: true,
		})
	}
	return out
}

// Patch fills the gaps in an existing model file: the doc block, the table,
// fillable and casts declarations, and missing relation methods. It never
// removes, reorders or replaces existing content, and each insertion point
// is located again in the text produced by the previous insertion.
//
// Patch fails with ErrPatch when the content has no class body to insert into.
func Patch(existing string, m *ast.ModelDef) (string, ChangeKind, error) {
	content := existing
	kind := NoChange

	for _, s := range steps(m) {
		if s.present(content) {
			continue
		}

		pos, ok := s.at.locate(content)
		if !ok {
			return existing, NoChange, alerr.New(alerr.ErrPatch, "no insertion point "+s.at.name).
				WithTable(m.Table).
				With("class", m.ClassName).
				WithHelp("the file must declare a class with a { } body")
		}

		content = content[:pos] + s.text + content[pos:]
		if s.relation {
			kind = UpdatedWithRelationships
		} else if kind == NoChange {
			kind = Completed
		}
	}

	return content, kind, nil
}
