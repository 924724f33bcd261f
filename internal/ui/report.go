package ui

import (
	"fmt"
	"strings"

	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/generator"
)

// statusWidth aligns the table names after the status label.
const statusWidth = 10

func statusLabel(s generator.Status) string {
	label := padRight(s.String(), statusWidth)
	switch s {
	case generator.Generated:
		return Green(label)
	case generator.Updated, generator.Completed:
		return Cyan(label)
	case generator.Skipped, generator.Unchanged:
		return Dim(label)
	default:
		return Red(label)
	}
}

// StatusLine renders one table's outcome, with its warnings and error
// indented below it.
//
//	generated  posts → app/Models/Post.php
func StatusLine(r generator.TableResult) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(statusLabel(r.Status))
	b.WriteString(" ")
	b.WriteString(r.Table)
	if r.Path != "" {
		b.WriteString(Dim(" → "))
		b.WriteString(FilePath(r.Path))
	}
	if r.Status == generator.Skipped {
		b.WriteString(Dim(" (exists, use --force to update)"))
	}

	for _, w := range r.Warnings {
		b.WriteString("\n")
		b.WriteString(Indent(FormatWarning(w), 4))
	}
	if r.Err != nil {
		b.WriteString("\n")
		b.WriteString(Indent(strings.TrimRight(FormatError(r.Err), "\n"), 4))
	}
	return b.String()
}

// SummaryPanel renders the run totals. The panel is a warning panel when any
// table failed.
func SummaryPanel(s *generator.Summary) string {
	lines := []string{
		FormatKeyValue("generated", fmt.Sprint(s.Generated)),
		FormatKeyValue("updated  ", fmt.Sprint(s.Updated)),
		FormatKeyValue("completed", fmt.Sprint(s.Completed)),
		FormatKeyValue("unchanged", fmt.Sprint(s.Unchanged)),
		FormatKeyValue("skipped  ", fmt.Sprint(s.Skipped)),
		FormatKeyValue("failed   ", fmt.Sprint(s.Failed)),
	}
	content := strings.Join(lines, "\n")

	title := FormatCount(len(s.Results), "table", "tables") + " processed"
	if s.Failed > 0 {
		return RenderWarningPanel(title, content)
	}
	return RenderSuccessPanel(title, content)
}

// TableList renders table names next to their model class.
func TableList(tables, classes []string) string {
	width := len("TABLE")
	for _, t := range tables {
		width = max(width, len(t))
	}

	var b strings.Builder
	b.WriteString(Bold(padRight("TABLE", width)) + "  " + Bold("MODEL") + "\n")
	for i, t := range tables {
		b.WriteString(padRight(t, width))
		b.WriteString("  ")
		if i < len(classes) {
			b.WriteString(Primary(classes[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ModelReport describes a model without writing it: its casts, fillable
// columns and relations.
func ModelReport(m *ast.ModelDef, path string) string {
	var b strings.Builder

	b.WriteString(RenderTitle(m.ClassName + " (" + m.Table + ")"))
	b.WriteString("\n")
	b.WriteString(FormatKeyValue("file", FilePath(path)) + "\n")
	b.WriteString(FormatKeyValue("fillable", strings.Join(m.Fillable, ", ")) + "\n")

	if len(m.Casts) > 0 {
		b.WriteString(Header("casts") + "\n")
		for _, c := range m.Casts {
			fmt.Fprintf(&b, "  %s => %s\n", c.Column, Cyan(c.Cast))
		}
	}

	if len(m.Relations) > 0 {
		b.WriteString(Header("relations") + "\n")
		for _, r := range m.Relations {
			line := fmt.Sprintf("  %s() %s %s", r.Method, Dim(r.Kind.String()), Primary(r.Related))
			if r.Pivot != "" {
				line += Dim(" via " + r.Pivot)
			}
			b.WriteString(line + "\n")
		}
	}

	var traits []string
	if m.SoftDeletes {
		traits = append(traits, "soft deletes")
	}
	if !m.Timestamps {
		traits = append(traits, "no timestamps")
	}
	if len(traits) > 0 {
		b.WriteString(FormatKeyValue("notes", strings.Join(traits, ", ")) + "\n")
	}
	return b.String()
}
