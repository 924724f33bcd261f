package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hlop3z/modelgen/internal/alerr"
)

// FormatError formats err in Cargo style:
//
//	error[E6004]: unknown table
//	   |
//	   | table: prodcts
//	help: did you mean 'products'?
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var ae *alerr.Error
	if !errors.As(err, &ae) {
		return render(codeStyle, "error") + ": " + err.Error() + "\n"
	}
	return formatCoded(ae)
}

func formatCoded(err *alerr.Error) string {
	var b strings.Builder

	b.WriteString(render(codeStyle, "error"))
	b.WriteString("[")
	b.WriteString(render(codeStyle, string(err.GetCode())))
	b.WriteString("]: ")
	b.WriteString(err.GetMessage())
	b.WriteString("\n")

	ctx := err.GetContext()
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		if k != "helps" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		b.WriteString("   " + Dim("|") + "\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "   %s %s: %v\n", Dim("|"), k, ctx[k])
		}
	}

	if cause := err.GetCause(); cause != nil {
		b.WriteString(render(noteStyle, "cause"))
		b.WriteString(": ")
		b.WriteString(cause.Error())
		b.WriteString("\n")
	}

	for _, help := range err.Helps() {
		b.WriteString(render(helpStyle, "help"))
		b.WriteString(": ")
		b.WriteString(help)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatWarning renders a non-fatal error on one line, followed by any help.
func FormatWarning(err error) string {
	var ae *alerr.Error
	if !errors.As(err, &ae) {
		return Warning(err.Error())
	}

	line := Warning(ae.GetMessage())
	if t := ae.Table(); t != "" {
		line += Dim(" (" + t + ")")
	}
	for _, help := range ae.Helps() {
		line += "\n  " + render(helpStyle, "help") + ": " + help
	}
	return line
}
