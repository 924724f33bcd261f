package alerr

import "strings"

// NewUnknownTableError reports a requested table that the catalog does not
// contain, with a "did you mean" hint drawn from known.
func NewUnknownTableError(table string, known []string) *Error {
	return New(ErrUnknownTable, "unknown table").
		WithTable(table).
		WithHelp(SuggestSimilar(table, known))
}

// NewUnsupportedDialectError reports an unknown backend name.
func NewUnsupportedDialectError(name string, known []string) *Error {
	return Newf(EUnsupportedDialect, "unsupported dialect %q", name).
		With("supported", strings.Join(known, ", ")).
		WithHelp(SuggestSimilar(strings.ToLower(name), known))
}

// NewAmbiguousPivotError reports a pivot candidate the inferencer could not
// resolve to a single related table.
func NewAmbiguousPivotError(table, pivot, reason string) *Error {
	return New(ErrAmbiguousPivot, "ambiguous pivot table: "+reason).
		WithTable(table).
		With("pivot", pivot).
		WithHelp("declare the relation under extra_relations in modelgen.yaml")
}
