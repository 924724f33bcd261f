// Package types maps raw catalog column types to Eloquent cast categories
// and doc block type tokens.
//
// Matching is substring based on the lower-cased raw type and runs through
// an ordered rule table; the first matching rule wins. A backend with new
// type spellings adds predicates to the table, not new code paths.
package types

import "strings"

// -----------------------------------------------------------------------------
// Category
// -----------------------------------------------------------------------------

// Category is the cast family a column belongs to.
type Category int

const (
	None Category = iota // opaque string, no cast
	DateTime
	Date
	Array
	Boolean
	Integer
	Float
)

// categoryInfo holds the cast name and doc type per category.
var categoryInfo = map[Category]struct {
	cast string
	doc  string
}{
	None:     {"", "string"},
	DateTime: {"datetime", `\Carbon\Carbon`},
	Date:     {"date", `\Carbon\Carbon`},
	Array:    {"array", "array"},
	Boolean:  {"boolean", "bool"},
	Integer:  {"integer", "int"},
	Float:    {"float", "float"},
}

// Cast returns the Eloquent cast name, or "" for None.
func (c Category) Cast() string {
	return categoryInfo[c].cast
}

// DocType returns the doc block type token without the nullable marker.
func (c Category) DocType() string {
	return categoryInfo[c].doc
}

func (c Category) String() string {
	if c == None {
		return "none"
	}
	return c.Cast()
}

// -----------------------------------------------------------------------------
// Rule table
// -----------------------------------------------------------------------------

// Rule pairs a predicate over the lower-cased raw type with a category.
type Rule struct {
	Category Category
	Match    func(rawType string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

// isInteger matches int-like names but not interval or the spatial point types.
func isInteger(s string) bool {
	if strings.Contains(s, "interval") || strings.Contains(s, "point") {
		return false
	}
	return strings.Contains(s, "int") || strings.Contains(s, "serial")
}

// Rules is the ordered classification table. Temporal types come first since
// names like "datetime" contain "date"; booleans precede integers since
// tinyint(1) contains "int".
var Rules = []Rule{
	{DateTime, containsAny("timestamp", "datetime")},
	{Date, containsAny("date")},
	{Array, containsAny("json")},
	{Boolean, containsAny("bool", "tinyint(1)", "bit(1)")},
	{Integer, isInteger},
	{Float, containsAny("decimal", "numeric", "float", "double", "real")},
}

// -----------------------------------------------------------------------------
// Classification
// -----------------------------------------------------------------------------

// Mapping is the classification of one column.
type Mapping struct {
	Category Category
	Cast     string // Cast to declare; "" means the column gets no cast
	DocType  string // Doc block type including "|null" when nullable
}

// Classify maps a column's raw type to its cast and doc type.
// The primary key column "id" is documented as int but never cast.
func Classify(column, rawType string, nullable bool) Mapping {
	cat := CategoryOf(rawType)

	m := Mapping{
		Category: cat,
		Cast:     cat.Cast(),
		DocType:  cat.DocType(),
	}
	if cat == Integer && column == "id" {
		m.Cast = ""
	}
	if nullable {
		m.DocType += "|null"
	}
	return m
}

// CategoryOf returns the category of the first rule matching rawType.
func CategoryOf(rawType string) Category {
	t := strings.ToLower(strings.TrimSpace(rawType))
	for _, r := range Rules {
		if r.Match(t) {
			return r.Category
		}
	}
	return None
}
