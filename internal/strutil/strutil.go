// Package strutil provides string utilities for case conversion, English
// inflection and identifier naming used throughout the modelgen codebase.
package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// -----------------------------------------------------------------------------
// Case Conversion
// -----------------------------------------------------------------------------

// isSeparator reports whether r splits an identifier into words.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// ToPascalCase converts a string to PascalCase.
// Each word has its first letter upper-cased; the remaining letters keep
// their case, so acronyms survive the conversion.
// Examples: user_name -> UserName, order-item -> OrderItem, api_userID -> ApiUserID
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	// A Caser keeps state between calls, so each conversion gets its own.
	title := cases.Title(language.Und, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))

	for _, word := range strings.FieldsFunc(s, isSeparator) {
		result.WriteString(title.String(word))
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Examples: user_name -> userName, order_items -> orderItems, Tag -> tag
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}

	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// -----------------------------------------------------------------------------
// Model Naming
// -----------------------------------------------------------------------------

// ClassName returns the model class name for a table.
// Examples: products -> Product, order_items -> OrderItem, people -> Person
func ClassName(table string) string {
	return ToPascalCase(Singularize(table))
}

// BelongsToName returns the relation method name for a foreign key column.
// The trailing _id or _uuid is removed first.
// Examples: post_id -> post, author_uuid -> author, parent_category_id -> parentCategory
func BelongsToName(column string) string {
	return ToCamelCase(TrimKeySuffix(column))
}

// RelationName returns the plural relation method name for a table, used by
// has-many and belongs-to-many relations.
// Examples: comments -> comments, order_items -> orderItems, person -> people
func RelationName(table string) string {
	return ToCamelCase(Pluralize(Singularize(table)))
}

// TrimKeySuffix removes one trailing _id and then one trailing _uuid.
// Example: TrimKeySuffix("user_id") -> "user"
func TrimKeySuffix(column string) string {
	column = strings.TrimSuffix(column, "_id")
	return strings.TrimSuffix(column, "_uuid")
}

// FKColumn returns the conventional foreign key column name for a table.
// Example: FKColumn("user") -> "user_id"
func FKColumn(table string) string {
	return table + "_id"
}

// -----------------------------------------------------------------------------
// Formatting
// -----------------------------------------------------------------------------

// Indent indents each non-empty line of text with the given number of spaces.
func Indent(text string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// QuoteLiteral quotes s as a single-quoted PHP string literal.
func QuoteLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
