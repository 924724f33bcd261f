package strutil

import "strings"

// -----------------------------------------------------------------------------
// Inflection
// -----------------------------------------------------------------------------

// irregularPlurals maps singular nouns to their irregular plural form.
var irregularPlurals = map[string]string{
	"person": "people",
	"child":  "children",
	"man":    "men",
	"woman":  "women",
	"tooth":  "teeth",
	"foot":   "feet",
	"mouse":  "mice",
	"goose":  "geese",
}

// irregularSingulars is the inverse of irregularPlurals.
var irregularSingulars = invert(irregularPlurals)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// singularNouns end in "s" but are already singular.
var singularNouns = map[string]bool{
	"status": true,
	"bus":    true,
	"bonus":  true,
	"campus": true,
	"census": true,
	"corpus": true,
	"virus":  true,
	"news":   true,
}

// suffixRule rewrites a trailing suffix. The first matching rule wins.
type suffixRule struct {
	from string
	to   string
	// when set, the character before the suffix must satisfy it
	guard func(prev byte) bool
}

// singularRules are ordered most specific suffix first.
var singularRules = []suffixRule{
	{from: "ies", to: "y"},
	{from: "sses", to: "ss"},
	{from: "uses", to: "us"},
	{from: "ches", to: "ch"},
	{from: "shes", to: "sh"},
	{from: "xes", to: "x"},
	{from: "ses", to: "s"},
	// class: already singular
	{from: "s", to: "", guard: func(prev byte) bool { return prev != 's' }},
}

// pluralRules mirror singularRules in the opposite direction.
var pluralRules = []suffixRule{
	{from: "ss", to: "sses"},
	{from: "us", to: "uses"},
	{from: "ch", to: "ches"},
	{from: "sh", to: "shes"},
	{from: "x", to: "xes"},
	{from: "s", to: "ses"},
	{from: "y", to: "ies", guard: isConsonant},
	{from: "", to: "s"},
}

func isConsonant(b byte) bool {
	return !strings.ContainsRune("aeiouAEIOU", rune(b))
}

func applyRules(word string, rules []suffixRule) (string, bool) {
	for _, r := range rules {
		if !strings.HasSuffix(word, r.from) || len(word) == len(r.from) {
			continue
		}
		stem := word[:len(word)-len(r.from)]
		if r.guard != nil && !r.guard(stem[len(stem)-1]) {
			continue
		}
		return stem + r.to, true
	}
	return word, false
}

// Singularize returns the singular form of an English noun.
// Irregular nouns are looked up by exact match; otherwise the first matching
// suffix rule is applied. Unrecognised input is returned unchanged.
// Examples: categories -> category, people -> person, boxes -> box, data -> data
func Singularize(noun string) string {
	if s, ok := irregularSingulars[noun]; ok {
		return s
	}
	if singularNouns[lastWord(noun)] {
		return noun
	}
	s, _ := applyRules(noun, singularRules)
	return s
}

// lastWord returns the segment after the final underscore.
func lastWord(s string) string {
	return s[strings.LastIndexByte(s, '_')+1:]
}

// Pluralize returns the plural form of an English noun.
// Examples: category -> categories, person -> people, box -> boxes, day -> days
func Pluralize(noun string) string {
	if noun == "" {
		return ""
	}
	if p, ok := irregularPlurals[noun]; ok {
		return p
	}
	p, _ := applyRules(noun, pluralRules)
	return p
}
