package strutil

import (
	"testing"
)

// -----------------------------------------------------------------------------
// ToPascalCase Tests
// -----------------------------------------------------------------------------

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Basic cases
		{"", ""},
		{"user", "User"},
		{"User", "User"},

		// Snake case conversion
		{"user_name", "UserName"},
		{"user_name_field", "UserNameField"},
		{"order_item", "OrderItem"},

		// Dash and space conversion
		{"user-name", "UserName"},
		{"user name field", "UserNameField"},

		// Remaining letters keep their case
		{"api_userID", "ApiUserID"},

		// Repeated and edge separators
		{"__user__name_", "UserName"},

		// Single characters
		{"a", "A"},
		{"a_b", "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ToPascalCase(tt.input)
			if got != tt.want {
				t.Errorf("ToPascalCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// ToCamelCase Tests
// -----------------------------------------------------------------------------

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"user", "user"},
		{"User", "user"},
		{"user_name", "userName"},
		{"order_items", "orderItems"},
		{"user-name-field", "userNameField"},
		{"Tag", "tag"},
		{"A", "a"},
		{"a_b", "aB"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ToCamelCase(tt.input)
			if got != tt.want {
				t.Errorf("ToCamelCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Model Naming Tests
// -----------------------------------------------------------------------------

func TestClassName(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"products", "Product"},
		{"order_items", "OrderItem"},
		{"categories", "Category"},
		{"people", "Person"},
		{"children", "Child"},
		{"item", "Item"},
		{"item_tag", "ItemTag"},
		{"addresses", "Address"},
		{"statuses", "Status"},
		{"menus", "Menu"},
		{"order_status", "OrderStatus"},
		{"data", "Data"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			got := ClassName(tt.table)
			if got != tt.want {
				t.Errorf("ClassName(%q) = %q, want %q", tt.table, got, tt.want)
			}
		})
	}
}

func TestBelongsToName(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"post_id", "post"},
		{"user_id", "user"},
		{"author_uuid", "author"},
		{"parent_category_id", "parentCategory"},
		{"owner", "owner"},
		// only the trailing key suffix is removed
		{"id_card_id", "idCard"},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got := BelongsToName(tt.column)
			if got != tt.want {
				t.Errorf("BelongsToName(%q) = %q, want %q", tt.column, got, tt.want)
			}
		})
	}
}

func TestRelationName(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"comments", "comments"},
		{"comment", "comments"},
		{"order_items", "orderItems"},
		{"tag", "tags"},
		{"categories", "categories"},
		{"people", "people"},
		{"person", "people"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			got := RelationName(tt.table)
			if got != tt.want {
				t.Errorf("RelationName(%q) = %q, want %q", tt.table, got, tt.want)
			}
		})
	}
}

func TestTrimKeySuffix(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"user_id", "user"},
		{"user_uuid", "user"},
		{"user", "user"},
		{"_id", ""},
		{"valid", "valid"},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got := TrimKeySuffix(tt.column)
			if got != tt.want {
				t.Errorf("TrimKeySuffix(%q) = %q, want %q", tt.column, got, tt.want)
			}
		})
	}
}

func TestFKColumn(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"user", "user_id"},
		{"post", "post_id"},
		{"order_item", "order_item_id"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			got := FKColumn(tt.table)
			if got != tt.want {
				t.Errorf("FKColumn(%q) = %q, want %q", tt.table, got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Formatting Tests
// -----------------------------------------------------------------------------

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"products", `'products'`},
		{"it's", `'it\'s'`},
		{`a\b`, `'a\\b'`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := QuoteLiteral(tt.input); got != tt.want {
				t.Errorf("QuoteLiteral(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	got := Indent("a\n\nb", 4)
	want := "    a\n\n    b"
	if got != want {
		t.Errorf("Indent() = %q, want %q", got, want)
	}
}
