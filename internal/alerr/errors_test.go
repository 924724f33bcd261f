package alerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Constructor Tests
// -----------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		message string
	}{
		{"config error", ErrConfigInvalid, "config is malformed"},
		{"SQL error", ErrSQLExecution, "catalog query failed"},
		{"introspection error", ErrIntrospection, "table introspection failed"},
		{"output error", ErrOutputDir, "cannot create output directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)
			if err.GetCode() != tt.code {
				t.Errorf("code = %v, want %v", err.GetCode(), tt.code)
			}
			if err.GetMessage() != tt.message {
				t.Errorf("message = %v, want %v", err.GetMessage(), tt.message)
			}
			if err.GetCause() != nil {
				t.Error("expected nil cause for New()")
			}
			if err.GetStack() == "" {
				t.Error("expected stack trace to be captured")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap existing error", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := Wrap(ErrFileWrite, cause, "failed to write model")

		if err.GetCode() != ErrFileWrite {
			t.Errorf("code = %v, want %v", err.GetCode(), ErrFileWrite)
		}
		if err.GetCause() != cause {
			t.Error("cause should be the wrapped error")
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should reach the cause")
		}
	})

	t.Run("wrap nil error behaves like New", func(t *testing.T) {
		err := Wrap(ErrFileRead, nil, "read failed")
		if err.GetCause() != nil {
			t.Error("cause should be nil when wrapping nil")
		}
	})
}

func TestWrapf(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrapf(ErrSQLExecution, cause, "failed to connect to %s on port %d", "localhost", 3306)

	want := "failed to connect to localhost on port 3306"
	if err.GetMessage() != want {
		t.Errorf("message = %v, want %v", err.GetMessage(), want)
	}
}

// -----------------------------------------------------------------------------
// Context Tests
// -----------------------------------------------------------------------------

func TestContextHelpers(t *testing.T) {
	err := New(ErrFileWrite, "write failed").
		WithTable("users").
		WithColumn("email").
		WithPath("app/Models/User.php").
		WithHelp("check permissions").
		WithHelp("")

	ctx := err.GetContext()
	if ctx["table"] != "users" || err.Table() != "users" {
		t.Errorf("table = %v, want users", ctx["table"])
	}
	if ctx["column"] != "email" {
		t.Errorf("column = %v, want email", ctx["column"])
	}
	if ctx["path"] != "app/Models/User.php" {
		t.Errorf("path = %v", ctx["path"])
	}
	if helps := err.Helps(); len(helps) != 1 || helps[0] != "check permissions" {
		t.Errorf("Helps() = %v, want [check permissions]", helps)
	}
}

func TestErrorFormat(t *testing.T) {
	err := New(ErrUnknownTable, "unknown table").
		WithTable("prodcts").
		With("dialect", "sqlite")

	want := "[E6004] unknown table\n  dialect: sqlite\n  table: prodcts"
	if got := err.Error(); got != want {
		t.Errorf("Error() =\n%s\nwant\n%s", got, want)
	}

	wrapped := Wrap(ErrSQLExecution, errors.New("no such table"), "failed to list columns")
	if !strings.HasSuffix(wrapped.Error(), "\n  cause: no such table") {
		t.Errorf("Error() = %q, want cause suffix", wrapped.Error())
	}
}

// -----------------------------------------------------------------------------
// Code Matching Tests
// -----------------------------------------------------------------------------

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrIntrospection, "boom"))

	if !Is(err, ErrIntrospection) {
		t.Error("Is() should find code through fmt.Errorf wrapping")
	}
	if Is(err, ErrSQLExecution) {
		t.Error("Is() matched the wrong code")
	}
	if !errors.Is(err, New(ErrIntrospection, "other message")) {
		t.Error("errors.Is should match on code")
	}
	if Is(nil, ErrIntrospection) || HasCode(errors.New("plain")) {
		t.Error("plain and nil errors carry no code")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"direct", New(ErrPatch, "x"), ErrPatch},
		{"nested", Wrap(ErrIntrospection, New(ErrSQLExecution, "inner"), "outer"), ErrIntrospection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapSQL(t *testing.T) {
	cause := errors.New("relation does not exist")
	err := WrapSQL(cause, "list columns", "users")

	if err.GetCode() != ErrSQLExecution {
		t.Errorf("code = %v, want %v", err.GetCode(), ErrSQLExecution)
	}
	if err.GetMessage() != "failed to list columns" {
		t.Errorf("message = %q", err.GetMessage())
	}
	if err.Table() != "users" {
		t.Errorf("table = %q, want users", err.Table())
	}

	if WrapSQL(cause, "list tables", "").Table() != "" {
		t.Error("empty table should not be recorded")
	}
}

// -----------------------------------------------------------------------------
// Constructor Helper Tests
// -----------------------------------------------------------------------------

func TestNewUnknownTableError(t *testing.T) {
	err := NewUnknownTableError("prodcts", []string{"users", "products"})

	if err.GetCode() != ErrUnknownTable {
		t.Errorf("code = %v, want %v", err.GetCode(), ErrUnknownTable)
	}
	if helps := err.Helps(); len(helps) != 1 || helps[0] != "did you mean 'products'?" {
		t.Errorf("Helps() = %v", helps)
	}

	if helps := NewUnknownTableError("zzzzzzzz", []string{"users"}).Helps(); len(helps) != 0 {
		t.Errorf("Helps() = %v, want none", helps)
	}
}

func TestNewUnsupportedDialectError(t *testing.T) {
	err := NewUnsupportedDialectError("Postgress", []string{"mysql", "postgres", "sqlite"})

	if err.GetCode() != EUnsupportedDialect {
		t.Errorf("code = %v", err.GetCode())
	}
	if helps := err.Helps(); len(helps) != 1 || helps[0] != "did you mean 'postgres'?" {
		t.Errorf("Helps() = %v", helps)
	}
}

func TestNewAmbiguousPivotError(t *testing.T) {
	err := NewAmbiguousPivotError("items", "item_tag_meta", "3 key columns")

	if err.GetCode() != ErrAmbiguousPivot {
		t.Errorf("code = %v", err.GetCode())
	}
	if err.GetContext()["pivot"] != "item_tag_meta" {
		t.Errorf("pivot = %v", err.GetContext()["pivot"])
	}
}
