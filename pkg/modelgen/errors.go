package modelgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is() to check for these errors.
var (
	// ErrMissingDatabaseURL is returned when no database URL is provided.
	ErrMissingDatabaseURL = errors.New("modelgen: database URL required")

	// ErrConnectionFailed is returned when the database connection fails.
	ErrConnectionFailed = errors.New("modelgen: connection failed")

	// ErrUnsupportedDialect is returned when the database dialect is not supported.
	ErrUnsupportedDialect = errors.New("modelgen: unsupported dialect")
)

// ConnectionError provides detailed information about a database connection error.
type ConnectionError struct {
	// URL is the database URL (with password redacted).
	URL string

	// Dialect is the database dialect (mysql, postgres, sqlite).
	Dialect string

	// Cause is the underlying error from the database driver.
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("modelgen: failed to connect to %s database at %s: %v", e.Dialect, e.URL, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnectionFailed
}
