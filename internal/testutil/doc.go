// Package testutil provides test helpers for modelgen.
//
// This package includes:
//   - SQLite setup on a per-test database file, plus a Laravel-shaped fixture schema
//   - PostgreSQL setup through testcontainers (build tag "integration")
//   - Error code assertions
//   - Golden file testing support
//
// # Build Tags
//
// Unit tests need no tags. The PostgreSQL helpers start a container and are
// only compiled with:
//
//	go test ./... -tags=integration
//
// # Golden Files
//
// Golden files are stored in the calling package's testdata/ directory.
// Update them with:
//
//	go test ./... -update-golden
//
// # Example Usage
//
//	func TestGenerate(t *testing.T) {
//	    db := testutil.SetupSQLite(t)
//	    testutil.LoadLaravelSchema(t, db)
//
//	    got := render()
//	    testutil.Golden(t, "user_model", got)
//	}
package testutil
