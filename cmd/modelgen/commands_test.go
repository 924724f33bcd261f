package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlop3z/modelgen/internal/testutil"
)

// laravelDB creates a SQLite database with the Laravel fixture schema and
// returns its path.
func laravelDB(t *testing.T) string {
	t.Helper()
	db, path := testutil.SetupSQLiteFile(t, filepath.Join(t.TempDir(), "database.sqlite"))
	testutil.LoadLaravelSchema(t, db)
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{"DATABASE_URL", "MODELGEN_PATH", "MODELGEN_NAMESPACE"} {
		t.Setenv(name, "")
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTablesCommand(t *testing.T) {
	out, err := execute(t, "tables", "-d", laravelDB(t))
	require.NoError(t, err)

	assert.Contains(t, out, "TABLE")
	assert.Contains(t, out, "post_tag")
	assert.Contains(t, out, "PostTag")
	assert.NotContains(t, out, "migrations")
}

func TestGenerateCommand(t *testing.T) {
	db := laravelDB(t)
	dir := filepath.Join(t.TempDir(), "Models")

	out, err := execute(t, "generate", "-d", db, "--path", dir, "--tables", "posts,comments", "--relationships")
	require.NoError(t, err)
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "2 tables processed")

	post, err := os.ReadFile(filepath.Join(dir, "Post.php"))
	require.NoError(t, err)
	assert.Contains(t, string(post), "public function comments()")

	// A second run leaves existing files alone.
	out, err = execute(t, "generate", "-d", db, "--path", dir, "--tables", "posts")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "use --force to update")

	// Forced runs patch; nothing is missing so the file is unchanged.
	out, err = execute(t, "generate", "-d", db, "--path", dir, "--tables", "posts", "--force", "--relationships")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestGenerateDryRunCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Models")

	out, err := execute(t, "generate", "-d", laravelDB(t), "--path", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, MsgDryRun)

	entries, err := os.ReadDir(dir)
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestGenerateUnknownTable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Models")

	out, err := execute(t, "generate", "-d", laravelDB(t), "--path", dir, "--tables", "prodcts")
	require.NoError(t, err)
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "did you mean 'products'?")
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "inspect", "posts", "-d", laravelDB(t), "--relationships")
	require.NoError(t, err)

	assert.Contains(t, out, "Post (posts)")
	assert.Contains(t, out, "tags()")
	assert.Contains(t, out, "via post_tag")
	assert.Contains(t, out, "soft deletes")
}

func TestInspectUnknownTable(t *testing.T) {
	_, err := execute(t, "inspect", "userz", "-d", laravelDB(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "userz")
}

func TestMissingDatabaseURL(t *testing.T) {
	_, err := execute(t, "tables")
	require.Error(t, err)
	assert.True(t, handleClientError(err))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modelgen dev")
}

func TestConnectionHints(t *testing.T) {
	hints := connectionHints("postgres", "dial tcp 127.0.0.1:5432: connect: connection refused")
	assert.Contains(t, hints[0], "pg_isready")

	hints = connectionHints("mysql", "Error 1045: Access denied for user 'root'")
	assert.Contains(t, hints[0], "username and password")

	hints = connectionHints("sqlite", "something odd")
	assert.Contains(t, hints[0], "Verify the database server")
}
