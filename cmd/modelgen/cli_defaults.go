package main

import "time"

// Default file names.
const (
	// DefaultConfigFile is the default configuration filename.
	DefaultConfigFile = "modelgen.yaml"

	// DefaultEnvFile is the Laravel environment file read for DB_* settings.
	DefaultEnvFile = ".env"

	// DefaultSQLitePath is Laravel's default SQLite database.
	DefaultSQLitePath = "database/database.sqlite"
)

// WatchDebounce is how long the database file must be quiet before a
// watch-mode regeneration starts.
const WatchDebounce = 300 * time.Millisecond

// Flag descriptions for consistent CLI flag help text.
const (
	FlagDescTables        = "Comma-separated tables to generate (default: all)"
	FlagDescPath          = "Directory for model files (default: app/Models)"
	FlagDescNamespace     = `Namespace of generated classes (default: App\Models)`
	FlagDescRelationships = "Infer relationship methods from foreign keys"
	FlagDescForce         = "Patch model files that already exist"
	FlagDescDryRun        = "Run without writing files"
	FlagDescWatch         = "Regenerate when the SQLite database file changes"
)

// Panel titles and messages.
const (
	TitleDryRun = "Dry Run"
	MsgDryRun   = "No files were written"
	MsgWatching = "Watching %s (Ctrl+C to stop)"
	MsgNoTables = "No tables found"
)
