package testutil

import (
	"database/sql"
	"testing"
)

// LaravelSchema is a small blog schema in the shape Laravel migrations
// produce on SQLite, including bookkeeping tables that must be ignored.
//
//	users 1─* posts 1─* comments *─1 users
//	posts *─* tags (via post_tag)
//	products (no relations, no updated_at)
var LaravelSchema = []string{
	`CREATE TABLE migrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		migration VARCHAR(255) NOT NULL,
		batch INTEGER NOT NULL
	)`,
	`CREATE TABLE sessions (
		id VARCHAR(255) PRIMARY KEY,
		user_id INTEGER NULL,
		payload TEXT NOT NULL,
		last_activity INTEGER NOT NULL
	)`,
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		email_verified_at DATETIME NULL,
		password VARCHAR(255) NOT NULL,
		is_admin TINYINT(1) NOT NULL DEFAULT 0,
		remember_token VARCHAR(100) NULL,
		created_at DATETIME NULL,
		updated_at DATETIME NULL
	)`,
	`CREATE TABLE posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		title VARCHAR(255) NOT NULL,
		body TEXT NOT NULL,
		meta JSON NULL,
		published_on DATE NULL,
		created_at DATETIME NULL,
		updated_at DATETIME NULL,
		deleted_at DATETIME NULL
	)`,
	`CREATE TABLE comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		post_id INTEGER NOT NULL REFERENCES posts(id),
		user_id INTEGER NOT NULL REFERENCES users(id),
		body TEXT NOT NULL,
		created_at DATETIME NULL,
		updated_at DATETIME NULL
	)`,
	`CREATE TABLE tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL,
		created_at DATETIME NULL,
		updated_at DATETIME NULL
	)`,
	`CREATE TABLE post_tag (
		post_id INTEGER NOT NULL REFERENCES posts(id),
		tag_id INTEGER NOT NULL REFERENCES tags(id),
		PRIMARY KEY (post_id, tag_id)
	)`,
	`CREATE TABLE products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		created_at TIMESTAMP NULL
	)`,
}

// LaravelTables lists the model-bearing tables of LaravelSchema in catalog order.
var LaravelTables = []string{"comments", "post_tag", "posts", "products", "tags", "users"}

// LoadLaravelSchema creates LaravelSchema in db.
func LoadLaravelSchema(t *testing.T, db *sql.DB) {
	t.Helper()
	ExecSQL(t, db, LaravelSchema...)
}
