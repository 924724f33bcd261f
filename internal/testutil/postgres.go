//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// postgresImage is the server image started for integration tests.
const postgresImage = "postgres:16-alpine"

// SetupPostgres starts a throwaway PostgreSQL container and returns an open
// connection plus its URL. The container is terminated when the test ends.
func SetupPostgres(t *testing.T) (*sql.DB, string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ctr, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("modelgen"),
		tcpostgres.WithUsername("modelgen"),
		tcpostgres.WithPassword("modelgen"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, url
}

// PostgresLaravelSchema is LaravelSchema rewritten for PostgreSQL types.
var PostgresLaravelSchema = []string{
	`CREATE TABLE migrations (id SERIAL PRIMARY KEY, migration VARCHAR(255) NOT NULL, batch INTEGER NOT NULL)`,
	`CREATE TABLE users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		remember_token VARCHAR(100) NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL
	)`,
	`CREATE TABLE posts (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		title VARCHAR(255) NOT NULL,
		meta JSONB NULL,
		price NUMERIC(8,2) NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL
	)`,
	`CREATE TABLE tags (id BIGSERIAL PRIMARY KEY, name VARCHAR(255) NOT NULL)`,
	`CREATE TABLE post_tag (
		post_id BIGINT NOT NULL REFERENCES posts(id),
		tag_id BIGINT NOT NULL REFERENCES tags(id),
		PRIMARY KEY (post_id, tag_id)
	)`,
}
