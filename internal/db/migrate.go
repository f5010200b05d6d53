package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema definitions. Statements are idempotent so the API can run them on
// every boot; anything fancier (versioned migrations, rollbacks) belongs to
// the deployment tooling, not this service.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name    TEXT NOT NULL DEFAULT '',
		last_name     TEXT NOT NULL DEFAULT '',
		bio           TEXT NOT NULL DEFAULT '',
		image         TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL DEFAULT '',
		facebook      TEXT NOT NULL DEFAULT '',
		twitter       TEXT NOT NULL DEFAULT '',
		linked_in     TEXT NOT NULL DEFAULT '',
		instagram     TEXT NOT NULL DEFAULT '',
		location      TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS articles (
		id          UUID PRIMARY KEY,
		title       TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		description TEXT,
		body        TEXT NOT NULL,
		tag_list    TEXT[],
		author_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image       TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		_, err := pool.Exec(ctx, stmt)

		if err != nil {
			return err
		}
	}

	return nil
}
