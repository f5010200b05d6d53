package db

import (
	"context"
	"errors"
	"time"

	"github.com/alphamugerwa/authorshaven/internal/domain/article"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Development fixtures. The author id is the fixed id the seed articles have
// always pointed at; the fixture author row is created alongside so the
// foreign key holds on a fresh database.
const seedAuthorID = "c90dee64-663d-4d8b-b34d-12acba22cd32"

var seedArticles = []article.Article{
	{
		Title:    "The basics of java",
		Slug:     "the-basics-of-java",
		Body:     "JavaScript is a language which has many frameworks and libraries",
		AuthorID: seedAuthorID,
	},
	{
		Title:    "The basics of javaa",
		Slug:     "the-basics-of-javaa",
		Body:     "JavaScript is a language which has many frameworks and libraries",
		AuthorID: seedAuthorID,
	},
}

func EnsureSeedArticles(ctx context.Context, pool *pgxpool.Pool) error {
	err := ensureSeedAuthor(ctx, pool)

	if err != nil {
		return err
	}

	for _, a := range seedArticles {
		// check by slug so reruns are no-ops

		var dummy string

		err := pool.QueryRow(ctx, `SELECT id FROM articles WHERE slug = $1`, a.Slug).Scan(&dummy)

		if err == nil {
			continue
		}

		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		now := time.Now().UTC()

		_, err = pool.Exec(ctx,
			`INSERT INTO articles (id, title, slug, description, body, tag_list, author_id, image, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			uuid.NewString(), a.Title, a.Slug, a.Description, a.Body, a.TagList, a.AuthorID, a.Image, now, now,
		)

		if err != nil {
			return err
		}
	}

	return nil
}

func ensureSeedAuthor(ctx context.Context, pool *pgxpool.Pool) error {
	var dummy string

	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, seedAuthorID).Scan(&dummy)

	if err == nil {
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	now := time.Now().UTC()

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		seedAuthorID, "seed-author", "seed-author@authorshaven.dev", "!locked", now, now,
	)

	return err
}
