package postgres

import (
	"context"
	"errors"

	"github.com/alphamugerwa/authorshaven/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepo struct {
	pool *pgxpool.Pool
}

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{pool: pool}
}

// GetProfileByUsername selects the public projection only; email and the
// password hash never leave the database for this query.
func (r *UsersRepo) GetProfileByUsername(ctx context.Context, username string) (user.Profile, error) {
	var p user.Profile

	err := r.pool.QueryRow(
		ctx,
		`SELECT first_name, last_name, bio, image, phone, facebook, twitter, linked_in, instagram, location, username
         FROM users
         WHERE username = $1`,
		username,
	).Scan(
		&p.FirstName,
		&p.LastName,
		&p.Bio,
		&p.Image,
		&p.Phone,
		&p.Facebook,
		&p.Twitter,
		&p.LinkedIn,
		&p.Instagram,
		&p.Location,
		&p.Username,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrNotFound
		}

		return user.Profile{}, err
	}

	return p, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User

	err := r.pool.QueryRow(
		ctx,
		`SELECT id, username, email, password_hash, first_name, last_name, bio, image, phone, facebook, twitter, linked_in, instagram, location, created_at, updated_at
         FROM users
         WHERE email = $1`,
		email,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Bio,
		&u.Image,
		&u.Phone,
		&u.Facebook,
		&u.Twitter,
		&u.LinkedIn,
		&u.Instagram,
		&u.Location,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

// UpdateProfile writes every field of the update as given. Blank fields blank
// out the stored values; the image is resolved by the caller beforehand.
func (r *UsersRepo) UpdateProfile(ctx context.Context, email string, upd user.ProfileUpdate, image string) error {
	tag, err := r.pool.Exec(
		ctx,
		`UPDATE users
			SET first_name = $2,
					last_name = $3,
					bio = $4,
					image = $5,
					phone = $6,
					facebook = $7,
					twitter = $8,
					linked_in = $9,
					instagram = $10,
					location = $11,
					updated_at = NOW()
		WHERE email = $1`,
		email,
		upd.FirstName,
		upd.LastName,
		upd.Bio,
		image,
		upd.Phone,
		upd.Facebook,
		upd.Twitter,
		upd.LinkedIn,
		upd.Instagram,
		upd.Location,
	)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

// List returns users in store order; no ORDER BY on purpose.
func (r *UsersRepo) List(ctx context.Context) ([]user.Listing, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, username, email, bio, image, phone, facebook, twitter, linked_in, instagram, location, created_at, updated_at
		 FROM users`,
	)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	output := make([]user.Listing, 0)

	for rows.Next() {
		var l user.Listing

		err = rows.Scan(
			&l.ID,
			&l.Username,
			&l.Email,
			&l.Bio,
			&l.Image,
			&l.Phone,
			&l.Facebook,
			&l.Twitter,
			&l.LinkedIn,
			&l.Instagram,
			&l.Location,
			&l.CreatedAt,
			&l.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		output = append(output, l)
	}

	err = rows.Err()

	if err != nil {
		return nil, err
	}

	return output, nil
}

func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError

		// 23505: unique constraint on username or email
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrDuplicate
		}

		return user.User{}, err
	}

	return u, nil
}
