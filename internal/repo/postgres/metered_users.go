package postgres

import (
	"context"
	"errors"

	"github.com/alphamugerwa/authorshaven/internal/domain/user"
	"github.com/alphamugerwa/authorshaven/internal/observability"
)

// MeteredUsersRepo wraps UsersRepo with per-operation DB metrics. Expected
// absences and duplicates are not counted as store errors.
type MeteredUsersRepo struct {
	repo *UsersRepo
	prom *observability.Prom
}

func NewMeteredUsersRepo(repo *UsersRepo, prom *observability.Prom) *MeteredUsersRepo {
	return &MeteredUsersRepo{repo: repo, prom: prom}
}

func (m *MeteredUsersRepo) observe(op string, fn func() error) error {
	return m.prom.ObserveDB(op, func() error {
		err := fn()

		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrDuplicate) {
			return nil
		}

		return err
	})
}

func (m *MeteredUsersRepo) GetProfileByUsername(ctx context.Context, username string) (user.Profile, error) {
	var p user.Profile
	var err error

	_ = m.observe("users.get_profile_by_username", func() error {
		p, err = m.repo.GetProfileByUsername(ctx, username)
		return err
	})

	return p, err
}

func (m *MeteredUsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	var err error

	_ = m.observe("users.get_by_email", func() error {
		u, err = m.repo.GetByEmail(ctx, email)
		return err
	})

	return u, err
}

func (m *MeteredUsersRepo) UpdateProfile(ctx context.Context, email string, upd user.ProfileUpdate, image string) error {
	var err error

	_ = m.observe("users.update_profile", func() error {
		err = m.repo.UpdateProfile(ctx, email, upd, image)
		return err
	})

	return err
}

func (m *MeteredUsersRepo) List(ctx context.Context) ([]user.Listing, error) {
	var out []user.Listing
	var err error

	_ = m.observe("users.list", func() error {
		out, err = m.repo.List(ctx)
		return err
	})

	return out, err
}

func (m *MeteredUsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	var created user.User
	var err error

	_ = m.observe("users.create", func() error {
		created, err = m.repo.Create(ctx, u)
		return err
	})

	return created, err
}
