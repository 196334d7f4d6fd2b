package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/identity"
	"github.com/oksasatya/postboard/internal/domain/repository"
)

const userColumns = `id, email, name, created_at`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
		return entity.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

// Create relies on the users_email_key index for uniqueness, so concurrent
// inserts of the same email resolve to exactly one success.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := repository.CheckUser(u); err != nil {
		return err
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, name)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		identity.NewID(), u.Email, u.Name)

	created, err := scanUser(row)
	if err != nil {
		return mapError(repository.EntityUser, "create user", err)
	}
	*u = created
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.NotFound(repository.EntityUser)
		}
		return nil, mapError(repository.EntityUser, "get user", err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(repository.EntityUser, "list users", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, mapError(repository.EntityUser, "list users", err)
	}
	return users, nil
}

// Update leaves columns whose patch field is nil untouched.
func (r *UserRepository) Update(ctx context.Context, id string, p entity.UserPatch) (*entity.User, error) {
	if err := repository.CheckUserPatch(p); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET email = COALESCE($2, email), name = COALESCE($3, name)
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.Email, p.Name)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.NotFound(repository.EntityUser)
		}
		return nil, mapError(repository.EntityUser, "update user", err)
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(repository.EntityUser, "delete user", err)
	}
	if res.RowsAffected() == 0 {
		return repository.NotFound(repository.EntityUser)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
