package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/identity"
	"github.com/oksasatya/postboard/internal/domain/repository"
)

const postColumns = `id, user_id, title, content, created_at`

type PostRepository struct {
	db DB
}

func NewPostRepository(db DB) *PostRepository {
	return &PostRepository{db: db}
}

func scanPost(row pgx.Row) (entity.Post, error) {
	var p entity.Post
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt); err != nil {
		return entity.Post{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func (r *PostRepository) collect(rows pgx.Rows, op string) ([]entity.Post, error) {
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Post, error) {
		return scanPost(row)
	})
	if err != nil {
		return nil, mapError(repository.EntityPost, op, err)
	}
	return posts, nil
}

// Create inserts only when the referenced user exists; no row back means the
// reference check failed.
func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if err := repository.CheckPost(p); err != nil {
		return err
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO posts (id, user_id, title, content)
		SELECT $1::text, $2::text, $3::text, $4::text
		WHERE EXISTS (SELECT 1 FROM users WHERE id = $2::text)
		RETURNING `+postColumns,
		identity.NewID(), p.UserID, p.Title, p.Content)

	created, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ForeignKey(repository.EntityPost, "userId", "user")
		}
		return mapError(repository.EntityPost, "create post", err)
	}
	*p = created
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.NotFound(repository.EntityPost)
		}
		return nil, mapError(repository.EntityPost, "get post", err)
	}
	return &p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(repository.EntityPost, "list posts", err)
	}
	return r.collect(rows, "list posts")
}

func (r *PostRepository) ListByUser(ctx context.Context, userID string) ([]entity.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, mapError(repository.EntityPost, "list posts by user", err)
	}
	return r.collect(rows, "list posts by user")
}

func (r *PostRepository) Update(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	if err := repository.CheckPostPatch(patch); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `
		UPDATE posts
		SET title = COALESCE($2, title), content = COALESCE($3, content)
		WHERE id = $1
		RETURNING `+postColumns,
		id, patch.Title, patch.Content)

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.NotFound(repository.EntityPost)
		}
		return nil, mapError(repository.EntityPost, "update post", err)
	}
	return &p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return mapError(repository.EntityPost, "delete post", err)
	}
	if res.RowsAffected() == 0 {
		return repository.NotFound(repository.EntityPost)
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
