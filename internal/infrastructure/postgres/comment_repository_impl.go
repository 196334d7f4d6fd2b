package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/identity"
	"github.com/oksasatya/postboard/internal/domain/repository"
)

const commentColumns = `id, user_id, post_id, content, created_at`

type CommentRepository struct {
	db DB
}

func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func scanComment(row pgx.Row) (entity.Comment, error) {
	var c entity.Comment
	if err := row.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt); err != nil {
		return entity.Comment{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r *CommentRepository) collect(rows pgx.Rows, op string) ([]entity.Comment, error) {
	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Comment, error) {
		return scanComment(row)
	})
	if err != nil {
		return nil, mapError(repository.EntityComment, op, err)
	}
	return comments, nil
}

// insertComment evaluates both references and the insert in one statement.
// refs always yields one row; the ins columns are NULL when a check failed.
const insertComment = `
	WITH refs AS (
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $2::text) AS user_ok,
		       EXISTS (SELECT 1 FROM posts WHERE id = $3::text) AS post_ok
	), ins AS (
		INSERT INTO comments (id, user_id, post_id, content)
		SELECT $1::text, $2::text, $3::text, $4::text
		FROM refs
		WHERE refs.user_ok AND refs.post_ok
		RETURNING ` + commentColumns + `
	)
	SELECT refs.user_ok, refs.post_ok,
	       ins.id, ins.user_id, ins.post_id, ins.content, ins.created_at
	FROM refs LEFT JOIN ins ON true`

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	if err := repository.CheckComment(c); err != nil {
		return err
	}
	var (
		userOK, postOK              bool
		id, userID, postID, content *string
		createdAt                   *time.Time
	)
	err := r.db.QueryRow(ctx, insertComment, identity.NewID(), c.UserID, c.PostID, c.Content).
		Scan(&userOK, &postOK, &id, &userID, &postID, &content, &createdAt)
	if err != nil {
		return mapError(repository.EntityComment, "create comment", err)
	}
	switch {
	case !userOK:
		return repository.ForeignKey(repository.EntityComment, "userId", "user")
	case !postOK:
		return repository.ForeignKey(repository.EntityComment, "postId", "post")
	case id == nil || createdAt == nil:
		return repository.Storage("create comment", errors.New("insert returned no row"))
	}
	*c = entity.Comment{
		ID:        *id,
		UserID:    *userID,
		PostID:    *postID,
		Content:   *content,
		CreatedAt: createdAt.UTC(),
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.NotFound(repository.EntityComment)
		}
		return nil, mapError(repository.EntityComment, "get comment", err)
	}
	return &c, nil
}

func (r *CommentRepository) List(ctx context.Context) ([]entity.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+commentColumns+` FROM comments ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(repository.EntityComment, "list comments", err)
	}
	return r.collect(rows, "list comments")
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at, id`, postID)
	if err != nil {
		return nil, mapError(repository.EntityComment, "list comments by post", err)
	}
	return r.collect(rows, "list comments by post")
}

func (r *CommentRepository) Update(ctx context.Context, id string, p entity.CommentPatch) (*entity.Comment, error) {
	if err := repository.CheckCommentPatch(p); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `
		UPDATE comments
		SET content = COALESCE($2, content)
		WHERE id = $1
		RETURNING `+commentColumns,
		id, p.Content)

	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.NotFound(repository.EntityComment)
		}
		return nil, mapError(repository.EntityComment, "update comment", err)
	}
	return &c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return mapError(repository.EntityComment, "delete comment", err)
	}
	if res.RowsAffected() == 0 {
		return repository.NotFound(repository.EntityComment)
	}
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
