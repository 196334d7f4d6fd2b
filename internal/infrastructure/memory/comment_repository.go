package memory

import (
	"context"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/repository"
)

type CommentRepository struct {
	s *Store
}

func (r *CommentRepository) Create(_ context.Context, c *entity.Comment) error {
	if err := repository.CheckComment(c); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[c.UserID]; !ok {
		return repository.ForeignKey(repository.EntityComment, "userId", "user")
	}
	if _, ok := r.s.posts[c.PostID]; !ok {
		return repository.ForeignKey(repository.EntityComment, "postId", "post")
	}
	c.ID = r.s.newID()
	c.CreatedAt = r.s.now()
	r.s.comments[c.ID] = row[entity.Comment]{seq: r.s.next(), v: *c}
	return nil
}

func (r *CommentRepository) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cur, ok := r.s.comments[id]
	if !ok {
		return nil, repository.NotFound(repository.EntityComment)
	}
	c := cur.v
	return &c, nil
}

func (r *CommentRepository) List(_ context.Context) ([]entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return snapshot(r.s.comments, nil), nil
}

func (r *CommentRepository) ListByPost(_ context.Context, postID string) ([]entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return snapshot(r.s.comments, func(c entity.Comment) bool { return c.PostID == postID }), nil
}

func (r *CommentRepository) Update(_ context.Context, id string, p entity.CommentPatch) (*entity.Comment, error) {
	if err := repository.CheckCommentPatch(p); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.comments[id]
	if !ok {
		return nil, repository.NotFound(repository.EntityComment)
	}
	p.Apply(&cur.v)
	r.s.comments[id] = cur
	c := cur.v
	return &c, nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return repository.NotFound(repository.EntityComment)
	}
	delete(r.s.comments, id)
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
