package memory

import (
	"context"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/repository"
)

type PostRepository struct {
	s *Store
}

func (r *PostRepository) Create(_ context.Context, p *entity.Post) error {
	if err := repository.CheckPost(p); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[p.UserID]; !ok {
		return repository.ForeignKey(repository.EntityPost, "userId", "user")
	}
	p.ID = r.s.newID()
	p.CreatedAt = r.s.now()
	r.s.posts[p.ID] = row[entity.Post]{seq: r.s.next(), v: *p}
	return nil
}

func (r *PostRepository) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cur, ok := r.s.posts[id]
	if !ok {
		return nil, repository.NotFound(repository.EntityPost)
	}
	p := cur.v
	return &p, nil
}

func (r *PostRepository) List(_ context.Context) ([]entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return snapshot(r.s.posts, nil), nil
}

func (r *PostRepository) ListByUser(_ context.Context, userID string) ([]entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return snapshot(r.s.posts, func(p entity.Post) bool { return p.UserID == userID }), nil
}

func (r *PostRepository) Update(_ context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	if err := repository.CheckPostPatch(patch); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.posts[id]
	if !ok {
		return nil, repository.NotFound(repository.EntityPost)
	}
	patch.Apply(&cur.v)
	r.s.posts[id] = cur
	p := cur.v
	return &p, nil
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return repository.NotFound(repository.EntityPost)
	}
	delete(r.s.posts, id)
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
