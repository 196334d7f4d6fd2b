package memory

import (
	"context"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/repository"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	if err := repository.CheckUser(u); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.emailTaken(u.Email, "") {
		return repository.Unique(repository.EntityUser, "email")
	}
	u.ID = r.s.newID()
	u.CreatedAt = r.s.now()
	r.s.users[u.ID] = row[entity.User]{seq: r.s.next(), v: *u}
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cur, ok := r.s.users[id]
	if !ok {
		return nil, repository.NotFound(repository.EntityUser)
	}
	u := cur.v
	return &u, nil
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return snapshot(r.s.users, nil), nil
}

func (r *UserRepository) Update(_ context.Context, id string, p entity.UserPatch) (*entity.User, error) {
	if err := repository.CheckUserPatch(p); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[id]
	if !ok {
		return nil, repository.NotFound(repository.EntityUser)
	}
	if p.Email != nil && r.emailTaken(*p.Email, id) {
		return nil, repository.Unique(repository.EntityUser, "email")
	}
	p.Apply(&cur.v)
	r.s.users[id] = cur
	u := cur.v
	return &u, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.NotFound(repository.EntityUser)
	}
	delete(r.s.users, id)
	return nil
}

// emailTaken must be called with mu held.
func (r *UserRepository) emailTaken(email, exceptID string) bool {
	for id, u := range r.s.users {
		if id != exceptID && u.v.Email == email {
			return true
		}
	}
	return false
}

var _ repository.UserRepository = (*UserRepository)(nil)
