// Package memory is an in-process implementation of the repository
// interfaces. A single mutex serialises writes, which gives the same
// uniqueness and reference guarantees the postgres store gets from its
// statements. Rows do not survive a restart.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/identity"
)

type row[T any] struct {
	seq uint64
	v   T
}

// Store holds all three tables.
type Store struct {
	mu       sync.RWMutex
	seq      uint64
	users    map[string]row[entity.User]
	posts    map[string]row[entity.Post]
	comments map[string]row[entity.Comment]

	now   func() time.Time
	newID func() string
}

func NewStore() *Store {
	return &Store{
		users:    map[string]row[entity.User]{},
		posts:    map[string]row[entity.Post]{},
		comments: map[string]row[entity.Comment]{},
		now:      func() time.Time { return time.Now().UTC() },
		newID:    identity.NewID,
	}
}

// Users returns the user table view.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Posts returns the post table view.
func (s *Store) Posts() *PostRepository { return &PostRepository{s: s} }

// Comments returns the comment table view.
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }

// next must be called with mu held for writing.
func (s *Store) next() uint64 {
	s.seq++
	return s.seq
}

// snapshot copies the rows that pass keep, in insertion order.
func snapshot[T any](m map[string]row[T], keep func(T) bool) []T {
	rows := make([]row[T], 0, len(m))
	for _, r := range m {
		if keep == nil || keep(r.v) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.v
	}
	return out
}
