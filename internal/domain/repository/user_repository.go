package repository

import (
	"context"

	"github.com/oksasatya/postboard/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create assigns a new ID and CreatedAt, enforces constraints and persists u.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id string, p entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
