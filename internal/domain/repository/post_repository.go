package repository

import (
	"context"

	"github.com/oksasatya/postboard/internal/domain/entity"
)

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	// Create rejects posts whose UserID does not resolve to a user.
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Post, error)
	Update(ctx context.Context, id string, p entity.PostPatch) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
}
