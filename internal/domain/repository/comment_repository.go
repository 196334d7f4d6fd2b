package repository

import (
	"context"

	"github.com/oksasatya/postboard/internal/domain/entity"
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// Create rejects comments whose UserID or PostID does not resolve, checking
	// the user first.
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	List(ctx context.Context) ([]entity.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]entity.Comment, error)
	Update(ctx context.Context, id string, p entity.CommentPatch) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
}
