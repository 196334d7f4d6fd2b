package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/event"
	repo "github.com/oksasatya/postboard/internal/domain/repository"
	"github.com/oksasatya/postboard/pkg/helpers"
)

type CommentService struct {
	Repo   repo.CommentRepository
	Events event.Publisher
	Logger *logrus.Logger
}

func NewCommentService(repo repo.CommentRepository, events event.Publisher, logger *logrus.Logger) *CommentService {
	if events == nil {
		events = event.Nop{}
	}
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &CommentService{Repo: repo, Events: events, Logger: logger}
}

type CreateCommentInput struct {
	UserID  string
	PostID  string
	Content string
}

func (s *CommentService) List(ctx context.Context) ([]entity.Comment, error) {
	return s.Repo.List(ctx)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	return s.Repo.ListByPost(ctx, postID)
}

func (s *CommentService) Get(ctx context.Context, id string) (*entity.Comment, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create publishes comment.created, which the notify worker turns into an
// email to the post author.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*entity.Comment, error) {
	c := &entity.Comment{UserID: in.UserID, PostID: in.PostID, Content: in.Content}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{
		"comment_id": c.ID,
		"post_id":    c.PostID,
		"user_id":    c.UserID,
	}).Info("comment created")
	publish(ctx, s.Events, s.Logger, event.New(event.CommentCreated, c.ID, c))
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, id string, p entity.CommentPatch) (*entity.Comment, error) {
	c, err := s.Repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("comment_id", c.ID).Info("comment updated")
	publish(ctx, s.Events, s.Logger, event.New(event.CommentUpdated, c.ID, c))
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("comment_id", id).Info("comment deleted")
	publish(ctx, s.Events, s.Logger, event.New(event.CommentDeleted, id, nil))
	return nil
}
