package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/event"
	repo "github.com/oksasatya/postboard/internal/domain/repository"
	"github.com/oksasatya/postboard/pkg/helpers"
)

type PostService struct {
	Repo   repo.PostRepository
	Events event.Publisher
	Logger *logrus.Logger
}

func NewPostService(repo repo.PostRepository, events event.Publisher, logger *logrus.Logger) *PostService {
	if events == nil {
		events = event.Nop{}
	}
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &PostService{Repo: repo, Events: events, Logger: logger}
}

type CreatePostInput struct {
	UserID  string
	Title   string
	Content string
}

func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Repo.List(ctx)
}

func (s *PostService) ListByUser(ctx context.Context, userID string) ([]entity.Post, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	p := &entity.Post{UserID: in.UserID, Title: in.Title, Content: in.Content}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "user_id": p.UserID}).Info("post created")
	publish(ctx, s.Events, s.Logger, event.New(event.PostCreated, p.ID, p))
	return p, nil
}

func (s *PostService) Update(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	p, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("post_id", p.ID).Info("post updated")
	publish(ctx, s.Events, s.Logger, event.New(event.PostUpdated, p.ID, p))
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("post_id", id).Info("post deleted")
	publish(ctx, s.Events, s.Logger, event.New(event.PostDeleted, id, nil))
	return nil
}
