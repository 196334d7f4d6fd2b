package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/event"
	repo "github.com/oksasatya/postboard/internal/domain/repository"
	"github.com/oksasatya/postboard/pkg/helpers"
)

type UserService struct {
	Repo   repo.UserRepository
	Events event.Publisher
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, events event.Publisher, logger *logrus.Logger) *UserService {
	if events == nil {
		events = event.Nop{}
	}
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &UserService{Repo: repo, Events: events, Logger: logger}
}

type CreateUserInput struct {
	Email string
	Name  string
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u := &entity.User{Email: in.Email, Name: in.Name}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", u.ID).Info("user created")
	publish(ctx, s.Events, s.Logger, event.New(event.UserCreated, u.ID, u))
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id string, p entity.UserPatch) (*entity.User, error) {
	u, err := s.Repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", u.ID).Info("user updated")
	publish(ctx, s.Events, s.Logger, event.New(event.UserUpdated, u.ID, u))
	return u, nil
}

// Delete removes the user only. Their posts and comments keep the reference.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("user_id", id).Info("user deleted")
	publish(ctx, s.Events, s.Logger, event.New(event.UserDeleted, id, nil))
	return nil
}
