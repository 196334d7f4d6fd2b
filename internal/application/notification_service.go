package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/config"
	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/event"
	repo "github.com/oksasatya/postboard/internal/domain/repository"
	"github.com/oksasatya/postboard/pkg/helpers"
	"github.com/oksasatya/postboard/pkg/mailer"
	mailtpl "github.com/oksasatya/postboard/pkg/mailer/templates"
)

// Outcome says what HandleEvent did with a message.
type Outcome string

const (
	OutcomeSent        Outcome = "sent"
	OutcomeIgnored     Outcome = "ignored"      // not a comment.created event
	OutcomeSelfComment Outcome = "self_comment" // author commented on own post
	OutcomeDangling    Outcome = "dangling"     // post or its author no longer exists
)

// ErrPermanent marks a message that will never succeed and must not be
// redelivered.
var ErrPermanent = errors.New("permanent failure")

// NotificationService emails a post's author when someone else comments on it.
type NotificationService struct {
	Users  repo.UserRepository
	Posts  repo.PostRepository
	Mailer mailer.Sender
	Config *config.Config
	Logger *logrus.Logger
}

func NewNotificationService(users repo.UserRepository, posts repo.PostRepository, sender mailer.Sender, cfg *config.Config, logger *logrus.Logger) *NotificationService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &NotificationService{Users: users, Posts: posts, Mailer: sender, Config: cfg, Logger: logger}
}

// HandleEvent processes one raw queue message. Errors wrapping ErrPermanent
// should be dropped; any other error is worth a retry. The events queue carries
// every lifecycle type, and all but comment.created come back as
// OutcomeIgnored so the caller acks them.
func (s *NotificationService) HandleEvent(ctx context.Context, body []byte) (Outcome, error) {
	var e event.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return "", fmt.Errorf("%w: decode event: %w", ErrPermanent, err)
	}
	if e.Type != event.CommentCreated {
		s.Logger.WithFields(logrus.Fields{"event": e.Type, "entity_id": e.EntityID}).
			Debug("event has no notification; acknowledging")
		return OutcomeIgnored, nil
	}
	var c entity.Comment
	if err := e.Decode(&c); err != nil {
		return "", fmt.Errorf("%w: decode comment %s: %w", ErrPermanent, e.EntityID, err)
	}
	return s.NotifyComment(ctx, c)
}

// NotifyComment sends the "new comment" email for c to the post author.
func (s *NotificationService) NotifyComment(ctx context.Context, c entity.Comment) (Outcome, error) {
	log := s.Logger.WithFields(logrus.Fields{"comment_id": c.ID, "post_id": c.PostID})

	post, err := s.Posts.GetByID(ctx, c.PostID)
	if errors.Is(err, repo.ErrNotFound) {
		log.Info("post gone; skipping notification")
		return OutcomeDangling, nil
	}
	if err != nil {
		return "", err
	}
	if post.UserID == c.UserID {
		return OutcomeSelfComment, nil
	}

	author, err := s.Users.GetByID(ctx, post.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		log.WithField("user_id", post.UserID).Info("post author gone; skipping notification")
		return OutcomeDangling, nil
	}
	if err != nil {
		return "", err
	}

	opts := []mailtpl.Option{mailtpl.WithTime(c.CreatedAt)}
	commenter, err := s.Users.GetByID(ctx, c.UserID)
	switch {
	case err == nil:
		opts = append(opts, mailtpl.WithCommenter(commenter.Name))
	case !errors.Is(err, repo.ErrNotFound):
		return "", err
	}

	job := mailer.EmailJob{
		To:       author.Email,
		Template: mailtpl.CommentNotification,
		Data:     mailtpl.NewCommentNotificationData(s.Config, author.Name, author.Email, post.ID, post.Title, c.Content, opts...),
	}
	if err := job.Render(); err != nil {
		return "", fmt.Errorf("%w: render: %w", ErrPermanent, err)
	}
	if err := s.Mailer.Send(ctx, job); err != nil {
		return "", fmt.Errorf("send: %w", err)
	}
	log.WithField("to", author.Email).Info("comment notification sent")
	return OutcomeSent, nil
}
