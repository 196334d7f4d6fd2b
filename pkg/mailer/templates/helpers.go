package templates

import (
	"strings"
	"time"

	"github.com/oksasatya/postboard/config"
)

// Option pattern
type Option func(*CommentNotificationData)

func WithTime(t time.Time) Option {
	return func(d *CommentNotificationData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04 MST")
	}
}

func WithCommenter(name string) Option {
	return func(d *CommentNotificationData) {
		if s := strings.TrimSpace(name); s != "" {
			d.CommenterName = s
		}
	}
}

// PostURL is the API location of a post under the configured base URL.
func PostURL(cfg *config.Config, postID string) string {
	return cfg.AppBaseURL + cfg.APIPrefix + "/posts/" + postID
}

// NewCommentNotificationData fills the common fields from config, then applies opts.
func NewCommentNotificationData(cfg *config.Config, recipientName, recipientEmail, postID, postTitle, comment string, opts ...Option) CommentNotificationData {
	d := CommentNotificationData{
		AppName:        cfg.AppName,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		CommenterName:  "Someone",
		PostTitle:      postTitle,
		CommentContent: comment,
		PostURL:        PostURL(cfg, postID),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
