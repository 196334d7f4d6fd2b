package mailer

import (
	"errors"

	mailtpl "github.com/oksasatya/postboard/pkg/mailer/templates"
)

// EmailJob is one outgoing message. Either Subject/Text/HTML are set
// directly or Template names a template set rendered from Data.
type EmailJob struct {
	To       string `json:"to"`
	Subject  string `json:"subject,omitempty"`
	Text     string `json:"text,omitempty"`
	HTML     string `json:"html,omitempty"`
	Template string `json:"template,omitempty"` // e.g. "comment_notification"
	Data     any    `json:"data,omitempty"`
}

var ErrNoRecipient = errors.New("email job has no recipient")

// Render fills Subject, Text and HTML from Template when one is set.
func (j *EmailJob) Render() error {
	if j.To == "" {
		return ErrNoRecipient
	}
	if j.Template == "" {
		return nil
	}
	s, t, h, err := mailtpl.Render(j.Template, j.Data)
	if err != nil {
		return err
	}
	j.Subject, j.Text, j.HTML = s, t, h
	return nil
}
