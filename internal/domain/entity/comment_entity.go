package entity

import "time"

// Comment belongs to one User and one Post. Both references are fixed at
// creation.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentPatch struct {
	Content *string
}

func (p CommentPatch) Empty() bool {
	return p.Content == nil
}

func (p CommentPatch) Apply(c *Comment) {
	if p.Content != nil {
		c.Content = *p.Content
	}
}
