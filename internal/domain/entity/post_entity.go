package entity

import "time"

// Post belongs to exactly one User via UserID. UserID never changes after
// creation and may dangle once the user is deleted.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostPatch struct {
	Title   *string
	Content *string
}

func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Content == nil
}

func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
}
