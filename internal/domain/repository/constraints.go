package repository

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oksasatya/postboard/internal/domain/entity"
)

// MaxShortText is the column limit for email, name and title.
const MaxShortText = 256

// Required-field checks shared by every store. They run before reference and
// uniqueness checks.

func CheckUser(u *entity.User) error {
	if err := short(EntityUser, "email", u.Email); err != nil {
		return err
	}
	return short(EntityUser, "name", u.Name)
}

func CheckUserPatch(p entity.UserPatch) error {
	if p.Empty() {
		return noFields(EntityUser)
	}
	if p.Email != nil {
		if err := short(EntityUser, "email", *p.Email); err != nil {
			return err
		}
	}
	if p.Name != nil {
		return short(EntityUser, "name", *p.Name)
	}
	return nil
}

func CheckPost(p *entity.Post) error {
	if err := present(EntityPost, "userId", p.UserID); err != nil {
		return err
	}
	if err := short(EntityPost, "title", p.Title); err != nil {
		return err
	}
	return present(EntityPost, "content", p.Content)
}

func CheckPostPatch(p entity.PostPatch) error {
	if p.Empty() {
		return noFields(EntityPost)
	}
	if p.Title != nil {
		if err := short(EntityPost, "title", *p.Title); err != nil {
			return err
		}
	}
	if p.Content != nil {
		return present(EntityPost, "content", *p.Content)
	}
	return nil
}

func CheckComment(c *entity.Comment) error {
	if err := present(EntityComment, "userId", c.UserID); err != nil {
		return err
	}
	if err := present(EntityComment, "postId", c.PostID); err != nil {
		return err
	}
	return present(EntityComment, "content", c.Content)
}

func CheckCommentPatch(p entity.CommentPatch) error {
	if p.Empty() {
		return noFields(EntityComment)
	}
	return present(EntityComment, "content", *p.Content)
}

func present(entityName, field, v string) error {
	if strings.TrimSpace(v) == "" {
		return Validation(entityName, field, field+" is required")
	}
	return nil
}

func short(entityName, field, v string) error {
	if err := present(entityName, field, v); err != nil {
		return err
	}
	if utf8.RuneCountInString(v) > MaxShortText {
		return Validation(entityName, field, fmt.Sprintf("%s must be at most %d characters long", field, MaxShortText))
	}
	return nil
}

func noFields(entityName string) error {
	return Validation(entityName, "", "no updatable fields supplied")
}
