package entity

import (
	"time"
)

// User is the author of posts and comments.
// Email is unique across all users.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch carries the mutable subset of a User. Nil fields are left untouched.
type UserPatch struct {
	Email *string
	Name  *string
}

func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Name == nil
}

// Apply copies the set fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
}
