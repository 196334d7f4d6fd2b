// Package seed builds the fixed sample data set and renders it as SQL.
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/identity"
)

const (
	AliceID = "11111111-1111-4111-8111-111111111111"
	BobID   = "22222222-2222-4222-8222-222222222222"
)

var postIDs = [...]string{
	"33333333-3333-4333-8333-333333333333",
	"44444444-4444-4444-8444-444444444444",
	"55555555-5555-4555-8555-555555555555",
}

// Data is one generated sample set.
type Data struct {
	Users    []entity.User
	Posts    []entity.Post
	Comments []entity.Comment
}

// Build returns the sample set with every createdAt stamped at now.
func Build(now time.Time) Data {
	now = now.UTC()
	return Data{
		Users: []entity.User{
			{ID: AliceID, Name: "Alice Johnson", Email: "alice.johnson@example.com", CreatedAt: now},
			{ID: BobID, Name: "Bob Smith", Email: "bob.smith@example.com", CreatedAt: now},
		},
		Posts: []entity.Post{
			{ID: postIDs[0], UserID: AliceID, Title: "Introduction", Content: "Hello, World! Excited to join this community.", CreatedAt: now},
			{ID: postIDs[1], UserID: BobID, Title: "Welcome", Content: "Hello, Alice! Welcome to the community!", CreatedAt: now},
			{ID: postIDs[2], UserID: AliceID, Title: "Thank You", Content: "Thanks, Bob! Glad to be here.", CreatedAt: now},
		},
		Comments: []entity.Comment{
			{ID: "66666666-6666-4666-8666-666666666666", UserID: BobID, PostID: postIDs[0], Content: "Welcome, Alice! Looking forward to your posts.", CreatedAt: now},
			{ID: "77777777-7777-4777-8777-777777777777", UserID: AliceID, PostID: postIDs[1], Content: "Thank you, Bob! Excited to be part of the conversation.", CreatedAt: now},
		},
	}
}

// Check verifies ids are well formed and every reference resolves.
func (d Data) Check() error {
	users := map[string]bool{}
	for _, u := range d.Users {
		if !identity.IsID(u.ID) {
			return fmt.Errorf("user %q: malformed id", u.ID)
		}
		users[u.ID] = true
	}
	posts := map[string]bool{}
	for _, p := range d.Posts {
		if !identity.IsID(p.ID) {
			return fmt.Errorf("post %q: malformed id", p.ID)
		}
		if !users[p.UserID] {
			return fmt.Errorf("post %q: unknown user %q", p.ID, p.UserID)
		}
		posts[p.ID] = true
	}
	for _, c := range d.Comments {
		if !identity.IsID(c.ID) {
			return fmt.Errorf("comment %q: malformed id", c.ID)
		}
		if !users[c.UserID] {
			return fmt.Errorf("comment %q: unknown user %q", c.ID, c.UserID)
		}
		if !posts[c.PostID] {
			return fmt.Errorf("comment %q: unknown post %q", c.ID, c.PostID)
		}
	}
	return nil
}

// Statements renders the data as SQL: the three tables are cleared children
// first, then refilled parents first.
func (d Data) Statements() []string {
	stmts := []string{
		"DELETE FROM comments",
		"DELETE FROM posts",
		"DELETE FROM users",
	}

	users := make([][]string, len(d.Users))
	for i, u := range d.Users {
		users[i] = []string{u.ID, u.Email, u.Name, ts(u.CreatedAt)}
	}
	stmts = append(stmts, insert("users", []string{"id", "email", "name", "created_at"}, users))

	posts := make([][]string, len(d.Posts))
	for i, p := range d.Posts {
		posts[i] = []string{p.ID, p.UserID, p.Title, p.Content, ts(p.CreatedAt)}
	}
	stmts = append(stmts, insert("posts", []string{"id", "user_id", "title", "content", "created_at"}, posts))

	comments := make([][]string, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = []string{c.ID, c.UserID, c.PostID, c.Content, ts(c.CreatedAt)}
	}
	stmts = append(stmts, insert("comments", []string{"id", "user_id", "post_id", "content", "created_at"}, comments))

	return stmts
}

// SQL joins Statements into one script.
func (d Data) SQL() string {
	return strings.Join(d.Statements(), ";\n") + ";\n"
}

func insert(table string, cols []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", table, strings.Join(cols, ", "))
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		vals := make([]string, len(r))
		for j, v := range r {
			vals[j] = quote(v)
		}
		b.WriteString("(" + strings.Join(vals, ", ") + ")")
	}
	return b.String()
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
