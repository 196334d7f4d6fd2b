package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/internal/domain/repository"
)

// scriptedRow copies vals into the Scan destinations in order, or fails with err.
type scriptedRow struct {
	vals []any
	err  error
}

func (r scriptedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(r.vals))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if r.vals[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

// fakeDB answers QueryRow with row and Exec with tag/execErr, recording the
// last statement it saw.
type fakeDB struct {
	row     scriptedRow
	tag     pgconn.CommandTag
	execErr error

	calls int
	sql   string
	args  []any
}

func (f *fakeDB) record(sql string, args []any) {
	f.calls++
	f.sql = sql
	f.args = args
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql, args)
	return f.tag, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	return nil, errors.New("query not scripted")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	return f.row
}

func strPtr(s string) *string { return &s }

func requireConstraint(t *testing.T, err error, kind error, field string) {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var ce *repository.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, field, ce.Field)
}

var stamp = time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600))

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := &fakeDB{row: scriptedRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}}
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), &entity.User{Email: "a@x.com", Name: "A"})
	requireConstraint(t, err, repository.ErrUniqueViolation, "email")
}

func TestUserCreateFillsEntity(t *testing.T) {
	db := &fakeDB{row: scriptedRow{vals: []any{"u1", "a@x.com", "A", stamp}}}
	repo := NewUserRepository(db)

	u := &entity.User{Email: "a@x.com", Name: "A"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())
	assert.Equal(t, []any{db.args[0], "a@x.com", "A"}, db.args)
}

func TestUserCreateRejectsBlankBeforeQuery(t *testing.T) {
	db := &fakeDB{}
	err := NewUserRepository(db).Create(context.Background(), &entity.User{Email: " ", Name: "A"})

	requireConstraint(t, err, repository.ErrValidation, "email")
	assert.Zero(t, db.calls)
}

func TestUserGetByIDNoRows(t *testing.T) {
	db := &fakeDB{row: scriptedRow{err: pgx.ErrNoRows}}
	_, err := NewUserRepository(db).GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserUpdatePassesNilForUntouchedColumns(t *testing.T) {
	db := &fakeDB{row: scriptedRow{vals: []any{"u1", "a@x.com", "Renamed", stamp}}}
	repo := NewUserRepository(db)

	u, err := repo.Update(context.Background(), "u1", entity.UserPatch{Name: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)

	assert.Contains(t, db.sql, "COALESCE($2, email)")
	require.Len(t, db.args, 3)
	assert.Equal(t, "u1", db.args[0])
	assert.Nil(t, db.args[1].(*string))
	assert.Equal(t, "Renamed", *db.args[2].(*string))
}

func TestPostCreateUnknownUser(t *testing.T) {
	db := &fakeDB{row: scriptedRow{err: pgx.ErrNoRows}}
	repo := NewPostRepository(db)

	err := repo.Create(context.Background(), &entity.Post{UserID: "ghost", Title: "T", Content: "C"})
	requireConstraint(t, err, repository.ErrForeignKeyViolation, "userId")
	assert.Contains(t, db.sql, "WHERE EXISTS (SELECT 1 FROM users")
}

func TestPostCreateDriverFailure(t *testing.T) {
	db := &fakeDB{row: scriptedRow{err: errors.New("connection reset")}}
	err := NewPostRepository(db).Create(context.Background(), &entity.Post{UserID: "u1", Title: "T", Content: "C"})
	require.ErrorIs(t, err, repository.ErrStorage)
}

func TestPostUpdate(t *testing.T) {
	t.Run("keeps title when only content is patched", func(t *testing.T) {
		db := &fakeDB{row: scriptedRow{vals: []any{"p1", "u1", "Old", "New body", stamp}}}
		p, err := NewPostRepository(db).Update(context.Background(), "p1", entity.PostPatch{Content: strPtr("New body")})
		require.NoError(t, err)
		assert.Equal(t, "Old", p.Title)
		assert.Equal(t, "New body", p.Content)

		assert.Contains(t, db.sql, "title = COALESCE($2, title)")
		assert.Nil(t, db.args[1].(*string))
		assert.Equal(t, "New body", *db.args[2].(*string))
	})

	t.Run("missing post", func(t *testing.T) {
		db := &fakeDB{row: scriptedRow{err: pgx.ErrNoRows}}
		_, err := NewPostRepository(db).Update(context.Background(), "nope", entity.PostPatch{Title: strPtr("T")})
		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("empty patch never reaches the database", func(t *testing.T) {
		db := &fakeDB{}
		_, err := NewPostRepository(db).Update(context.Background(), "p1", entity.PostPatch{})
		require.ErrorIs(t, err, repository.ErrValidation)
		assert.Zero(t, db.calls)
	})
}

func TestDeleteRowsAffected(t *testing.T) {
	ctx := context.Background()
	deletes := map[string]func(DB) error{
		"user":    func(db DB) error { return NewUserRepository(db).Delete(ctx, "x") },
		"post":    func(db DB) error { return NewPostRepository(db).Delete(ctx, "x") },
		"comment": func(db DB) error { return NewCommentRepository(db).Delete(ctx, "x") },
	}
	for name, del := range deletes {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, del(&fakeDB{tag: pgconn.NewCommandTag("DELETE 0")}), repository.ErrNotFound)
			require.NoError(t, del(&fakeDB{tag: pgconn.NewCommandTag("DELETE 1")}))
			require.ErrorIs(t, del(&fakeDB{execErr: errors.New("broken pipe")}), repository.ErrStorage)
		})
	}
}

func TestCommentCreateReferenceChecks(t *testing.T) {
	cases := []struct {
		name   string
		userOK bool
		postOK bool
		field  string
	}{
		{"both missing reports user first", false, false, "userId"},
		{"missing user", false, true, "userId"},
		{"missing post", true, false, "postId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := &fakeDB{row: scriptedRow{vals: []any{tc.userOK, tc.postOK, nil, nil, nil, nil, nil}}}
			c := &entity.Comment{UserID: "u1", PostID: "p1", Content: "hi"}

			err := NewCommentRepository(db).Create(context.Background(), c)
			requireConstraint(t, err, repository.ErrForeignKeyViolation, tc.field)
			assert.Empty(t, c.ID)
		})
	}
}

func TestCommentCreateFillsEntity(t *testing.T) {
	db := &fakeDB{row: scriptedRow{vals: []any{
		true, true, strPtr("c1"), strPtr("u1"), strPtr("p1"), strPtr("hi"), &stamp,
	}}}
	c := &entity.Comment{UserID: "u1", PostID: "p1", Content: "hi"}

	require.NoError(t, NewCommentRepository(db).Create(context.Background(), c))
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "p1", c.PostID)
	assert.True(t, c.CreatedAt.Equal(stamp))
	assert.Equal(t, time.UTC, c.CreatedAt.Location())
}

func TestCommentCreateWithoutInsertedRow(t *testing.T) {
	db := &fakeDB{row: scriptedRow{vals: []any{true, true, nil, nil, nil, nil, nil}}}
	err := NewCommentRepository(db).Create(context.Background(), &entity.Comment{UserID: "u1", PostID: "p1", Content: "hi"})
	require.ErrorIs(t, err, repository.ErrStorage)
}

func TestCommentUpdateNoRows(t *testing.T) {
	db := &fakeDB{row: scriptedRow{err: pgx.ErrNoRows}}
	_, err := NewCommentRepository(db).Update(context.Background(), "c9", entity.CommentPatch{Content: strPtr("x")})
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "c9", db.args[0])
}
