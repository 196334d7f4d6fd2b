package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/postboard/internal/domain/entity"
)

func ptr(s string) *string { return &s }

func TestCheckUser(t *testing.T) {
	assert.NoError(t, CheckUser(&entity.User{Email: "a@x.com", Name: "A"}))

	err := CheckUser(&entity.User{Email: " ", Name: ""})
	require.ErrorIs(t, err, ErrValidation)
	var ce *ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "email", ce.Field, "email is checked first")
	assert.Equal(t, "email is required", ce.Message)

	err = CheckUser(&entity.User{Email: "a@x.com", Name: strings.Repeat("n", MaxShortText+1)})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "at most 256")
}

func TestCheckPatches(t *testing.T) {
	assert.ErrorIs(t, CheckUserPatch(entity.UserPatch{}), ErrValidation)
	assert.ErrorIs(t, CheckUserPatch(entity.UserPatch{Name: ptr("")}), ErrValidation)
	assert.NoError(t, CheckUserPatch(entity.UserPatch{Name: ptr("B")}))

	assert.ErrorIs(t, CheckPostPatch(entity.PostPatch{}), ErrValidation)
	assert.ErrorIs(t, CheckPostPatch(entity.PostPatch{Content: ptr("  ")}), ErrValidation)
	assert.NoError(t, CheckPostPatch(entity.PostPatch{Title: ptr("T")}))

	assert.ErrorIs(t, CheckCommentPatch(entity.CommentPatch{}), ErrValidation)
	assert.NoError(t, CheckCommentPatch(entity.CommentPatch{Content: ptr("hi")}))
}

func TestCheckCommentOrder(t *testing.T) {
	err := CheckComment(&entity.Comment{})
	var ce *ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "userId", ce.Field)

	err = CheckComment(&entity.Comment{UserID: "u"})
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "postId", ce.Field)
}

func TestErrorKinds(t *testing.T) {
	assert.EqualError(t, NotFound(EntityPost), "Post not found")
	assert.ErrorIs(t, NotFound(EntityPost), ErrNotFound)
	assert.EqualError(t, Unique(EntityUser, "email"), "A user with this email already exists")
	assert.EqualError(t, ForeignKey(EntityPost, "userId", "user"), "userId does not reference an existing user")
	assert.ErrorIs(t, ForeignKey(EntityPost, "userId", "user"), ErrForeignKeyViolation)

	cause := errors.New("connection refused")
	err := Storage("list users", cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
}
