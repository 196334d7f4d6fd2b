package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/postboard/internal/domain/repository"
)

func TestMapErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	err := mapError(repository.EntityUser, "create user", fmt.Errorf("insert: %w", pgErr))

	require.ErrorIs(t, err, repository.ErrUniqueViolation)
	var ce *repository.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "email", ce.Field)
	assert.Equal(t, "A user with this email already exists", ce.Message)
}

func TestMapErrorValidation(t *testing.T) {
	cases := []struct {
		name  string
		err   *pgconn.PgError
		field string
	}{
		{"not null", &pgconn.PgError{Code: "23502", ColumnName: "user_id"}, "userId"},
		{"check", &pgconn.PgError{Code: "23514", ConstraintName: "posts_title_not_blank"}, "title"},
		{"too long", &pgconn.PgError{Code: "22001"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapError(repository.EntityPost, "create post", tc.err)
			require.ErrorIs(t, err, repository.ErrValidation)
			var ce *repository.ConstraintError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.field, ce.Field)
		})
	}
}

func TestMapErrorStorage(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := mapError(repository.EntityUser, "list users", cause)
	assert.ErrorIs(t, err, repository.ErrStorage)
	assert.ErrorIs(t, err, cause)

	err = mapError(repository.EntityUser, "list users", &pgconn.PgError{Code: "40001"})
	assert.ErrorIs(t, err, repository.ErrStorage)
	assert.NotErrorIs(t, err, repository.ErrUniqueViolation)
}
