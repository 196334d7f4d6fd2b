package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/postboard/internal/domain/repository"
)

// SQLSTATE codes the store turns into constraint failures.
const (
	codeUniqueViolation     = "23505"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeForeignKeyViolation = "23503"
	codeStringTooLong       = "22001"
)

// constraintFields maps schema constraint names to API field names.
var constraintFields = map[string]string{
	"users_email_key":            "email",
	"users_email_not_blank":      "email",
	"users_name_not_blank":       "name",
	"posts_title_not_blank":      "title",
	"posts_content_not_blank":    "content",
	"comments_content_not_blank": "content",
}

var columnFields = map[string]string{
	"user_id": "userId",
	"post_id": "postId",
}

func fieldName(pgErr *pgconn.PgError) string {
	if f, ok := constraintFields[pgErr.ConstraintName]; ok {
		return f
	}
	if f, ok := columnFields[pgErr.ColumnName]; ok {
		return f
	}
	return pgErr.ColumnName
}

// mapError turns a driver error into a typed repository failure. Anything
// that is not a recognised constraint outcome becomes ErrStorage.
func mapError(entityName, op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return repository.Storage(op, err)
	}
	field := fieldName(pgErr)
	switch pgErr.Code {
	case codeUniqueViolation:
		return repository.Unique(entityName, field)
	case codeNotNullViolation, codeCheckViolation:
		return repository.Validation(entityName, field, field+" is required")
	case codeStringTooLong:
		return repository.Validation(entityName, field, "value too long")
	case codeForeignKeyViolation:
		return repository.ForeignKey(entityName, field, "row")
	}
	return repository.Storage(op, err)
}
