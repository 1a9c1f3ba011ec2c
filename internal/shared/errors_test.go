package shared

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestTranslateConstraintUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "clients_name_key"}

	err := TranslateConstraint(pgErr)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "clients_name_key", conflict.Constraint)
}

func TestTranslateConstraintForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "projects_client_id_fkey"}

	err := TranslateConstraint(pgErr)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "projects_client_id_fkey", conflict.Constraint)
}

func TestTranslateConstraintPassesOtherErrorsThrough(t *testing.T) {
	plain := errors.New("connection refused")
	require.Equal(t, plain, TranslateConstraint(plain))

	pgErr := &pgconn.PgError{Code: "42P01"}
	require.Equal(t, error(pgErr), TranslateConstraint(pgErr))

	require.NoError(t, TranslateConstraint(nil))
}
