package postgres

import (
	"context"
	"errors"
	"fmt"

	"careerconnect/internal/storage"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx the repositories need.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// builder returns an ent SQL builder bound to the postgres dialect so generated
// placeholders are $n.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.Postgres)
}

// mapWriteError converts constraint violations into storage.ErrConflict and
// leaves other errors wrapped for the caller to log.
func mapWriteError(err error, operation string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", operation, storage.ErrConflict, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// mapReadError converts pgx.ErrNoRows into storage.ErrNotFound.
func mapReadError(err error, operation string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// uuidStrings renders ids for an ANY($1::uuid[]) parameter.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
