// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package postgres implements [store.Store] on PostgreSQL using pgx.

The schema is created by the SQL migrations under data/migrations. Table and
column names come from the schema package. Uniqueness (usernames, emails,
edges, playlist entries) is enforced by the database; unique violations
surface as dberr.ErrDuplicate.
*/
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	pgplatform "github.com/taibuivan/yomitube/internal/platform/postgres"
	"github.com/taibuivan/yomitube/internal/store"
)

// Repository implements [store.Store] using a pgx connection pool.
type Repository struct {
	db *pgxpool.Pool
}

var _ store.Store = (*Repository)(nil)

// NewRepository constructs a PostgreSQL backed entity store.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Ping verifies the pool is healthy.
func (repository *Repository) Ping(context context.Context) error {
	return pgplatform.Ping(context, repository.db)
}

// execer is satisfied by the pool and by pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// columns renders a column list, optionally prefixed with a table alias.
func columns(alias string, names []string) string {
	if alias == "" {
		return strings.Join(names, ", ")
	}
	prefixed := make([]string, len(names))
	for i, name := range names {
		prefixed[i] = alias + "." + name
	}
	return strings.Join(prefixed, ", ")
}

// appendWindow adds LIMIT/OFFSET placeholders for skip and limit.
// A non-positive limit means unbounded.
func appendWindow(queryBuilder *strings.Builder, args []any, skip, limit int) []any {
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(queryBuilder, " LIMIT $%d", len(args))
	}
	args = append(args, max(skip, 0))
	fmt.Fprintf(queryBuilder, " OFFSET $%d", len(args))
	return args
}
