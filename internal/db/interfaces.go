// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// DBClientInterface exposes the database as single-statement primitives.
// There is deliberately no transaction surface: every statement commits
// independently, and callers are expected to tolerate partial state through
// idempotent re-entry against the schema's uniqueness constraints.
type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}
