// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestErrorClassification(t *testing.T) {
	testCases := []struct {
		name              string
		err               error
		duplicate         bool
		foreignKey        bool
		undefinedFunction bool
	}{
		{
			name:      "unique violation",
			err:       &pgconn.PgError{Code: "23505"},
			duplicate: true,
		},
		{
			name:       "foreign key violation",
			err:        &pgconn.PgError{Code: "23503"},
			foreignKey: true,
		},
		{
			name:              "undefined function",
			err:               &pgconn.PgError{Code: "42883"},
			undefinedFunction: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"}),

			duplicate: true,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: "57014"},
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateKeyError(tc.err); got != tc.duplicate {
				t.Errorf("IsDuplicateKeyError = %v, want %v", got, tc.duplicate)
			}
			if got := IsForeignKeyViolation(tc.err); got != tc.foreignKey {
				t.Errorf("IsForeignKeyViolation = %v, want %v", got, tc.foreignKey)
			}
			if got := IsUndefinedFunctionError(tc.err); got != tc.undefinedFunction {
				t.Errorf("IsUndefinedFunctionError = %v, want %v", got, tc.undefinedFunction)
			}
		})
	}
}

func TestWrapDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	wrapped := WrapDuplicateKeyError(dup, "membership already exists")
	if !errors.Is(wrapped, ErrDuplicateKey) {
		t.Errorf("expected wrapped error to match ErrDuplicateKey, got %v", wrapped)
	}

	other := errors.New("boom")
	if got := WrapDuplicateKeyError(other, "context"); got != other {
		t.Errorf("expected non-duplicate error to pass through, got %v", got)
	}
}
