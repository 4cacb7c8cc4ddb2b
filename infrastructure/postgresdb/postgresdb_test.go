package postgresdb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestHandlePgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: ErrDBDuplicatedEntry},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: ErrDBConstraint},
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, want: ErrUndefinedTable},
		{name: "wrapped pg error", err: fmt.Errorf("query: %w", &pgconn.PgError{Code: "23505"}), want: ErrDBDuplicatedEntry},
		{name: "no rows", err: pgx.ErrNoRows, want: ErrDBNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandlePgError(tt.err)
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("HandlePgError: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandlePgErrorPassthrough(t *testing.T) {
	plain := errors.New("connection refused")
	if got := HandlePgError(plain); got != plain {
		t.Errorf("HandlePgError: got %v, want original error", got)
	}
}
