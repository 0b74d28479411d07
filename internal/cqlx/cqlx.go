// Package cqlx provides a tiny abstraction over a gocql session: the subset
// of execute-style operations our repositories need, so they can be exercised
// in tests without a running cluster.
package cqlx

import (
	"context"

	"github.com/gocql/gocql"
)

// ErrNoRows is returned by ScanRow when the query matches no row.
var ErrNoRows = gocql.ErrNotFound

// Iter walks the rows of a query result. Scan returns false when the result
// set is exhausted; Close reports any query error.
type Iter interface {
	Scan(dest ...any) bool
	Close() error
}

// Querier is the subset of a CQL session used by our repositories.
// *Session implements it against a live cluster; tests provide fakes.
type Querier interface {
	// Exec runs a statement that returns no rows.
	Exec(ctx context.Context, stmt string, args ...any) error

	// ScanRow runs a statement expected to return at most one row and scans
	// it into dest. Returns ErrNoRows if the row does not exist.
	ScanRow(ctx context.Context, stmt string, dest []any, args ...any) error

	// Query runs a statement and returns an iterator over its rows.
	Query(ctx context.Context, stmt string, args ...any) Iter
}

// Session adapts *gocql.Session to Querier.
type Session struct {
	s *gocql.Session
}

func NewSession(s *gocql.Session) *Session {
	return &Session{s: s}
}

func (s *Session) Exec(ctx context.Context, stmt string, args ...any) error {
	return s.s.Query(stmt, args...).WithContext(ctx).Exec()
}

func (s *Session) ScanRow(ctx context.Context, stmt string, dest []any, args ...any) error {
	return s.s.Query(stmt, args...).WithContext(ctx).Scan(dest...)
}

func (s *Session) Query(ctx context.Context, stmt string, args ...any) Iter {
	return s.s.Query(stmt, args...).WithContext(ctx).Iter()
}

// Close releases the underlying session.
func (s *Session) Close() {
	s.s.Close()
}
