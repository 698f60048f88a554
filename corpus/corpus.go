// Package corpus indexes generated contracts in a SQL database so that a
// regression corpus can be queried across runs.
//
// Supported dialects:
//
//	corpus.SQLite   = "sqlite"   (modernc.org/sqlite)
//	corpus.MySQL    = "mysql"    (github.com/go-sql-driver/mysql)
//	corpus.Postgres = "postgres" (github.com/lib/pq)
package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Dialects.
const (
	SQLite   = "sqlite"
	MySQL    = "mysql"
	Postgres = "postgres"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("corpus: contract not found")

// ExecQuerier wraps the standard Exec and Query methods.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a corpus index backed by a SQL database.
type Store struct {
	db      *sql.DB
	dialect string
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs statements at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open opens a store. The DSN format is the one of the dialect's driver.
func Open(dialect, dsn string, opts ...Option) (*Store, error) {
	if err := checkDialect(dialect); err != nil {
		return nil, err
	}
	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", dialect, err)
	}
	if dialect == SQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}
	return OpenDB(dialect, db, opts...), nil
}

// ParseDSN splits a "dialect:dsn" string such as "sqlite:corpus.db" or
// "postgres:postgres://localhost/corpus".
func ParseDSN(s string) (dialect, dsn string, err error) {
	dialect, dsn, ok := strings.Cut(s, ":")
	if !ok || dsn == "" {
		return "", "", fmt.Errorf("corpus: malformed index %q, want dialect:dsn", s)
	}
	if err := checkDialect(dialect); err != nil {
		return "", "", err
	}
	return dialect, dsn, nil
}

func checkDialect(dialect string) error {
	switch dialect {
	case SQLite, MySQL, Postgres:
		return nil
	default:
		return fmt.Errorf("corpus: unsupported dialect %q; use sqlite, mysql, or postgres", dialect)
	}
}

// OpenDB wraps an open database.
func OpenDB(dialect string, db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, dialect: dialect, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB returns the underlying *sql.DB instance.
func (s *Store) DB() *sql.DB { return s.db }

// Dialect returns the dialect of the store.
func (s *Store) Dialect() string { return s.dialect }

// Close closes the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

// rebind rewrites ? placeholders to the dialect's bind variables.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var (
		b strings.Builder
		n int
	)
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(ctx context.Context, conn ExecQuerier, query string, args ...any) error {
	query = s.rebind(query)
	s.logger.Debug("exec", zap.String("query", query))
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}
	return nil
}
