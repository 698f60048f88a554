package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Record is one indexed contract.
type Record struct {
	ID          string
	Run         string
	Kind        string
	Name        string
	Upgradeable bool
	Footprint   []string
	Options     string // options document
	Source      string
}

// Query selects records for List and Count. Zero fields match everything.
type Query struct {
	Kind        string
	Upgradeable *bool
	Run         string
	Limit       int
}

const columns = "id, run, kind, name, upgradeable, footprint, options, source"

// Migrate creates the contracts table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	text := "TEXT"
	if s.dialect == MySQL {
		text = "LONGTEXT"
	}
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS contracts (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	run VARCHAR(36) NOT NULL,
	kind VARCHAR(32) NOT NULL,
	name VARCHAR(255) NOT NULL,
	upgradeable BOOLEAN NOT NULL,
	footprint %[1]s NOT NULL,
	options %[1]s NOT NULL,
	source %[1]s NOT NULL
)`, text)
	if err := s.exec(ctx, s.db, stmt); err != nil {
		return err
	}
	s.logger.Debug("corpus migrated", zap.String("dialect", s.dialect))
	return nil
}

// Put inserts r, replacing any record with the same id.
func (s *Store) Put(ctx context.Context, r Record) error {
	insert := "INSERT INTO contracts (" + columns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	switch s.dialect {
	case MySQL:
		insert += " ON DUPLICATE KEY UPDATE run = VALUES(run), kind = VALUES(kind), name = VALUES(name)," +
			" upgradeable = VALUES(upgradeable), footprint = VALUES(footprint), options = VALUES(options), source = VALUES(source)"
	default:
		insert += " ON CONFLICT (id) DO UPDATE SET run = excluded.run, kind = excluded.kind, name = excluded.name," +
			" upgradeable = excluded.upgradeable, footprint = excluded.footprint, options = excluded.options, source = excluded.source"
	}
	return s.exec(ctx, s.db, insert,
		r.ID, r.Run, r.Kind, r.Name, r.Upgradeable, strings.Join(r.Footprint, "\n"), r.Options, r.Source)
}

// Get returns the record with id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, s.rebind("SELECT "+columns+" FROM contracts WHERE id = ?"), id)
	r, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("corpus: get %s: %w", id, err)
	}
	return r, nil
}

// List returns the records matching q ordered by id.
func (s *Store) List(ctx context.Context, q Query) ([]*Record, error) {
	where, args := q.where()
	query := "SELECT " + columns + " FROM contracts" + where + " ORDER BY id"
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("corpus: list: %w", err)
	}
	defer rows.Close()
	var out []*Record
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("corpus: list: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("corpus: list: %w", err)
	}
	return out, nil
}

// Count returns the number of records matching q. Limit is ignored.
func (s *Store) Count(ctx context.Context, q Query) (int, error) {
	where, args := q.where()
	var n int
	if err := s.db.QueryRowContext(ctx, s.rebind("SELECT COUNT(*) FROM contracts"+where), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("corpus: count: %w", err)
	}
	return n, nil
}

func (q Query) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q.Kind != "" {
		conds, args = append(conds, "kind = ?"), append(args, q.Kind)
	}
	if q.Upgradeable != nil {
		conds, args = append(conds, "upgradeable = ?"), append(args, *q.Upgradeable)
	}
	if q.Run != "" {
		conds, args = append(conds, "run = ?"), append(args, q.Run)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(sc scanner) (*Record, error) {
	var (
		r         Record
		footprint string
	)
	if err := sc.Scan(&r.ID, &r.Run, &r.Kind, &r.Name, &r.Upgradeable, &footprint, &r.Options, &r.Source); err != nil {
		return nil, err
	}
	if footprint != "" {
		r.Footprint = strings.Split(footprint, "\n")
	}
	return &r, nil
}
