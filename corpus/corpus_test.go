package corpus

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/solgen/compiler/gen"
	"github.com/syssam/solgen/kind/common"
)

func openSQLite(t *testing.T) *Store {
	t.Helper()
	s, err := Open(SQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestParseDSN(t *testing.T) {
	tests := []struct {
		in      string
		dialect string
		dsn     string
		wantErr bool
	}{
		{"sqlite:corpus.db", SQLite, "corpus.db", false},
		{"postgres:postgres://localhost/corpus?sslmode=disable", Postgres, "postgres://localhost/corpus?sslmode=disable", false},
		{"mysql:root@tcp(localhost:3306)/corpus", MySQL, "root@tcp(localhost:3306)/corpus", false},
		{"oracle:db", "", "", true},
		{"corpus.db", "", "", true},
		{"sqlite:", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dialect, dsn, err := ParseDSN(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open("oracle", "x")
	assert.ErrorContains(t, err, "unsupported dialect")
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	cfg := gen.MustNewConfig(gen.WithKinds(gen.KindCustom))
	sources, err := gen.Collect(gen.GenerateSources(cfg))
	require.NoError(t, err)
	for _, src := range sources {
		r, err := FromSource("run-1", src)
		require.NoError(t, err)
		require.NoError(t, s.Put(ctx, r))
	}

	t.Run("count", func(t *testing.T) {
		n, err := s.Count(ctx, Query{})
		require.NoError(t, err)
		assert.Equal(t, 36, n)

		n, err = s.Count(ctx, Query{Kind: "Custom", Upgradeable: common.Ptr(false)})
		require.NoError(t, err)
		assert.Equal(t, 12, n)

		n, err = s.Count(ctx, Query{Kind: "ERC20"})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("get round trip", func(t *testing.T) {
		want := sources[0]
		r, err := s.Get(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want.ID, r.ID)
		assert.Equal(t, "run-1", r.Run)
		assert.Equal(t, "Custom", r.Kind)
		assert.Equal(t, "MyContract", r.Name)
		assert.Equal(t, want.Contract.Upgradeable, r.Upgradeable)
		assert.Equal(t, want.Contract.Footprint(), r.Footprint)
		assert.Equal(t, want.Source, r.Source)

		o, err := gen.ParseOptions([]byte(r.Options))
		require.NoError(t, err)
		assert.Equal(t, want.Options, o)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put replaces", func(t *testing.T) {
		r, err := FromSource("run-2", sources[1])
		require.NoError(t, err)
		require.NoError(t, s.Put(ctx, r))
		n, err := s.Count(ctx, Query{})
		require.NoError(t, err)
		assert.Equal(t, 36, n)
		got, err := s.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "run-2", got.Run)
	})

	t.Run("list", func(t *testing.T) {
		records, err := s.List(ctx, Query{Upgradeable: common.Ptr(true), Limit: 5})
		require.NoError(t, err)
		require.Len(t, records, 5)
		for i, r := range records {
			assert.True(t, r.Upgradeable)
			if i > 0 {
				assert.Less(t, records[i-1].ID, r.ID)
			}
		}
		records, err = s.List(ctx, Query{Run: "run-2"})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestPostgresStatements(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	s := OpenDB(Postgres, db)
	defer s.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS contracts")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, s.Migrate(ctx))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contracts (id, run, kind, name, upgradeable, footprint, options, source) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (id) DO UPDATE")).
		WithArgs("abc", "run", "ERC20", "MyToken", true, "a.sol\nb.sol", "kind: ERC20\n", "src").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Put(ctx, Record{
		ID: "abc", Run: "run", Kind: "ERC20", Name: "MyToken", Upgradeable: true,
		Footprint: []string{"a.sol", "b.sol"}, Options: "kind: ERC20\n", Source: "src",
	}))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contracts WHERE kind = $1 AND run = $2")).
		WithArgs("ERC20", "run").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	n, err := s.Count(ctx, Query{Kind: "ERC20", Run: "run"})
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, run, kind, name, upgradeable, footprint, options, source FROM contracts WHERE id = $1")).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "run", "kind", "name", "upgradeable", "footprint", "options", "source"}).
			AddRow("abc", "run", "ERC20", "MyToken", true, "a.sol\nb.sol", "kind: ERC20\n", "src"))
	r, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.sol", "b.sol"}, r.Footprint)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	s := OpenDB(MySQL, db)
	defer s.Close()

	mock.ExpectExec(regexp.QuoteMeta("VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON DUPLICATE KEY UPDATE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Put(context.Background(), Record{ID: "abc"}))

	mock.ExpectExec(regexp.QuoteMeta("source LONGTEXT NOT NULL")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
