package store

import (
	"context"
	"database/sql"
	"embed"

	"github.com/cquest/bagelbot/pg"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQL is a Source backed by the records table.
type SQL struct {
	DB pg.DB
}

// NewSQL creates a SQL source on db.
func NewSQL(db pg.DB) *SQL {
	return &SQL{DB: db}
}

func gooseDialect(d pg.Dialect) string {
	if d == pg.SQLite {
		return "sqlite3"
	}
	return string(d)
}

// Migrate brings the database schema up to date.
func Migrate(ctx context.Context, db pg.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(gooseDialect(db.Dialect)); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}

// Records reads the records of kind in sequence order.
func (s *SQL) Records(ctx context.Context, kind Kind) ([]Record, error) {
	b := s.DB.Binder()
	rows, err := s.DB.QueryContext(ctx,
		`select body from records where kind = `+b.Next()+` order by seq`,
		string(kind))
	if err != nil {
		return nil, errors.Wrapf(err, "select records kind=%s", kind)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, errors.Wrapf(err, "scan records kind=%s", kind)
		}
		recs = append(recs, Record(body))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "records kind=%s", kind)
	}
	return recs, nil
}

// Count returns the number of stored records of kind.
func (s *SQL) Count(ctx context.Context, kind Kind) (int, error) {
	b := s.DB.Binder()
	var n int
	err := s.DB.QueryRowContext(ctx,
		`select count(*) from records where kind = `+b.Next(),
		string(kind)).Scan(&n)
	return n, errors.Wrapf(err, "count records kind=%s", kind)
}

// Import replaces every kind's records with those in src, in a single
// transaction. It returns the number of records written per kind.
func (s *SQL) Import(ctx context.Context, src Source) (map[Kind]int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin import")
	}
	counts := map[Kind]int{}
	for _, kind := range Kinds {
		n, err := s.importKind(ctx, tx, src, kind)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		counts[kind] = n
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit import")
	}
	return counts, nil
}

func (s *SQL) importKind(ctx context.Context, tx *sql.Tx, src Source, kind Kind) (int, error) {
	recs, err := src.Records(ctx, kind)
	if err != nil {
		return 0, err
	}

	b := s.DB.Binder()
	if _, err := tx.ExecContext(ctx,
		`delete from records where kind = `+b.Next(), string(kind)); err != nil {
		return 0, errors.Wrapf(err, "clear records kind=%s", kind)
	}

	b = s.DB.Binder()
	insert, err := tx.PrepareContext(ctx,
		`insert into records (kind, seq, body) values (`+
			b.Next()+`, `+b.Next()+`, `+b.Next()+`)`)
	if err != nil {
		return 0, errors.Wrap(err, "prepare insert")
	}
	defer insert.Close()

	for i, rec := range recs {
		if _, err := insert.ExecContext(ctx, string(kind), i, string(rec)); err != nil {
			return 0, errors.Wrapf(err, "insert %s #%d", kind, i)
		}
	}
	return len(recs), nil
}
