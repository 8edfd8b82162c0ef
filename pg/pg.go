// Package pg opens the SQL databases the record store can live in.
package pg

import (
	"database/sql"
	"strconv"

	_ "github.com/lib/pq" // postgres driver
	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // sqlite driver
)

// DB is an open database handle that knows its dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Binder returns a bind variable generator for the database's dialect.
func (d DB) Binder() *Binder {
	return NewBinder(d.Dialect)
}

// ConnSpec describes a postgres connection.
type ConnSpec struct {
	User, Password string
	Database       string
	Host           string
	Port           int
	SSLMode        string
}

func (c ConnSpec) DBHost() string {
	if c.Host == "" {
		return "localhost"
	}
	return c.Host
}

func (c ConnSpec) GetSSLMode() string {
	if c.SSLMode == "" {
		return "disable"
	}
	return c.SSLMode
}

func (c ConnSpec) ConnectionString() string {
	connstr := "sslmode=" + c.GetSSLMode()
	if c.Database != "" {
		connstr += " dbname=" + c.Database
	}
	if c.User != "" {
		connstr += " user=" + c.User
		if c.Password != "" {
			connstr += " password=" + c.Password
		}
	}
	if c.Host != "" {
		connstr += " host=" + c.Host
	}
	if c.Port > 0 {
		connstr += " port=" + strconv.Itoa(c.Port)
	}
	return connstr
}

// Open connects to postgres. The connection is not verified until first
// use.
func (c ConnSpec) Open() (DB, error) {
	dbh, err := sql.Open(string(Postgres), c.ConnectionString())
	if err != nil {
		return DB{}, errors.Wrapf(err, "connect db=%s", c.Database)
	}
	return DB{DB: dbh, Dialect: Postgres}, nil
}

// OpenSQLite opens the sqlite database at path; ":memory:" gives a
// private in-memory database.
func OpenSQLite(path string) (DB, error) {
	dbh, err := sql.Open(string(SQLite), path)
	if err != nil {
		return DB{}, errors.Wrapf(err, "open sqlite %s", path)
	}
	// A single connection keeps an in-memory database alive and avoids
	// SQLITE_BUSY between writers.
	dbh.SetMaxOpenConns(1)
	dbh.SetMaxIdleConns(1)
	dbh.SetConnMaxLifetime(0)
	return DB{DB: dbh, Dialect: SQLite}, nil
}
