package pg

import "strconv"

// A Dialect is a SQL flavour the record store can talk to.
type Dialect string

// Supported dialects; the values are also the database/sql driver names.
const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Binder tracks a query bind variable.
type Binder struct {
	dialect Dialect
	n       int
}

// Next gets the bind variable string for the current bind variable, and
// increments the binder. Postgres uses "$1", "$2" etc.; sqlite uses "?".
func (p *Binder) Next() string {
	nv := "?"
	if p.dialect == Postgres {
		nv = "$" + strconv.Itoa(p.n)
	}
	p.n++
	return nv
}

// NewBinder creates a bind variable generator for the dialect, initialized
// to 1.
func NewBinder(dialect Dialect) *Binder {
	return &Binder{dialect: dialect, n: 1}
}
