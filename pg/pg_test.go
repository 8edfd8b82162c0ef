package pg

import "testing"

var connStringTests = []struct {
	spec     ConnSpec
	expected string
}{
	{ConnSpec{}, "sslmode=disable"},
	{ConnSpec{Database: "bagel", User: "bot"}, "sslmode=disable dbname=bagel user=bot"},
	{ConnSpec{Database: "bagel", User: "bot", Password: "pw", Host: "db", Port: 5433, SSLMode: "require"},
		"sslmode=require dbname=bagel user=bot password=pw host=db port=5433"},
	{ConnSpec{Password: "ignored"}, "sslmode=disable"},
}

func TestConnectionString(t *testing.T) {
	for _, test := range connStringTests {
		actual := test.spec.ConnectionString()
		if actual != test.expected {
			t.Errorf("ConnectionString(%#v) == %#v, expected %#v", test.spec, actual, test.expected)
		}
	}
}

func TestBinder(t *testing.T) {
	pgb := NewBinder(Postgres)
	if v := pgb.Next(); v != "$1" {
		t.Errorf("postgres Next() == %#v, expected \"$1\"", v)
	}
	if v := pgb.Next(); v != "$2" {
		t.Errorf("postgres Next() == %#v, expected \"$2\"", v)
	}

	sb := NewBinder(SQLite)
	for i := 0; i < 2; i++ {
		if v := sb.Next(); v != "?" {
			t.Errorf("sqlite Next() == %#v, expected \"?\"", v)
		}
	}
}

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer db.Close()
	var one int
	if err := db.QueryRow("select 1").Scan(&one); err != nil || one != 1 {
		t.Errorf("select 1 == %d, %v", one, err)
	}
}
