package errs

import (
	"testing"

	"github.com/pkg/errors"
)

func TestAsQuery(t *testing.T) {
	qe := Query("Invalid level for %d☆ hero: %d", 6, 61)
	wrapped := errors.Wrap(qe, "stats")

	for _, err := range []error{qe, wrapped} {
		got, ok := AsQuery(err)
		if !ok {
			t.Errorf("AsQuery(%v) did not find the QueryError", err)
			continue
		}
		if got.Message != "Invalid level for 6☆ hero: 61" {
			t.Errorf("Message == %#v", got.Message)
		}
	}

	if IsQuery(errors.New("disk on fire")) {
		t.Errorf("plain error classified as QueryError")
	}
	if IsQuery(nil) {
		t.Errorf("nil classified as QueryError")
	}
}
