package gamedata

import "testing"

func TestTexts(t *testing.T) {
	texts := NewTexts([]TextEntry{
		{"A", "alpha"},
		{"B", "beta"},
		{"A", "aleph"},
	})
	if texts.Len() != 2 {
		t.Errorf("Len() == %d, expected 2", texts.Len())
	}
	if texts.Resolve("A") != "aleph" {
		t.Errorf("Resolve(A) == %#v, expected aleph", texts.Resolve("A"))
	}
	if texts.Entries()[0].ID != "A" {
		t.Errorf("duplicate id moved: %#v", texts.Entries())
	}
	if texts.Resolve("C") != "" {
		t.Errorf("Resolve(C) == %#v, expected \"\"", texts.Resolve("C"))
	}

	var none *Texts
	if none.Resolve("A") != "" || none.Len() != 0 {
		t.Errorf("nil Texts should resolve nothing")
	}
}
