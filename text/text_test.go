package text

import "testing"

var oneLineTests = []struct {
	text     string
	expected string
}{
	{"plain", "plain"},
	{"two\nlines", "two lines"},
	{"crlf\r\nbreak", "crlf break"},
	{"a\n\nb", "a  b"},
}

func TestOneLine(t *testing.T) {
	for _, test := range oneLineTests {
		if actual := OneLine(test.text); actual != test.expected {
			t.Errorf("OneLine(%#v) == %#v, expected %#v",
				test.text, actual, test.expected)
		}
	}
}

func TestIsInt(t *testing.T) {
	for _, test := range []struct {
		word     string
		expected bool
	}{
		{"6", true},
		{"-2", true},
		{"06", false},
		{"6h", false},
		{"", false},
		{"3.5", false},
	} {
		if actual := IsInt(test.word); actual != test.expected {
			t.Errorf("IsInt(%#v) == %t, expected %t",
				test.word, actual, test.expected)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	if actual := NormalizeSpace("  el   thalnos \t"); actual != "el thalnos" {
		t.Errorf("NormalizeSpace == %#v, expected %#v", actual, "el thalnos")
	}
}

func TestFirstNotEmpty(t *testing.T) {
	if actual := FirstNotEmpty("", "", "x", "y"); actual != "x" {
		t.Errorf("FirstNotEmpty == %#v, expected \"x\"", actual)
	}
	if actual := FirstNotEmpty(); actual != "" {
		t.Errorf("FirstNotEmpty() == %#v, expected \"\"", actual)
	}
}

func TestPlural(t *testing.T) {
	if Plural(1, "result") != "result" || Plural(3, "result") != "results" {
		t.Errorf("Plural gave %#v / %#v", Plural(1, "result"), Plural(3, "result"))
	}
}
