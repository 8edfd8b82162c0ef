package conv

import (
	"reflect"
	"testing"
)

func TestIStringSlice(t *testing.T) {
	var tests = []struct {
		in       interface{}
		expected []string
	}{
		{nil, nil},
		{[]interface{}{"a", 2, true}, []string{"a", "2", "true"}},
		{"lone", []string{"lone"}},
	}
	for _, test := range tests {
		if actual := IStringSlice(test.in); !reflect.DeepEqual(actual, test.expected) {
			t.Errorf("IStringSlice(%#v) == %#v, expected %#v", test.in, actual, test.expected)
		}
	}
}

func TestIStringSliceMap(t *testing.T) {
	in := map[interface{}]interface{}{
		"monstats": []interface{}{"monsterstats", "mstats"},
		"hero":     "h",
	}
	expected := map[string][]string{
		"monstats": {"monsterstats", "mstats"},
		"hero":     {"h"},
	}
	if actual := IStringSliceMap(in); !reflect.DeepEqual(actual, expected) {
		t.Errorf("IStringSliceMap == %#v, expected %#v", actual, expected)
	}
}
