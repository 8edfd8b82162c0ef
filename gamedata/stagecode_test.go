package gamedata

import "testing"

var stageCodeTests = []struct {
	code     string
	expected StageCode
	ok       bool
}{
	{"6-30h", StageCode{Chapter: 6, Stage: 30, Hard: true}, true},
	{"7-3-2n", StageCode{Chapter: 7, Sub: "3", Stage: 2}, true},
	{"7-3-2H", StageCode{Chapter: 7, Sub: "3", Stage: 2, Hard: true}, true},
	{"1-1", StageCode{Chapter: 1, Stage: 1}, true},
	{" 2-10n ", StageCode{Chapter: 2, Stage: 10}, true},
	{"7-3n", StageCode{}, false},
	{"6-3-2h", StageCode{}, false},
	{"6-x", StageCode{}, false},
	{"6-30x", StageCode{}, false},
	{"", StageCode{}, false},
}

func TestParseStageCode(t *testing.T) {
	for _, test := range stageCodeTests {
		actual, err := ParseStageCode(test.code)
		if (err == nil) != test.ok {
			t.Errorf("ParseStageCode(%#v) error = %v, expected ok=%v", test.code, err, test.ok)
			continue
		}
		if actual != test.expected {
			t.Errorf("ParseStageCode(%#v) == %#v, expected %#v", test.code, actual, test.expected)
		}
	}
}

func TestStageCodeString(t *testing.T) {
	for _, code := range []string{"6-30h", "7-3-2n", "1-1n"} {
		sc, err := ParseStageCode(code)
		if err != nil {
			t.Errorf("ParseStageCode(%#v) failed: %v", code, err)
			continue
		}
		if sc.String() != code {
			t.Errorf("StageCode(%#v).String() == %#v", code, sc.String())
		}
	}
}
