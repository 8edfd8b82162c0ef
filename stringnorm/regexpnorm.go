package stringnorm

import (
	"regexp"
)

// A RegexpNormalizer applies a regexp search+replace to text.
type RegexpNormalizer struct {
	Regexp      *regexp.Regexp
	Replacement string
}

// Reg returns a Normalizer given a regexp to search for and a replacement
// string.
func Reg(regexp *regexp.Regexp, replacement string) Normalizer {
	return &RegexpNormalizer{Regexp: regexp, Replacement: replacement}
}

// SR returns a regexp Normalizer for re, with the replacement string.
// Panics if re is not a valid regexp.
func SR(re, replacement string) Normalizer {
	return Reg(regexp.MustCompile(re), replacement)
}

// Normalize applies a regexp search+replace to text, searching for r.Regexp
// and replacing any matches with r.Replacement.
func (r *RegexpNormalizer) Normalize(text string) (string, error) {
	return r.Regexp.ReplaceAllString(text, r.Replacement), nil
}
