// Package text has small string helpers shared by the formatter, the
// command parser and the CLI.
package text

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Str converts any to a string, treating nil as "".
func Str(any interface{}) string {
	if any == nil {
		return ""
	}
	switch t := any.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

var rSpaceRegexp = regexp.MustCompile(`\s+`)

// NormalizeSpace trims text and collapses internal runs of whitespace to a
// single space.
func NormalizeSpace(text string) string {
	return rSpaceRegexp.ReplaceAllLiteralString(strings.TrimSpace(text), " ")
}

var rLineBreak = regexp.MustCompile(`\r?\n|\r`)

// OneLine replaces every line break in text with a space. IRC messages are
// single lines, so every piece of game text goes through this before it is
// sent.
func OneLine(text string) string {
	return rLineBreak.ReplaceAllLiteralString(text, " ")
}

// FirstNotEmpty returns the first non-empty string in choices.
func FirstNotEmpty(choices ...string) string {
	for _, val := range choices {
		if val != "" {
			return val
		}
	}
	return ""
}

// ParseInt parses the integer from the text; in case of error,
// returns the default value.
func ParseInt(text string, defval int) int {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return defval
	}
	return int(v)
}

// EnvInt parses the integer value of the environment variable env, or
// returns defval if the variable is unset or not a number.
func EnvInt(env string, defval int) int {
	return ParseInt(os.Getenv(env), defval)
}

// IsInt returns true if word is the canonical decimal form of an integer:
// "12" and "-3" qualify, "012", "+3" and "3.0" do not.
func IsInt(word string) bool {
	v, err := strconv.Atoi(word)
	return err == nil && strconv.Itoa(v) == word
}

// Plural returns singular when n == 1 and singular+"s" otherwise.
func Plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
