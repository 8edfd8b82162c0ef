package stringnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title title-cases text ("WARRIOR" -> "Warrior", "long sword" ->
// "Long Sword").
var Title Normalizer = Func(func(text string) string {
	return cases.Title(language.English).String(text)
})

// Enum turns a game enum code into display text: the given prefix is
// stripped, underscores become spaces and the result is title-cased, so
// Enum("CLA_")("CLA_WARRIOR") is "Warrior".
func Enum(prefix string) Normalizer {
	return Combine(
		Func(func(text string) string { return strings.TrimPrefix(text, prefix) }),
		SR(`_+`, " "),
		Title,
	)
}
