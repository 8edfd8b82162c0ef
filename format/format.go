// Package format renders game data as single-line IRC replies.
//
// Every function returns one line with fields joined by " | ". Numbers
// arrive already rounded; game text is resolved through the repository,
// which flattens line breaks.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/stringnorm"
	"github.com/cquest/bagelbot/text"
)

// Sep separates reply fields.
const Sep = " | "

// Bold toggles IRC bold.
const Bold = "\x02"

// MaxFindNames is the most names a find reply lists.
const MaxFindNames = 50

var (
	className = stringnorm.Enum("CLA_")
	titleCase = stringnorm.Title
	// Faction codes map to text keys; the unaffiliated group has its own.
	factionKey = stringnorm.Combine(
		stringnorm.Exact("NONEGROUP", "TEXT_CHAMP_DOMAIN_NONEGROUP_NAME"),
		stringnorm.Func(func(code string) string { return "TEXT_CHAMPION_DOMAIN_" + code }),
	)
)

// Num formats a stat value with one decimal place.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Plain formats a number without trailing zeros.
func Plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rate formats a 0..1 rate as a whole percentage.
func Rate(v float64) string {
	return strconv.Itoa(int(v*100+1e-9)) + "%"
}

func join(fields ...string) string {
	return text.OneLine(strings.Join(fields, Sep))
}

func stars(n int) string {
	return strconv.Itoa(n) + "☆"
}

func starsPrefix(n int) string {
	if n <= 0 {
		return ""
	}
	return stars(n) + " "
}

// Class returns the display name of a hero class code.
func Class(code string) string {
	return stringnorm.NormalizeNoErr(className, code)
}

func faction(r *gamedata.Repository, h *gamedata.Hero) string {
	if h.Faction == "" {
		return "None"
	}
	return r.Text(stringnorm.NormalizeNoErr(factionKey, h.Faction))
}

func heroHeader(r *gamedata.Repository, h *gamedata.Hero) []string {
	return []string{
		r.HeroName(h),
		"Class - " + stars(h.Stars) + " " + Class(h.Class),
	}
}

// Hero describes a hero variant.
func Hero(r *gamedata.Repository, h *gamedata.Hero) string {
	return join(append(heroHeader(r, h),
		"Faction - "+faction(r, h),
		"How to get - "+strings.Join(h.HowToGet, ", "),
		"Gender - "+stringnorm.NormalizeNoErr(titleCase, strings.ToLower(h.Gender)),
		"Background - "+r.Text(h.DescKey),
	)...)
}

func skillText(r *gamedata.Repository, nameKey, descKey, missing string) string {
	name := r.Text(nameKey)
	if name == "" {
		return missing
	}
	return name + " - " + r.Text(descKey)
}

// Block describes a hero's block skill.
func Block(r *gamedata.Repository, h *gamedata.Hero) string {
	var nameKey, descKey string
	if h.Stats != nil {
		nameKey, descKey = h.Stats.BlockNameKey, h.Stats.BlockDescKey
	}
	return join(append(heroHeader(r, h),
		skillText(r, nameKey, descKey, "This hero has no block skill."))...)
}

// Passive describes a hero's passive skill.
func Passive(r *gamedata.Repository, h *gamedata.Hero) string {
	var nameKey, descKey string
	if h.Stats != nil {
		nameKey, descKey = h.Stats.PassiveNameKey, h.Stats.PassiveDescKey
	}
	return join(append(heroHeader(r, h),
		skillText(r, nameKey, descKey, "This hero has no passive."))...)
}

// HeroNotFound is the reply when no hero matches.
func HeroNotFound(query string, grade int) string {
	return fmt.Sprintf("No %shero's name matches \"%s\"!", starsPrefix(grade), query)
}

// ItemNotFound is the reply when no berry, bread or weapon matches; noun
// is the item kind.
func ItemNotFound(noun, query string, grade int) string {
	return fmt.Sprintf("No %s%s names match \"%s\"!", starsPrefix(grade), noun, query)
}

// SkillNotFound is the reply when no skill matches; level 0 means any.
func SkillNotFound(query string, level int) string {
	if level > 0 {
		return fmt.Sprintf("No skills match name \"%s\" and level %d!", query, level)
	}
	return fmt.Sprintf("No skills match name \"%s\"!", query)
}

// MonsterNotFound is the reply when no monster matches.
func MonsterNotFound(query string) string {
	return fmt.Sprintf("No monster's name matches \"%s\"!", query)
}

// SkinNotFound is the reply when no skin matches.
func SkinNotFound(query string) string {
	return fmt.Sprintf("No skin's name matches \"%s\"!", query)
}

// StageNotFound is the reply for a well-formed code with no stage.
func StageNotFound(code string) string {
	return fmt.Sprintf("No stage matches code \"%s\"!", code)
}

// TextNotFound is the reply when no text entry matches.
func TextNotFound(query string) string {
	return fmt.Sprintf("No matches found for \"%s\"!", query)
}

// FindNotFound is the reply when find has no results.
func FindNotFound(kind gamedata.Kind, query string) string {
	return fmt.Sprintf("No %s results found for \"%s\"", kind, query)
}

// WithSuggestions appends a did-you-mean hint to a not-found reply.
func WithSuggestions(reply string, names []string) string {
	if len(names) == 0 {
		return reply
	}
	return reply + " Did you mean: " + strings.Join(names, ", ") + "?"
}

// Find lists result names, without repeats, capped at MaxFindNames.
func Find(names []string) string {
	var unique []string
	seen := map[string]bool{}
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}
	count := len(unique)
	over := ""
	if count > MaxFindNames {
		unique = unique[:MaxFindNames]
		over = ", displaying first " + strconv.Itoa(MaxFindNames)
	}
	return text.OneLine(fmt.Sprintf("%s(%d %s found%s)%s - %s",
		Bold, count, text.Plural(count, "result"), over, Bold, strings.Join(unique, ", ")))
}

// Text shows the num'th (1-based) of the matching text entries. num is
// clamped to the number of matches.
func Text(num int, entries []gamedata.TextEntry) string {
	count := len(entries)
	if count == 0 {
		return ""
	}
	if num > count {
		num = count
	}
	if num < 1 {
		num = 1
	}
	e := entries[num-1]
	return text.OneLine(fmt.Sprintf("[%d/%d] %s - %s", num, count, e.ID, e.Content))
}
