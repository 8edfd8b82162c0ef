package gamedata

import (
	"strings"

	"github.com/cquest/bagelbot/errs"
)

// A Kind is a user-searchable entity type, as named in "find <type> <query>".
type Kind int

// The searchable kinds, in the order they are listed to users.
const (
	KindBerry Kind = iota
	KindBread
	KindHero
	KindMonster
	KindSkill
	KindSkin
	KindWeapon
)

// Kinds lists every Kind.
var Kinds = []Kind{KindBerry, KindBread, KindHero, KindMonster, KindSkill, KindSkin, KindWeapon}

var kindNames = [...]string{
	KindBerry:   "berry",
	KindBread:   "bread",
	KindHero:    "hero",
	KindMonster: "monster",
	KindSkill:   "skill",
	KindSkin:    "skin",
	KindWeapon:  "weapon",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindNames returns the user-facing names of all kinds.
func KindNames() []string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = k.String()
	}
	return names
}

// ParseKind maps a user-supplied type word to a Kind. Unknown words are a
// QueryError listing the available types.
func ParseKind(word string) (Kind, error) {
	lower := strings.ToLower(strings.TrimSpace(word))
	for _, k := range Kinds {
		if k.String() == lower {
			return k, nil
		}
	}
	return 0, errs.Query("Unknown type: %s | Available types - %s",
		word, strings.Join(KindNames(), ", "))
}
