// Package store supplies the raw game-data records the repository is
// built from. Records are opaque JSON objects grouped by kind; they come
// either from a directory of JSON files or from a SQL records table.
package store

import (
	"context"
	"encoding/json"
)

// A Kind names a logical record set.
type Kind string

// The record kinds.
const (
	Text       Kind = "text"
	Hero       Kind = "hero"
	HeroStat   Kind = "hero_stat"
	BerryBonus Kind = "berry_bonus"
	Berry      Kind = "berry"
	Bread      Kind = "bread"
	Weapon     Kind = "weapon"
	Skill      Kind = "skill"
	Monster    Kind = "monster"
	Skin       Kind = "skin"
	Stage      Kind = "stage"
)

// Kinds lists every record kind, in load order.
var Kinds = []Kind{Text, Hero, HeroStat, BerryBonus, Berry, Bread, Weapon,
	Skill, Monster, Skin, Stage}

// A Record is one raw JSON object.
type Record = json.RawMessage

// A Source provides records by kind, in a stable order. A kind with no
// records is not an error.
type Source interface {
	Records(ctx context.Context, kind Kind) ([]Record, error)
}
