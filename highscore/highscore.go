// Package highscore ranks heroes by the best value they can reach in a
// stat.
//
// Each distinct hero name is represented by its highest-grade variant
// that has stats. Raw keys rank the fully built hero, berries included;
// berry_ keys rank only what the hero's best berries add.
package highscore

import (
	"sort"
	"strings"

	"github.com/cquest/bagelbot/errs"
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/stats"
)

// TopN is the length of a ranking.
const TopN = 10

// A Key is a rankable stat.
type Key string

// The rankable stats.
const (
	HA       Key = "ha"
	HP       Key = "hp"
	CC       Key = "cc"
	Arm      Key = "arm"
	Res      Key = "res"
	CD       Key = "cd"
	Acc      Key = "acc"
	Eva      Key = "eva"
	BerryHA  Key = "berry_ha"
	BerryHP  Key = "berry_hp"
	BerryCC  Key = "berry_cc"
	BerryArm Key = "berry_arm"
	BerryRes Key = "berry_res"
	BerryCD  Key = "berry_cd"
	BerryAcc Key = "berry_acc"
	BerryEva Key = "berry_eva"
)

// Keys lists every key in display order.
var Keys = []Key{HA, HP, CC, Arm, Res, CD, Acc, Eva,
	BerryHA, BerryHP, BerryCC, BerryArm, BerryRes, BerryCD, BerryAcc, BerryEva}

var keyLabels = map[Key]string{
	HA: "Atk Power", HP: "HP", CC: "Crit Chance", Arm: "Armor",
	Res: "Resistance", CD: "Crit Dmg", Acc: "Accuracy", Eva: "Evasion",
}

// Classes lists the hero classes a ranking can be restricted to.
var Classes = []string{"warrior", "paladin", "archer", "hunter", "wizard", "priest"}

// Berry returns true for keys that rank the berry bonus alone.
func (k Key) Berry() bool {
	return strings.HasPrefix(string(k), "berry_")
}

func (k Key) base() Key {
	return Key(strings.TrimPrefix(string(k), "berry_"))
}

// Label returns the display name of the key.
func (k Key) Label() string {
	if k.Berry() {
		return "Berry " + keyLabels[k.base()]
	}
	return keyLabels[k]
}

// Percent returns true if the key's values are percentages.
func (k Key) Percent() bool {
	switch k.base() {
	case CC, CD, Acc, Eva:
		return true
	}
	return false
}

func (k Key) value(s stats.Sheet) float64 {
	switch k.base() {
	case HA:
		return s.HA
	case HP:
		return s.HP
	case CC:
		return s.CC
	case Arm:
		return s.Arm
	case Res:
		return s.Res
	case CD:
		return s.CD
	case Acc:
		return s.Acc
	case Eva:
		return s.Eva
	}
	return 0
}

func keyNames() string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// ParseKey parses a stat name. "berryha" is accepted for "berry_ha".
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(lower, "berry") && !strings.HasPrefix(lower, "berry_") {
		lower = "berry_" + strings.TrimPrefix(lower, "berry")
	}
	for _, k := range Keys {
		if string(k) == lower {
			return k, nil
		}
	}
	return "", errs.Query("Invalid stat: %s. Valid stats: %s", name, keyNames())
}

// ParseClass validates a class name, returning it lower-cased.
func ParseClass(name string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Classes {
		if c == lower {
			return c, nil
		}
	}
	return "", errs.Query("Invalid class: %s. Valid classes: %s", name, strings.Join(Classes, ", "))
}

// An Entry is one hero's place in a ranking.
type Entry struct {
	Hero  *gamedata.Hero
	Name  string
	Value float64
}

// A Best entry is the top hero for one key.
type Best struct {
	Key Key
	Entry
}

type candidate struct {
	hero  *gamedata.Hero
	name  string
	full  stats.Sheet
	berry stats.Sheet
}

// A Board holds the precomputed candidates of a repository.
type Board struct {
	cands []candidate
}

// New computes the candidates of repo.
func New(repo *gamedata.Repository) *Board {
	best := map[string]int{}
	var cands []candidate
	for _, h := range repo.Heroes {
		if h.Stats == nil {
			continue
		}
		name := repo.HeroName(h)
		c := candidate{
			hero:  h,
			name:  name,
			full:  stats.Hero(h.Stats, stats.MaxBuild(h.Stars)),
			berry: stats.Berry(h.Stats.Berry),
		}
		if i, seen := best[name]; seen {
			if h.Stars > cands[i].hero.Stars {
				cands[i] = c
			}
			continue
		}
		best[name] = len(cands)
		cands = append(cands, c)
	}
	return &Board{cands: cands}
}

// Len returns the number of candidate heroes.
func (b *Board) Len() int {
	return len(b.cands)
}

func (b *Board) ranking(key Key, class string) []Entry {
	var res []Entry
	for _, c := range b.cands {
		if class != "" && !c.hero.HasClass(class) {
			continue
		}
		sheet := c.full
		if key.Berry() {
			sheet = c.berry
		}
		res = append(res, Entry{Hero: c.hero, Name: c.name, Value: key.value(sheet)})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Value > res[j].Value })
	return res
}

// Top returns the best TopN heroes for key, restricted to class unless
// class is "". An empty result is not an error.
func (b *Board) Top(key Key, class string) []Entry {
	res := b.ranking(key, class)
	if len(res) > TopN {
		res = res[:TopN]
	}
	return res
}

// Overview returns the best hero for every key, in Keys order.
func (b *Board) Overview() []Best {
	var res []Best
	for _, k := range Keys {
		if top := b.ranking(k, ""); len(top) > 0 {
			res = append(res, Best{Key: k, Entry: top[0]})
		}
	}
	return res
}
