// Package stats computes hero and monster stats at a given build.
package stats

import (
	"math"

	"github.com/cquest/bagelbot/errs"
	"github.com/cquest/bagelbot/gamedata"
)

// MaxStars is the highest grade.
const MaxStars = 6

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Growth computes a level-scaled stat. Training multiplies the levelled
// value by 10% per point; bonus is added afterwards.
func Growth(initial, growth float64, level, training int, bonus float64) float64 {
	return (initial+growth*float64(level-1))*(1+float64(training)/10) + bonus
}

// Percent converts a ratio stat and its bonus to a rounded percentage.
func Percent(base, bonus float64) float64 {
	return Round1((base + bonus) * 100)
}

// ItemStat converts a flat berry or skin stat to display units: ratio
// stats become rounded percentages, the rest are rounded to one decimal.
func ItemStat(v float64, ratio bool) float64 {
	if ratio {
		return Percent(v, 0)
	}
	return Round1(v)
}

// CheckStars rejects grades outside 1..MaxStars.
func CheckStars(stars int) error {
	if stars < 1 || stars > MaxStars {
		return errs.Query("Invalid star level: %d.", stars)
	}
	return nil
}

// A Build is what the user asked for. Nil fields take their defaults.
type Build struct {
	Stars    *int
	Level    *int
	Training *int
	Berry    *bool
}

// Resolved is a complete, validated build.
type Resolved struct {
	Stars    int
	Level    int
	Training int
	Berry    bool
}

// MaxBuild is the fully levelled, fully trained, berried build for a grade.
func MaxBuild(stars int) Resolved {
	return Resolved{Stars: stars, Level: stars * 10, Training: stars - 1, Berry: true}
}

// Resolve fills in defaults for b, using native as the hero's grade, and
// then validates the result. Out-of-range values are QueryErrors.
func (b Build) Resolve(native int) (Resolved, error) {
	r := Resolved{Stars: native, Berry: true}
	if b.Stars != nil {
		r.Stars = *b.Stars
	}
	r.Level = r.Stars * 10
	if b.Level != nil {
		r.Level = *b.Level
	}
	r.Training = r.Stars - 1
	if b.Training != nil {
		r.Training = *b.Training
	}
	if b.Berry != nil {
		r.Berry = *b.Berry
	}

	if err := CheckStars(r.Stars); err != nil {
		return Resolved{}, err
	}
	if r.Level < 1 || r.Level > r.Stars*10 {
		return Resolved{}, errs.Query("Invalid level for %d☆ hero: %d", r.Stars, r.Level)
	}
	if r.Training < 0 || r.Training > r.Stars-1 {
		return Resolved{}, errs.Query("Invalid training for %d☆ hero: %d", r.Stars, r.Training)
	}
	return r, nil
}

// A Sheet is a full set of display stats. Ratio stats are percentages.
type Sheet struct {
	HA, HP, CC, Arm, Res, CD, Acc, Eva float64
}

// Hero computes the stats of a hero variant at build b. The berry bonus
// applies only when requested and the variant has one.
func Hero(s *gamedata.HeroStats, b Resolved) Sheet {
	var bonus gamedata.BerryBonus
	if b.Berry && s.Berry != nil {
		bonus = *s.Berry
	}
	growth := func(g gamedata.Growth, extra float64) float64 {
		return Round1(Growth(g.Initial, g.Growth, b.Level, b.Training, extra))
	}
	return Sheet{
		HA:  growth(s.HA(), bonus.HA),
		HP:  growth(s.HP(), bonus.HP),
		CC:  Percent(s.CC, bonus.CC),
		Arm: growth(s.Arm(), bonus.Arm),
		Res: growth(s.Res(), bonus.Res),
		CD:  Percent(s.CD, bonus.CD),
		Acc: Percent(s.Acc, bonus.Acc),
		Eva: Percent(s.Eva, bonus.Eva),
	}
}

// Berry returns what a berry bonus adds on its own.
func Berry(b *gamedata.BerryBonus) Sheet {
	if b == nil {
		return Sheet{}
	}
	return Sheet{
		HA:  Round1(b.HA),
		HP:  Round1(b.HP),
		CC:  Percent(b.CC, 0),
		Arm: Round1(b.Arm),
		Res: Round1(b.Res),
		CD:  Percent(b.CD, 0),
		Acc: Percent(b.Acc, 0),
		Eva: Percent(b.Eva, 0),
	}
}

// A MonsterSheet is a Sheet plus the stats only monsters have.
type MonsterSheet struct {
	Sheet
	ArmorPen        int
	ResistPen       int
	DamageReduction float64
}

// Monster computes a monster's stats at level. Monsters are never trained
// and carry no bonus.
func Monster(m *gamedata.Monster, level int) MonsterSheet {
	growth := func(g gamedata.Growth) float64 {
		return Round1(Growth(g.Initial, g.Growth, level, 0, 0))
	}
	return MonsterSheet{
		Sheet: Sheet{
			HA:  growth(m.HA()),
			HP:  growth(m.HP()),
			CC:  Percent(m.CC, 0),
			Arm: growth(m.Arm()),
			Res: growth(m.Res()),
			CD:  Percent(m.CD, 0),
			Acc: Percent(m.Acc, 0),
			Eva: Percent(m.Eva, 0),
		},
		ArmorPen:        int(math.Round(m.ArmorPen)),
		ResistPen:       int(math.Round(m.ResistPen)),
		DamageReduction: Percent(m.DamageReduction, 0),
	}
}
