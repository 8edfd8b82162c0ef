package format

import (
	"strconv"
	"strings"

	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/stats"
	"github.com/cquest/bagelbot/stringnorm"
)

// Berry describes a berry.
func Berry(r *gamedata.Repository, b *gamedata.BerryItem) string {
	return join(
		r.BerryName(b),
		stars(b.Stars)+" Berry",
		"Stat - "+berryStat(r, b),
		"Great - "+Rate(b.GreatRate),
		"Eat Price - "+strconv.Itoa(b.EatPrice),
		"Sell Price - "+strconv.Itoa(b.SellPrice),
	)
}

func berryStat(r *gamedata.Repository, b *gamedata.BerryItem) string {
	name := r.Text(b.StatTypeNameKey)
	switch {
	case b.StatType == "Great":
		return "None"
	case b.StatType == "All" || strings.Contains(b.StatType, "Ratio"):
		return Rate(b.StatValue) + " " + name
	default:
		return Num(stats.ItemStat(b.StatValue, percentStat[b.StatType])) + " " + name
	}
}

// Bread describes a bread.
func Bread(r *gamedata.Repository, b *gamedata.BreadItem) string {
	return join(
		r.BreadName(b),
		stars(b.Stars)+" Bread",
		"Training - "+strconv.Itoa(b.Training),
		"Great - "+Rate(b.GreatRate),
		"Sell Price - "+strconv.Itoa(b.SellPrice),
	)
}

func titled(codes []string) []string {
	res := make([]string, len(codes))
	for i, c := range codes {
		res[i] = stringnorm.NormalizeNoErr(titleCase, strings.ToLower(c))
	}
	return res
}

// Weapon describes a weapon. Bound To and Ability are left out when the
// weapon has no bound heroes or no ability text.
func Weapon(r *gamedata.Repository, w *gamedata.WeaponItem) string {
	fields := []string{
		r.WeaponName(w),
		stars(w.Stars) + " " + strings.Join(titled([]string{w.Class}), ""),
		"Slots - " + strings.Join(titled(w.Slots), ", "),
		"Atk Power - " + Plain(w.AttackPower),
		"Atk Speed - " + Plain(w.AttackSpeed),
		"How to Get - " + strings.Join(w.HowToGet, ", "),
	}
	if bound := r.BoundHeroNames(w); len(bound) > 0 {
		fields = append(fields, "Bound To - "+strings.Join(bound, ", "))
	}
	if ability := r.Text(w.DescKey); ability != "" {
		fields = append(fields, "Ability - "+ability)
	}
	return join(fields...)
}

// Skill describes one level of a skill.
func Skill(r *gamedata.Repository, s *gamedata.SkillLevel) string {
	costs := make([]string, len(s.Costs))
	for i, c := range s.Costs {
		costs[i] = strconv.Itoa(c.Amount) + " " +
			stringnorm.NormalizeNoErr(titleCase, strings.ToLower(c.Type))
	}
	cost := strings.Join(costs, ", ")
	if cost == "" {
		cost = "None"
	}
	return join(
		r.SkillName(s)+" Lvl "+strconv.Itoa(s.Level),
		"Great - "+Rate(s.GreatRate),
		"Cost - "+cost,
		"Description - "+r.Text(s.DescKey),
	)
}

// Skin describes a costume.
func Skin(r *gamedata.Repository, s *gamedata.SkinItem) string {
	statText := make([]string, len(s.Stats))
	for i, st := range s.Stats {
		statText[i] = skinStat(st)
	}
	stats := strings.Join(statText, ", ")
	if stats == "" {
		stats = "None"
	}
	return join(
		r.SkinName(s),
		"Sell Price - "+strconv.Itoa(s.SellPrice)+" Gold",
		"Stats - "+stats,
	)
}

var statLabels = map[string]string{
	"AttackPower":    "Atk Power",
	"HP":             "HP",
	"Armor":          "Armor",
	"Resistance":     "Resistance",
	"CriticalChance": "Crit Chance",
	"CriticalDamage": "Crit Dmg",
	"Accuracy":       "Accuracy",
	"Dodge":          "Evasion",
}

var percentStat = map[string]bool{
	"Accuracy":       true,
	"CriticalDamage": true,
	"CriticalChance": true,
	"Dodge":          true,
}

func skinStat(st gamedata.SkinStat) string {
	label, ok := statLabels[st.Stat]
	if !ok {
		label = st.Stat
	}
	return Num(stats.ItemStat(st.Value, percentStat[st.Stat])) + " " + label
}

func starRange(lo, hi int) string {
	return strconv.Itoa(lo) + "~" + strconv.Itoa(hi) + "☆"
}

// Stage describes a stage: its cost, drops and enemies.
func Stage(r *gamedata.Repository, s *gamedata.Stage) string {
	bread := "None"
	if s.MinBreadStars > 0 {
		bread = starRange(s.MinBreadStars, s.MaxBreadStars)
	}
	weapons := "None"
	if s.WeaponTypes != "" {
		weapons = starRange(s.MinWeaponStars, s.MaxWeaponStars) + " " + s.WeaponTypes
	}
	var enemies []string
	for _, w := range s.Waves {
		if w.Monster == nil {
			continue
		}
		enemies = append(enemies, "Lvl "+strconv.Itoa(w.Level)+" "+r.MonsterName(w.Monster))
	}
	enemyText := strings.Join(enemies, ", ")
	if enemyText == "" {
		enemyText = "None"
	}
	return join(
		r.StageName(s),
		"Cost - "+strconv.Itoa(s.MeatCost)+" meat",
		"Dropped Bread - "+bread,
		"Dropped Weapons - "+weapons,
		"Enemies - "+enemyText,
	)
}
