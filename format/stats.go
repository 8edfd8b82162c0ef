package format

import (
	"strconv"

	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/highscore"
	"github.com/cquest/bagelbot/stats"
)

func sheetFields(s stats.Sheet) []string {
	return []string{
		Num(s.HA) + " Atk Power",
		Num(s.HP) + " HP",
		Num(s.CC) + " Crit Chance",
		Num(s.Arm) + " Armor",
		Num(s.Res) + " Resistance",
		Num(s.CD) + " Crit Dmg",
		Num(s.Acc) + " Accuracy",
		Num(s.Eva) + " Evasion",
	}
}

// Stats shows a hero's stats at build b. Berry use is only mentioned for
// 6☆ heroes, the only grade that eats berries.
func Stats(r *gamedata.Repository, h *gamedata.Hero, b stats.Resolved, s stats.Sheet) string {
	berry := ""
	if b.Stars == stats.MaxStars {
		if b.Berry {
			berry = " with berries"
		} else {
			berry = " without berries"
		}
	}
	head := "Lvl " + strconv.Itoa(b.Level) + " " + r.HeroName(h) + " +" + strconv.Itoa(b.Training) + berry
	return join(append([]string{head}, sheetFields(s)...)...)
}

// BerryStats shows the most a 6☆ hero can gain from berries.
func BerryStats(r *gamedata.Repository, h *gamedata.Hero, s stats.Sheet) string {
	head := r.HeroName(h) + " " + stars(h.Stars) + " Max Berries"
	return join(append([]string{head}, sheetFields(s)...)...)
}

// MonsterStats shows a monster's stats at level.
func MonsterStats(r *gamedata.Repository, m *gamedata.Monster, level int, s stats.MonsterSheet) string {
	fields := append([]string{"Lvl " + strconv.Itoa(level) + " " + r.MonsterName(m)}, sheetFields(s.Sheet)...)
	fields = append(fields,
		strconv.Itoa(s.ArmorPen)+" Armor Penetration",
		strconv.Itoa(s.ResistPen)+" Resistance Penetration",
		Num(s.DamageReduction)+"% Dmg Reduction",
	)
	return join(fields...)
}

// Highscore lists a ranking as "Name value" pairs.
func Highscore(entries []highscore.Entry) string {
	fields := make([]string, len(entries))
	for i, e := range entries {
		fields[i] = e.Name + " " + Num(e.Value)
	}
	return join(fields...)
}

// HighscoreNotFound is the reply for an empty ranking.
func HighscoreNotFound(class string) string {
	if class != "" {
		return "No " + class + " heroes found!"
	}
	return "No heroes found!"
}

// Overview lists the best hero for each stat.
func Overview(best []highscore.Best) string {
	if len(best) == 0 {
		return HighscoreNotFound("")
	}
	fields := make([]string, len(best))
	for i, b := range best {
		fields[i] = b.Key.Label() + " - " + b.Name + " " + Num(b.Value)
	}
	return join(fields...)
}
