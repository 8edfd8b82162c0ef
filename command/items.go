package command

import (
	"context"

	"github.com/cquest/bagelbot/errs"
	"github.com/cquest/bagelbot/format"
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/match"
	"github.com/cquest/bagelbot/stats"
	"github.com/cquest/bagelbot/text"
)

// firstGraded returns the best match for raw among items of the given
// grade (any grade if 0).
func firstGraded[T any](d *Dispatcher, raw string, grade int, items []T,
	name func(T) string, stars func(T) int) (T, bool, error) {
	var zero T
	q, err := d.parse(raw)
	if err != nil {
		return zero, false, err
	}
	if grade > 0 {
		items = match.Filter(items, func(item T) bool { return stars(item) == grade })
	}
	item, ok := match.First(q, items, name)
	return item, ok, nil
}

// gradedCommand builds the berry/bread/weapon commands: "query [stars]",
// best match of that grade.
func gradedCommand[T any](noun string, items func(*gamedata.Repository) []T,
	name func(*gamedata.Repository, T) string, stars func(T) int,
	reply func(*gamedata.Repository, T) string) *Command {
	return &Command{
		Name:      noun,
		Usage:     "query [stars]",
		NeedsArgs: true,
		Cacheable: true,
		Run: func(ctx context.Context, d *Dispatcher, args string) (string, error) {
			w := split(args)
			grade := w.popStars()
			raw := w.query()
			nameOf := func(item T) string { return name(d.repo, item) }
			item, ok, err := firstGraded(d, raw, grade, items(d.repo), nameOf, stars)
			if err != nil {
				return "", err
			}
			if !ok {
				return format.ItemNotFound(noun, raw, grade), nil
			}
			return reply(d.repo, item), nil
		},
	}
}

var (
	berryCommand = gradedCommand("berry",
		func(r *gamedata.Repository) []*gamedata.BerryItem { return r.Berries },
		(*gamedata.Repository).BerryName,
		func(b *gamedata.BerryItem) int { return b.Stars },
		format.Berry)
	breadCommand = gradedCommand("bread",
		func(r *gamedata.Repository) []*gamedata.BreadItem { return r.Breads },
		(*gamedata.Repository).BreadName,
		func(b *gamedata.BreadItem) int { return b.Stars },
		format.Bread)
	weaponCommand = gradedCommand("weapon",
		func(r *gamedata.Repository) []*gamedata.WeaponItem { return r.Weapons },
		(*gamedata.Repository).WeaponName,
		func(w *gamedata.WeaponItem) int { return w.Stars },
		format.Weapon)
)

// cmdSkill shows a skill at the requested level, or its highest level.
func cmdSkill(ctx context.Context, d *Dispatcher, args string) (string, error) {
	w := split(args)
	level, _ := w.popInt()
	raw := w.query()
	q, err := d.parse(raw)
	if err != nil {
		return "", err
	}
	skills := d.repo.Skills
	if level > 0 {
		skills = match.Filter(skills, func(s *gamedata.SkillLevel) bool { return s.Level == level })
	}
	found := match.Find(q, skills, d.repo.SkillName)
	if len(found) == 0 {
		return format.SkillNotFound(raw, level), nil
	}
	best := found[0]
	for _, s := range found[1:] {
		if s.NameKey == best.NameKey && s.Level > best.Level {
			best = s
		}
	}
	return format.Skill(d.repo, best), nil
}

func cmdSkin(ctx context.Context, d *Dispatcher, args string) (string, error) {
	q, err := d.parse(args)
	if err != nil {
		return "", err
	}
	skin, ok := match.First(q, d.repo.Skins, d.repo.SkinName)
	if !ok {
		return format.SkinNotFound(args), nil
	}
	return format.Skin(d.repo, skin), nil
}

func cmdMonsterStats(ctx context.Context, d *Dispatcher, args string) (string, error) {
	w := split(args)
	if len(w) < 2 {
		return "", d.usage(d.commands["monstats"])
	}
	levelText := w.pop()
	level := text.ParseInt(levelText, 0)
	if !text.IsInt(levelText) || level < 1 {
		return "", errs.Query("Invalid level: %s", levelText)
	}
	raw := w.query()
	q, err := d.parse(raw)
	if err != nil {
		return "", err
	}
	m, ok := match.First(q, d.repo.Monsters, d.repo.MonsterName)
	if !ok {
		names := make([]string, len(d.repo.Monsters))
		for i, m := range d.repo.Monsters {
			names[i] = d.repo.MonsterName(m)
		}
		return format.WithSuggestions(format.MonsterNotFound(raw),
			match.Suggest(raw, names, SuggestCount)), nil
	}
	return format.MonsterStats(d.repo, m, level, stats.Monster(m, level)), nil
}
