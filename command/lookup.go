package command

import (
	"context"
	"sort"
	"strings"

	"github.com/cquest/bagelbot/format"
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/highscore"
	"github.com/cquest/bagelbot/match"
	"github.com/cquest/bagelbot/query"
)

// cmdText shows the num'th text entry whose key or content matches.
func cmdText(ctx context.Context, d *Dispatcher, args string) (string, error) {
	w := split(args)
	num, ok := w.popInt()
	if !ok {
		num = 1
	}
	raw := w.query()
	q, err := d.parse(raw)
	if err != nil {
		return "", err
	}
	entries := match.Texts(q, d.repo.Texts)
	if len(entries) == 0 {
		return format.TextNotFound(raw), nil
	}
	return format.Text(num, entries), nil
}

// graded ranks items against q, ordering each bucket by grade.
func graded[T any](q query.Query, items []T, name func(T) string, stars func(T) int) []T {
	ranked := match.Rank(q, items, name)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Bucket != ranked[j].Bucket {
			return ranked[i].Bucket < ranked[j].Bucket
		}
		return stars(ranked[i].Item) < stars(ranked[j].Item)
	})
	return match.Items(ranked)
}

func names[T any](items []T, name func(T) string) []string {
	res := make([]string, len(items))
	for i, item := range items {
		res[i] = name(item)
	}
	return res
}

// findWeapons matches weapons by name or by the heroes they are bound to.
// Weapons bound to a matching hero come first.
func (d *Dispatcher) findWeapons(q query.Query) []*gamedata.WeaponItem {
	boundMatch := func(w *gamedata.WeaponItem) bool {
		for _, name := range d.repo.BoundHeroNames(w) {
			if q.Match(name) {
				return true
			}
		}
		return false
	}
	stars := func(w *gamedata.WeaponItem) int { return w.Stars }

	bound := match.Filter(d.repo.Weapons, boundMatch)
	sort.SliceStable(bound, func(i, j int) bool { return bound[i].Stars < bound[j].Stars })
	rest := match.Filter(d.repo.Weapons, func(w *gamedata.WeaponItem) bool { return !boundMatch(w) })
	return append(bound, graded(q, rest, d.repo.WeaponName, stars)...)
}

// cmdFind lists the names of every entity of a kind matching a query.
func cmdFind(ctx context.Context, d *Dispatcher, args string) (string, error) {
	kindWord, raw, _ := strings.Cut(args, " ")
	if raw == "" {
		return "", d.usage(d.commands["find"])
	}
	kind, err := gamedata.ParseKind(kindWord)
	if err != nil {
		return "", err
	}
	q, err := d.parse(raw)
	if err != nil {
		return "", err
	}

	r := d.repo
	var found []string
	switch kind {
	case gamedata.KindBerry:
		found = names(graded(q, r.Berries, r.BerryName,
			func(b *gamedata.BerryItem) int { return b.Stars }), r.BerryName)
	case gamedata.KindBread:
		found = names(graded(q, r.Breads, r.BreadName,
			func(b *gamedata.BreadItem) int { return b.Stars }), r.BreadName)
	case gamedata.KindHero:
		found = names(graded(q, r.Heroes, r.HeroName,
			func(h *gamedata.Hero) int { return h.Stars }), r.HeroName)
	case gamedata.KindMonster:
		found = names(match.Find(q, r.Monsters, r.MonsterName), r.MonsterName)
	case gamedata.KindSkill:
		found = names(match.Find(q, r.Skills, r.SkillName), r.SkillName)
	case gamedata.KindSkin:
		found = names(match.Find(q, r.Skins, r.SkinName), r.SkinName)
	case gamedata.KindWeapon:
		found = names(d.findWeapons(q), r.WeaponName)
	}
	if len(found) == 0 {
		return format.FindNotFound(kind, raw), nil
	}
	return format.Find(found), nil
}

func cmdStage(ctx context.Context, d *Dispatcher, args string) (string, error) {
	s, err := d.repo.StageByCode(args)
	if err != nil {
		return "", err
	}
	if s == nil {
		return format.StageNotFound(args), nil
	}
	return format.Stage(d.repo, s), nil
}

// cmdHighscore ranks heroes: "[stat [class]]". With no arguments it shows
// the best hero for every stat.
func cmdHighscore(ctx context.Context, d *Dispatcher, args string) (string, error) {
	w := split(args)
	if len(w) == 0 {
		return format.Overview(d.board.Overview()), nil
	}
	key, err := highscore.ParseKey(w[0])
	if err != nil {
		return "", err
	}
	class := ""
	if len(w) > 1 {
		if class, err = highscore.ParseClass(strings.Join(w[1:], " ")); err != nil {
			return "", err
		}
	}
	top := d.board.Top(key, class)
	if len(top) == 0 {
		return format.HighscoreNotFound(class), nil
	}
	return format.Highscore(top), nil
}
