package gamedata

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/cquest/bagelbot/store"
	"github.com/cquest/bagelbot/text"
	"github.com/pkg/errors"
)

// A Repository holds every game entity, in load order. It is built once
// by Load and never modified, so it may be shared between goroutines.
type Repository struct {
	Texts    *Texts
	Heroes   []*Hero
	Monsters []*Monster
	Berries  []*BerryItem
	Breads   []*BreadItem
	Weapons  []*WeaponItem
	Skills   []*SkillLevel
	Skins    []*SkinItem
	Stages   []*Stage

	heroByID    map[string]*Hero
	monsterByID map[string]*Monster
	stageByCode map[StageCode]*Stage
}

func decode[T any](ctx context.Context, src store.Source, kind store.Kind) ([]*T, error) {
	recs, err := src.Records(ctx, kind)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", kind)
	}
	res := make([]*T, 0, len(recs))
	for i, rec := range recs {
		v := new(T)
		if err := json.Unmarshal(rec, v); err != nil {
			return nil, errors.Wrapf(err, "decode %s record #%d", kind, i)
		}
		res = append(res, v)
	}
	return res, nil
}

// Load reads every record kind from src and resolves the references
// between them. References that do not resolve are left empty.
func Load(ctx context.Context, src store.Source) (*Repository, error) {
	texts, err := decode[TextEntry](ctx, src, store.Text)
	if err != nil {
		return nil, err
	}
	entries := make([]TextEntry, len(texts))
	for i, t := range texts {
		entries[i] = *t
	}

	r := &Repository{Texts: NewTexts(entries)}
	if r.Heroes, err = decode[Hero](ctx, src, store.Hero); err != nil {
		return nil, err
	}
	heroStats, err := decode[HeroStats](ctx, src, store.HeroStat)
	if err != nil {
		return nil, err
	}
	bonuses, err := decode[BerryBonus](ctx, src, store.BerryBonus)
	if err != nil {
		return nil, err
	}
	if r.Berries, err = decode[BerryItem](ctx, src, store.Berry); err != nil {
		return nil, err
	}
	if r.Breads, err = decode[BreadItem](ctx, src, store.Bread); err != nil {
		return nil, err
	}
	if r.Weapons, err = decode[WeaponItem](ctx, src, store.Weapon); err != nil {
		return nil, err
	}
	if r.Skills, err = decode[SkillLevel](ctx, src, store.Skill); err != nil {
		return nil, err
	}
	if r.Monsters, err = decode[Monster](ctx, src, store.Monster); err != nil {
		return nil, err
	}
	if r.Skins, err = decode[SkinItem](ctx, src, store.Skin); err != nil {
		return nil, err
	}
	stages, err := decode[Stage](ctx, src, store.Stage)
	if err != nil {
		return nil, err
	}

	r.resolve(heroStats, bonuses, stages)
	return r, nil
}

func (r *Repository) resolve(heroStats []*HeroStats, bonuses []*BerryBonus, stages []*Stage) {
	bonusByID := make(map[string]*BerryBonus, len(bonuses))
	for _, b := range bonuses {
		bonusByID[b.ID] = b
	}
	statsByID := make(map[string]*HeroStats, len(heroStats))
	for _, s := range heroStats {
		s.Berry = bonusByID[s.BerryID]
		statsByID[s.ID] = s
	}

	r.heroByID = make(map[string]*Hero, len(r.Heroes))
	for _, h := range r.Heroes {
		h.Stats = statsByID[h.StatID]
		r.heroByID[h.ID] = h
	}

	for _, w := range r.Weapons {
		w.BoundTo = nil
		for _, id := range w.BoundHeroIDs {
			if h := r.heroByID[id]; h != nil {
				w.BoundTo = append(w.BoundTo, h)
			}
		}
	}

	r.monsterByID = make(map[string]*Monster, len(r.Monsters))
	for _, m := range r.Monsters {
		r.monsterByID[m.ID] = m
	}

	r.stageByCode = make(map[StageCode]*Stage, len(stages))
	for _, s := range stages {
		code, err := ParseStageCode(s.Code)
		if err != nil {
			log.Printf("stage %s: bad code %#v, skipped", s.ID, s.Code)
			continue
		}
		s.Parsed = code
		for i := range s.Waves {
			s.Waves[i].Monster = r.monsterByID[s.Waves[i].MonsterID]
		}
		if _, dup := r.stageByCode[code]; !dup {
			r.stageByCode[code] = s
		}
		r.Stages = append(r.Stages, s)
	}
}

// Text resolves key to single-line display text.
func (r *Repository) Text(key string) string {
	return text.OneLine(r.Texts.Resolve(key))
}

// HeroByID returns the hero variant with the given id, or nil.
func (r *Repository) HeroByID(id string) *Hero {
	return r.heroByID[id]
}

// MonsterByID returns the monster with the given id, or nil.
func (r *Repository) MonsterByID(id string) *Monster {
	return r.monsterByID[id]
}

// StageByCode finds the stage with the given code. An unparseable code is
// a QueryError; an unknown stage is nil.
func (r *Repository) StageByCode(code string) (*Stage, error) {
	sc, err := ParseStageCode(code)
	if err != nil {
		return nil, err
	}
	return r.stageByCode[sc], nil
}

// HeroName returns the display name of h.
func (r *Repository) HeroName(h *Hero) string { return r.Text(h.NameKey) }

// MonsterName returns the display name of m.
func (r *Repository) MonsterName(m *Monster) string { return r.Text(m.NameKey) }

// BerryName returns the display name of b.
func (r *Repository) BerryName(b *BerryItem) string { return r.Text(b.NameKey) }

// BreadName returns the display name of b.
func (r *Repository) BreadName(b *BreadItem) string { return r.Text(b.NameKey) }

// WeaponName returns the display name of w.
func (r *Repository) WeaponName(w *WeaponItem) string { return r.Text(w.NameKey) }

// SkillName returns the display name of s.
func (r *Repository) SkillName(s *SkillLevel) string { return r.Text(s.NameKey) }

// SkinName returns the display name of s.
func (r *Repository) SkinName(s *SkinItem) string { return r.Text(s.NameKey) }

// StageName returns the display name of s.
func (r *Repository) StageName(s *Stage) string { return r.Text(s.NameKey) }

// BoundHeroNames returns the names of the heroes w is bound to, without
// repeats.
func (r *Repository) BoundHeroNames(w *WeaponItem) []string {
	var names []string
	seen := map[string]bool{}
	for _, h := range w.BoundTo {
		name := r.HeroName(h)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// HasClass returns true if h belongs to class, given as the user-facing
// class name ("priest") or the game code ("CLA_PRIEST").
func (h *Hero) HasClass(class string) bool {
	return strings.EqualFold(strings.TrimPrefix(h.Class, "CLA_"), strings.TrimPrefix(strings.ToUpper(class), "CLA_"))
}
