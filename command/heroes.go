package command

import (
	"context"

	"github.com/cquest/bagelbot/format"
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/match"
	"github.com/cquest/bagelbot/stats"
)

// SuggestCount is the most names offered in a did-you-mean hint.
const SuggestCount = 3

// findHero returns the best hero variant matching raw, restricted to
// grade unless it is 0 and to heroes passing keep unless it is nil.
func (d *Dispatcher) findHero(raw string, grade int, keep func(*gamedata.Hero) bool) (*gamedata.Hero, error) {
	q, err := d.parse(raw)
	if err != nil {
		return nil, err
	}
	heroes := match.Filter(d.repo.Heroes, func(h *gamedata.Hero) bool {
		return (grade == 0 || h.Stars == grade) && (keep == nil || keep(h))
	})
	h, _ := match.First(q, heroes, d.repo.HeroName)
	return h, nil
}

func (d *Dispatcher) heroNotFound(raw string, grade int) string {
	names := make([]string, len(d.repo.Heroes))
	for i, h := range d.repo.Heroes {
		names[i] = d.repo.HeroName(h)
	}
	return format.WithSuggestions(format.HeroNotFound(raw, grade), match.Suggest(raw, names, SuggestCount))
}

func hasStats(h *gamedata.Hero) bool {
	return h.Stats != nil
}

// heroCommand builds the hero/block/passive commands, which share their
// "query [stars]" arguments.
func heroCommand(name string, reply func(*gamedata.Repository, *gamedata.Hero) string) *Command {
	return &Command{
		Name:      name,
		Usage:     "query [stars]",
		NeedsArgs: true,
		Cacheable: true,
		Run: func(ctx context.Context, d *Dispatcher, args string) (string, error) {
			w := split(args)
			grade := w.popStars()
			raw := w.query()
			h, err := d.findHero(raw, grade, nil)
			if err != nil {
				return "", err
			}
			if h == nil {
				return d.heroNotFound(raw, grade), nil
			}
			return reply(d.repo, h), nil
		},
	}
}

func cmdStats(ctx context.Context, d *Dispatcher, args string) (string, error) {
	raw, build, err := statsArgs(args)
	if err != nil {
		return "", err
	}
	grade := 0
	if build.Stars != nil {
		grade = *build.Stars
	}
	h, err := d.findHero(raw, grade, hasStats)
	if err != nil {
		return "", err
	}
	if h == nil {
		return d.heroNotFound(raw, grade), nil
	}
	b, err := build.Resolve(h.Stars)
	if err != nil {
		return "", err
	}
	return format.Stats(d.repo, h, b, stats.Hero(h.Stats, b)), nil
}

func cmdBerryStats(ctx context.Context, d *Dispatcher, args string) (string, error) {
	h, err := d.findHero(args, stats.MaxStars, hasStats)
	if err != nil {
		return "", err
	}
	if h == nil {
		return d.heroNotFound(args, stats.MaxStars), nil
	}
	return format.BerryStats(d.repo, h, stats.Berry(h.Stats.Berry)), nil
}
