package command

import (
	"strconv"
	"strings"

	"github.com/cquest/bagelbot/stats"
	"github.com/cquest/bagelbot/text"
)

// words is a command's argument text split on whitespace, consumed from
// the end.
type words []string

func split(args string) words {
	return strings.Fields(args)
}

func (w words) query() string {
	return strings.Join(w, " ")
}

func (w words) last() string {
	if len(w) == 0 {
		return ""
	}
	return w[len(w)-1]
}

// popInt removes a trailing integer, as long as something is left for
// the query.
func (w *words) popInt() (int, bool) {
	if len(*w) < 2 || !text.IsInt(w.last()) {
		return 0, false
	}
	n, _ := strconv.Atoi(w.last())
	*w = (*w)[:len(*w)-1]
	return n, true
}

// popStars removes a trailing grade (1..6). 0 means no grade was given.
func (w *words) popStars() int {
	if len(*w) < 2 || !text.IsInt(w.last()) {
		return 0
	}
	n, _ := strconv.Atoi(w.last())
	if stats.CheckStars(n) != nil {
		return 0
	}
	*w = (*w)[:len(*w)-1]
	return n
}

// pop removes and returns the last word.
func (w *words) pop() string {
	last := w.last()
	if len(*w) > 0 {
		*w = (*w)[:len(*w)-1]
	}
	return last
}

// statsArgs parses "query [stars [level training berry]]".
func statsArgs(args string) (string, stats.Build, error) {
	w := split(args)
	var b stats.Build
	if len(w) >= 5 && (w.last() == "true" || w.last() == "false") {
		berry := w.pop() == "true"
		training := text.ParseInt(w.pop(), -1)
		level := text.ParseInt(w.pop(), 0)
		stars := text.ParseInt(w.pop(), 0)
		if err := stats.CheckStars(stars); err != nil {
			return "", b, err
		}
		b = stats.Build{Stars: &stars, Level: &level, Training: &training, Berry: &berry}
	} else if stars := w.popStars(); stars > 0 {
		b.Stars = &stars
	}
	return w.query(), b, nil
}
