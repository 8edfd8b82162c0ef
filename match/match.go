// Package match ranks entities by how well their display names match a
// query.
//
// A substring query places each matching name in the first of five
// buckets it qualifies for:
//
//	1. the name equals the query
//	2. the query appears as a whole word
//	3. the name starts with the query
//	4. the query starts a later word
//	5. the query appears anywhere
//
// Results are ordered by bucket, then by input order. A pattern query has
// a single bucket.
package match

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cquest/bagelbot/query"
)

// Bucket numbers.
const (
	Exact = iota + 1
	Word
	Prefix
	WordPrefix
	Anywhere
)

// A Ranked item is a match and the bucket it fell in.
type Ranked[T any] struct {
	Item   T
	Bucket int
}

// A Ranker buckets names against one query.
type Ranker struct {
	q         query.Query
	sub       string
	wholeWord *regexp.Regexp
}

// NewRanker prepares q for ranking.
func NewRanker(q query.Query) *Ranker {
	r := &Ranker{q: q}
	if s, ok := q.(query.Substring); ok {
		r.sub = string(s)
		r.wholeWord = wholeWordRegexp(r.sub)
	}
	return r
}

func isWordChar(r rune) bool {
	return r == '_' || (r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}

// wholeWordRegexp matches s as a word: \b is used at each edge of s that
// is a word character, start/end-or-whitespace elsewhere.
func wholeWordRegexp(s string) *regexp.Regexp {
	left, right := `(?:^|\s)`, `(?:$|\s)`
	if first, _ := utf8.DecodeRuneInString(s); isWordChar(first) {
		left = `\b`
	}
	if last, _ := utf8.DecodeLastRuneInString(s); isWordChar(last) {
		right = `\b`
	}
	return regexp.MustCompile(left + regexp.QuoteMeta(s) + right)
}

// Bucket returns the bucket name falls in, or 0 if it does not match.
func (r *Ranker) Bucket(name string) int {
	if r.wholeWord == nil {
		if r.q.Match(name) {
			return Exact
		}
		return 0
	}

	n := strings.ToLower(name)
	if !strings.Contains(n, r.sub) {
		return 0
	}
	switch {
	case n == r.sub:
		return Exact
	case r.wholeWord.MatchString(n):
		return Word
	case strings.HasPrefix(n, r.sub):
		return Prefix
	case followsSpace(n, r.sub):
		return WordPrefix
	}
	return Anywhere
}

// followsSpace returns true if some occurrence of sub in n comes right
// after whitespace.
func followsSpace(n, sub string) bool {
	for i := 0; i < len(n); {
		j := strings.Index(n[i:], sub)
		if j < 0 {
			return false
		}
		at := i + j
		if at > 0 {
			prev, _ := utf8.DecodeLastRuneInString(n[:at])
			if unicode.IsSpace(prev) {
				return true
			}
		}
		i = at + 1
	}
	return false
}

// Rank returns the items whose name matches q, best bucket first.
func Rank[T any](q query.Query, items []T, name func(T) string) []Ranked[T] {
	r := NewRanker(q)
	var buckets [Anywhere + 1][]Ranked[T]
	for _, item := range items {
		if b := r.Bucket(name(item)); b > 0 {
			buckets[b] = append(buckets[b], Ranked[T]{Item: item, Bucket: b})
		}
	}
	var res []Ranked[T]
	for _, b := range buckets {
		res = append(res, b...)
	}
	return res
}

// Items strips the buckets from ranked.
func Items[T any](ranked []Ranked[T]) []T {
	if len(ranked) == 0 {
		return nil
	}
	res := make([]T, len(ranked))
	for i, r := range ranked {
		res[i] = r.Item
	}
	return res
}

// Find ranks items against q and returns them in rank order.
func Find[T any](q query.Query, items []T, name func(T) string) []T {
	return Items(Rank(q, items, name))
}

// First returns the best match for q, if any.
func First[T any](q query.Query, items []T, name func(T) string) (T, bool) {
	ranked := Rank(q, items, name)
	if len(ranked) == 0 {
		var zero T
		return zero, false
	}
	return ranked[0].Item, true
}

// Filter returns the items for which keep is true, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	var res []T
	for _, item := range items {
		if keep(item) {
			res = append(res, item)
		}
	}
	return res
}
