// Package query turns the raw text a user typed into a name query.
//
// A query is either a case-insensitive literal substring or, when written
// as /body/ or /body/i, a regular expression. The decision is made once by
// Parse; callers switch on the concrete type.
package query

import (
	"regexp"
	"regexp/syntax"
	"strings"
	"sync"

	"github.com/cquest/bagelbot/errs"
	"github.com/golang/groupcache/lru"
)

// A Query is either a Substring or a *Pattern.
type Query interface {
	// Match reports whether name satisfies the query.
	Match(name string) bool
	// String returns the query as the user typed it.
	String() string

	isQuery()
}

// A Substring is a literal, case-insensitive query. The value is stored
// lower-cased.
type Substring string

// Match reports whether name contains s, ignoring case.
func (s Substring) Match(name string) bool {
	return strings.Contains(strings.ToLower(name), string(s))
}

func (s Substring) String() string { return string(s) }

func (Substring) isQuery() {}

// A Pattern is a regular expression query.
type Pattern struct {
	Regexp *regexp.Regexp
	Source string
}

// Match reports whether the pattern matches name.
func (p *Pattern) Match(name string) bool {
	return p.Regexp.MatchString(name)
}

func (p *Pattern) String() string { return p.Source }

func (*Pattern) isQuery() {}

// IsPattern returns true if raw is written in /body/ or /body/i form.
func IsPattern(raw string) bool {
	return len(raw) > 1 && raw[0] == '/' &&
		(strings.HasSuffix(raw, "/") || strings.HasSuffix(raw, "/i"))
}

// Parse normalizes raw into a Query. A malformed pattern is a QueryError.
func Parse(raw string) (Query, error) {
	if !IsPattern(raw) {
		return Substring(strings.ToLower(raw)), nil
	}
	return compile(raw)
}

func compile(raw string) (*Pattern, error) {
	body, flags := raw[1:len(raw)-1], ""
	if strings.HasSuffix(raw, "/i") {
		body, flags = "", "(?i)"
		if len(raw) > 2 {
			body = raw[1 : len(raw)-2]
		}
	}
	re, err := regexp.Compile(flags + body)
	if err != nil {
		return nil, errs.QueryCause(err, "Invalid regex %s: %s", raw, regexpProblem(err))
	}
	return &Pattern{Regexp: re, Source: raw}, nil
}

func regexpProblem(err error) string {
	if serr, ok := err.(*syntax.Error); ok {
		return serr.Code.String()
	}
	return err.Error()
}

// DefaultCacheSize is the number of compiled patterns a Parser keeps.
const DefaultCacheSize = 128

// A Parser parses queries, remembering compiled patterns so a user
// repeating the same /regex/ does not recompile it. Safe for concurrent use.
type Parser struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// NewParser creates a Parser caching up to size patterns.
func NewParser(size int) *Parser {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Parser{cache: lru.New(size)}
}

// Parse normalizes raw as the package-level Parse does.
func (p *Parser) Parse(raw string) (Query, error) {
	if !IsPattern(raw) {
		return Substring(strings.ToLower(raw)), nil
	}

	p.mu.Lock()
	cached, ok := p.cache.Get(raw)
	p.mu.Unlock()
	if ok {
		return cached.(*Pattern), nil
	}

	pat, err := compile(raw)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.cache.Add(raw, pat)
	p.mu.Unlock()
	return pat, nil
}
