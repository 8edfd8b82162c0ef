// Package command answers bot commands.
//
// A Dispatcher takes a command name and its argument text, as split off a
// chat line by the caller, and returns the single reply line. User
// mistakes come back as "Error - ..." replies; anything else is logged
// and answered with an apology.
package command

import (
	"context"
	"log"
	"runtime/debug"
	"sort"
	"strings"
	"unicode"

	"github.com/cquest/bagelbot/errs"
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/highscore"
	"github.com/cquest/bagelbot/query"
	"github.com/cquest/bagelbot/replycache"
	"github.com/cquest/bagelbot/stringnorm"
	"github.com/cquest/bagelbot/text"
)

// DefaultPrefix is the command prefix shown in usage messages.
const DefaultPrefix = "$"

// DefaultApology is the reply to an unexpected failure.
const DefaultApology = "Error - Something went wrong. The operator has been notified."

// DefaultAliases are the alternate command names always understood.
var DefaultAliases = map[string][]string{
	"monstats": {"monsterstats"},
}

// A Command is one bot command.
type Command struct {
	Name string
	// Usage is the argument synopsis shown when required arguments are
	// missing.
	Usage string
	// NeedsArgs commands reply with their usage when called bare.
	NeedsArgs bool
	// Cacheable commands always give the same reply to the same
	// arguments.
	Cacheable bool
	Run       func(ctx context.Context, d *Dispatcher, args string) (string, error)
}

// Options configure a Dispatcher. Zero values take defaults.
type Options struct {
	Prefix           string
	Apology          string
	Aliases          map[string][]string
	Cache            replycache.Cache
	PatternCacheSize int
	// Choose returns a random index in [0, n); used by pick.
	Choose func(n int) int
}

// A Dispatcher routes commands to their handlers. It is safe for
// concurrent use.
type Dispatcher struct {
	repo     *gamedata.Repository
	board    *highscore.Board
	parser   *query.Parser
	aliases  stringnorm.AliasMapper
	cache    replycache.Cache
	prefix   string
	apology  string
	choose   func(n int) int
	commands map[string]*Command
}

// New creates a Dispatcher answering from repo.
func New(repo *gamedata.Repository, opts Options) *Dispatcher {
	d := &Dispatcher{
		repo:    repo,
		board:   highscore.New(repo),
		parser:  query.NewParser(opts.PatternCacheSize),
		aliases: stringnorm.NewAliasMapper(opts.Aliases).Merge(stringnorm.NewAliasMapper(DefaultAliases)),
		cache:   opts.Cache,
		prefix:  text.FirstNotEmpty(opts.Prefix, DefaultPrefix),
		apology: text.FirstNotEmpty(opts.Apology, DefaultApology),
		choose:  opts.Choose,
	}
	if d.choose == nil {
		d.choose = randomIndex
	}
	d.commands = map[string]*Command{}
	for _, c := range commands {
		d.commands[c.Name] = c
	}
	return d
}

// Prefix returns the command prefix.
func (d *Dispatcher) Prefix() string {
	return d.prefix
}

// Lookup returns the command called name, resolving aliases.
func (d *Dispatcher) Lookup(name string) (*Command, bool) {
	c, ok := d.commands[d.aliases.Map(name)]
	return c, ok
}

// Has returns true if name is a command or an alias of one.
func (d *Dispatcher) Has(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}

// Names lists the command names, sorted.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named command and returns its reply. An unknown
// command gets an empty reply. Dispatch never panics; requester is used
// only for logging.
func (d *Dispatcher) Dispatch(ctx context.Context, name, args, requester string) (reply string) {
	cmd, ok := d.Lookup(name)
	if !ok {
		return ""
	}
	args = text.NormalizeSpace(args)

	defer func() {
		if p := recover(); p != nil {
			log.Printf("panic: %s%s %#v from %s: %v\n%s", d.prefix, cmd.Name, args, requester, p, debug.Stack())
			reply = d.apology
		}
	}()

	if cmd.NeedsArgs && args == "" {
		return "Error - " + d.usage(cmd).Error()
	}

	key := cmd.Name + " " + args
	if cmd.Cacheable && d.cache != nil {
		cached, hit, err := d.cache.Get(ctx, key)
		if err != nil {
			log.Printf("reply cache get %#v: %v", key, err)
		} else if hit {
			return cached
		}
	}

	res, err := cmd.Run(ctx, d, args)
	if err != nil {
		if qe, ok := errs.AsQuery(err); ok {
			return text.OneLine("Error - " + qe.Message)
		}
		log.Printf("%s%s %#v from %s failed: %+v", d.prefix, cmd.Name, args, requester, err)
		return d.apology
	}

	res = text.OneLine(res)
	if cmd.Cacheable && d.cache != nil {
		if err := d.cache.Set(ctx, key, res); err != nil {
			log.Printf("reply cache set %#v: %v", key, err)
		}
	}
	return res
}

// SplitLine splits a chat line of the form "<prefix>name args" into the
// command name and its argument text. ok is false for lines that are not
// commands.
func SplitLine(prefix, line string) (name, args string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, prefix) {
		return "", "", false
	}
	rest := line[len(prefix):]
	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end == -1 {
		end = len(rest)
	}
	if end == 0 {
		return "", "", false
	}
	return rest[:end], strings.TrimSpace(rest[end:]), true
}

// DispatchLine answers a chat line. Lines that are not commands, and
// unknown commands, get an empty reply.
func (d *Dispatcher) DispatchLine(ctx context.Context, line, requester string) string {
	name, args, ok := SplitLine(d.prefix, line)
	if !ok {
		return ""
	}
	return d.Dispatch(ctx, name, args, requester)
}

func (d *Dispatcher) usage(cmd *Command) error {
	return errs.Query("Missing parameters! | Usage - %s%s %s", d.prefix, cmd.Name, cmd.Usage)
}

// Usage returns the usage line of the named command.
func (d *Dispatcher) Usage(name string) string {
	cmd, ok := d.Lookup(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(d.prefix + cmd.Name + " " + cmd.Usage)
}

func (d *Dispatcher) parse(raw string) (query.Query, error) {
	return d.parser.Parse(raw)
}
