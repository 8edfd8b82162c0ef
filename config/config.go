// Package config reads the bot configuration, config/bagelbot.yml.
package config

import (
	"time"

	"github.com/cquest/bagelbot/pg"
	"github.com/cquest/bagelbot/qyaml"
	"github.com/cquest/bagelbot/resource"
	"github.com/cquest/bagelbot/root"
	"github.com/cquest/bagelbot/text"
	"github.com/pkg/errors"
)

// DefaultFile is the configuration path relative to the bot root.
const DefaultFile = "config/bagelbot.yml"

// Data source types.
const (
	SourceDir      = "dir"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Reply cache types.
const (
	CacheLRU   = "lru"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the parsed bot configuration.
type Config struct {
	qyaml.YAML
}

// Load reads the configuration at path under resource.Root, DefaultFile
// if path is empty.
func Load(path string) (Config, error) {
	return LoadIn(resource.Root, path)
}

// LoadIn reads the configuration at path under r.
func LoadIn(r root.Root, path string) (Config, error) {
	y, err := resource.ParseYAMLIn(r, text.FirstNotEmpty(path, DefaultFile))
	if err != nil {
		return Config{}, err
	}
	return Config{y}, nil
}

// Parse parses configuration text.
func Parse(b []byte) (Config, error) {
	y, err := qyaml.Parse(b)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return Config{y}, nil
}

// IRC is the IRC connection setup.
type IRC struct {
	Server   string
	TLS      bool
	Nick     string
	User     string
	Password string
	Channels []string
	// IdentifyNick is the services nick sent IDENTIFY on connect, when
	// IdentifyPassword is set.
	IdentifyNick     string
	IdentifyPassword string
	Debug            bool
}

// IRC returns the irc section.
func (c Config) IRC() IRC {
	nick := c.StringDefault("irc > nick", "bagelbot")
	return IRC{
		Server:           c.String("irc > server"),
		TLS:              c.Bool("irc > tls", false),
		Nick:             nick,
		User:             c.StringDefault("irc > user", nick),
		Password:         c.String("irc > password"),
		Channels:         c.StringSlice("irc > channels"),
		IdentifyNick:     c.StringDefault("irc > identify > nick", "NickServ"),
		IdentifyPassword: c.String("irc > identify > password"),
		Debug:            c.Bool("irc > debug", false),
	}
}

// Prefix is the command prefix; empty means the bot default.
func (c Config) Prefix() string { return c.String("prefix") }

// Apology is the reply to unexpected failures; empty means the bot default.
func (c Config) Apology() string { return c.String("apology") }

// Aliases maps command names to their alternate names.
func (c Config) Aliases() map[string][]string {
	return c.StringSliceMap("aliases")
}

// PatternCacheSize is the number of compiled patterns to keep.
func (c Config) PatternCacheSize() int { return c.Int("pattern-cache-size", 0) }

// Data is where game data is read from.
type Data struct {
	Source   string
	Dir      string
	SQLite   string
	Postgres pg.ConnSpec
}

// Data returns the data section.
func (c Config) Data() (Data, error) {
	d := Data{
		Source: c.StringDefault("data > source", SourceDir),
		Dir:    resource.Root.Path(c.StringDefault("data > dir", "data")),
		SQLite: resource.Root.Path(c.StringDefault("data > sqlite", "bagelbot.db")),
		Postgres: pg.ConnSpec{
			Database: c.StringDefault("data > postgres > db", "bagelbot"),
			User:     c.String("data > postgres > user"),
			Password: c.String("data > postgres > password"),
			Host:     c.String("data > postgres > host"),
			Port:     c.Int("data > postgres > port", 0),
			SSLMode:  c.String("data > postgres > sslmode"),
		},
	}
	switch d.Source {
	case SourceDir, SourceSQLite, SourcePostgres:
		return d, nil
	}
	return d, errors.Errorf("data > source: unknown source %#v (want dir, sqlite or postgres)", d.Source)
}

// Cache is the reply cache setup.
type Cache struct {
	Type          string
	Size          int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	// TTL is how long a redis entry lives; 0 keeps entries until the
	// next reload.
	TTL time.Duration
}

// Cache returns the cache section.
func (c Config) Cache() (Cache, error) {
	res := Cache{
		Type:          c.StringDefault("cache > type", CacheLRU),
		Size:          c.Int("cache > size", 0),
		RedisAddr:     c.StringDefault("cache > redis > addr", "localhost:6379"),
		RedisPassword: c.String("cache > redis > password"),
		RedisDB:       c.Int("cache > redis > db", 0),
		RedisPrefix:   c.String("cache > redis > prefix"),
	}
	if ttl := c.String("cache > redis > ttl"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return res, errors.Wrap(err, "cache > redis > ttl")
		}
		res.TTL = d
	}
	switch res.Type {
	case CacheLRU, CacheRedis, CacheNone:
		return res, nil
	}
	return res, errors.Errorf("cache > type: unknown cache %#v (want lru, redis or none)", res.Type)
}

// LockFile is the single-instance lock path, or "" for none.
func (c Config) LockFile() string {
	if lock := c.String("lock"); lock != "" {
		return resource.Root.Path(lock)
	}
	return ""
}

// Watch is true if the data directory should be watched for changes.
func (c Config) Watch() bool { return c.Bool("watch", false) }
