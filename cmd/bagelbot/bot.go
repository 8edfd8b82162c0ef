package main

import (
	"context"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/cquest/bagelbot/command"
	"github.com/cquest/bagelbot/config"
	"github.com/cquest/bagelbot/flock"
	"github.com/cquest/bagelbot/fnotify"
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/pg"
	"github.com/cquest/bagelbot/replycache"
	"github.com/cquest/bagelbot/resource"
	"github.com/cquest/bagelbot/store"
	"github.com/cquest/bagelbot/text"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// liveDispatcher answers with the most recently loaded game data.
type liveDispatcher struct {
	cur atomic.Pointer[command.Dispatcher]
}

func (l *liveDispatcher) Prefix() string  { return l.cur.Load().Prefix() }
func (l *liveDispatcher) Names() []string { return l.cur.Load().Names() }

func (l *liveDispatcher) DispatchLine(ctx context.Context, line, requester string) string {
	return l.cur.Load().DispatchLine(ctx, line, requester)
}

// bot is everything a running bot needs, whichever front end it uses.
type bot struct {
	cfg   config.Config
	data  config.Data
	src   store.Source
	cache replycache.Cache
	opts  command.Options
	live  *liveDispatcher
	// gen counts data loads; each load caches under its own scope.
	gen int
}

func loadConfig(c *cobra.Command) (config.Config, error) {
	return config.Load(stringFlag(c, "config"))
}

func dataConfigFrom(c *cobra.Command, cfg config.Config) (config.Data, error) {
	data, err := cfg.Data()
	if err != nil {
		return data, err
	}
	if source := stringFlag(c, "source"); source != "" {
		data.Source = source
	}
	if dir := stringFlag(c, "data"); dir != "" {
		data.Dir = resource.Root.Path(dir)
	}
	return data, nil
}

func dataConfig(c *cobra.Command) (config.Data, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return config.Data{}, err
	}
	return dataConfigFrom(c, cfg)
}

// openDB opens the SQL store named by data, which must not be a directory
// source.
func openDB(data config.Data) (pg.DB, error) {
	switch data.Source {
	case config.SourceSQLite:
		return pg.OpenSQLite(data.SQLite)
	case config.SourcePostgres:
		return data.Postgres.Open()
	}
	return pg.DB{}, errors.Errorf("data source %#v is not a SQL store", data.Source)
}

// openSource opens the configured game data source. The returned close
// function is never nil.
func openSource(ctx context.Context, data config.Data) (store.Source, func(), error) {
	if data.Source == config.SourceDir {
		log.Println("Reading game data from", data.Dir)
		return store.NewDir(data.Dir), func() {}, nil
	}
	db, err := openDB(data)
	if err != nil {
		return nil, func() {}, err
	}
	if err := store.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	log.Println("Reading game data from", data.Source, "store")
	return store.NewSQL(db), func() { db.Close() }, nil
}

func openCache(ctx context.Context, cfg config.Cache) (replycache.Cache, error) {
	switch cfg.Type {
	case config.CacheNone:
		return nil, nil
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, errors.Wrapf(err, "redis %s", cfg.RedisAddr)
		}
		return replycache.NewRedis(client, text.FirstNotEmpty(cfg.RedisPrefix, replycache.DefaultPrefix), cfg.TTL), nil
	}
	return replycache.NewLRU(cfg.Size), nil
}

// load reads the game data and swaps in a dispatcher answering from it.
// The new dispatcher caches under a fresh scope, so replies still being
// written from older data are never served; the cache is then cleared.
func (b *bot) load(ctx context.Context) error {
	repo, err := gamedata.Load(ctx, b.src)
	if err != nil {
		return err
	}
	b.gen++
	opts := b.opts
	if b.cache != nil {
		opts.Cache = replycache.NewScoped(b.cache, strconv.Itoa(b.gen))
	}
	b.live.cur.Store(command.New(repo, opts))
	if b.cache != nil {
		if err := b.cache.Clear(ctx); err != nil {
			return err
		}
	}
	log.Printf("Loaded %d heroes, %d monsters, %d stages, %d text entries",
		len(repo.Heroes), len(repo.Monsters), len(repo.Stages), repo.Texts.Len())
	return nil
}

// watch reloads game data whenever a data file changes.
func (b *bot) watch(ctx context.Context) {
	files := store.NewDir(b.data.Dir).Files()
	if len(files) == 0 {
		log.Println("No data files to watch in", b.data.Dir)
		return
	}
	changed := make(chan string)
	go func() {
		if err := fnotify.New("data").Notify(ctx, files, changed); err != nil {
			log.Printf("data watcher stopped: %+v", err)
		}
	}()
	for {
		select {
		case file := <-changed:
			log.Println("Reloading game data:", file, "changed")
			if err := b.load(ctx); err != nil {
				log.Printf("reload failed, keeping old data: %+v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// withBot sets up the bot from configuration and calls run with it.
// Long-running front ends take the instance lock and watch the data
// directory.
func withBot(ctx context.Context, c *cobra.Command, long bool, run func(*bot) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	data, err := dataConfigFrom(c, cfg)
	if err != nil {
		return err
	}
	cacheCfg, err := cfg.Cache()
	if err != nil {
		return err
	}

	if lockFile := cfg.LockFile(); long && lockFile != "" {
		lock := flock.New(lockFile)
		if err := lock.Lock(false); err != nil {
			return errors.Wrap(err, "another bagelbot is running")
		}
		defer lock.Unlock()
	}

	src, closeSource, err := openSource(ctx, data)
	if err != nil {
		return err
	}
	defer closeSource()

	b := &bot{cfg: cfg, data: data, src: src, live: &liveDispatcher{}}
	if long {
		if b.cache, err = openCache(ctx, cacheCfg); err != nil {
			return err
		}
	}
	b.opts = command.Options{
		Prefix:           cfg.Prefix(),
		Apology:          cfg.Apology(),
		Aliases:          cfg.Aliases(),
		Cache:            b.cache,
		PatternCacheSize: cfg.PatternCacheSize(),
	}
	if err := b.load(ctx); err != nil {
		return err
	}

	// The watcher stops when the front end returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	if long && cfg.Watch() && data.Source == config.SourceDir {
		g.Go(func() error {
			b.watch(gctx)
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		return run(b)
	})
	return g.Wait()
}

func importData(ctx context.Context, c *cobra.Command, from string) error {
	data, err := dataConfig(c)
	if err != nil {
		return err
	}
	db, err := openDB(data)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := store.Migrate(ctx, db); err != nil {
		return err
	}

	dir := data.Dir
	if from != "" {
		dir = resource.Root.Path(from)
	}
	counts, err := store.NewSQL(db).Import(ctx, store.NewDir(dir))
	if err != nil {
		return err
	}
	for _, kind := range store.Kinds {
		log.Printf("Imported %d %s records from %s", counts[kind], kind, dir)
	}
	return nil
}

func migrate(ctx context.Context, c *cobra.Command) error {
	data, err := dataConfig(c)
	if err != nil {
		return err
	}
	db, err := openDB(data)
	if err != nil {
		return err
	}
	defer db.Close()
	return store.Migrate(ctx, db)
}
