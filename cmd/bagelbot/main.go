package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cquest/bagelbot/config"
	"github.com/cquest/bagelbot/console"
	"github.com/cquest/bagelbot/ircbot"
	"github.com/cquest/bagelbot/store"
	"github.com/cquest/bagelbot/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	cmd     = "bagelbot"
	version = "1.0.0"
)

var cmdError error

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	app := &cobra.Command{
		Use:   cmd,
		Short: cmd + " answers game data questions on IRC",
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if logPath := stringFlag(c, "log"); logPath != "" {
				if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
					fmt.Fprintln(os.Stderr, "mkdir", logPath, "failed:", err)
					return
				}
				log.SetOutput(&lumberjack.Logger{
					Filename:   logPath,
					MaxSize:    10,
					MaxBackups: 10,
					MaxAge:     15,
				})
			}
		},
	}
	defineAppFlags(app)
	defineCommands(app)
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
	if cmdError != nil {
		os.Exit(1)
	}
}

func defineAppFlags(app *cobra.Command) {
	f := app.PersistentFlags()
	f.String("log", os.Getenv("BAGELBOT_LOG"), "log file path (default stderr)")
	f.String("config", text.FirstNotEmpty(os.Getenv("BAGELBOT_CONFIG"), config.DefaultFile), "configuration file, relative to $BAGELBOT_ROOT")
	f.String("source", "", "data source override: dir, sqlite or postgres")
	f.String("data", "", "data directory override")
}

func reportError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		cmdError = err
	}
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func setFlags(flagSetter func(*pflag.FlagSet), cmd *cobra.Command) *cobra.Command {
	flagSetter(cmd.Flags())
	return cmd
}

func stringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		fatal("bad string value for " + name + ": " + err.Error())
	}
	return val
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func defineCommands(app *cobra.Command) {
	app.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show " + cmd + " version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(cmd, version)
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "connect to IRC and answer commands",
		Run: func(c *cobra.Command, args []string) {
			ctx, cancel := signalContext()
			defer cancel()
			reportError(withBot(ctx, c, true, func(b *bot) error {
				return ircbot.New(b.cfg.IRC(), b.live).Run(ctx)
			}))
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "console",
		Short: "answer commands typed on stdin",
		Run: func(c *cobra.Command, args []string) {
			ctx, cancel := signalContext()
			defer cancel()
			reportError(withBot(ctx, c, false, func(b *bot) error {
				return console.New(b.live, os.Stdin, os.Stdout).Run(ctx)
			}))
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "query <command> [args...]",
		Short: "answer one command and exit, e.g. query hero vesper 6",
		Args:  cobra.MinimumNArgs(1),
		Run: func(c *cobra.Command, args []string) {
			ctx, cancel := signalContext()
			defer cancel()
			reportError(withBot(ctx, c, false, func(b *bot) error {
				line := b.live.Prefix() + strings.Join(args, " ")
				fmt.Println(b.live.DispatchLine(ctx, line, console.Requester))
				return nil
			}))
		},
	})

	app.AddCommand(setFlags(func(f *pflag.FlagSet) {
		f.String("from", "", "directory of JSON data files to import (default data > dir)")
	}, &cobra.Command{
		Use:   "import",
		Short: "replace the SQL store's records with the JSON data files",
		Run: func(c *cobra.Command, args []string) {
			ctx, cancel := signalContext()
			defer cancel()
			reportError(importData(ctx, c, stringFlag(c, "from")))
		},
	}))

	app.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "create or upgrade the SQL store's tables",
		Run: func(c *cobra.Command, args []string) {
			ctx, cancel := signalContext()
			defer cancel()
			reportError(migrate(ctx, c))
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "ls-files",
		Short: "list the JSON data files the bot reads and watches",
		Run: func(c *cobra.Command, args []string) {
			data, err := dataConfig(c)
			if err != nil {
				reportError(err)
				return
			}
			for _, f := range store.NewDir(data.Dir).Files() {
				fmt.Println(f)
			}
		},
	})
}
