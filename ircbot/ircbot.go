// Package ircbot connects a command dispatcher to IRC.
package ircbot

import (
	"context"
	"crypto/tls"
	"log"
	"net"
	"strings"

	"github.com/cquest/bagelbot/config"
	"github.com/pkg/errors"
	irc "github.com/thoj/go-ircevent"
)

// A Dispatcher answers chat lines. An empty reply means stay quiet.
type Dispatcher interface {
	DispatchLine(ctx context.Context, line, requester string) string
}

// A Bot is one IRC connection.
type Bot struct {
	cfg  config.IRC
	d    Dispatcher
	conn *irc.Connection
}

// New creates a Bot; it does not connect until Run.
func New(cfg config.IRC, d Dispatcher) *Bot {
	return &Bot{cfg: cfg, d: d}
}

func isChannel(target string) bool {
	return strings.HasPrefix(target, "#") || strings.HasPrefix(target, "&")
}

// Reply computes the answer to message, sent by nick to target. Replies
// in channels are addressed to the requester as "nick: reply"; private
// messages are answered privately. to is "" when there is nothing to say.
func (b *Bot) Reply(ctx context.Context, nick, target, message string) (to, reply string) {
	res := b.d.DispatchLine(ctx, message, nick)
	if res == "" {
		return "", ""
	}
	if isChannel(target) {
		return target, nick + ": " + res
	}
	return nick, res
}

func (b *Bot) onWelcome(e *irc.Event) {
	if b.cfg.IdentifyPassword != "" {
		log.Println("Identifying to", b.cfg.IdentifyNick)
		b.conn.Privmsg(b.cfg.IdentifyNick, "IDENTIFY "+b.cfg.IdentifyPassword)
	}
	for _, channel := range b.cfg.Channels {
		log.Println("Joining", channel)
		b.conn.Join(channel)
	}
}

func (b *Bot) onPrivmsg(ctx context.Context, e *irc.Event) {
	if len(e.Arguments) == 0 {
		return
	}
	if to, reply := b.Reply(ctx, e.Nick, e.Arguments[0], e.Message()); to != "" {
		b.conn.Privmsg(to, reply)
	}
}

func (b *Bot) connection() (*irc.Connection, error) {
	conn := irc.IRC(b.cfg.Nick, b.cfg.User)
	conn.Password = b.cfg.Password
	conn.Debug = b.cfg.Debug
	conn.VerboseCallbackHandler = b.cfg.Debug
	conn.Log = log.Default()
	if b.cfg.TLS {
		host, _, err := net.SplitHostPort(b.cfg.Server)
		if err != nil {
			return nil, errors.Wrapf(err, "irc server %s", b.cfg.Server)
		}
		conn.UseTLS = true
		conn.TLSConfig = &tls.Config{ServerName: host}
	}
	return conn, nil
}

// Run connects and serves until ctx is done. The IRC library reconnects
// by itself after connection failures.
func (b *Bot) Run(ctx context.Context) error {
	if b.cfg.Server == "" {
		return errors.New("no irc server configured")
	}
	conn, err := b.connection()
	if err != nil {
		return err
	}
	b.conn = conn
	conn.AddCallback("001", b.onWelcome)
	conn.AddCallback("PRIVMSG", func(e *irc.Event) { b.onPrivmsg(ctx, e) })

	log.Println("Connecting to", b.cfg.Server, "as", b.cfg.Nick)
	if err := conn.Connect(b.cfg.Server); err != nil {
		return errors.Wrapf(err, "connect %s", b.cfg.Server)
	}

	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			log.Println("Disconnecting from", b.cfg.Server)
			conn.Quit()
		case <-stopped:
		}
	}()
	conn.Loop()
	close(stopped)
	return nil
}
