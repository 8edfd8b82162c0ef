package ircbot

import (
	"context"
	"testing"

	"github.com/cquest/bagelbot/command"
	"github.com/cquest/bagelbot/config"
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/store"
)

type echoDispatcher struct {
	requesters []string
}

func (e *echoDispatcher) DispatchLine(ctx context.Context, line, requester string) string {
	e.requesters = append(e.requesters, requester)
	if name, args, ok := command.SplitLine("$", line); ok && name == "echo" {
		return args
	}
	return ""
}

var replyTests = []struct {
	nick, target, message string
	to, reply             string
}{
	{"alice", "#bagelbot", "$echo hi", "#bagelbot", "alice: hi"},
	{"alice", "&local", "$echo hi", "&local", "alice: hi"},
	{"bob", "bagelbot", "$echo hi", "bob", "hi"},
	{"bob", "#bagelbot", "just chatting", "", ""},
	{"bob", "#bagelbot", "$nosuch", "", ""},
}

func TestReply(t *testing.T) {
	d := &echoDispatcher{}
	b := New(config.IRC{Nick: "bagelbot"}, d)
	for _, test := range replyTests {
		to, reply := b.Reply(context.Background(), test.nick, test.target, test.message)
		if to != test.to || reply != test.reply {
			t.Errorf("Reply(%#v, %#v, %#v) == %#v, %#v, expected %#v, %#v",
				test.nick, test.target, test.message, to, reply, test.to, test.reply)
		}
	}
	if len(d.requesters) != len(replyTests) || d.requesters[0] != "alice" {
		t.Errorf("requesters == %#v", d.requesters)
	}
}

func TestReplyWithGameData(t *testing.T) {
	repo, err := gamedata.Load(context.Background(), store.NewDir("../testdata/data"))
	if err != nil {
		t.Fatalf("gamedata.Load failed: %+v", err)
	}
	b := New(config.IRC{Nick: "bagelbot"}, command.New(repo, command.Options{}))

	to, reply := b.Reply(context.Background(), "carol", "#cq", "$stats vesper 6 61 5 true")
	if to != "#cq" || reply != "carol: Error - Invalid level for 6☆ hero: 61" {
		t.Errorf("Reply(stats) == %#v, %#v", to, reply)
	}
}

func TestRunWithoutServer(t *testing.T) {
	if err := New(config.IRC{}, &echoDispatcher{}).Run(context.Background()); err == nil {
		t.Errorf("Run without a server succeeded")
	}
}
