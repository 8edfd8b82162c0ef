package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/cquest/bagelbot/root"
)

func TestShippedConfig(t *testing.T) {
	c, err := LoadIn(root.Root("."), "bagelbot.yml")
	if err != nil {
		t.Fatalf("LoadIn(bagelbot.yml) failed: %v", err)
	}

	irc := c.IRC()
	if irc.Server != "irc.libera.chat:6697" || !irc.TLS || irc.Nick != "bagelbot" {
		t.Errorf("IRC() == %#v", irc)
	}
	if !reflect.DeepEqual(irc.Channels, []string{"#bagelbot"}) {
		t.Errorf("IRC().Channels == %#v", irc.Channels)
	}
	if c.Prefix() != "$" {
		t.Errorf("Prefix() == %#v", c.Prefix())
	}
	if aliases := c.Aliases()["monstats"]; !reflect.DeepEqual(aliases, []string{"monsterstats", "mstats"}) {
		t.Errorf("Aliases()[monstats] == %#v", aliases)
	}

	data, err := c.Data()
	if err != nil {
		t.Fatalf("Data() failed: %v", err)
	}
	if data.Source != SourceDir || data.Postgres.Port != 5432 {
		t.Errorf("Data() == %#v", data)
	}

	cache, err := c.Cache()
	if err != nil {
		t.Fatalf("Cache() failed: %v", err)
	}
	if cache.Type != CacheLRU || cache.Size != 512 || cache.TTL != 24*time.Hour {
		t.Errorf("Cache() == %#v", cache)
	}
}

func TestDefaults(t *testing.T) {
	c, err := Parse([]byte("irc:\n  server: localhost:6667\n"))
	if err != nil {
		t.Fatal(err)
	}
	irc := c.IRC()
	if irc.Nick != "bagelbot" || irc.User != "bagelbot" || irc.IdentifyNick != "NickServ" {
		t.Errorf("IRC() == %#v", irc)
	}
	if c.Watch() || c.LockFile() != "" || c.Prefix() != "" {
		t.Errorf("unexpected defaults: watch=%v lock=%#v prefix=%#v", c.Watch(), c.LockFile(), c.Prefix())
	}
	if data, err := c.Data(); err != nil || data.Source != SourceDir {
		t.Errorf("Data() == %#v, %v", data, err)
	}
}

var badConfigTests = []string{
	"data:\n  source: mongo\n",
	"cache:\n  type: memcached\n",
	"cache:\n  redis:\n    ttl: forever\n",
}

func TestBadConfig(t *testing.T) {
	for _, doc := range badConfigTests {
		c, err := Parse([]byte(doc))
		if err != nil {
			t.Fatal(err)
		}
		_, dataErr := c.Data()
		_, cacheErr := c.Cache()
		if dataErr == nil && cacheErr == nil {
			t.Errorf("config %#v accepted, expected an error", doc)
		}
	}
}
