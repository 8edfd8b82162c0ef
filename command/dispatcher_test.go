package command

import (
	"context"
	"strings"
	"testing"

	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/replycache"
	"github.com/cquest/bagelbot/store"
	"github.com/pkg/errors"
)

func testDispatcher(t *testing.T, opts Options) *Dispatcher {
	t.Helper()
	repo, err := gamedata.Load(context.Background(), store.NewDir("../testdata/data"))
	if err != nil {
		t.Fatalf("gamedata.Load failed: %+v", err)
	}
	if opts.Choose == nil {
		opts.Choose = func(n int) int { return n - 1 }
	}
	return New(repo, opts)
}

type dispatchTest struct {
	name, args string
	expected   string
}

// A trailing "..." in expected means only the prefix is checked.
func runDispatchTests(t *testing.T, d *Dispatcher, tests []dispatchTest) {
	t.Helper()
	for _, test := range tests {
		actual := d.Dispatch(context.Background(), test.name, test.args, "tester")
		if prefix, ok := strings.CutSuffix(test.expected, "..."); ok {
			if !strings.HasPrefix(actual, prefix) {
				t.Errorf("Dispatch(%#v, %#v) == %#v, expected prefix %#v", test.name, test.args, actual, prefix)
			}
			continue
		}
		if actual != test.expected {
			t.Errorf("Dispatch(%#v, %#v) == %#v, expected %#v", test.name, test.args, actual, test.expected)
		}
	}
}

var heroTests = []dispatchTest{
	{"hero", "vesper", "Vesper | Class - 5☆ Wizard | Faction - Neutral | How to get - Promotion | Gender - Female | Background - A wandering knight. She guards the western gate."},
	{"hero", "VESPER 6", "Vesper | Class - 6☆ Wizard | Faction - Neutral | How to get - Promotion, Legendary Contract | Gender - Female | Background - A wandering knight. She guards the western gate."},
	{"hero", "/a(l|r)tair/i", "Altair | Class - 6☆ Archer..."},
	{"hero", "/a(l|r)tair/i 3", "Artair | Class - 3☆ Hunter..."},
	{"hero", "/A(l|r)tair/", "Altair | Class - 6☆ Archer..."},
	{"hero", "vesper 4", "Sir Vesperine | Class - 4☆ Paladin..."},
	{"hero", "nobody", `No hero's name matches "nobody"!`},
	{"hero", "vespr", `No hero's name matches "vespr"! Did you mean: Vesper, Kvesper?`},
	{"hero", "", "Error - Missing parameters! | Usage - $hero query [stars]"},
	{"hero", "/(/", "Error - Invalid regex /(/: missing closing )"},
	{"block", "vesper", "Vesper | Class - 5☆ Wizard | Dusk Slash - Deals 200% damage to all enemies."},
	{"passive", "vesper", "Vesper | Class - 5☆ Wizard | This hero has no passive."},
	{"passive", "vesper 6", "Vesper | Class - 6☆ Wizard | Twilight - Attack power increases at night."},
}

func TestHeroCommands(t *testing.T) {
	runDispatchTests(t, testDispatcher(t, Options{}), heroTests)
}

var statsTests = []dispatchTest{
	{"stats", "vesper", "Lvl 50 Vesper +4 | 826.0 Atk Power..."},
	{"stats", "vesper 6", "Lvl 60 Vesper +5 with berries | 1542.0 Atk Power | 7710.0 HP | 32.0 Crit Chance | 358.8 Armor | 462.3 Resistance | 190.0 Crit Dmg | 16.0 Accuracy | 22.0 Evasion"},
	{"stats", "vesper 6 60 5 false", "Lvl 60 Vesper +5 without berries | 1242.0 Atk Power..."},
	{"stats", "vesper 6 1 0 true", "Lvl 1 Vesper +0 with berries | 420.0 Atk Power..."},
	{"stats", "vesper 6 61 5 true", "Error - Invalid level for 6☆ hero: 61"},
	{"stats", "vesper 6 0 5 true", "Error - Invalid level for 6☆ hero: 0"},
	{"stats", "vesper 3 30 6 true", "Error - Invalid training for 3☆ hero: 6"},
	{"stats", "vesper 7 70 6 true", "Error - Invalid star level: 7."},
	{"stats", "ghost", `No hero's name matches "ghost"!...`},
	{"berrystats", "vesper", "Vesper 6☆ Max Berries | 300.0 Atk Power | 1500.0 HP | 20.0 Crit Chance | 100.0 Armor | 100.0 Resistance | 30.0 Crit Dmg | 10.0 Accuracy | 10.0 Evasion"},
	{"berrystats", "artair", `No 6☆ hero's name matches "artair"!...`},
}

func TestStatsCommands(t *testing.T) {
	runDispatchTests(t, testDispatcher(t, Options{}), statsTests)
}

var itemTests = []dispatchTest{
	{"skill", "energy", "Energy Strike Lvl 2 | Great - 15% | Cost - 500 Gold, 20 Honor | Description - Deals 200% damage."},
	{"skill", "energy 1", "Energy Strike Lvl 1 | Great - 10% | Cost - 100 Gold, 5 Honor | Description - Deals 150% damage."},
	{"skill", "heal 3", `No skills match name "heal" and level 3!`},
	{"bread", "donut", "Donut | 1☆ Bread | Training - 10 | Great - 10% | Sell Price - 20"},
	{"bread", "donut 3", "Donut | 3☆ Bread | Training - 60 | Great - 15% | Sell Price - 80"},
	{"bread", "donut 6", `No 6☆ bread names match "donut"!`},
	{"berry", "attack", "Attack Berry | 2☆ Berry..."},
	{"berry", "attack 4", "Superior Attack Berry | 4☆ Berry | Stat - 45.0 Atk Power | Great - 10% | Eat Price - 1000 | Sell Price - 500"},
	{"weapon", "long sword", "Long Sword | 3☆ Sword | Slots - Red, Blue, Blue | Atk Power - 150 | Atk Speed - 1 | How to Get - Shop, Forge"},
	{"weapon", "eagle 6", "Eagle Eye | 6☆ Bow | Slots - Red, Red, Yellow | Atk Power - 1200 | Atk Speed - 1.2 | How to Get - Bound Weapon | Bound To - Altair | Ability - Ignores 30% of armor."},
	{"skin", "d'art", "D'Artagnan Suit | Sell Price - 1000 Gold | Stats - 120.0 HP, 30.0 Atk Power, 1.5 Crit Chance"},
	{"skin", "cape", `No skin's name matches "cape"!`},
	{"monstats", "ogre 1", "Lvl 1 Ogre | 300.0 Atk Power..."},
	{"monsterstats", "big ogre 1", "Lvl 1 Big Ogre | 100.0 Atk Power..."},
	{"monstats", "ogre", "Error - Missing parameters! | Usage - $monstats query level"},
	{"monstats", "ogre x", "Error - Invalid level: x"},
	{"monstats", "ogre 0", "Error - Invalid level: 0"},
	{"monstats", "orge 5", `No monster's name matches "orge"! Did you mean: Ogre?`},
}

func TestItemCommands(t *testing.T) {
	runDispatchTests(t, testDispatcher(t, Options{}), itemTests)
}

var lookupTests = []dispatchTest{
	{"stage", "6-30h", "Dragon's Lair | Cost - 20 meat | Dropped Bread - 4~5☆ | Dropped Weapons - 4~5☆ Sword, Bow | Enemies - Lvl 80 Ogre, Lvl 78 Big Ogre"},
	{"stage", "7-3-2N", "Sunken Temple..."},
	{"stage", "6-31h", `No stage matches code "6-31h"!`},
	{"stage", "7-3n", "Error - Invalid stage code format. Use a format like 6-30h or 7-1-8n."},
	{"text", "meow", `No matches found for "meow"!`},
	{"text", "vesper 2", "[2/11] TEXT_HERO_VESPERIA - Vesperia"},
	{"text", "vesper 99", "[11/11] TEXT_WEAPON_VESPER_STAFF - Vesper Staff"},
	{"text", "/hero_vesper_desc$/i", "[1/1] TEXT_HERO_VESPER_DESC - A wandering knight. She guards the western gate."},
	{"find", "hero vesper", "\x02(5 results found)\x02 - Vesper, Knight of Vesper, Vesperia, Sir Vesperine, Kvesper"},
	{"find", "weapon vesper", "\x02(2 results found)\x02 - Dusk Blade, Vesper Staff"},
	{"find", "bread /./", "\x02(2 results found)\x02 - Donut, Rye Bread"},
	{"find", "monster ogre", "\x02(2 results found)\x02 - Ogre, Big Ogre"},
	{"find", "skill zzz", `No skill results found for "zzz"`},
	{"find", "dragon x", "Error - Unknown type: dragon | Available types - berry, bread, hero, monster, skill, skin, weapon"},
	{"find", "hero", "Error - Missing parameters! | Usage - $find type query"},
	{"highscore", "cc archer", "Altair 45.0"},
	{"highscore", "cc priest", "No priest heroes found!"},
	{"highscore", "berryha wizard", "Vesper 300.0"},
	{"highscore", "ha hunter", "Artair 234.0 | Kvesper 19.0"},
	{"highscore", "speed", "Error - Invalid stat: speed...."},
	{"highscore", "cc bard", "Error - Invalid class: bard. Valid classes: warrior, paladin, archer, hunter, wizard, priest"},
	{"highscore", "", "Atk Power - Altair 1802.5 | HP - ..."},
}

func TestLookupCommands(t *testing.T) {
	runDispatchTests(t, testDispatcher(t, Options{}), lookupTests)
}

func TestHighscoreOverview(t *testing.T) {
	d := testDispatcher(t, Options{})
	reply := d.Dispatch(context.Background(), "highscore", "", "tester")
	if fields := strings.Split(reply, " | "); len(fields) != 16 {
		t.Errorf("overview has %d fields, expected 16: %#v", len(fields), reply)
	}
	if !strings.Contains(reply, "Berry Evasion - ") {
		t.Errorf("overview lacks berry stats: %#v", reply)
	}
}

var miscTests = []dispatchTest{
	{"calc", "1+2*3", "7"},
	{"calc", "(1 + 2) / 4", "0.75"},
	{"calc", "1/0", "Error - Attempted to divide by zero."},
	{"calc", "1 +", "Error - Failed to parse query."},
	{"calc", "x * 2", "No result."},
	{"calc", "2 * (y + 1)", "No result."},
	{"calc", "", "Give me a mathematical expression to evaluate."},
	{"pick", "tea or coffee", "I pick... coffee!"},
	{"pick", "", `Give me some options to pick between separated with the word "or".`},
	{"dance", "now", ""},
}

func TestMiscCommands(t *testing.T) {
	runDispatchTests(t, testDispatcher(t, Options{}), miscTests)
}

func TestAliasesAndPrefix(t *testing.T) {
	d := testDispatcher(t, Options{
		Prefix:  "!",
		Aliases: map[string][]string{"hero": {"h", "champ"}},
	})
	runDispatchTests(t, d, []dispatchTest{
		{"h", "altair", "Altair | Class - 6☆ Archer..."},
		{"CHAMP", "altair", "Altair | Class - 6☆ Archer..."},
		{"monsterstats", "ogre", "Error - Missing parameters! | Usage - !monstats query level"},
	})
	if !d.Has("monsterstats") || d.Has("dance") {
		t.Errorf("Has() does not resolve aliases")
	}
	if d.Usage("stats") != "!stats query [stars [level bread berry]]" {
		t.Errorf("Usage(stats) == %#v", d.Usage("stats"))
	}
}

func TestUnexpectedFailures(t *testing.T) {
	d := testDispatcher(t, Options{Apology: "Sorry!"})
	d.commands["boom"] = &Command{Name: "boom", Run: func(context.Context, *Dispatcher, string) (string, error) {
		panic("boom")
	}}
	d.commands["broken"] = &Command{Name: "broken", Run: func(context.Context, *Dispatcher, string) (string, error) {
		return "", errors.New("record store unavailable")
	}}
	runDispatchTests(t, d, []dispatchTest{
		{"boom", "", "Sorry!"},
		{"broken", "", "Sorry!"},
		{"hero", "vesper 6", "Vesper | Class - 6☆ Wizard..."},
	})
}

func TestReplyCache(t *testing.T) {
	cache := replycache.NewLRU(16)
	d := testDispatcher(t, Options{Cache: cache})
	ctx := context.Background()

	first := d.Dispatch(ctx, "hero", "altair", "a")
	second := d.Dispatch(ctx, "hero", "  altair ", "b")
	if first != second {
		t.Errorf("cached reply differs: %#v vs %#v", first, second)
	}
	d.Dispatch(ctx, "pick", "a or b", "a")
	d.Dispatch(ctx, "hero", "", "a")
	if cache.Len() != 1 {
		t.Errorf("cache holds %d replies, expected 1", cache.Len())
	}

	reply, ok, _ := cache.Get(ctx, "hero altair")
	if !ok || reply != first {
		t.Errorf("cache[hero altair] == %#v, %v", reply, ok)
	}
}

func TestNames(t *testing.T) {
	d := testDispatcher(t, Options{})
	if n := len(d.Names()); n != 17 {
		t.Errorf("len(Names()) == %d, expected 17", n)
	}
}

var splitLineTests = []struct {
	prefix, line string
	name, args   string
	ok           bool
}{
	{"$", "$hero vesper 6", "hero", "vesper 6", true},
	{"$", "  $calc\t1 + 2 ", "calc", "1 + 2", true},
	{"$", "$highscore", "highscore", "", true},
	{"$", "$ hero vesper", "", "", false},
	{"$", "hero vesper", "", "", false},
	{"!", "$hero vesper", "", "", false},
	{"$", "$", "", "", false},
	{"bb ", "bb hero vesper", "hero", "vesper", true},
}

func TestSplitLine(t *testing.T) {
	for _, test := range splitLineTests {
		name, args, ok := SplitLine(test.prefix, test.line)
		if name != test.name || args != test.args || ok != test.ok {
			t.Errorf("SplitLine(%#v, %#v) == %#v, %#v, %v, expected %#v, %#v, %v",
				test.prefix, test.line, name, args, ok, test.name, test.args, test.ok)
		}
	}
}

func TestDispatchLine(t *testing.T) {
	d := testDispatcher(t, Options{})
	ctx := context.Background()
	if reply := d.DispatchLine(ctx, "$bread rye", "tester"); reply != "Rye Bread | 2☆ Bread | Training - 30 | Great - 10% | Sell Price - 40" {
		t.Errorf("DispatchLine(bread rye) == %#v", reply)
	}
	for _, line := range []string{"hello there", "$dance", "$"} {
		if reply := d.DispatchLine(ctx, line, "tester"); reply != "" {
			t.Errorf("DispatchLine(%#v) == %#v, expected no reply", line, reply)
		}
	}
}
