package command

import "github.com/cquest/bagelbot/format"

var commands = []*Command{
	heroCommand("hero", format.Hero),
	heroCommand("block", format.Block),
	heroCommand("passive", format.Passive),
	{Name: "stats", Usage: "query [stars [level bread berry]]", NeedsArgs: true, Cacheable: true, Run: cmdStats},
	{Name: "berrystats", Usage: "query", NeedsArgs: true, Cacheable: true, Run: cmdBerryStats},
	{Name: "skill", Usage: "query [level]", NeedsArgs: true, Cacheable: true, Run: cmdSkill},
	berryCommand,
	breadCommand,
	weaponCommand,
	{Name: "skin", Usage: "query", NeedsArgs: true, Cacheable: true, Run: cmdSkin},
	{Name: "monstats", Usage: "query level", NeedsArgs: true, Cacheable: true, Run: cmdMonsterStats},
	{Name: "stage", Usage: "code", NeedsArgs: true, Cacheable: true, Run: cmdStage},
	{Name: "text", Usage: "query [num]", NeedsArgs: true, Cacheable: true, Run: cmdText},
	{Name: "find", Usage: "type query", NeedsArgs: true, Cacheable: true, Run: cmdFind},
	{Name: "highscore", Usage: "[stat [class]]", Cacheable: true, Run: cmdHighscore},
	{Name: "calc", Usage: "expression", Cacheable: true, Run: cmdCalc},
	{Name: "pick", Usage: "choice [or choice...]", Run: cmdPick},
}
