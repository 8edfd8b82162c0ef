package match

import (
	"github.com/cquest/bagelbot/gamedata"
	"github.com/cquest/bagelbot/query"
)

// Texts returns the text entries whose id or content matches q, in table
// order.
func Texts(q query.Query, texts *gamedata.Texts) []gamedata.TextEntry {
	return Filter(texts.Entries(), func(e gamedata.TextEntry) bool {
		return q.Match(e.ID) || q.Match(e.Content)
	})
}
